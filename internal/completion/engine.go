// Package completion resolves what to suggest at a cursor position in a
// SQL query: columns after `alias.`, table names after FROM/JOIN, and the
// keyword vocabulary everywhere else.
package completion

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"unicode"
)

// Kind indicates what a completion item inserts.
type Kind int

const (
	Field Kind = iota
	Table
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Field:
		return "field"
	case Table:
		return "table"
	default:
		return "keyword"
	}
}

// Item is a single completion suggestion. Start and End delimit the word
// token being replaced, as byte offsets into the full query text.
type Item struct {
	Label      string
	Kind       Kind
	Detail     string
	InsertText string
	Start, End int
}

// Engine owns the schema cache and the single active provider
// registration. Registering a new table set disposes the previous
// provider first, so exactly one provider is active at any time.
type Engine struct {
	cache *Cache

	mu     sync.Mutex
	active *Provider
}

// Provider is one registration of the engine against a known-table set.
type Provider struct {
	engine *Engine
	tables []string

	mu     sync.Mutex
	closed bool
}

// NewEngine creates a completion engine over the given schema cache.
func NewEngine(cache *Cache) *Engine {
	return &Engine{cache: cache}
}

// Register installs a provider for the given known tables, disposing the
// previously active provider first.
func (e *Engine) Register(tables []string) *Provider {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active != nil {
		e.active.markClosed()
	}
	p := &Provider{engine: e, tables: append([]string(nil), tables...)}
	e.active = p
	return p
}

// Active returns the currently registered provider, or nil.
func (e *Engine) Active() *Provider {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Close disposes the provider. A closed provider returns no suggestions.
func (p *Provider) Close() {
	p.markClosed()
	p.engine.mu.Lock()
	if p.engine.active == p {
		p.engine.active = nil
	}
	p.engine.mu.Unlock()
}

func (p *Provider) markClosed() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Provider) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

var (
	// `<identifier>.` immediately before the cursor, optionally followed
	// by a partial column name or trailing blanks.
	dotContextRe = regexp.MustCompile(`([A-Za-z_]\w*)\.(\w*)[ \t]*$`)

	// FROM/JOIN followed by a partial identifier right before the cursor.
	tableContextRe = regexp.MustCompile(`(?i)\b(?:from|join)\s+\w*$`)
)

// Complete produces the suggestion list for the cursor position. Column
// fetch failures degrade to an empty field list, never to an error.
func (p *Provider) Complete(ctx context.Context, fullText string, cursor int) []Item {
	if p.isClosed() {
		return nil
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(fullText) {
		cursor = len(fullText)
	}

	before := fullText[:cursor]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	line := before[lineStart:]

	word, wordStart, wordEnd := wordAt(line, len(line))
	rangeStart := lineStart + wordStart
	rangeEnd := lineStart + wordEnd

	// Dot-context: column suggestions only, nothing else mixed in.
	if m := dotContextRe.FindStringSubmatch(line); m != nil {
		table, ok := p.resolveQualifier(fullText, m[1])
		if !ok {
			return []Item{}
		}
		cols, _ := p.engine.cache.Columns(ctx, table)
		items := make([]Item, 0, len(cols))
		for _, col := range cols {
			items = append(items, Item{
				Label:      col.Name,
				Kind:       Field,
				Detail:     col.DataType,
				InsertText: col.Name,
				Start:      rangeStart,
				End:        rangeEnd,
			})
		}
		return items
	}

	var items []Item

	// Table-context: after FROM/JOIN, or while typing any word.
	if tableContextRe.MatchString(line) || word != "" {
		for _, t := range p.tables {
			items = append(items, Item{
				Label:      t,
				Kind:       Table,
				Detail:     "Table",
				InsertText: `"` + t + `"`,
				Start:      rangeStart,
				End:        rangeEnd,
			})
		}
	}

	// Keywords are always offered outside dot-context.
	for _, kw := range Vocabulary {
		items = append(items, Item{
			Label:      kw,
			Kind:       Keyword,
			InsertText: kw,
			Start:      rangeStart,
			End:        rangeEnd,
		})
	}

	return items
}

// resolveQualifier maps the identifier before a dot to a table name,
// first through the alias map derived from the full query, then by
// case-insensitive match against the known tables.
func (p *Provider) resolveQualifier(fullText, qualifier string) (string, bool) {
	aliases := ResolveAliases(fullText)
	if table, ok := aliases[strings.ToLower(qualifier)]; ok {
		return table, true
	}
	for _, t := range p.tables {
		if strings.EqualFold(t, qualifier) {
			return t, true
		}
	}
	return "", false
}

// wordAt returns the identifier token around the cursor within a line,
// with its start and end byte offsets.
func wordAt(line string, cursor int) (string, int, int) {
	if cursor < 0 || cursor > len(line) {
		return "", 0, 0
	}

	start := cursor
	for start > 0 && isIdentChar(rune(line[start-1])) {
		start--
	}
	end := cursor
	for end < len(line) && isIdentChar(rune(line[end])) {
		end++
	}
	return line[start:end], start, end
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
