// internal/ui/commands.go
// Async commands: query execution, schema loading, completion requests.
package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sqlpane/sqlpane/internal/db"
	"github.com/sqlpane/sqlpane/internal/grid"
	"github.com/sqlpane/sqlpane/internal/history"
)

const debounceDelay = 120 * time.Millisecond

// executeQueryCmd executes a query (or multiple queries split by ;)
// asynchronously and records each statement in history.
func (m Model) executeQueryCmd(query string) tea.Cmd {
	driver := m.driver
	store := m.historyStore
	connName := m.connName
	previewRows := m.config.HistoryPreviewRows
	timeout := time.Duration(m.config.QueryTimeoutSecs) * time.Second

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		statements := splitStatements(query)
		if len(statements) == 0 {
			return QueryResultMsg{}
		}

		var lastResult *db.Result
		var lastEntry *history.Entry

		for _, stmt := range statements {
			start := time.Now()
			result, err := driver.Execute(ctx, stmt)
			if err != nil {
				entry := &history.Entry{
					Connection:   connName,
					Query:        stmt,
					ExecutedAt:   time.Now(),
					DurationMs:   time.Since(start).Milliseconds(),
					Status:       "error",
					ErrorMessage: err.Error(),
				}
				if store != nil {
					store.Add(entry)
				}
				return QueryResultMsg{Err: err, Entry: entry}
			}

			entry := &history.Entry{
				Connection: connName,
				Query:      stmt,
				ExecutedAt: time.Now(),
				DurationMs: result.ExecTime.Milliseconds(),
				RowCount:   result.RowCount,
				Status:     "success",
				Preview:    buildPreview(result, previewRows),
			}
			if store != nil {
				store.Add(entry)
			}
			lastResult = result
			lastEntry = entry
		}

		// Multi-statement input displays the last result.
		return QueryResultMsg{Result: lastResult, Entry: lastEntry}
	}
}

// buildPreview formats the first rows of a result for the history list.
func buildPreview(result *db.Result, limit int) string {
	if len(result.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	names := make([]string, len(result.Columns))
	for i, c := range result.Columns {
		names[i] = c.Name
	}
	b.WriteString(strings.Join(names, " | "))
	b.WriteString("\n")

	if limit > len(result.Rows) {
		limit = len(result.Rows)
	}
	for i := 0; i < limit; i++ {
		cells := make([]string, len(result.Rows[i]))
		for j, v := range result.Rows[i] {
			cells[j] = grid.CellText(v)
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}
	if len(result.Rows) > limit {
		b.WriteString("...")
	}
	return strings.TrimSpace(b.String())
}

// splitStatements splits a query string by semicolons, respecting quotes
func splitStatements(query string) []string {
	var statements []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(query); i++ {
		c := query[i]

		// Handle escape sequences
		if (inSingleQuote || inDoubleQuote) && c == '\\' && i+1 < len(query) {
			current.WriteByte(c)
			i++
			current.WriteByte(query[i])
			continue
		}

		if c == '\'' && !inDoubleQuote {
			inSingleQuote = !inSingleQuote
		} else if c == '"' && !inSingleQuote {
			inDoubleQuote = !inDoubleQuote
		}

		if c == ';' && !inSingleQuote && !inDoubleQuote {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
			continue
		}

		current.WriteByte(c)
	}

	stmt := strings.TrimSpace(current.String())
	if stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

// loadTablesCmd fetches the table list used for completion and the
// schema browser.
func (m Model) loadTablesCmd() tea.Cmd {
	driver := m.driver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		tables, err := driver.Tables(ctx)
		return TablesLoadedMsg{Tables: tables, Err: err}
	}
}

// completeCmd asks the active provider for suggestions. The sequence
// number is echoed back so stale responses can be dropped.
func (m Model) completeCmd(seq int, sql string, cursor int) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		if provider == nil {
			return CompletionMsg{Seq: seq}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		items := provider.Complete(ctx, sql, cursor)
		return CompletionMsg{Seq: seq, Items: items}
	}
}

// debounceCmd schedules a DebounceMsg after the typing pause.
func debounceCmd(id int) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return DebounceMsg{ID: id}
	})
}

// loadHistoryCmd loads recent history entries for the history popup.
func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.historyStore
	connName := m.connName
	return func() tea.Msg {
		if store == nil {
			return HistoryLoadedMsg{}
		}
		entries, err := store.List(connName, 50, 0)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}
