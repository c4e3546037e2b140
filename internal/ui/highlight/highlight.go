// Package highlight renders SQL with terminal syntax highlighting.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var sqlLexer = chroma.Coalesce(lexers.Get("sql"))

// SQL returns the query highlighted with 256-color ANSI codes using the
// named chroma style. On any tokenization failure the input is returned
// unchanged; a plain query is better than no query.
func SQL(sql, styleName string) string {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	it, err := sqlLexer.Tokenise(nil, sql)
	if err != nil {
		return sql
	}

	var b strings.Builder
	if err := formatters.TTY256.Format(&b, style, it); err != nil {
		return sql
	}
	// The formatter appends a trailing reset and may add a newline;
	// callers lay the text out themselves.
	return strings.TrimSuffix(b.String(), "\n")
}
