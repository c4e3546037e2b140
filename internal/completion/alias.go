package completion

import (
	"regexp"
	"strings"
)

// The alias scanner is two independent regex passes, not a SQL parser.
// Pass one picks up bare aliases (`FROM t a`) and accepts them only when
// followed by a clause boundary, a comma, or end of input. Pass two picks
// up explicit `AS` aliases. Pass two runs last and overwrites pass one for
// the same alias token; callers rely on that precedence.
var (
	bareAliasRe = regexp.MustCompile("(?is)\\b(?:from|join)\\s+[\"'`]?([A-Za-z_][\\w.$]*)[\"'`]?\\s+([A-Za-z_]\\w*)")
	asAliasRe   = regexp.MustCompile("(?is)\\b(?:from|join)\\s+[\"'`]?([A-Za-z_][\\w.$]*)[\"'`]?\\s+as\\s+([A-Za-z_]\\w*)")
	boundaryRe  = regexp.MustCompile(`(?is)^\s*(?:,|$|(?:on|where|join|left|right|inner|outer|cross|full|natural|group|order|limit|offset|having|union|intersect|except)\b)`)
)

// ResolveAliases derives the alias-to-table mapping for a query by
// scanning FROM and JOIN clauses. Keys are lower-cased and unique; an
// alias that equals a reserved keyword is discarded.
func ResolveAliases(sql string) map[string]string {
	aliases := make(map[string]string)

	for _, m := range bareAliasRe.FindAllStringSubmatchIndex(sql, -1) {
		table := sql[m[2]:m[3]]
		alias := sql[m[4]:m[5]]
		if IsKeyword(alias) {
			continue
		}
		// The alias must be followed by a clause boundary, otherwise the
		// "alias" is the next table in a comma list or similar.
		if !boundaryRe.MatchString(sql[m[5]:]) {
			continue
		}
		aliases[strings.ToLower(alias)] = table
	}

	for _, m := range asAliasRe.FindAllStringSubmatchIndex(sql, -1) {
		table := sql[m[2]:m[3]]
		alias := sql[m[4]:m[5]]
		if IsKeyword(alias) {
			continue
		}
		aliases[strings.ToLower(alias)] = table
	}

	return aliases
}
