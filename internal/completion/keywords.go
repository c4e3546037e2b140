package completion

import "strings"

// SQL keywords organized by clause
var (
	statementKeywords = []string{
		"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER",
		"TRUNCATE", "EXPLAIN", "DESCRIBE", "SHOW", "WITH",
	}

	selectKeywords = []string{
		"DISTINCT", "ALL", "AS", "FROM",
	}

	fromKeywords = []string{
		"WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "CROSS", "NATURAL", "FULL",
		"ON", "USING", "GROUP", "ORDER", "BY", "LIMIT", "OFFSET", "UNION", "EXCEPT", "INTERSECT",
	}

	whereKeywords = []string{
		"AND", "OR", "NOT", "IN", "BETWEEN", "LIKE", "ILIKE", "IS", "NULL",
		"TRUE", "FALSE", "EXISTS", "HAVING", "CASE", "WHEN", "THEN", "ELSE", "END",
	}

	orderKeywords = []string{
		"ASC", "DESC", "NULLS", "FIRST", "LAST",
	}

	aggregateKeywords = []string{
		"COUNT", "SUM", "AVG", "MIN", "MAX",
	}

	// Vocabulary is the fixed keyword list offered by the completion engine.
	Vocabulary = append(append(append(append(append(
		[]string{}, statementKeywords...), selectKeywords...), fromKeywords...),
		whereKeywords...), append(orderKeywords, aggregateKeywords...)...)
)

var keywordSet = func() map[string]bool {
	set := make(map[string]bool, len(Vocabulary))
	for _, kw := range Vocabulary {
		set[kw] = true
	}
	return set
}()

// IsKeyword reports whether the token is a reserved SQL keyword,
// case-insensitively.
func IsKeyword(s string) bool {
	return keywordSet[strings.ToUpper(s)]
}
