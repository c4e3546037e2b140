// internal/history/entry.go
package history

import "time"

// Entry represents a single query execution in history
type Entry struct {
	ID           int64
	Connection   string
	Query        string
	ExecutedAt   time.Time
	DurationMs   int64
	RowCount     int
	Status       string // "success", "error"
	ErrorMessage string
	Preview      string // first few rows, pipe-separated
}

// QueryPreview returns a truncated version of the query
func (e *Entry) QueryPreview(maxLen int) string {
	q := e.Query
	if len(q) > maxLen {
		return q[:maxLen-3] + "..."
	}
	return q
}
