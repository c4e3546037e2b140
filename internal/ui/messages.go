// internal/ui/messages.go
package ui

import (
	"github.com/sqlpane/sqlpane/internal/completion"
	"github.com/sqlpane/sqlpane/internal/db"
	"github.com/sqlpane/sqlpane/internal/history"
)

// QueryResultMsg sent when query execution completes
type QueryResultMsg struct {
	Result *db.Result
	Entry  *history.Entry
	Err    error
}

// TablesLoadedMsg sent when the table list arrives from the driver
type TablesLoadedMsg struct {
	Tables []string
	Err    error
}

// CompletionMsg carries suggestions for a specific request. Seq ties the
// result to the keystroke that asked for it; anything older is stale.
type CompletionMsg struct {
	Seq   int
	Items []completion.Item
}

// DebounceMsg fires after the typing pause; ID discards superseded timers
type DebounceMsg struct {
	ID int
}

// HistoryLoadedMsg sent when history loads from SQLite
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}
