// internal/ui/model_types.go
// Type definitions for the UI layer.
package ui

// Mode represents the current UI mode (vim-style)
type Mode string

const (
	InsertMode Mode = "INSERT"
	VisualMode Mode = "VISUAL"
)

// Focus identifies which pane receives navigation keys in visual mode.
type Focus int

const (
	FocusEditor Focus = iota
	FocusResults
)
