// internal/ui/model.go
// Root Model struct, constructor, and Init.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sqlpane/sqlpane/internal/completion"
	"github.com/sqlpane/sqlpane/internal/config"
	"github.com/sqlpane/sqlpane/internal/db"
	"github.com/sqlpane/sqlpane/internal/grid"
	"github.com/sqlpane/sqlpane/internal/history"
	"github.com/sqlpane/sqlpane/internal/ui/components/schemabrowser"
	"github.com/sqlpane/sqlpane/internal/ui/components/suggestions"
)

const editorHeight = 5 // textarea rows + border

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	mode          Mode
	focus         Focus
	width, height int
	connName      string
	driver        db.Driver
	historyStore  *history.Store
	config        *config.Config

	// Components
	editor  textarea.Model
	results grid.Model
	suggest suggestions.Model

	// Completion
	engine        *completion.Engine
	cache         *completion.Cache
	provider      *completion.Provider
	completionSeq int
	debounceID    int

	// Schema
	tables        []string
	schemaBrowser schemabrowser.Model

	// History popup
	showHistory    bool
	historyEntries []history.Entry
	historyIdx     int

	// Popups
	showHelp bool

	// Status
	statusMsg string
	errorMsg  string
}

// NewModel creates the root UI model
func NewModel(cfg *config.Config, connName string, driver db.Driver, store *history.Store) Model {
	InitStyles(cfg.Palette())

	ti := textarea.New()
	ti.Placeholder = "Enter SQL (Ctrl+D to execute, Esc for visual mode)..."
	ti.Focus()
	ti.CharLimit = 5000
	ti.SetHeight(editorHeight - 2)
	ti.SetWidth(80)
	ti.ShowLineNumbers = false
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ti.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(TextFaint())
	ti.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(TextFaint())

	cache := completion.NewCache(driverFetcher(driver))
	engine := completion.NewEngine(cache)

	results := grid.New(cfg.Overscan)
	results.SetStyles(GridStyles())

	return Model{
		mode:          InsertMode,
		focus:         FocusEditor,
		connName:      connName,
		driver:        driver,
		historyStore:  store,
		config:        cfg,
		editor:        ti,
		results:       results,
		suggest:       suggestions.New().SetStyles(SuggestStyles()),
		engine:        engine,
		cache:         cache,
		schemaBrowser: schemabrowser.New(cache.Columns).SetStyles(browserStyles()),
	}
}

// driverFetcher adapts the driver's column lookup to the completion
// cache's fetcher shape.
func driverFetcher(driver db.Driver) completion.Fetcher {
	return func(ctx context.Context, table string) ([]db.ColumnInfo, error) {
		return driver.Columns(ctx, table)
	}
}

func browserStyles() schemabrowser.Styles {
	return schemabrowser.Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HighlightColor()).
			Padding(1, 2),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).MarginBottom(1),
		Item:         lipgloss.NewStyle().Foreground(TextPrimary()),
		ItemActive:   lipgloss.NewStyle().Foreground(SuccessColor()).Bold(true),
		TableBase:    lipgloss.NewStyle().Foreground(TextPrimary()),
		TableHeader:  lipgloss.NewStyle().Foreground(AccentColor()).Bold(true),
		Spinner:      lipgloss.NewStyle().Foreground(HighlightColor()),
		ErrorMessage: lipgloss.NewStyle().Foreground(ErrorColor()),
		Hint:         lipgloss.NewStyle().Foreground(TextFaint()),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.loadTablesCmd(),
	)
}
