// Package schemabrowser provides a popup for browsing tables and columns.
package schemabrowser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/sqlpane/sqlpane/internal/db"
)

type State int

const (
	StateTables State = iota
	StateColumns
)

// ColumnsLoadedMsg is sent when a table's columns arrive
type ColumnsLoadedMsg struct {
	Table   string
	Columns []db.ColumnInfo
	Err     error
}

// TableSelectedMsg is sent when a table name should be inserted into the
// editor.
type TableSelectedMsg struct {
	TableName string
}

// Fetcher resolves a table's columns. The browser shares the completion
// layer's cached fetcher so both surfaces hit the database once.
type Fetcher func(ctx context.Context, table string) ([]db.ColumnInfo, error)

// Styles for the browser
type Styles struct {
	Container    lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemActive   lipgloss.Style
	TableBase    lipgloss.Style
	TableHeader  lipgloss.Style
	Spinner      lipgloss.Style
	ErrorMessage lipgloss.Style
	Hint         lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	textPrimary := lipgloss.Color("#D8DEE9")
	textFaint := lipgloss.Color("#4C566A")
	accentColor := lipgloss.Color("#88C0D0")
	successColor := lipgloss.Color("#A3BE8C")
	highlightColor := lipgloss.Color("#8FBCBB")
	errorColor := lipgloss.Color("#BF616A")

	return Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlightColor).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1),
		Item: lipgloss.NewStyle().
			Foreground(textPrimary),
		ItemActive: lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true),
		TableBase: lipgloss.NewStyle().
			Foreground(textPrimary),
		TableHeader: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		Spinner: lipgloss.NewStyle().
			Foreground(highlightColor),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(errorColor),
		Hint: lipgloss.NewStyle().
			Foreground(textFaint),
	}
}

// Model represents the schema browser state
type Model struct {
	visible       bool
	state         State
	tables        []string
	selectedIdx   int
	selectedTable string
	columnsTable  bbtable.Model
	loadErr       string
	loading       bool
	spinner       spinner.Model
	fetch         Fetcher
	width         int
	height        int
	styles        Styles
}

// New creates a schema browser backed by the given column fetcher.
func New(fetch Fetcher) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		state:   StateTables,
		fetch:   fetch,
		spinner: s,
		styles:  DefaultStyles(),
	}
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	m.spinner.Style = s.Spinner
	return m
}

// SetSize sets the available screen size
func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h
	return m
}

// SetTables updates the table list
func (m Model) SetTables(tables []string) Model {
	m.tables = tables
	if m.selectedIdx >= len(tables) {
		m.selectedIdx = 0
	}
	return m
}

// Toggle toggles visibility
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m.state = StateTables
		m.selectedIdx = 0
		m.loadErr = ""
	}
	return m
}

// Visible returns visibility state
func (m Model) Visible() bool { return m.visible }

func (m Model) loadColumnsCmd(table string) tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cols, err := fetch(ctx, table)
		return ColumnsLoadedMsg{Table: table, Columns: cols, Err: err}
	}
}

// Update handles keys and column load results while the browser is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case ColumnsLoadedMsg:
		if msg.Table != m.selectedTable {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.state = StateColumns
		m.columnsTable = buildColumnsTable(msg.Columns, m.styles)
		return m, nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			if m.state == StateColumns {
				m.state = StateTables
				return m, nil
			}
			m.visible = false
			return m, nil
		case "j", "down":
			if m.state == StateTables && m.selectedIdx < len(m.tables)-1 {
				m.selectedIdx++
			}
		case "k", "up":
			if m.state == StateTables && m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "enter":
			if m.state == StateTables && m.selectedIdx < len(m.tables) {
				m.selectedTable = m.tables[m.selectedIdx]
				m.loading = true
				m.loadErr = ""
				return m, tea.Batch(m.spinner.Tick, m.loadColumnsCmd(m.selectedTable))
			}
		case "i":
			if m.state == StateTables && m.selectedIdx < len(m.tables) {
				name := m.tables[m.selectedIdx]
				m.visible = false
				return m, func() tea.Msg { return TableSelectedMsg{TableName: name} }
			}
		}

		if m.state == StateColumns {
			var cmd tea.Cmd
			m.columnsTable, cmd = m.columnsTable.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func buildColumnsTable(cols []db.ColumnInfo, styles Styles) bbtable.Model {
	nameWidth := len("Column")
	typeWidth := len("Type")
	for _, c := range cols {
		if len(c.Name) > nameWidth {
			nameWidth = len(c.Name)
		}
		if len(c.DataType) > typeWidth {
			typeWidth = len(c.DataType)
		}
	}

	tableCols := []bbtable.Column{
		bbtable.NewColumn("name", "Column", nameWidth+2),
		bbtable.NewColumn("type", "Type", typeWidth+2),
	}

	rows := make([]bbtable.Row, 0, len(cols))
	for _, c := range cols {
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			"name": c.Name,
			"type": c.DataType,
		}))
	}

	return bbtable.New(tableCols).
		WithRows(rows).
		WithBaseStyle(styles.TableBase).
		HeaderStyle(styles.TableHeader).
		WithPageSize(15).
		Focused(true)
}

// View renders the browser popup content.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var content strings.Builder

	switch m.state {
	case StateColumns:
		content.WriteString(m.styles.Title.Render(m.selectedTable))
		content.WriteString("\n")
		content.WriteString(m.columnsTable.View())
		content.WriteString("\n")
		content.WriteString(m.styles.Hint.Render("esc: back"))

	default:
		content.WriteString(m.styles.Title.Render(fmt.Sprintf("Tables (%d)", len(m.tables))))
		content.WriteString("\n")

		if m.loading {
			content.WriteString(m.spinner.View() + " loading columns...\n")
		}
		if m.loadErr != "" {
			content.WriteString(m.styles.ErrorMessage.Render(m.loadErr) + "\n")
		}

		start, end := listWindow(m.selectedIdx, len(m.tables), 15)
		for i := start; i < end; i++ {
			if i == m.selectedIdx {
				content.WriteString(m.styles.ItemActive.Render("> " + m.tables[i]))
			} else {
				content.WriteString(m.styles.Item.Render("  " + m.tables[i]))
			}
			content.WriteString("\n")
		}
		content.WriteString(m.styles.Hint.Render("enter: columns  i: insert  esc: close"))
	}

	return m.styles.Container.Render(content.String())
}

func listWindow(selected, total, maxShow int) (int, int) {
	start := 0
	if selected > maxShow/2 {
		start = selected - maxShow/2
	}
	end := start + maxShow
	if end > total {
		end = total
		if end-maxShow > 0 {
			start = end - maxShow
		} else {
			start = 0
		}
	}
	return start, end
}
