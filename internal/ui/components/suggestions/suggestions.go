// Package suggestions provides the autocomplete dropdown component.
package suggestions

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sqlpane/sqlpane/internal/completion"
)

// Styles for the suggestions dropdown
type Styles struct {
	Box      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Kind     lipgloss.Style
	Loading  lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#282A36")).
			Background(lipgloss.Color("#8BE9FD")),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
		Kind: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")),
		Loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true),
	}
}

// Model represents the suggestions dropdown state
type Model struct {
	items    []completion.Item
	selected int
	visible  bool
	loading  bool
	maxShow  int
	styles   Styles
}

// New creates a new suggestions model
func New() Model {
	return Model{
		maxShow: 8,
		styles:  DefaultStyles(),
	}
}

// SetItems sets the suggestion items
func (m Model) SetItems(items []completion.Item) Model {
	m.items = items
	if m.selected >= len(items) || m.selected < 0 {
		m.selected = 0
	}
	return m
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetMaxShow sets maximum visible items
func (m Model) SetMaxShow(n int) Model {
	m.maxShow = n
	return m
}

// Show makes the dropdown visible
func (m Model) Show() Model {
	m.visible = true
	return m
}

// Hide hides the dropdown
func (m Model) Hide() Model {
	m.visible = false
	m.selected = 0
	return m
}

// SetLoading sets loading state
func (m Model) SetLoading(loading bool) Model {
	m.loading = loading
	return m
}

// Visible returns visibility state
func (m Model) Visible() bool { return m.visible }

// Selected returns the selected index
func (m Model) Selected() int { return m.selected }

// SelectedItem returns the selected item, if any
func (m Model) SelectedItem() (completion.Item, bool) {
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected], true
	}
	return completion.Item{}, false
}

// Len returns number of items
func (m Model) Len() int { return len(m.items) }

// MoveUp moves selection up
func (m Model) MoveUp() Model {
	if m.selected > 0 {
		m.selected--
	}
	return m
}

// MoveDown moves selection down
func (m Model) MoveDown() Model {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
	return m
}

func kindMarker(k completion.Kind) string {
	switch k {
	case completion.Field:
		return "[C]"
	case completion.Table:
		return "[T]"
	default:
		return "[K]"
	}
}

// View renders the suggestions dropdown
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	if m.loading {
		return m.styles.Box.Render(m.styles.Loading.Render("Loading..."))
	}

	if len(m.items) == 0 {
		return ""
	}

	// Keep the selection roughly centered in the visible window.
	start := 0
	if m.selected > m.maxShow/2 {
		start = m.selected - m.maxShow/2
	}
	end := start + m.maxShow
	if end > len(m.items) {
		end = len(m.items)
		if end-m.maxShow >= 0 {
			start = end - m.maxShow
		} else {
			start = 0
		}
	}

	labelWidth := 0
	for i := start; i < end; i++ {
		if w := runewidth.StringWidth(m.items[i].Label); w > labelWidth {
			labelWidth = w
		}
	}

	var views []string
	for i := start; i < end; i++ {
		item := m.items[i]
		label := item.Label + strings.Repeat(" ", labelWidth-runewidth.StringWidth(item.Label))

		if i == m.selected {
			line := "> " + kindMarker(item.Kind) + " " + label
			if item.Detail != "" {
				line += "  " + item.Detail
			}
			views = append(views, m.styles.Selected.Render(line))
			continue
		}

		line := "  " + m.styles.Kind.Render(kindMarker(item.Kind)) + " " + m.styles.Item.Render(label)
		if item.Detail != "" {
			line += "  " + m.styles.Detail.Render(item.Detail)
		}
		views = append(views, line)
	}

	return m.styles.Box.Render(strings.Join(views, "\n"))
}
