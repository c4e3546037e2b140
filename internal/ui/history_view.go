// internal/ui/history_view.go
// Query history popup: browse past statements and recall one into the
// editor.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/sqlpane/sqlpane/internal/ui/highlight"
)

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.showHistory = false
	case "j", "down":
		if m.historyIdx < len(m.historyEntries)-1 {
			m.historyIdx++
		}
	case "k", "up":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case "enter":
		if m.historyIdx < len(m.historyEntries) {
			m.editor.SetValue(m.historyEntries[m.historyIdx].Query)
			m.showHistory = false
			m.mode = InsertMode
			m.focus = FocusEditor
			return m, m.editor.Focus()
		}
	case "d":
		if m.historyIdx < len(m.historyEntries) {
			entry := m.historyEntries[m.historyIdx]
			if m.historyStore != nil {
				m.historyStore.Delete(entry.ID)
			}
			m.historyEntries = append(m.historyEntries[:m.historyIdx], m.historyEntries[m.historyIdx+1:]...)
			if m.historyIdx >= len(m.historyEntries) && m.historyIdx > 0 {
				m.historyIdx--
			}
		}
	}
	return m, nil
}

func (m Model) renderHistoryPopup(main string) string {
	var content strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("Query History")
	content.WriteString(title)
	content.WriteString("\n\n")

	if len(m.historyEntries) == 0 {
		content.WriteString(MetaStyle.Render("No queries yet"))
	}

	const maxShow = 12
	start := 0
	if m.historyIdx > maxShow/2 {
		start = m.historyIdx - maxShow/2
	}
	end := start + maxShow
	if end > len(m.historyEntries) {
		end = len(m.historyEntries)
		if end-maxShow > 0 {
			start = end - maxShow
		} else {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		e := m.historyEntries[i]

		status := SuccessStyle.Render("ok")
		if e.Status == "error" {
			status = ErrorStyle.Render("err")
		}
		meta := MetaStyle.Render(fmt.Sprintf(" %s  %dms  %d rows",
			e.ExecutedAt.Format("15:04:05"), e.DurationMs, e.RowCount))

		query := e.QueryPreview(60)
		if i == m.historyIdx {
			content.WriteString("> " + highlight.SQL(query, m.config.HighlightStyle))
		} else {
			content.WriteString("  " + MetaStyle.Render(query))
		}
		content.WriteString("  " + status + meta + "\n")
	}

	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Faint(true).Render("enter: recall  d: delete  esc: close"))

	popupBox := PopupStyle.
		Width(m.width * 3 / 4).
		MaxHeight(m.height - 4).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
