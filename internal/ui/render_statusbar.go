// internal/ui/render_statusbar.go
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m Model) renderStatusBar() string {
	modeStyle := ModeStyle
	if m.mode == InsertMode {
		modeStyle = InsertModeStyle
	}
	mode := modeStyle.Render(string(m.mode))

	conn := ConnectionStyle.Render(fmt.Sprintf("%s (%s)", m.connName, m.driver.Type()))

	var message string
	switch {
	case m.errorMsg != "":
		message = ErrorStyle.Render(" " + m.errorMsg)
	case m.statusMsg != "":
		message = SuccessStyle.Render(" " + m.statusMsg)
	default:
		message = MetaStyle.Render(fmt.Sprintf(" %d tables", len(m.tables)))
	}

	hint := MetaStyle.Render("?: help  ctrl+r: history  ctrl+s: schema ")

	left := mode + conn + message
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 1 {
		return StatusBarStyle.Render(runewidth.Truncate(left, m.width, ""))
	}

	return StatusBarStyle.Width(m.width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + hint,
	)
}
