// internal/ui/handle_visual_mode.go
// Key handling for visual (navigation) mode.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"
)

func (m Model) handleVisualMode(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "i":
		m.mode = InsertMode
		m.focus = FocusEditor
		m.results.Blur()
		cmds = append(cmds, m.editor.Focus(), textarea.Blink)
		return m, tea.Batch(cmds...)

	case msg.String() == "q":
		return m.quit()

	case matchKey(msg, m.config.Keys.FocusNext):
		if m.focus == FocusEditor {
			m.focus = FocusResults
			m.results.Focus()
		} else {
			m.focus = FocusEditor
			m.results.Blur()
		}
		return m, nil

	case matchKey(msg, m.config.Keys.Help):
		m.showHelp = true
		return m, nil

	case matchKey(msg, m.config.Keys.History):
		m.showHistory = true
		m.historyIdx = 0
		cmds = append(cmds, m.loadHistoryCmd())
		return m, tea.Batch(cmds...)

	case matchKey(msg, m.config.Keys.Schema):
		m.schemaBrowser = m.schemaBrowser.SetTables(m.tables).Toggle()
		if m.schemaBrowser.Visible() {
			// Refresh the table list while the browser is open.
			cmds = append(cmds, m.loadTablesCmd())
		}
		return m, tea.Batch(cmds...)

	case matchKey(msg, m.config.Keys.Execute):
		query := m.editor.Value()
		if query != "" {
			m.errorMsg = ""
			cmds = append(cmds, m.results.SetLoading(true), m.executeQueryCmd(query))
		}
		return m, tea.Batch(cmds...)
	}

	// Remaining keys drive the results grid when it has focus.
	if m.focus == FocusResults {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
