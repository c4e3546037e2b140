// internal/ui/app.go
// Update dispatch and top-level view composition.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/sqlpane/sqlpane/internal/ui/components/schemabrowser"
)

// Update routes messages to the focused surface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width - 2)

		gridHeight := msg.Height - editorHeight - 1
		if gridHeight < 4 {
			gridHeight = 4
		}
		m.results.SetSize(msg.Width, gridHeight)
		m.results.SetOrigin(0, editorHeight)
		m.schemaBrowser = m.schemaBrowser.SetSize(msg.Width, msg.Height)
		return m, nil

	case QueryResultMsg:
		return m.handleQueryResult(msg)
	case TablesLoadedMsg:
		return m.handleTablesLoaded(msg)
	case CompletionMsg:
		return m.handleCompletion(msg)
	case DebounceMsg:
		return m.handleDebounce(msg)
	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case schemabrowser.ColumnsLoadedMsg:
		var cmd tea.Cmd
		m.schemaBrowser, cmd = m.schemaBrowser.Update(msg)
		return m, cmd

	case schemabrowser.TableSelectedMsg:
		m.editor.InsertString(msg.TableName)
		m.mode = InsertMode
		m.focus = FocusEditor
		return m, m.editor.Focus()

	case spinner.TickMsg:
		var gridCmd, browserCmd tea.Cmd
		m.results, gridCmd = m.results.Update(msg)
		m.schemaBrowser, browserCmd = m.schemaBrowser.Update(msg)
		return m, tea.Batch(gridCmd, browserCmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		if m.showHelp {
			switch msg.String() {
			case "esc", "q", "?":
				m.showHelp = false
			}
			return m, nil
		}

		if m.showHistory {
			return m.handleHistoryKeys(msg)
		}

		if m.schemaBrowser.Visible() {
			var cmd tea.Cmd
			m.schemaBrowser, cmd = m.schemaBrowser.Update(msg)
			return m, cmd
		}

		if m.mode == InsertMode {
			return m.handleInsertMode(msg, cmds)
		}
		return m.handleVisualMode(msg, cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.provider != nil {
		m.provider.Close()
	}
	return m, tea.Quit
}

// View composes the editor pane, results grid, and status bar, with any
// active popup layered on top.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	boxStyle := EditorBoxBlurStyle
	if m.mode == InsertMode || m.focus == FocusEditor {
		boxStyle = EditorBoxStyle
	}
	editorBox := boxStyle.Width(m.width - 2).Render(m.editor.View())

	main := lipgloss.JoinVertical(
		lipgloss.Left,
		editorBox,
		m.results.View(),
		m.renderStatusBar(),
	)

	if m.mode == InsertMode && m.suggest.Visible() {
		if dropdown := m.suggest.View(); dropdown != "" {
			main = overlay.Composite(dropdown, main, overlay.Left, overlay.Top, 2, editorHeight)
		}
	}

	if m.schemaBrowser.Visible() {
		main = overlay.Composite(m.schemaBrowser.View(), main, overlay.Center, overlay.Center, 0, 0)
	}

	if m.showHistory {
		main = m.renderHistoryPopup(main)
	}

	if m.showHelp {
		main = m.renderHelpPopup(main)
	}

	return main
}
