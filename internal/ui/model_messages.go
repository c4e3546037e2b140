// internal/ui/model_messages.go
// Handlers for async message results.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleQueryResult(msg QueryResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorMsg = msg.Err.Error()
		m.results.SetError(msg.Err.Error())
		return m, nil
	}
	if msg.Result == nil {
		m.results.SetLoading(false)
		return m, nil
	}

	m.errorMsg = ""
	m.results.SetResult(msg.Result)
	return m, nil
}

func (m Model) handleTablesLoaded(msg TablesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorMsg = "schema: " + msg.Err.Error()
		return m, nil
	}

	m.tables = msg.Tables
	m.schemaBrowser = m.schemaBrowser.SetTables(msg.Tables)
	// Re-registering replaces and disposes the previous provider, so an
	// outdated table list can never answer a completion request.
	m.provider = m.engine.Register(msg.Tables)
	return m, nil
}

func (m Model) handleDebounce(msg DebounceMsg) (tea.Model, tea.Cmd) {
	// A newer keystroke superseded this timer.
	if msg.ID != m.debounceID || m.mode != InsertMode {
		return m, nil
	}

	m.completionSeq++
	return m, m.completeCmd(m.completionSeq, m.editor.Value(), m.cursorOffset())
}

func (m Model) handleCompletion(msg CompletionMsg) (tea.Model, tea.Cmd) {
	// Only the most recently requested completion may be shown.
	if msg.Seq != m.completionSeq {
		return m, nil
	}

	m.suggest = m.suggest.SetLoading(false).SetItems(msg.Items)
	if len(msg.Items) > 0 && m.mode == InsertMode {
		m.suggest = m.suggest.Show()
	} else {
		m.suggest = m.suggest.Hide()
	}
	return m, nil
}

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errorMsg = "history: " + msg.Err.Error()
		m.showHistory = false
		return m, nil
	}
	m.historyEntries = msg.Entries
	return m, nil
}
