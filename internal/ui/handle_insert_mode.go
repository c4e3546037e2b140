// internal/ui/handle_insert_mode.go
// Key handling for insert (typing) mode and completion integration.
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleInsertMode processes keys while in insert mode.
// cmds is the accumulated command slice from the caller; it is returned
// appended-to so the caller can batch everything.
func (m Model) handleInsertMode(msg tea.KeyMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Dropdown navigation / apply
	if m.suggest.Visible() {
		switch msg.String() {
		case "up", "ctrl+p":
			m.suggest = m.suggest.MoveUp()
			return m, tea.Batch(cmds...)
		case "down", "ctrl+n":
			m.suggest = m.suggest.MoveDown()
			return m, tea.Batch(cmds...)
		case "enter", "tab":
			m = m.applySuggestion()
			m.suggest = m.suggest.Hide()
			return m, tea.Batch(cmds...)
		case "esc":
			m.suggest = m.suggest.Hide()
			return m, tea.Batch(cmds...)
		}
	}

	// Ctrl+Space: request completion immediately, skipping the debounce
	if matchKey(msg, m.config.Keys.Autocomplete) {
		m.completionSeq++
		m.suggest = m.suggest.SetLoading(true).Show()
		cmds = append(cmds, m.completeCmd(m.completionSeq, m.editor.Value(), m.cursorOffset()))
		return m, tea.Batch(cmds...)
	}

	// Execute
	if matchKey(msg, m.config.Keys.Execute) {
		query := strings.TrimSpace(m.editor.Value())
		if query != "" {
			m.suggest = m.suggest.Hide()
			// Invalidate any in-flight completion request.
			m.completionSeq++
			m.errorMsg = ""
			m.statusMsg = ""
			cmds = append(cmds, m.results.SetLoading(true), m.executeQueryCmd(query))
		}
		return m, tea.Batch(cmds...)
	}

	// Esc: back to visual mode
	if msg.String() == "esc" {
		m.mode = VisualMode
		m.editor.Blur()
		m.suggest = m.suggest.Hide()
		return m, tea.Batch(cmds...)
	}

	// Pass key to the textarea editor
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	// Post-keystroke completion scheduling
	val := m.editor.Value()
	if strings.TrimSpace(val) == "" {
		m.suggest = m.suggest.Hide()
		m.debounceID++
		return m, tea.Batch(cmds...)
	}

	m.debounceID++
	cmds = append(cmds, debounceCmd(m.debounceID))

	return m, tea.Batch(cmds...)
}

// cursorOffset converts the textarea's row position into an offset into
// the full text, placing the cursor at the end of the current line.
func (m Model) cursorOffset() int {
	row := m.editor.Line()
	lines := strings.Split(m.editor.Value(), "\n")
	if row >= len(lines) {
		return len(m.editor.Value())
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	return offset + len(lines[row])
}

// applySuggestion replaces the item's range with its insert text.
func (m Model) applySuggestion() Model {
	item, ok := m.suggest.SelectedItem()
	if !ok {
		return m
	}

	text := item.InsertText
	if text == "" {
		text = item.Label
	}

	val := m.editor.Value()
	start, end := item.Start, item.End
	if start < 0 || end > len(val) || start > end {
		return m
	}

	newVal := val[:start] + text + val[end:]
	m.editor.SetValue(newVal)

	// Put the cursor right after the inserted text.
	target := start + len(text)
	row := strings.Count(newVal[:target], "\n")
	col := target
	if idx := strings.LastIndex(newVal[:target], "\n"); idx >= 0 {
		col = target - idx - 1
	}
	for m.editor.Line() > row {
		m.editor.CursorUp()
	}
	m.editor.SetCursor(col)
	return m
}

// matchKey reports whether the key matches any of the configured bindings.
func matchKey(msg tea.KeyMsg, bindings []string) bool {
	s := msg.String()
	for _, b := range bindings {
		if s == b {
			return true
		}
	}
	return false
}
