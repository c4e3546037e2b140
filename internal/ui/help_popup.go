package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) renderHelpPopup(main string) string {
	var content strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("Keyboard Shortcuts")
	content.WriteString(title)
	content.WriteString("\n\n")

	keys := m.config.Keys

	section := func(name string, bindings []struct{ key, desc string }) {
		header := lipgloss.NewStyle().Bold(true).Foreground(HighlightColor()).Render(name)
		content.WriteString(header + "\n")
		for _, b := range bindings {
			keyStyle := lipgloss.NewStyle().Foreground(SuccessColor()).Width(15)
			descStyle := lipgloss.NewStyle().Foreground(TextSecondary())
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		content.WriteString("\n")
	}

	section("Editor", []struct{ key, desc string }{
		{strings.Join(keys.Execute, "/"), "Execute query"},
		{strings.Join(keys.Autocomplete, "/"), "Autocomplete"},
		{"tab/enter", "Accept suggestion"},
		{"esc", "Visual mode / dismiss"},
	})

	section("Results", []struct{ key, desc string }{
		{strings.Join(keys.FocusNext, "/"), "Switch pane focus"},
		{"j/k", "Scroll rows"},
		{"h/l", "Scroll columns"},
		{"g/G", "First / last row"},
		{"pgup/pgdown", "Page up / down"},
		{"drag header edge", "Resize column"},
	})

	section("Panels", []struct{ key, desc string }{
		{strings.Join(keys.Schema, "/"), "Schema browser"},
		{strings.Join(keys.History, "/"), "Query history"},
		{strings.Join(keys.Help, "/"), "Show this help"},
		{"q", "Quit (visual mode)"},
	})

	content.WriteString(lipgloss.NewStyle().Faint(true).Render("Press Esc or q to close"))

	popupBox := PopupStyle.
		Width(50).
		MaxHeight(m.height - 4).
		Render(content.String())

	return overlay.Composite(popupBox, main, overlay.Center, overlay.Center, 0, 0)
}
