// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sqlpane/sqlpane/internal/config"
	"github.com/sqlpane/sqlpane/internal/grid"
	"github.com/sqlpane/sqlpane/internal/ui/components/suggestions"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color

	// Styles
	StatusBarStyle     lipgloss.Style
	ModeStyle          lipgloss.Style
	InsertModeStyle    lipgloss.Style
	ConnectionStyle    lipgloss.Style
	MetaStyle          lipgloss.Style
	EditorBoxStyle     lipgloss.Style
	EditorBoxBlurStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	PopupStyle         lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func WarningColor() lipgloss.Color   { return warningColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func BgSecondary() lipgloss.Color    { return bgSecondary }
func CardBg() lipgloss.Color         { return cardBg }

// InitStyles initializes the global styles from the active palette
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(successColor).
		Foreground(bgPrimary)

	InsertModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(accentColor).
		Foreground(bgPrimary)

	ConnectionStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	EditorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)

	EditorBoxBlurStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(1, 2)
}

// GridStyles maps the palette onto the results grid.
func GridStyles() grid.Styles {
	return grid.Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		Cell:    lipgloss.NewStyle().Foreground(textPrimary),
		Null:    lipgloss.NewStyle().Foreground(textFaint).Italic(true),
		Number:  lipgloss.NewStyle().Foreground(textSecondary),
		Bool:    lipgloss.NewStyle().Foreground(warningColor),
		Border:  lipgloss.NewStyle().Foreground(textFaint),
		Status:  lipgloss.NewStyle().Foreground(textFaint),
		Error:   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(textFaint),
		Spinner: lipgloss.NewStyle().Foreground(highlightColor),
	}
}

// SuggestStyles maps the palette onto the completion dropdown.
func SuggestStyles() suggestions.Styles {
	return suggestions.Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(textFaint).
			Padding(0, 1),
		Item:     lipgloss.NewStyle().Foreground(textPrimary),
		Selected: lipgloss.NewStyle().Foreground(bgPrimary).Background(highlightColor).Bold(true),
		Detail:   lipgloss.NewStyle().Foreground(textFaint).Italic(true),
		Kind:     lipgloss.NewStyle().Foreground(textSecondary),
		Loading:  lipgloss.NewStyle().Foreground(textFaint).Italic(true),
	}
}
