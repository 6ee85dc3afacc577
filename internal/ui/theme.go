package ui

import (
	"github.com/charmbracelet/lipgloss"

	"trackr/settings"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	IDPrefix  lipgloss.Style
	Pinned    lipgloss.Style
	Completed lipgloss.Style
	Muted     lipgloss.Style
	Overdue   lipgloss.Style
}

// StylesFor builds the style set for a theme.
func StylesFor(colors settings.ThemeColors) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Text)),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Primary)),
		IDPrefix:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Accent)),
		Pinned:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PrimaryLight)),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(colors.TextSecondary)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.TextSecondary)),
		Overdue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e05252")),
	}
}
