package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/progress"
)

// Styles is the palette for one theme.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Danger      lipgloss.Style
	Warning     lipgloss.Style
	Status      lipgloss.Style
	Label       lipgloss.Style
	Doc         lipgloss.Style
	Progress    progress.Palette
}

func NewStyles(theme models.Theme) Styles {
	accent, tabBg, muted, text := lipgloss.Color("205"), lipgloss.Color("236"), lipgloss.Color("240"), lipgloss.Color("252")
	if theme == models.ThemeLight {
		accent, tabBg, muted, text = lipgloss.Color("161"), lipgloss.Color("254"), lipgloss.Color("245"), lipgloss.Color("235")
	}

	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Background(tabBg).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			Width(24),
		Doc: lipgloss.NewStyle().Padding(1, 2),
		Progress: progress.Palette{
			Header: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Empty:  lipgloss.NewStyle().Foreground(muted),
			Muted:  lipgloss.NewStyle().Foreground(muted),
		},
	}
}
