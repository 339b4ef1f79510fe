package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pixelfolio.dev/internal/models"
)

// Styles holds the lipgloss styles derived from the world theme
type Styles struct {
	Theme models.Theme

	Header   lipgloss.Style
	Title    lipgloss.Style
	Map      lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Dialog   lipgloss.Style
	Button   lipgloss.Style
	Muted    lipgloss.Style
	Unlocked lipgloss.Style
	Status   lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(theme models.Theme) Styles {
	ink := lipgloss.Color(theme.Ink)
	pine := lipgloss.Color(theme.Pine)
	lime := lipgloss.Color(theme.Lime)
	mist := lipgloss.Color(theme.Mist)

	return Styles{
		Theme: theme,
		Header: lipgloss.NewStyle().
			Foreground(mist).
			Background(ink).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(pine).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(mist).
			Bold(true),
		Map: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(pine),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lime).
			Padding(0, 1).
			Width(30),
		Heading: lipgloss.NewStyle().
			Foreground(mist).
			Bold(true).
			MarginBottom(1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lime).
			Foreground(mist).
			Padding(1, 2).
			Width(56),
		Button: lipgloss.NewStyle().
			Foreground(mist).
			Background(pine).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(pine),
		Unlocked: lipgloss.NewStyle().
			Foreground(lime),
		Status: lipgloss.NewStyle().
			Foreground(lime).
			Bold(true),
	}
}

// Cell renders one map cell, two columns wide to keep the grid square-ish
func Cell(glyph, fg, bg string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render(glyph + " ")
}
