// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Hot marks entropy above the high threshold.
	Hot lipgloss.Color

	// Warm marks entropy inside the hysteresis gap.
	Warm lipgloss.Color

	// Cool marks entropy below the low threshold.
	Cool lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Hot:        lipgloss.Color("#F38BA8"), // Red
		Warm:       lipgloss.Color("#F9E2AF"), // Yellow
		Cool:       lipgloss.Color("#A6E3A1"), // Green
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the header line.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Hot style for bars above the high threshold.
	Hot lipgloss.Style

	// Warm style for bars inside the hysteresis gap.
	Warm lipgloss.Style

	// Cool style for bars below the low threshold.
	Cool lipgloss.Style

	// StatusBar style for the bottom hint line.
	StatusBar lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// NewStyles builds styles from a theme.
func NewStyles(theme *Theme) *Styles {
	return &Styles{
		theme:     theme,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Normal:    lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:     lipgloss.NewStyle().Foreground(theme.Muted),
		Hot:       lipgloss.NewStyle().Foreground(theme.Hot),
		Warm:      lipgloss.NewStyle().Foreground(theme.Warm),
		Cool:      lipgloss.NewStyle().Foreground(theme.Cool),
		StatusBar: lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
