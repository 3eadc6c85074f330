// Package style holds the terminal styles of the console reader.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Theme applies the styles when enabled and leaves text untouched otherwise.
type Theme struct {
	Enabled bool
}

// New returns a theme.
func New(enabled bool) Theme {
	return Theme{Enabled: enabled}
}

func (t Theme) render(s lipgloss.Style, text string) string {
	if !t.Enabled {
		return text
	}
	return s.Render(text)
}

// Title styles a banner or heading.
func (t Theme) Title(text string) string {
	return t.render(TitleStyle, text)
}

// Error styles an error message.
func (t Theme) Error(text string) string {
	return t.render(ErrorStyle, text)
}

// Muted styles secondary information.
func (t Theme) Muted(text string) string {
	return t.render(MutedStyle, text)
}
