// Package theme provides the color palette and styles for CLI output.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for CLI output.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss colors are created from hex strings
	Secondary string
	Tertiary  string

	// Foreground hierarchy (dim→bright)
	FgMuted string
	FgBase  string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// Styles contains the pre-built lipgloss styles used by CLI commands.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
	}
}
