// Package ui provides the terminal user interface for the mouse jiggler.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Warning:   lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#FFD75F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title          lipgloss.Style
	ActiveStatus   lipgloss.Style
	InactiveStatus lipgloss.Style
	DisabledItem   lipgloss.Style
	SelectedItem   lipgloss.Style
	Panel          lipgloss.Style
	Label          lipgloss.Style
	Help           lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Interval       lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		ActiveStatus: base.
			Bold(true).
			Foreground(defaultColors.Special),

		InactiveStatus: base.
			Foreground(defaultColors.Subtle),

		DisabledItem: base.
			Foreground(defaultColors.Subtle),

		SelectedItem: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Width(20),

		Help: base.
			Foreground(defaultColors.Subtle),

		Warning: base.
			Foreground(defaultColors.Warning),

		Error: base.
			Foreground(defaultColors.Error),

		Interval: lipgloss.NewStyle().
			Foreground(defaultColors.Highlight).
			Bold(true),
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
