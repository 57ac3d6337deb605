package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/splitdiff/internal/diff"
)

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Red    lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Blue   lipgloss.Color
	Mauve  lipgloss.Color

	// Diff backgrounds behind highlighted characters
	AddedBg   lipgloss.Color
	RemovedBg lipgloss.Color

	// Semantic
	Border lipgloss.Color

	// Chroma style used to colour matched lines
	SyntaxStyle string
}

// KindColor returns the foreground color for a row classification.
func (t Theme) KindColor(k diff.Kind) lipgloss.Color {
	switch k {
	case diff.Extra:
		return t.Green
	case diff.Missing:
		return t.Muted
	case diff.Different:
		return t.Yellow
	default:
		return t.Text
	}
}

// SideColor returns the color of a row that exists on one side only:
// removed on the left, added on the right.
func (t Theme) SideColor(left bool) lipgloss.Color {
	if left {
		return t.Red
	}
	return t.Green
}
