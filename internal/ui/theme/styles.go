package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Text styles
	Title  lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Key    lipgloss.Style

	// Rows
	Matched   lipgloss.Style
	Missing   lipgloss.Style
	Removed   lipgloss.Style // Extra on the left
	Added     lipgloss.Style // Extra on the right
	Different lipgloss.Style

	// Segments inside a different row
	DeletedToken  lipgloss.Style
	InsertedToken lipgloss.Style
	DeletedChar   lipgloss.Style
	InsertedChar  lipgloss.Style

	// Chrome
	Gutter     lipgloss.Style
	LineNumber lipgloss.Style
	Separator  lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal: lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Bold:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(t.Red),
		Hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Key:    lipgloss.NewStyle().Foreground(t.Mauve),

		Matched:   lipgloss.NewStyle().Foreground(t.Text),
		Missing:   lipgloss.NewStyle().Foreground(t.Muted),
		Removed:   lipgloss.NewStyle().Foreground(t.Red),
		Added:     lipgloss.NewStyle().Foreground(t.Green),
		Different: lipgloss.NewStyle().Foreground(t.Yellow),

		DeletedToken:  lipgloss.NewStyle().Foreground(t.Red),
		InsertedToken: lipgloss.NewStyle().Foreground(t.Green),
		DeletedChar: lipgloss.NewStyle().
			Foreground(t.Red).
			Background(t.RemovedBg).
			Bold(true),
		InsertedChar: lipgloss.NewStyle().
			Foreground(t.Green).
			Background(t.AddedBg).
			Bold(true),

		Gutter:     lipgloss.NewStyle().Foreground(t.Mauve).Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(t.Muted),
		Separator:  lipgloss.NewStyle().Foreground(t.Border),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
	}
}
