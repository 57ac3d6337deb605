package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Red:    lipgloss.Color("#f38ba8"),
	Green:  lipgloss.Color("#a6e3a1"),
	Yellow: lipgloss.Color("#f9e2af"),
	Blue:   lipgloss.Color("#89b4fa"),
	Mauve:  lipgloss.Color("#cba6f7"),

	AddedBg:   lipgloss.Color("#2f4a35"),
	RemovedBg: lipgloss.Color("#5a2d3a"),

	Border:      lipgloss.Color("#585b70"),
	SyntaxStyle: "catppuccin-mocha",
}

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#9ca0b0"),

	Red:    lipgloss.Color("#d20f39"),
	Green:  lipgloss.Color("#40a02b"),
	Yellow: lipgloss.Color("#df8e1d"),
	Blue:   lipgloss.Color("#1e66f5"),
	Mauve:  lipgloss.Color("#8839ef"),

	AddedBg:   lipgloss.Color("#c9e7c1"),
	RemovedBg: lipgloss.Color("#f2c4cd"),

	Border:      lipgloss.Color("#9ca0b0"),
	SyntaxStyle: "catppuccin-latte",
}

var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Red:    lipgloss.Color("#bf616a"),
	Green:  lipgloss.Color("#a3be8c"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Blue:   lipgloss.Color("#5e81ac"),
	Mauve:  lipgloss.Color("#b48ead"),

	AddedBg:   lipgloss.Color("#3f4f3a"),
	RemovedBg: lipgloss.Color("#4f3539"),

	Border:      lipgloss.Color("#4c566a"),
	SyntaxStyle: "nord",
}

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#bfbfbf"),
	Muted:   lipgloss.Color("#6272a4"),

	Red:    lipgloss.Color("#ff5555"),
	Green:  lipgloss.Color("#50fa7b"),
	Yellow: lipgloss.Color("#f1fa8c"),
	Blue:   lipgloss.Color("#8be9fd"),
	Mauve:  lipgloss.Color("#bd93f9"),

	AddedBg:   lipgloss.Color("#2c4a37"),
	RemovedBg: lipgloss.Color("#5c2b33"),

	Border:      lipgloss.Color("#6272a4"),
	SyntaxStyle: "dracula",
}
