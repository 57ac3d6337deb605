package theme

import (
	"path/filepath"

	"github.com/sadopc/splitdiff/internal/config"
)

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	// Custom themes live in ~/.config/splitdiff/themes/
	if dir := config.Dir(); dir != "" {
		customs := LoadCustomThemes(filepath.Join(dir, "themes"))
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}
