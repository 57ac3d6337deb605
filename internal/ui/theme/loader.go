package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Red    string `yaml:"red"`
	Green  string `yaml:"green"`
	Yellow string `yaml:"yellow"`
	Blue   string `yaml:"blue"`
	Mauve  string `yaml:"mauve"`

	AddedBg   string `yaml:"added_bg"`
	RemovedBg string `yaml:"removed_bg"`

	Border      string `yaml:"border"`
	SyntaxStyle string `yaml:"syntax_style"`
}

// LoadCustomTheme loads a theme from a YAML file. Colors left out of the
// file are taken from the default theme.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	t := Default()
	t.Name = yt.Name
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Base, yt.Base)
	set(&t.Surface, yt.Surface)
	set(&t.Overlay, yt.Overlay)
	set(&t.Text, yt.Text)
	set(&t.Subtext, yt.Subtext)
	set(&t.Muted, yt.Muted)
	set(&t.Red, yt.Red)
	set(&t.Green, yt.Green)
	set(&t.Yellow, yt.Yellow)
	set(&t.Blue, yt.Blue)
	set(&t.Mauve, yt.Mauve)
	set(&t.AddedBg, yt.AddedBg)
	set(&t.RemovedBg, yt.RemovedBg)
	set(&t.Border, yt.Border)
	if yt.SyntaxStyle != "" {
		t.SyntaxStyle = yt.SyntaxStyle
	}
	return t, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
