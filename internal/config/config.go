package config

// Config holds the application configuration.
type Config struct {
	Theme           string `yaml:"theme"`
	Width           int    `yaml:"width"` // 0 uses the terminal width
	NormalizeJSON   bool   `yaml:"normalize_json"`
	Algorithm       string `yaml:"algorithm"` // lookahead or myers
	SyntaxHighlight bool   `yaml:"syntax_highlight"`
	ShowLineNumbers bool   `yaml:"show_line_numbers"`
	History         bool   `yaml:"history"`
	HistoryPath     string `yaml:"history_path"` // defaults to ~/.config/splitdiff/history.db
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:           "catppuccin-mocha",
		Width:           0,
		NormalizeJSON:   true,
		Algorithm:       "lookahead",
		SyntaxHighlight: true,
		ShowLineNumbers: true,
		History:         true,
		HistoryPath:     "",
	}
}
