package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/logx"
	"github.com/sadopc/splitdiff/internal/render"
	"github.com/sadopc/splitdiff/internal/ui/theme"
)

func diffCmd(args []string) int {
	cfg := loadConfig()

	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outputFlag := fs.String("output", "text", "Output format: text, plain, json")
	widthFlag := fs.Int("width", cfg.Width, "Total output width (0 uses the terminal width)")
	colorFlag := fs.String("color", "auto", "Colour output: auto, always, never")
	summaryFlag := fs.Bool("summary", false, "Print only a one-line summary")
	cf := addCompareFlags(fs, cfg)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: splitdiff diff [flags] <left> <right>\n\n")
		fmt.Fprintf(stderr, "Compare two inputs side by side. Use \"-\" to read one side from stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  splitdiff diff old.json new.json\n")
		fmt.Fprintf(stderr, "  curl -s api/users | splitdiff diff - users.json\n")
		fmt.Fprintf(stderr, "  splitdiff diff -paste left expected.txt\n")
		fmt.Fprintf(stderr, "  splitdiff diff -output json a.txt b.txt > report.json\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if !validOutput(*outputFlag) {
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text, plain, or json)\n", *outputFlag)
		return exitError
	}

	useColor, err := colorEnabled(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	opts, err := cf.options()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	left, right, err := cf.loadInputs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return exitError
	}

	res := diff.CompareWith(left.text, right.text, opts)
	logx.Debugf("diff: %s vs %s, %d rows (%s)", left.label, right.label, res.Len(), opts.Aligner)

	if cfg.History && !*cf.noHistory {
		recordHistory(cfg, left, right, opts, res)
	}

	if err := writeResult(res, left.text, right.text, resultFormat{
		output:      *outputFlag,
		summary:     *summaryFlag,
		width:       outputWidth(*widthFlag),
		lineNumbers: *cf.lineNumbers,
		color:       useColor,
		highlight:   cfg.SyntaxHighlight,
		theme:       *cf.theme,
	}); err != nil {
		fmt.Fprintf(stderr, "Error: writing output: %v\n", err)
		return exitError
	}

	if res.Identical() {
		return exitOK
	}
	return exitDifferent
}

func validOutput(name string) bool {
	switch name {
	case "text", "plain", "json":
		return true
	}
	return false
}

type resultFormat struct {
	output      string
	summary     bool
	width       int
	lineNumbers bool
	color       bool
	highlight   bool
	theme       string
}

func writeResult(res diff.Result, left, right string, f resultFormat) error {
	if f.summary {
		_, err := fmt.Fprintln(stdout, render.Summary(diff.Stats(res)))
		return err
	}

	switch f.output {
	case "json":
		return render.JSON(stdout, res)
	case "plain":
		return render.Plain(stdout, res, f.width, f.lineNumbers)
	}

	opts := render.Options{
		Width:       f.width,
		LineNumbers: f.lineNumbers,
		Color:       f.color,
		Theme:       theme.Resolve(f.theme),
	}
	if f.color && f.highlight {
		opts.Lexer = render.LexerFor(left, right)
	}
	return render.Text(stdout, res, opts)
}

// colorEnabled resolves -color. "always" forces an ANSI profile so styling
// survives pipes.
func colorEnabled(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isTerminal(stdout) && lipgloss.ColorProfile() != termenv.Ascii, nil
	case "always":
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -color %q (must be auto, always, or never)", mode)
}
