package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/render"
	"github.com/sadopc/splitdiff/internal/ui/theme"
	"github.com/sadopc/splitdiff/internal/ui/viewer"
)

// runViewer is replaced in tests.
var runViewer = viewer.Run

func viewCmd(args []string) int {
	cfg := loadConfig()

	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addCompareFlags(fs, cfg)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: splitdiff view [flags] <left> <right>\n\n")
		fmt.Fprintf(stderr, "Compare two inputs in an interactive full-screen viewer.\n\n")
		fmt.Fprintf(stderr, "Keys: n/N next/previous change, g/G top/bottom, l line numbers,\n")
		fmt.Fprintf(stderr, "      y copy report, ? help, q quit\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
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
	if cfg.History && !*cf.noHistory {
		recordHistory(cfg, left, right, opts, res)
	}

	ropts := render.Options{
		LineNumbers: *cf.lineNumbers,
		Color:       true,
		Theme:       theme.Resolve(*cf.theme),
	}
	if cfg.SyntaxHighlight {
		ropts.Lexer = render.LexerFor(left.text, right.text)
	}

	title := left.label + " ↔ " + right.label
	if err := runViewer(title, res, ropts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if res.Identical() {
		return exitOK
	}
	return exitDifferent
}
