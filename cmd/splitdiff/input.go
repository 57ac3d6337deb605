package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/sadopc/splitdiff/internal/config"
	"github.com/sadopc/splitdiff/internal/core/history"
	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/logx"
	"github.com/sadopc/splitdiff/internal/render"
)

const (
	stdinLabel     = "-"
	clipboardLabel = "clipboard"
)

// input is one side of a comparison.
type input struct {
	label string
	text  string
}

// compareFlags are the flags shared by diff and view.
type compareFlags struct {
	noJSON      *bool
	algorithm   *string
	theme       *string
	lineNumbers *bool
	paste       *string
	noHistory   *bool
}

func addCompareFlags(fs *flag.FlagSet, cfg config.Config) compareFlags {
	return compareFlags{
		noJSON:      fs.Bool("no-json", !cfg.NormalizeJSON, "Compare JSON inputs as written instead of normalizing them"),
		algorithm:   fs.String("algorithm", cfg.Algorithm, "Line alignment: lookahead or myers"),
		theme:       fs.String("theme", cfg.Theme, "Colour theme name"),
		lineNumbers: fs.Bool("n", cfg.ShowLineNumbers, "Show line numbers"),
		paste:       fs.String("paste", "", "Read one side from the clipboard: left or right"),
		noHistory:   fs.Bool("no-history", false, "Do not record this comparison in history"),
	}
}

func (f compareFlags) options() (diff.Options, error) {
	aligner, ok := diff.ParseAligner(*f.algorithm)
	if !ok {
		return diff.Options{}, fmt.Errorf("invalid algorithm %q (must be lookahead or myers)", *f.algorithm)
	}
	return diff.Options{NormalizeJSON: !*f.noJSON, Aligner: aligner}, nil
}

// loadInputs resolves the positional arguments and -paste into two sides.
func (f compareFlags) loadInputs(args []string) (left, right input, err error) {
	switch *f.paste {
	case "":
		if len(args) != 2 {
			return left, right, errors.New("two inputs are required")
		}
		if args[0] == stdinLabel && args[1] == stdinLabel {
			return left, right, errors.New("only one side can be read from stdin")
		}
		if left, err = readInput(args[0]); err != nil {
			return left, right, err
		}
		right, err = readInput(args[1])
		return left, right, err

	case "left", "right":
		if len(args) != 1 {
			return left, right, fmt.Errorf("-paste %s takes exactly one input", *f.paste)
		}
		pasted, err := readClipboard()
		if err != nil {
			return left, right, fmt.Errorf("reading clipboard: %w", err)
		}
		other, err := readInput(args[0])
		if err != nil {
			return left, right, err
		}
		clip := input{label: clipboardLabel, text: pasted}
		if *f.paste == "left" {
			return clip, other, nil
		}
		return other, clip, nil

	default:
		return left, right, fmt.Errorf("invalid -paste %q (must be left or right)", *f.paste)
	}
}

func readInput(path string) (input, error) {
	if path == stdinLabel {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return input{}, fmt.Errorf("reading stdin: %w", err)
		}
		return input{label: stdinLabel, text: string(data)}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return input{label: path, text: string(data)}, nil
}

// recordHistory stores a comparison. Failures are logged, never fatal.
func recordHistory(cfg config.Config, left, right input, opts diff.Options, res diff.Result) {
	path := cfg.ResolvedHistoryPath()
	if path == "" {
		return
	}
	store, err := history.NewStore(path)
	if err != nil {
		logx.Debugf("history: %v", err)
		return
	}
	defer store.Close()

	_, err = store.Add(history.Entry{
		LeftLabel:     left.label,
		RightLabel:    right.label,
		Left:          left.text,
		Right:         right.text,
		Algorithm:     opts.Aligner.String(),
		NormalizeJSON: opts.NormalizeJSON,
		Summary:       diff.Stats(res),
	})
	if err != nil {
		logx.Debugf("history: %v", err)
	}
}

// outputWidth picks the explicit width, else the terminal width, else the
// default.
func outputWidth(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if f, ok := stdout.(*os.File); ok {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return render.DefaultWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
