package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sadopc/splitdiff/internal/jsonfmt"
)

func fmtCmd(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	writeFlag := fs.Bool("w", false, "Write result to file instead of stdout")
	checkFlag := fs.Bool("check", false, "Check if files are normalized (exit 1 if not)")
	compactFlag := fs.Bool("compact", false, "Remove all insignificant whitespace instead of indenting")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: splitdiff fmt [flags] <file.json> [files...]\n\n")
		fmt.Fprintf(stderr, "Print JSON files in the normalized form used for comparison.\n\n")
		fmt.Fprintf(stderr, "By default, formatted output is written to stdout.\n")
		fmt.Fprintf(stderr, "Use -w to write back to the source file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  splitdiff fmt response.json          # print formatted to stdout\n")
		fmt.Fprintf(stderr, "  splitdiff fmt -w fixtures/*.json     # overwrite files in-place\n")
		fmt.Fprintf(stderr, "  splitdiff fmt -check fixtures/*.json # check formatting (CI)\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: at least one file path is required\n\n")
		fs.Usage()
		return exitError
	}
	if *writeFlag && *checkFlag {
		fmt.Fprintf(stderr, "Error: -w and -check cannot be combined\n")
		return exitError
	}

	format := jsonfmt.Normalize
	if *compactFlag {
		format = jsonfmt.Compact
	}

	hasUnformatted := false
	for _, path := range fs.Args() {
		if err := formatFile(path, format, *writeFlag, *checkFlag, &hasUnformatted); err != nil {
			fmt.Fprintf(stderr, "Error formatting %s: %v\n", path, err)
			return exitError
		}
	}

	if *checkFlag && hasUnformatted {
		return exitDifferent
	}
	return exitOK
}

func formatFile(path string, format func(string) string, write, check bool, hasUnformatted *bool) error {
	var original []byte
	var err error
	if path == stdinLabel {
		if write {
			return errors.New("cannot write stdin back")
		}
		original, err = io.ReadAll(stdin)
	} else {
		original, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	if !jsonfmt.IsJSON(string(original)) {
		return errors.New("not valid JSON")
	}
	formatted := format(string(original)) + "\n"

	if check {
		if string(original) != formatted {
			fmt.Fprintf(stderr, "UNFORMATTED %s\n", path)
			*hasUnformatted = true
		} else {
			fmt.Fprintf(stdout, "OK          %s\n", path)
		}
		return nil
	}

	if write {
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			return fmt.Errorf("writing: %w", err)
		}
		fmt.Fprintf(stdout, "Formatted %s\n", path)
		return nil
	}

	_, err = io.WriteString(stdout, formatted)
	return err
}
