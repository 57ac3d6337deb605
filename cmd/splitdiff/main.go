package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/sadopc/splitdiff/internal/config"
	"github.com/sadopc/splitdiff/pkg/version"
)

// Exit codes shared by every subcommand.
const (
	exitOK        = 0 // inputs identical, or command succeeded
	exitDifferent = 1 // inputs differ, or fmt -check found unformatted files
	exitError     = 2 // usage or I/O error
)

// Process-level dependencies, replaced in tests.
var (
	stdin         io.Reader = os.Stdin
	stdout        io.Writer = os.Stdout
	stderr        io.Writer = os.Stderr
	readClipboard           = clipboard.ReadAll
	loadConfig              = config.Load
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printHelp()
		return exitError
	}

	switch args[0] {
	case "diff":
		return diffCmd(args[1:])
	case "view":
		return viewCmd(args[1:])
	case "fmt":
		return fmtCmd(args[1:])
	case "history":
		return historyCmd(args[1:])
	case "completion":
		return completionCmd(args[1:])
	case "version", "--version":
		fmt.Fprintln(stdout, version.String())
		return exitOK
	case "help", "-h", "--help":
		printHelp()
		return exitOK
	}

	// `splitdiff a.json b.json` is shorthand for `splitdiff diff a.json b.json`.
	return diffCmd(args)
}

func printHelp() {
	fmt.Fprintf(stderr, `splitdiff - side-by-side structural comparison for text and JSON

Usage:
  splitdiff <left> <right> [flags]   Compare two inputs (same as diff)
  splitdiff <command> [args] [flags] Run a subcommand

Commands:
  diff        Compare two files, stdin ("-") or the clipboard
  view        Compare two inputs in an interactive viewer
  fmt         Print or rewrite JSON files in normalized form
  history     List, search, show or clear recorded comparisons
  completion  Generate shell completion scripts (bash, zsh, fish)
  version     Print version information
  help        Show this help message

Exit codes:
  0  Inputs are identical
  1  Inputs differ
  2  Usage or I/O error

Run 'splitdiff <command> -help' for more information about a command.
`)
}
