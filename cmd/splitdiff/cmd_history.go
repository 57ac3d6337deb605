package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/splitdiff/internal/core/history"
	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/render"
)

func historyCmd(args []string) int {
	usage := func() {
		fmt.Fprintf(stderr, "Usage: splitdiff history <list|search|show|rm|clear> [args]\n\n")
		fmt.Fprintf(stderr, "Manage recorded comparisons.\n\n")
		fmt.Fprintf(stderr, "Commands:\n")
		fmt.Fprintf(stderr, "  list [-limit N]          List recent comparisons\n")
		fmt.Fprintf(stderr, "  search <query>           Fuzzy search by input labels\n")
		fmt.Fprintf(stderr, "  show [flags] <ref>       Re-run a recorded comparison\n")
		fmt.Fprintf(stderr, "  rm <ref>                 Delete one comparison\n")
		fmt.Fprintf(stderr, "  clear                    Delete all comparisons\n")
	}

	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list", "search", "show", "rm", "clear":
	case "help", "-h", "-help", "--help":
		usage()
		return exitOK
	default:
		fmt.Fprintf(stderr, "Error: unknown history command %q\n\n", args[0])
		usage()
		return exitError
	}

	cfg := loadConfig()
	path := cfg.ResolvedHistoryPath()
	if path == "" {
		fmt.Fprintf(stderr, "Error: cannot locate history database\n")
		return exitError
	}
	store, err := history.NewStore(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer store.Close()

	switch args[0] {
	case "list":
		err = historyList(store, args[1:])
	case "search":
		err = historySearch(store, args[1:])
	case "show":
		return historyShow(store, args[1:])
	case "rm":
		err = historyRemove(store, args[1:])
	case "clear":
		if err = store.Clear(); err == nil {
			fmt.Fprintln(stdout, "History cleared")
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func historyList(store *history.Store, args []string) error {
	fs := flag.NewFlagSet("history list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limitFlag := fs.Int("limit", 20, "Maximum number of entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := store.List(*limitFlag, 0)
	if err != nil {
		return err
	}
	total, err := store.Count()
	if err != nil {
		return err
	}
	printEntries(entries)
	if total > len(entries) {
		fmt.Fprintf(stdout, "(%s of %s shown)\n", humanize.Comma(int64(len(entries))), humanize.Comma(int64(total)))
	}
	return nil
}

func historySearch(store *history.Store, args []string) error {
	if len(args) == 0 {
		return errors.New("search query is required")
	}
	entries, err := store.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	printEntries(entries)
	return nil
}

func printEntries(entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(stdout, "No comparisons recorded")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(stdout, "%-8s  %-14s  %s  (%s)\n",
			e.ShortRef(), humanize.Time(e.Timestamp), e.Title(), render.Summary(e.Summary))
	}
}

func historyShow(store *history.Store, args []string) int {
	fs := flag.NewFlagSet("history show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outputFlag := fs.String("output", "plain", "Output format: text, plain, json")
	widthFlag := fs.Int("width", 0, "Total output width (0 uses the terminal width)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: a history ref is required\n")
		return exitError
	}
	if !validOutput(*outputFlag) {
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text, plain, or json)\n", *outputFlag)
		return exitError
	}

	e, err := store.Get(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	opts := diff.Options{NormalizeJSON: e.NormalizeJSON}
	if a, ok := diff.ParseAligner(e.Algorithm); ok {
		opts.Aligner = a
	}
	res := diff.CompareWith(e.Left, e.Right, opts)

	cfg := loadConfig()
	// The JSON report must be the only thing on stdout.
	if *outputFlag != "json" {
		fmt.Fprintf(stdout, "%s  %s\n", e.Title(), e.Timestamp.Format("2006-01-02 15:04:05"))
	}
	if err := writeResult(res, e.Left, e.Right, resultFormat{
		output:      *outputFlag,
		width:       outputWidth(*widthFlag),
		lineNumbers: cfg.ShowLineNumbers,
		color:       *outputFlag == "text" && isTerminal(stdout),
		highlight:   cfg.SyntaxHighlight,
		theme:       cfg.Theme,
	}); err != nil {
		fmt.Fprintf(stderr, "Error: writing output: %v\n", err)
		return exitError
	}

	if res.Identical() {
		return exitOK
	}
	return exitDifferent
}

func historyRemove(store *history.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("a history ref is required")
	}
	e, err := store.Get(args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(e.ID); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Deleted %s\n", e.ShortRef())
	return nil
}
