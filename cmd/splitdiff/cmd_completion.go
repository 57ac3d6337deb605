package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sadopc/splitdiff/internal/ui/theme"
)

func completionCmd(args []string) int {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: splitdiff completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(stderr, "Examples:\n")
		fmt.Fprintf(stderr, "  # Bash\n")
		fmt.Fprintf(stderr, "  splitdiff completion bash > /usr/local/etc/bash_completion.d/splitdiff\n")
		fmt.Fprintf(stderr, "  # Zsh\n")
		fmt.Fprintf(stderr, "  splitdiff completion zsh > \"${fpath[1]}/_splitdiff\"\n")
		fmt.Fprintf(stderr, "  # Fish\n")
		fmt.Fprintf(stderr, "  splitdiff completion fish > ~/.config/fish/completions/splitdiff.fish\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		return exitError
	}

	themes := strings.Join(theme.Keys(), " ")
	switch shell := fs.Arg(0); shell {
	case "bash":
		fmt.Fprint(stdout, generateBashCompletion(themes))
	case "zsh":
		fmt.Fprint(stdout, generateZshCompletion(themes))
	case "fish":
		fmt.Fprint(stdout, generateFishCompletion(themes))
	default:
		fmt.Fprintf(stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		return exitError
	}
	return exitOK
}

func generateBashCompletion(themes string) string {
	return `# bash completion for splitdiff                          -*- shell-script -*-

_splitdiff() {
    local cur prev words cword
    _init_completion || return

    local commands="diff view fmt history completion version help"

    # Flags per subcommand
    local compare_flags="-no-json -algorithm -theme -n -paste -no-history"
    local diff_flags="-output -width -color -summary ${compare_flags}"
    local view_flags="${compare_flags}"
    local fmt_flags="-w -check -compact"
    local history_commands="list search show rm clear"

    local output_formats="text plain json"
    local algorithms="lookahead myers"
    local color_modes="auto always never"
    local sides="left right"
    local themes="` + themes + `"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        _filedir
        return
    fi

    local command="${words[1]}"

    # Complete flag values
    case "${prev}" in
        -output)
            COMPREPLY=($(compgen -W "${output_formats}" -- "${cur}"))
            return
            ;;
        -algorithm)
            COMPREPLY=($(compgen -W "${algorithms}" -- "${cur}"))
            return
            ;;
        -color)
            COMPREPLY=($(compgen -W "${color_modes}" -- "${cur}"))
            return
            ;;
        -paste)
            COMPREPLY=($(compgen -W "${sides}" -- "${cur}"))
            return
            ;;
        -theme)
            COMPREPLY=($(compgen -W "${themes}" -- "${cur}"))
            return
            ;;
        -width|-limit)
            return
            ;;
    esac

    # Complete flags for each subcommand
    case "${command}" in
        diff)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${diff_flags}" -- "${cur}"))
            else
                _filedir
            fi
            ;;
        view)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${view_flags}" -- "${cur}"))
            else
                _filedir
            fi
            ;;
        fmt)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${fmt_flags}" -- "${cur}"))
            else
                _filedir json
            fi
            ;;
        history)
            if [[ ${cword} -eq 2 ]]; then
                COMPREPLY=($(compgen -W "${history_commands}" -- "${cur}"))
            fi
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
        *)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${diff_flags}" -- "${cur}"))
            else
                _filedir
            fi
            ;;
    esac
}

complete -F _splitdiff splitdiff
`
}

func generateZshCompletion(themes string) string {
	return `#compdef splitdiff

# zsh completion for splitdiff

_splitdiff() {
    local -a commands
    commands=(
        'diff:Compare two files, stdin or the clipboard'
        'view:Compare two inputs in an interactive viewer'
        'fmt:Print or rewrite JSON files in normalized form'
        'history:List, search, show or clear recorded comparisons'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    local -a compare_args
    compare_args=(
        '-no-json[Compare JSON inputs as written]'
        '-algorithm[Line alignment]:algorithm:(lookahead myers)'
        '-theme[Colour theme]:theme:(` + themes + `)'
        '-n[Show line numbers]'
        '-paste[Read one side from the clipboard]:side:(left right)'
        '-no-history[Do not record this comparison]'
    )

    _arguments -C \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'splitdiff commands' commands
            _files
            ;;
        args)
            case $words[1] in
                diff)
                    _arguments \
                        '-output[Output format]:format:(text plain json)' \
                        '-width[Total output width]:width:' \
                        '-color[Colour output]:mode:(auto always never)' \
                        '-summary[Print only a one-line summary]' \
                        $compare_args \
                        '*:input file:_files'
                    ;;
                view)
                    _arguments \
                        $compare_args \
                        '*:input file:_files'
                    ;;
                fmt)
                    _arguments \
                        '-w[Write result to file instead of stdout]' \
                        '-check[Check if files are normalized]' \
                        '-compact[Remove insignificant whitespace]' \
                        '*:json file:_files -g "*.json"'
                    ;;
                history)
                    _arguments \
                        '1:history command:(list search show rm clear)'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_splitdiff "$@"
`
}

func generateFishCompletion(themes string) string {
	return `# fish completion for splitdiff

# Subcommands
complete -c splitdiff -n '__fish_use_subcommand' -a diff -d 'Compare two files, stdin or the clipboard'
complete -c splitdiff -n '__fish_use_subcommand' -a view -d 'Compare two inputs in an interactive viewer'
complete -c splitdiff -n '__fish_use_subcommand' -a fmt -d 'Print or rewrite JSON files in normalized form'
complete -c splitdiff -n '__fish_use_subcommand' -a history -d 'List, search, show or clear recorded comparisons'
complete -c splitdiff -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c splitdiff -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c splitdiff -n '__fish_use_subcommand' -a help -d 'Show help message'

# diff and view flags
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o no-json -d 'Compare JSON inputs as written'
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o algorithm -d 'Line alignment' -ra 'lookahead myers'
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o theme -d 'Colour theme' -ra '` + themes + `'
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o n -d 'Show line numbers'
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o paste -d 'Read one side from the clipboard' -ra 'left right'
complete -c splitdiff -n '__fish_seen_subcommand_from diff view' -o no-history -d 'Do not record this comparison'
complete -c splitdiff -n '__fish_seen_subcommand_from diff' -o output -d 'Output format' -ra 'text plain json'
complete -c splitdiff -n '__fish_seen_subcommand_from diff' -o width -d 'Total output width' -r
complete -c splitdiff -n '__fish_seen_subcommand_from diff' -o color -d 'Colour output' -ra 'auto always never'
complete -c splitdiff -n '__fish_seen_subcommand_from diff' -o summary -d 'Print only a one-line summary'

# fmt flags
complete -c splitdiff -n '__fish_seen_subcommand_from fmt' -s w -d 'Write result to file instead of stdout'
complete -c splitdiff -n '__fish_seen_subcommand_from fmt' -o check -d 'Check if files are normalized'
complete -c splitdiff -n '__fish_seen_subcommand_from fmt' -o compact -d 'Remove insignificant whitespace'

# history commands
complete -c splitdiff -n '__fish_seen_subcommand_from history' -f -a 'list search show rm clear'

# completion - shell names
complete -c splitdiff -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish' -d 'Shell type'
`
}
