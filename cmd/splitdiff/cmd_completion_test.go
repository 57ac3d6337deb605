package main

import (
	"strings"
	"testing"
)

const testThemes = "catppuccin-mocha nord"

func TestGenerateBashCompletion(t *testing.T) {
	output := generateBashCompletion(testThemes)

	if !strings.Contains(output, "_splitdiff") {
		t.Error("bash completion should contain _splitdiff function name")
	}
	if !strings.Contains(output, "complete -F _splitdiff splitdiff") {
		t.Error("bash completion should register the completion function")
	}

	for _, cmd := range []string{"diff", "view", "fmt", "history", "completion", "version", "help"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("bash completion should contain subcommand %q", cmd)
		}
	}
	for _, flag := range []string{"-output", "-width", "-color", "-summary", "-no-json", "-algorithm", "-paste", "-no-history"} {
		if !strings.Contains(output, flag) {
			t.Errorf("bash completion should contain flag %q", flag)
		}
	}
	if !strings.Contains(output, `local themes="catppuccin-mocha nord"`) {
		t.Error("bash completion should embed theme names")
	}
	if !strings.Contains(output, "lookahead myers") {
		t.Error("bash completion should offer algorithm names")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	output := generateZshCompletion(testThemes)

	if !strings.Contains(output, "#compdef splitdiff") {
		t.Error("zsh completion should contain #compdef splitdiff directive")
	}
	if !strings.Contains(output, "_describe") {
		t.Error("zsh completion should use _describe for command completion")
	}
	for _, cmd := range []string{"diff:", "view:", "fmt:", "history:", "completion:", "version:", "help:"} {
		if !strings.Contains(output, cmd) {
			t.Errorf("zsh completion should describe %q", cmd)
		}
	}
	if !strings.Contains(output, "(text plain json)") {
		t.Error("zsh completion should provide output format values")
	}
	if !strings.Contains(output, "(catppuccin-mocha nord)") {
		t.Error("zsh completion should provide theme values")
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	output := generateFishCompletion(testThemes)

	if !strings.Contains(output, "complete -c splitdiff") {
		t.Error("fish completion should contain complete -c splitdiff commands")
	}
	for _, cmd := range []string{"diff", "view", "fmt", "history", "completion", "version", "help"} {
		if !strings.Contains(output, "-a "+cmd) {
			t.Errorf("fish completion should register subcommand %q", cmd)
		}
	}
	if !strings.Contains(output, "'list search show rm clear'") {
		t.Error("fish completion should list history commands")
	}
}

func TestCompletionCmd(t *testing.T) {
	out, _ := setupCLI(t, "")
	for _, shell := range []string{"bash", "zsh", "fish"} {
		out.Reset()
		if code := run([]string{"completion", shell}); code != exitOK {
			t.Errorf("%s: exit code = %d", shell, code)
		}
		if !strings.Contains(out.String(), "catppuccin-mocha") {
			t.Errorf("%s: completion should include built-in themes", shell)
		}
	}

	if code := run([]string{"completion", "powershell"}); code != exitError {
		t.Errorf("unsupported shell: exit code = %d, want %d", code, exitError)
	}
	if code := run([]string{"completion"}); code != exitError {
		t.Errorf("missing shell: exit code = %d, want %d", code, exitError)
	}
}
