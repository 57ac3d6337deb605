package main

import (
	"os"
	"strings"
	"testing"
)

const normalizedDoc = "{\n  \"b\": 1,\n  \"a\": 2\n}\n"

func TestFmtPrintsNormalized(t *testing.T) {
	out, _ := setupCLI(t, "")
	path := writeFile(t, "doc.json", `{"b":1,"a":2}`)

	if code := run([]string{"fmt", path}); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if out.String() != normalizedDoc {
		t.Errorf("output = %q, want %q", out.String(), normalizedDoc)
	}
}

func TestFmtCompact(t *testing.T) {
	out, _ := setupCLI(t, "")
	path := writeFile(t, "doc.json", normalizedDoc)

	if code := run([]string{"fmt", "-compact", path}); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if got := out.String(); got != "{\"b\":1,\"a\":2}\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFmtWrite(t *testing.T) {
	out, _ := setupCLI(t, "")
	path := writeFile(t, "doc.json", `{"b":1,"a":2}`)

	if code := run([]string{"fmt", "-w", path}); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != normalizedDoc {
		t.Errorf("file = %q, want %q", data, normalizedDoc)
	}
	if !strings.Contains(out.String(), "Formatted") {
		t.Errorf("output = %q", out.String())
	}
}

func TestFmtCheck(t *testing.T) {
	out, errOut := setupCLI(t, "")
	clean := writeFile(t, "clean.json", normalizedDoc)
	dirty := writeFile(t, "dirty.json", `{"b":1,"a":2}`)

	if code := run([]string{"fmt", "-check", clean}); code != exitOK {
		t.Errorf("clean file: exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(out.String(), "OK") {
		t.Errorf("output = %q", out.String())
	}

	if code := run([]string{"fmt", "-check", clean, dirty}); code != exitDifferent {
		t.Errorf("dirty file: exit code = %d, want %d", code, exitDifferent)
	}
	if !strings.Contains(errOut.String(), "UNFORMATTED") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestFmtStdin(t *testing.T) {
	out, _ := setupCLI(t, `{"b":1,"a":2}`)
	if code := run([]string{"fmt", "-"}); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if out.String() != normalizedDoc {
		t.Errorf("output = %q", out.String())
	}

	if code := run([]string{"fmt", "-w", "-"}); code != exitError {
		t.Errorf("-w on stdin: exit code = %d, want %d", code, exitError)
	}
}

func TestFmtErrors(t *testing.T) {
	_, errOut := setupCLI(t, "")
	bad := writeFile(t, "bad.json", "not json")

	if code := run([]string{"fmt", bad}); code != exitError {
		t.Errorf("invalid JSON: exit code = %d, want %d", code, exitError)
	}
	if !strings.Contains(errOut.String(), "not valid JSON") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if code := run([]string{"fmt"}); code != exitError {
		t.Errorf("no files: exit code = %d, want %d", code, exitError)
	}
	if code := run([]string{"fmt", "-w", "-check", bad}); code != exitError {
		t.Errorf("-w with -check: exit code = %d, want %d", code, exitError)
	}
}
