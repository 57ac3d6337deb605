package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/sadopc/splitdiff/internal/diff"
)

func TestPlainSideBySide(t *testing.T) {
	res := diff.Compare("a\nb", "a\nx\nb")

	var buf bytes.Buffer
	if err := Plain(&buf, res, 40, false); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "a") || !strings.HasSuffix(lines[0], "a") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], " > x") {
		t.Errorf("row 1 should mark the right-only line, got %q", lines[1])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
}

func TestPlainMarkers(t *testing.T) {
	res := diff.Compare("same\nold value\ngone\nkeep", "same\nnew value")
	out := New(Options{Width: 60}).Lines(res)

	markers := make([]string, len(out))
	for i := range res.Left {
		markers[i] = Marker(res.Left[i], res.Right[i])
	}
	want := []string{" ", "|", "<", "<"}
	if strings.Join(markers, "") != strings.Join(want, "") {
		t.Errorf("markers = %q, want %q", markers, want)
	}
}

func TestLinesFitWidth(t *testing.T) {
	long := strings.Repeat("abcdefghij", 20)
	res := diff.Compare(long, long+"!")
	for _, line := range New(Options{Width: 50}).Lines(res) {
		if w := runewidth.StringWidth(line); w > 50 {
			t.Errorf("line width %d exceeds 50: %q", w, line)
		}
	}
}

func TestLinesLineNumbers(t *testing.T) {
	res := diff.Compare("a\nb", "a\nx\nb")
	out := New(Options{Width: 40, LineNumbers: true}).Lines(res)
	if !strings.HasPrefix(out[0], "1 a") {
		t.Errorf("row 0 = %q, want left line number 1", out[0])
	}
	// The missing placeholder gets no number; the right side continues at 2.
	if strings.HasPrefix(out[1], "2") {
		t.Errorf("row 1 should not number the placeholder: %q", out[1])
	}
	if !strings.Contains(out[1], "2 x") {
		t.Errorf("row 1 = %q, want right line number 2", out[1])
	}
	if !strings.HasPrefix(out[2], "2 b") {
		t.Errorf("row 2 = %q, want left line number 2", out[2])
	}
}

func TestLinesExpandTabs(t *testing.T) {
	res := diff.Compare("\tx", "\tx")
	out := New(Options{Width: 40}).Lines(res)
	if strings.Contains(out[0], "\t") {
		t.Errorf("tabs should be expanded, got %q", out[0])
	}
}

func TestJSONReport(t *testing.T) {
	res := diff.Compare("color: red", "color: blue")

	var buf bytes.Buffer
	if err := JSON(&buf, res); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Summary diff.Summary `json:"summary"`
		Left    []struct {
			Kind     string `json:"kind"`
			IsMarkup bool   `json:"is_markup"`
			Segments []struct {
				Kind string `json:"kind"`
				Text string `json:"text"`
			} `json:"segments"`
		} `json:"left"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Summary.Different != 1 {
		t.Errorf("summary = %+v", got.Summary)
	}
	if len(got.Left) != 1 || got.Left[0].Kind != "different" || !got.Left[0].IsMarkup {
		t.Fatalf("left = %+v", got.Left)
	}
	segs := got.Left[0].Segments
	if segs[len(segs)-1].Kind != "deleted" {
		t.Errorf("last segment kind = %q, want deleted", segs[len(segs)-1].Kind)
	}
}

func TestJSONReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diff.Compare("", "")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"left": []`) {
		t.Errorf("empty sides should encode as arrays, got %s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		in   diff.Summary
		want string
	}{
		{diff.Summary{}, "both sides empty"},
		{diff.Summary{Rows: 1, Matched: 1}, "1 row, identical"},
		{diff.Summary{Rows: 1500, Matched: 1496, Different: 2, Added: 1, Removed: 1}, "1,500 rows: 2 changed, 1 added, 1 removed"},
	}
	for _, c := range cases {
		if got := Summary(c.in); got != c.want {
			t.Errorf("Summary(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLexerFor(t *testing.T) {
	if got := LexerFor(`{"a":1}`, `[1]`); got != "json" {
		t.Errorf("LexerFor(json, json) = %q", got)
	}
	if got := LexerFor(`{"a":1}`, "plain"); got != "" {
		t.Errorf("LexerFor(json, text) = %q", got)
	}
}

func TestHighlighterKeepsText(t *testing.T) {
	h := newHighlighter("json", "monokai")
	got := h.line(`  "a": 1,`)
	if !strings.Contains(got, `"a"`) {
		t.Errorf("highlighted line lost its content: %q", got)
	}
	if got := h.line("   "); got != "   " {
		t.Errorf("blank line changed: %q", got)
	}
}
