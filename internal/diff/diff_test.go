package diff

import (
	"strings"
	"testing"
)

func TestCompareIdentity(t *testing.T) {
	inputs := []string{
		"",
		"a\nb\nc",
		`{"a":1,"b":[1,2,3],"c":{"d":"e"}}`,
		"  indented\n\n\ttabbed\n}",
		"trailing newline\n",
	}
	for _, in := range inputs {
		res := Compare(in, in)
		if res.Len() != len(res.Right) {
			t.Fatalf("unequal sides for %q", in)
		}
		for i := range res.Left {
			if res.Left[i].Kind != Matched || res.Right[i].Kind != Matched {
				t.Errorf("%q row %d: %v/%v, want matched", in, i, res.Left[i].Kind, res.Right[i].Kind)
			}
			if res.Left[i].Text != res.Right[i].Text {
				t.Errorf("%q row %d: %q != %q", in, i, res.Left[i].Text, res.Right[i].Text)
			}
		}
		if !res.Identical() {
			t.Errorf("%q: expected Identical()", in)
		}
	}
}

func TestCompareEqualLength(t *testing.T) {
	pairs := [][2]string{
		{"", "a\nb"},
		{"a\nb\nc\nd", ""},
		{"a\nb", "a\nx\nb"},
		{"a\nb", "x\ny\nz\nw\nb"},
		{"{\n}", "[\n]"},
		{`{"a":[1,2,3]}`, `{"a":[1,3],"b":true}`},
		{"\n\n\n", "x"},
		{"one\r\ntwo", "one\ntwo\nthree"},
	}
	for _, p := range pairs {
		res := Compare(p[0], p[1])
		if len(res.Left) != len(res.Right) {
			t.Errorf("%q vs %q: %d left rows, %d right rows", p[0], p[1], len(res.Left), len(res.Right))
		}
	}
}

func TestComparePureInsertion(t *testing.T) {
	res := Compare("a\nb", "a\nx\nb")
	expectKinds(t, "left", res.Left, Matched, Missing, Matched)
	expectKinds(t, "right", res.Right, Matched, Extra, Matched)
	if strings.TrimSpace(res.Left[1].Text) != "" {
		t.Errorf("placeholder should be blank, got %q", res.Left[1].Text)
	}
}

func TestCompareJSONReformatting(t *testing.T) {
	res := Compare(`{"a":1}`, "{\n  \"a\": 1\n}")
	if res.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", res.Len())
	}
	if !res.Identical() {
		t.Errorf("expected all rows matched, got %v / %v", kinds(res.Left), kinds(res.Right))
	}
}

func TestCompareWordLevelChange(t *testing.T) {
	res := Compare("color: red", "color: blue")
	expectKinds(t, "left", res.Left, Different)
	expectKinds(t, "right", res.Right, Different)

	left := res.Left[0].Segments
	if len(left) == 0 || left[0].Kind != Plain || left[0].Text != "color: " {
		t.Errorf("unchanged prefix should stay plain, got %+v", left)
	}
	last := left[len(left)-1]
	if last.Kind != Deleted || last.Text != "red" {
		t.Errorf("changed token = %+v, want deleted %q", last, "red")
	}
}

func TestCompareStructuralShortCircuit(t *testing.T) {
	res := Compare("  },", "},")
	expectKinds(t, "left", res.Left, Matched)
	expectKinds(t, "right", res.Right, Matched)
}

func TestCompareWithoutNormalization(t *testing.T) {
	opts := DefaultOptions()
	opts.NormalizeJSON = false
	res := CompareWith(`{"a":1}`, "{\n  \"a\": 1\n}", opts)
	if res.Identical() {
		t.Error("raw comparison should not match reformatted JSON")
	}
}

func TestCompareWithMyers(t *testing.T) {
	opts := DefaultOptions()
	opts.Aligner = AlignerMyers
	res := CompareWith("a\nb", "a\nx\ny\nz\nb", opts)
	expectKinds(t, "left", res.Left, Matched, Missing, Missing, Missing, Matched)
	expectKinds(t, "right", res.Right, Matched, Extra, Extra, Extra, Matched)
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb", []string{"a", "b"}},
		{"\n", []string{""}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, c := range cases {
		got := splitLines(c.in)
		if strings.Join(got, "|") != strings.Join(c.want, "|") || len(got) != len(c.want) {
			t.Errorf("splitLines(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStats(t *testing.T) {
	res := Compare("a\nb\nc\nd", "a\nx\nb\nC")
	s := Stats(res)
	if s.Rows != res.Len() {
		t.Errorf("rows = %d, want %d", s.Rows, res.Len())
	}
	if s.Matched != 2 || s.Added != 1 || s.Different != 1 || s.Removed != 1 {
		t.Errorf("unexpected summary %+v", s)
	}
	if s.Changes() != 3 {
		t.Errorf("changes = %d, want 3", s.Changes())
	}
}

func TestParseAligner(t *testing.T) {
	if a, ok := ParseAligner("Myers"); !ok || a != AlignerMyers {
		t.Errorf("ParseAligner(Myers) = %v, %v", a, ok)
	}
	if a, ok := ParseAligner(""); !ok || a != AlignerLookahead {
		t.Errorf("ParseAligner(\"\") = %v, %v", a, ok)
	}
	if _, ok := ParseAligner("patience"); ok {
		t.Error("expected unknown aligner to be rejected")
	}
}
