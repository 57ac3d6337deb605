package jsonfmt

import "testing"

func TestNormalizeObject(t *testing.T) {
	got := Normalize(`{"a":1,"b":[true,null]}`)
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeKeepsKeyOrder(t *testing.T) {
	got := Normalize(`{"z":1,"a":2}`)
	want := "{\n  \"z\": 1,\n  \"a\": 2\n}"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeAlreadyPretty(t *testing.T) {
	in := "{\n  \"a\": 1\n}"
	if got := Normalize(`{"a":1}`); got != in {
		t.Errorf("compact input: got %q, want %q", got, in)
	}
	if got := Normalize(in); got != in {
		t.Errorf("pretty input: got %q, want %q", got, in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		`{"a":{"b":[1,2,{"c":"d"}]},"e":[]}`,
		`[1, 2, 3]`,
		`"just a string"`,
		`42`,
		`{}`,
		`  {"padded": true}  `,
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestNormalizeInvalidPassesThrough(t *testing.T) {
	inputs := []string{
		"",
		"color: red",
		`{"a":1`,
		"line one\nline two",
		`{'single': 'quotes'}`,
	}
	for _, in := range inputs {
		if got := Normalize(in); got != in {
			t.Errorf("Normalize(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestCompact(t *testing.T) {
	if got := Compact("{\n  \"a\": [1, 2]\n}"); got != `{"a":[1,2]}` {
		t.Errorf("Compact() = %q", got)
	}
	if got := Compact("not json"); got != "not json" {
		t.Errorf("Compact() changed invalid input: %q", got)
	}
}
