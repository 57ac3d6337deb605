package diff

import (
	"strings"

	"github.com/sadopc/splitdiff/internal/jsonfmt"
)

// Kind classifies one side of a comparison row.
type Kind int

const (
	// Matched lines are present on both sides and considered equal.
	Matched Kind = iota
	// Missing is a blank placeholder standing in for the other side's Extra line.
	Missing
	// Extra lines exist on this side only.
	Extra
	// Different lines are paired but their content differs; they carry markup.
	Different
)

func (k Kind) String() string {
	switch k {
	case Matched:
		return "matched"
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	case Different:
		return "different"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SegmentKind tags a run of text inside a marked-up line.
type SegmentKind int

const (
	Plain SegmentKind = iota
	Inserted
	Deleted
)

func (k SegmentKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	default:
		return "plain"
	}
}

// MarshalText renders the segment kind by name in JSON output.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a tagged run of text. A changed token is a single Inserted or
// Deleted segment whose Parts hold the character-level detail.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Text  string      `json:"text"`
	Parts []Segment   `json:"parts,omitempty"`
}

// Line is one rendered row on one side of a comparison.
type Line struct {
	Text     string    `json:"text"`
	Kind     Kind      `json:"kind"`
	IsMarkup bool      `json:"is_markup"`
	Segments []Segment `json:"segments,omitempty"`
}

// Result holds the paired rows of a comparison. Left and Right always have
// the same length and entries at the same index belong to the same row.
type Result struct {
	Left  []Line `json:"left"`
	Right []Line `json:"right"`
}

// Len returns the number of rows.
func (r Result) Len() int {
	return len(r.Left)
}

// Identical reports whether every row matched.
func (r Result) Identical() bool {
	for i := range r.Left {
		if r.Left[i].Kind != Matched || r.Right[i].Kind != Matched {
			return false
		}
	}
	return true
}

func (r *Result) add(left, right Line) {
	r.Left = append(r.Left, left)
	r.Right = append(r.Right, right)
}

// Summary counts rows by classification.
type Summary struct {
	Rows      int `json:"rows"`
	Matched   int `json:"matched"`
	Added     int `json:"added"`     // Extra on the right
	Removed   int `json:"removed"`   // Extra on the left
	Different int `json:"different"` // paired but changed
}

// Changes returns the number of rows that are not matched.
func (s Summary) Changes() int {
	return s.Added + s.Removed + s.Different
}

// Stats summarizes a comparison result.
func Stats(r Result) Summary {
	s := Summary{Rows: r.Len()}
	for i := range r.Left {
		switch {
		case r.Left[i].Kind == Different:
			s.Different++
		case r.Left[i].Kind == Extra:
			s.Removed++
		case r.Right[i].Kind == Extra:
			s.Added++
		default:
			s.Matched++
		}
	}
	return s
}

// Aligner selects the line alignment strategy.
type Aligner int

const (
	// AlignerLookahead walks both sides sequentially and resynchronizes with
	// a bounded lookahead. It is the default.
	AlignerLookahead Aligner = iota
	// AlignerMyers uses a minimal line-level edit script.
	AlignerMyers
)

func (a Aligner) String() string {
	if a == AlignerMyers {
		return "myers"
	}
	return "lookahead"
}

// ParseAligner maps a configuration name to an Aligner.
func ParseAligner(name string) (Aligner, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lookahead":
		return AlignerLookahead, true
	case "myers":
		return AlignerMyers, true
	}
	return AlignerLookahead, false
}

// Options tweak a comparison.
type Options struct {
	NormalizeJSON bool
	Aligner       Aligner
}

// DefaultOptions returns the options used by Compare.
func DefaultOptions() Options {
	return Options{NormalizeJSON: true, Aligner: AlignerLookahead}
}

// Compare normalizes both inputs as JSON where possible and aligns them
// line by line.
func Compare(left, right string) Result {
	return CompareWith(left, right, DefaultOptions())
}

// CompareWith is Compare with explicit options.
func CompareWith(left, right string, opts Options) Result {
	if opts.NormalizeJSON {
		left = jsonfmt.Normalize(left)
		right = jsonfmt.Normalize(right)
	}

	leftLines := splitLines(left)
	rightLines := splitLines(right)

	if opts.Aligner == AlignerMyers {
		return AlignLinesMyers(leftLines, rightLines)
	}
	return AlignLines(leftLines, rightLines)
}

// splitLines splits on "\n", drops a trailing "\r" from each line and does
// not produce an empty final line for input ending in a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, strings.TrimSuffix(s[start:i], "\r"))
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, strings.TrimSuffix(s[start:], "\r"))
	}
	return lines
}
