package history

import (
	"time"

	"github.com/sadopc/splitdiff/internal/diff"
)

// Entry is one recorded comparison.
type Entry struct {
	ID            int64
	Ref           string // stable public identifier (uuid)
	LeftLabel     string // file path, "-" or "clipboard"
	RightLabel    string
	Left          string // raw left input
	Right         string // raw right input
	Algorithm     string
	NormalizeJSON bool // JSON inputs were re-indented before comparing
	Summary       diff.Summary
	Timestamp     time.Time
}

// Title is the label pair shown in listings.
func (e Entry) Title() string {
	return e.LeftLabel + " ↔ " + e.RightLabel
}

// ShortRef is the first eight characters of Ref.
func (e Entry) ShortRef() string {
	if len(e.Ref) > 8 {
		return e.Ref[:8]
	}
	return e.Ref
}
