package render

import (
	"encoding/json"
	"io"

	"github.com/sadopc/splitdiff/internal/diff"
)

// Report is the JSON document written by JSON.
type Report struct {
	Summary diff.Summary `json:"summary"`
	Left    []diff.Line  `json:"left"`
	Right   []diff.Line  `json:"right"`
}

// JSON writes res and its summary as indented JSON.
func JSON(w io.Writer, res diff.Result) error {
	left, right := res.Left, res.Right
	if left == nil {
		left = []diff.Line{}
	}
	if right == nil {
		right = []diff.Line{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Report{
		Summary: diff.Stats(res),
		Left:    left,
		Right:   right,
	})
}
