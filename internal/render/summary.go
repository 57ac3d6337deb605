package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sadopc/splitdiff/internal/diff"
)

// Summary describes a comparison in one line, e.g.
// "1,204 rows: 3 changed, 1 added, 0 removed".
func Summary(s diff.Summary) string {
	if s.Rows == 0 {
		return "both sides empty"
	}
	if s.Changes() == 0 {
		return fmt.Sprintf("%s %s, identical", humanize.Comma(int64(s.Rows)), plural(s.Rows, "row"))
	}
	parts := []string{
		humanize.Comma(int64(s.Different)) + " changed",
		humanize.Comma(int64(s.Added)) + " added",
		humanize.Comma(int64(s.Removed)) + " removed",
	}
	return fmt.Sprintf("%s %s: %s", humanize.Comma(int64(s.Rows)), plural(s.Rows, "row"), strings.Join(parts, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
