package diff

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of columns a tab occupies when measuring and
// rendering lines.
const TabWidth = 4

// Width returns the display width of s with tabs expanded to TabWidth
// columns.
func Width(s string) int {
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabWidth))
	}
	return runewidth.StringWidth(s)
}
