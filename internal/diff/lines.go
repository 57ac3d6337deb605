package diff

import (
	"regexp"
	"strings"
)

// Lookahead is how many lines ahead AlignLines searches on either side to
// resynchronize after an insertion or deletion.
const Lookahead = 2

// structuralLine matches a trimmed line holding only a bracket or brace,
// a trailing comma, or both.
var structuralLine = regexp.MustCompile(`^[{}\[\]]?,?$`)

func isStructural(trimmed string) bool {
	return trimmed != "" && structuralLine.MatchString(trimmed)
}

// AlignLines pairs two line sequences sequentially. Lines are never
// reordered; small insertions and deletions are absorbed by a bounded
// lookahead, and paired lines that still differ are diffed word by word.
func AlignLines(left, right []string) Result {
	var res Result
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		if i >= len(left) {
			res.add(missing(right[j]), extra(right[j]))
			j++
			continue
		}
		if j >= len(right) {
			res.add(extra(left[i]), missing(left[i]))
			i++
			continue
		}

		l, r := left[i], right[j]
		if l == r {
			res.add(matched(l), matched(r))
			i++
			j++
			continue
		}

		lt, rt := strings.TrimSpace(l), strings.TrimSpace(r)
		if isStructural(lt) && isStructural(rt) {
			res.add(matched(l), matched(r))
			i++
			j++
			continue
		}

		if lt == "" && rt != "" {
			res.add(missing(r), extra(r))
			j++
			continue
		}
		if rt == "" && lt != "" {
			res.add(extra(l), missing(l))
			i++
			continue
		}

		if lt != rt {
			if d := findAhead(right, j, lt); d > 0 {
				for k := j; k < j+d; k++ {
					res.add(missing(right[k]), extra(right[k]))
				}
				j += d
				continue
			}
			if d := findAhead(left, i, rt); d > 0 {
				for k := i; k < i+d; k++ {
					res.add(extra(left[k]), missing(left[k]))
				}
				i += d
				continue
			}
		}

		if lt == rt {
			res.add(matched(l), matched(r))
		} else {
			ls, rs := DiffWords(l, r)
			res.add(different(ls), different(rs))
		}
		i++
		j++
	}
	return res
}

// findAhead returns the distance (1..Lookahead) from pos to the first line
// in lines whose trimmed text equals want, or 0 when there is none.
func findAhead(lines []string, pos int, want string) int {
	for d := 1; d <= Lookahead && pos+d < len(lines); d++ {
		if strings.TrimSpace(lines[pos+d]) == want {
			return d
		}
	}
	return 0
}

func matched(text string) Line {
	return Line{Text: text, Kind: Matched}
}

func extra(text string) Line {
	return Line{Text: text, Kind: Extra}
}

// missing is a blank placeholder as wide as its counterpart.
func missing(counterpart string) Line {
	return Line{Text: strings.Repeat(" ", Width(counterpart)), Kind: Missing}
}

func different(segs []Segment) Line {
	return Line{Text: SegmentsText(segs), Kind: Different, IsMarkup: true, Segments: segs}
}
