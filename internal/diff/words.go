package diff

import "strings"

// DiffWords aligns the tokens of two lines left to right and returns the
// marked-up rendering of each side. Changed tokens are wrapped in a single
// Deleted (left) or Inserted (right) segment whose Parts highlight the
// differing characters.
func DiffWords(a, b string) (left, right []Segment) {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)

	var la, lb segmentList
	i, j := 0, 0
	for i < len(tokensA) || j < len(tokensB) {
		switch {
		case i >= len(tokensA):
			tok := tokensB[j]
			la.add(Plain, blank(tok))
			lb.add(Inserted, tok)
			j++
		case j >= len(tokensB):
			tok := tokensA[i]
			la.add(Deleted, tok)
			lb.add(Plain, blank(tok))
			i++
		case tokensA[i] == tokensB[j]:
			la.add(Plain, tokensA[i])
			lb.add(Plain, tokensB[j])
			i++
			j++
		case isBlank(tokensA[i]) && isBlank(tokensB[j]):
			w := max(Width(tokensA[i]), Width(tokensB[j]))
			la.add(Plain, strings.Repeat(" ", w))
			lb.add(Plain, strings.Repeat(" ", w))
			i++
			j++
		default:
			da, db := diffChars(tokensA[i], tokensB[j])
			la.wrap(Deleted, da)
			lb.wrap(Inserted, db)
			i++
			j++
		}
	}
	return la.segments, lb.segments
}

// diffChars highlights the characters that differ between two tokens.
// A gap contributes nothing to its side.
func diffChars(a, b string) (left, right []Segment) {
	al := AlignChars(a, b)

	var la, lb segmentList
	for k := range al.A {
		ca, cb := al.A[k], al.B[k]
		if ca == cb {
			la.add(Plain, ca)
			lb.add(Plain, cb)
			continue
		}
		if ca != "" {
			la.add(Deleted, ca)
		}
		if cb != "" {
			lb.add(Inserted, cb)
		}
	}
	return la.segments, lb.segments
}

// blank returns spaces covering the display width of s, tabs included.
func blank(s string) string {
	return strings.Repeat(" ", Width(s))
}

// segmentList accumulates segments, merging adjacent flat runs of the same
// kind.
type segmentList struct {
	segments []Segment
}

func (l *segmentList) add(kind SegmentKind, text string) {
	if text == "" {
		return
	}
	if n := len(l.segments); n > 0 {
		last := &l.segments[n-1]
		if last.Kind == kind && last.Parts == nil {
			last.Text += text
			return
		}
	}
	l.segments = append(l.segments, Segment{Kind: kind, Text: text})
}

func (l *segmentList) wrap(kind SegmentKind, parts []Segment) {
	if len(parts) == 0 {
		return
	}
	var text strings.Builder
	for _, p := range parts {
		text.WriteString(p.Text)
	}
	l.segments = append(l.segments, Segment{Kind: kind, Text: text.String(), Parts: parts})
}

// SegmentsText concatenates the text of segments.
func SegmentsText(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
