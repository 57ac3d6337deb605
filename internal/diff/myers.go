package diff

import "strings"

type editOp int

const (
	opEqual editOp = iota
	opInsert
	opDelete
)

// edit is one step of a line script. aIdx is -1 for inserts, bIdx is -1
// for deletes.
type edit struct {
	op   editOp
	aIdx int
	bIdx int
}

// AlignLinesMyers pairs two line sequences using a minimal edit script.
// Lines compare by trimmed content. Within each run of changes the removed
// and added lines are paired one to one and diffed word by word; the excess
// of the longer side becomes Extra/Missing rows.
func AlignLinesMyers(left, right []string) Result {
	trimmedA := trimAll(left)
	trimmedB := trimAll(right)
	edits := myersDiff(trimmedA, trimmedB)

	var res Result
	k := 0
	for k < len(edits) {
		if edits[k].op == opEqual {
			res.add(matched(left[edits[k].aIdx]), matched(right[edits[k].bIdx]))
			k++
			continue
		}

		// Collect the whole run of changes between two equal lines.
		var removed, added []int
		for k < len(edits) && edits[k].op != opEqual {
			if edits[k].op == opDelete {
				removed = append(removed, edits[k].aIdx)
			} else {
				added = append(added, edits[k].bIdx)
			}
			k++
		}

		pairs := min(len(removed), len(added))
		for p := 0; p < pairs; p++ {
			l, r := left[removed[p]], right[added[p]]
			if isStructural(trimmedA[removed[p]]) && isStructural(trimmedB[added[p]]) {
				res.add(matched(l), matched(r))
				continue
			}
			ls, rs := DiffWords(l, r)
			res.add(different(ls), different(rs))
		}
		for _, idx := range removed[pairs:] {
			res.add(extra(left[idx]), missing(left[idx]))
		}
		for _, idx := range added[pairs:] {
			res.add(missing(right[idx]), extra(right[idx]))
		}
	}
	return res
}

func trimAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	return out
}

// myersDiff returns a shortest edit script turning a into b.
func myersDiff(a, b []string) []edit {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		script := make([]edit, m)
		for j := range b {
			script[j] = edit{op: opInsert, aIdx: -1, bIdx: j}
		}
		return script
	case m == 0:
		script := make([]edit, n)
		for i := range a {
			script[i] = edit{op: opDelete, aIdx: i, bIdx: -1}
		}
		return script
	}

	// frontier[k+offset] is the furthest x reached on diagonal k.
	offset := n + m
	frontier := make([]int, 2*offset+1)
	var rounds [][]int

	for d := 0; d <= offset; d++ {
		rounds = append(rounds, append([]int(nil), frontier...))

		for k := -d; k <= d; k += 2 {
			at := k + offset
			var x int
			if k == -d || (k != d && frontier[at-1] < frontier[at+1]) {
				x = frontier[at+1]
			} else {
				x = frontier[at-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			frontier[at] = x

			if x >= n && y >= m {
				return walkBack(rounds, n, m, offset)
			}
		}
	}
	return walkBack(rounds, n, m, offset)
}

// walkBack replays the recorded frontiers from (n, m) to the origin and
// returns the script in forward order.
func walkBack(rounds [][]int, n, m, offset int) []edit {
	var script []edit
	x, y := n, m
	for d := len(rounds) - 1; d >= 0; d-- {
		frontier := rounds[d]
		k := x - y
		at := k + offset

		prevK := k - 1
		if k == -d || (k != d && frontier[at-1] < frontier[at+1]) {
			prevK = k + 1
		}
		prevX := frontier[prevK+offset]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			script = append(script, edit{op: opEqual, aIdx: x, bIdx: y})
		}
		if d > 0 {
			if x == prevX {
				y--
				script = append(script, edit{op: opInsert, aIdx: -1, bIdx: y})
			} else {
				x--
				script = append(script, edit{op: opDelete, aIdx: x, bIdx: -1})
			}
		}
		x, y = prevX, prevY
	}

	for i, j := 0, len(script)-1; i < j; i, j = i+1, j-1 {
		script[i], script[j] = script[j], script[i]
	}
	return script
}
