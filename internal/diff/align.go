package diff

// Alignment is a character-level alignment of two strings. A and B have the
// same length; each element is a single rune or "" for a gap.
type Alignment struct {
	A        []string
	B        []string
	Distance int
}

// AlignChars computes the unit-cost edit distance between a and b and
// backtracks one alignment from the full matrix.
//
// Backtracking prefers, in order: consuming equal runes, a substitution
// when the diagonal is strictly cheaper than both neighbours, a gap in A
// (move left) when left <= up, and otherwise a gap in B (move up). The
// order is fixed so the same input always highlights the same characters.
func AlignChars(a, b string) Alignment {
	ra := []rune(a)
	rb := []rune(b)
	n, m := len(ra), len(rb)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min(dp[i-1][j-1], dp[i][j-1], dp[i-1][j])
		}
	}

	size := max(n, m)
	alignedA := make([]string, 0, size)
	alignedB := make([]string, 0, size)

	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ra[i-1] == rb[j-1]:
			alignedA = append(alignedA, string(ra[i-1]))
			alignedB = append(alignedB, string(rb[j-1]))
			i--
			j--
		case i > 0 && j > 0 && dp[i-1][j-1] < dp[i][j-1] && dp[i-1][j-1] < dp[i-1][j]:
			alignedA = append(alignedA, string(ra[i-1]))
			alignedB = append(alignedB, string(rb[j-1]))
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] <= dp[i-1][j]):
			alignedA = append(alignedA, "")
			alignedB = append(alignedB, string(rb[j-1]))
			j--
		default:
			alignedA = append(alignedA, string(ra[i-1]))
			alignedB = append(alignedB, "")
			i--
		}
	}

	reverse(alignedA)
	reverse(alignedB)

	return Alignment{A: alignedA, B: alignedB, Distance: dp[n][m]}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
