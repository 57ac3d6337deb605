package diff

import (
	"fmt"
	"strings"
	"testing"
)

// generateLines creates n lines with the given prefix and line numbers.
func generateLines(prefix string, n int) string {
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = fmt.Sprintf("%s line %d", prefix, i)
	}
	return strings.Join(lines, "\n")
}

// generatePartiallyDifferent creates two texts of size n where every
// changeEvery-th line is changed in the second text.
func generatePartiallyDifferent(n int, changeEvery int) (string, string) {
	aLines := make([]string, n)
	bLines := make([]string, n)
	for i := 0; i < n; i++ {
		aLines[i] = fmt.Sprintf("line %d content", i)
		if i%changeEvery == 0 {
			bLines[i] = fmt.Sprintf("modified line %d content", i)
		} else {
			bLines[i] = aLines[i]
		}
	}
	return strings.Join(aLines, "\n"), strings.Join(bLines, "\n")
}

// generateJSON builds a JSON array of n small objects.
func generateJSON(n int, tag string) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf(`{"id":%d,"name":"%s-%d","active":%t}`, i, tag, i, i%2 == 0)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func BenchmarkCompareIdentical(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("Lines_%d", n), func(b *testing.B) {
			text := generateLines("identical", n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Compare(text, text)
			}
		})
	}
}

func BenchmarkCompareCompletelyDifferent(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("Lines_%d", n), func(b *testing.B) {
			a := generateLines("old", n)
			bText := generateLines("new", n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Compare(a, bText)
			}
		})
	}
}

func BenchmarkComparePartiallySimilar(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		for _, every := range []int{10, 4, 2} {
			b.Run(fmt.Sprintf("Lines_%d/every_%d", n, every), func(b *testing.B) {
				a, bText := generatePartiallyDifferent(n, every)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = Compare(a, bText)
				}
			})
		}
	}
}

func BenchmarkCompareJSON(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("Objects_%d", n), func(b *testing.B) {
			a := generateJSON(n, "old")
			bText := generateJSON(n, "new")
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Compare(a, bText)
			}
		})
	}
}

func BenchmarkCompareMyers(b *testing.B) {
	opts := DefaultOptions()
	opts.Aligner = AlignerMyers

	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("Lines_%d", n), func(b *testing.B) {
			a, bText := generatePartiallyDifferent(n, 4)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = CompareWith(a, bText, opts)
			}
		})
	}
}

func BenchmarkAlignChars(b *testing.B) {
	for _, n := range []int{8, 64, 256} {
		b.Run(fmt.Sprintf("Runes_%d", n), func(b *testing.B) {
			x := strings.Repeat("abcdefgh", n/8)
			y := strings.Repeat("abcdxfgh", n/8)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = AlignChars(x, y)
			}
		})
	}
}

func BenchmarkSplitLines(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d_lines", n), func(b *testing.B) {
			text := generateLines("line", n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = splitLines(text)
			}
		})
	}
}
