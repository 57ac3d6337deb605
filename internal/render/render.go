// Package render turns a comparison result into side-by-side terminal
// output, plain text or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/splitdiff/internal/diff"
	"github.com/sadopc/splitdiff/internal/ui/theme"
)

// DefaultWidth is used when no width is configured and none can be detected.
const DefaultWidth = 120

const (
	ellipsis  = "…"
	separator = " │ "
)

// Options control side-by-side rendering.
type Options struct {
	Width       int
	LineNumbers bool
	Color       bool
	Lexer       string // chroma lexer for matched rows; "" disables highlighting
	Theme       theme.Theme
}

// Renderer renders comparison rows into fixed-width columns.
type Renderer struct {
	opts   Options
	styles theme.Styles
	hl     *highlighter
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default()
	}
	r := &Renderer{opts: opts, styles: theme.NewStyles(opts.Theme)}
	if opts.Color && opts.Lexer != "" {
		r.hl = newHighlighter(opts.Lexer, opts.Theme.SyntaxStyle)
	}
	return r
}

// Text writes res as two columns with a gutter marker between them.
func Text(w io.Writer, res diff.Result, opts Options) error {
	for _, line := range New(opts).Lines(res) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Plain writes res side by side without any styling.
func Plain(w io.Writer, res diff.Result, width int, lineNumbers bool) error {
	return Text(w, res, Options{Width: width, LineNumbers: lineNumbers})
}

// Lines renders every row of res.
func (r *Renderer) Lines(res diff.Result) []string {
	numWidth := 0
	if r.opts.LineNumbers {
		numWidth = len(fmt.Sprint(res.Len())) + 1
	}
	col := r.columnWidth(numWidth)

	out := make([]string, 0, res.Len())
	leftNo, rightNo := 0, 0
	for i := range res.Left {
		l, rt := res.Left[i], res.Right[i]
		if l.Kind != diff.Missing {
			leftNo++
		}
		if rt.Kind != diff.Missing {
			rightNo++
		}

		var b strings.Builder
		if numWidth > 0 {
			b.WriteString(r.lineNumber(l, leftNo, numWidth))
		}
		b.WriteString(r.cell(l, true, col))
		b.WriteString(r.gutter(l, rt))
		if numWidth > 0 {
			b.WriteString(r.lineNumber(rt, rightNo, numWidth))
		}
		b.WriteString(strings.TrimRight(r.cell(rt, false, col), " "))
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}

func (r *Renderer) columnWidth(numWidth int) int {
	col := (r.opts.Width - runewidth.StringWidth(separator) - 2*numWidth) / 2
	return max(col, 8)
}

// Marker returns the gutter character for a row.
func Marker(l, r diff.Line) string {
	switch {
	case l.Kind == diff.Different:
		return "|"
	case l.Kind == diff.Extra:
		return "<"
	case r.Kind == diff.Extra:
		return ">"
	default:
		return " "
	}
}

func (r *Renderer) gutter(l, rt diff.Line) string {
	m := Marker(l, rt)
	if m == " " {
		return r.style(r.styles.Separator, separator)
	}
	return " " + r.style(r.styles.Gutter, m) + " "
}

func (r *Renderer) lineNumber(l diff.Line, n, width int) string {
	if l.Kind == diff.Missing {
		return strings.Repeat(" ", width)
	}
	return r.style(r.styles.LineNumber, fmt.Sprintf("%*d ", width-1, n))
}

func (r *Renderer) cell(l diff.Line, left bool, width int) string {
	if l.IsMarkup {
		return r.segments(l.Segments, left, width)
	}

	text := fit(expandTabs(l.Text), width)
	pad := strings.Repeat(" ", width-runewidth.StringWidth(text))

	switch l.Kind {
	case diff.Extra:
		if left {
			return r.style(r.styles.Removed, text) + pad
		}
		return r.style(r.styles.Added, text) + pad
	case diff.Missing:
		return r.style(r.styles.Missing, text) + pad
	default:
		if r.hl != nil {
			return r.hl.line(text) + pad
		}
		return r.style(r.styles.Matched, text) + pad
	}
}

// segments renders marked-up content truncated to width.
func (r *Renderer) segments(segs []diff.Segment, left bool, width int) string {
	var b strings.Builder
	used := 0
	truncated := false

	var emit func(diff.Segment, lipgloss.Style)
	emit = func(s diff.Segment, base lipgloss.Style) {
		if truncated {
			return
		}
		if s.Parts != nil {
			style := r.tokenStyle(s.Kind)
			for _, p := range s.Parts {
				emit(p, style)
			}
			return
		}

		style := base
		if s.Kind != diff.Plain {
			style = r.charStyle(s.Kind)
		}
		text := expandTabs(s.Text)
		if w := runewidth.StringWidth(text); used+w > width {
			text = runewidth.Truncate(text, width-used, ellipsis)
			truncated = true
		}
		used += runewidth.StringWidth(text)
		b.WriteString(r.style(style, text))
	}

	base := r.styles.Different
	for _, s := range segs {
		emit(s, base)
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}

func (r *Renderer) tokenStyle(k diff.SegmentKind) lipgloss.Style {
	if k == diff.Inserted {
		return r.styles.InsertedToken
	}
	return r.styles.DeletedToken
}

func (r *Renderer) charStyle(k diff.SegmentKind) lipgloss.Style {
	if k == diff.Inserted {
		return r.styles.InsertedChar
	}
	return r.styles.DeletedChar
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.opts.Color || text == "" {
		return text
	}
	return s.Render(text)
}

// fit truncates s to width display columns.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", diff.TabWidth))
}
