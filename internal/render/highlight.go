package render

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/sadopc/splitdiff/internal/jsonfmt"
)

// highlighter colours single lines with chroma.
type highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

func newHighlighter(lexerName, styleName string) *highlighter {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     style,
		formatter: formatter,
	}
}

// line highlights a single line. On any error the line is returned as is.
func (h *highlighter) line(source string) string {
	if strings.TrimSpace(source) == "" {
		return source
	}

	iterator, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return source
	}
	// Lexers append a newline to unterminated input.
	return strings.TrimRight(buf.String(), "\n")
}

// LexerFor picks a chroma lexer for the inputs of a comparison: "json"
// when both sides are JSON documents, "" otherwise.
func LexerFor(left, right string) string {
	if jsonfmt.IsJSON(left) && jsonfmt.IsJSON(right) {
		return "json"
	}
	return ""
}
