package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// breakers end a word run. '.' is intentionally absent: it stays inside
// words, so "1.5" and "a.b" are single tokens.
const breakers = "{}[],:"

type tokenClass int

const (
	classWord tokenClass = iota
	classSpace
	classStruct
)

func classify(r rune) tokenClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case strings.ContainsRune(breakers, r):
		return classStruct
	default:
		return classWord
	}
}

// Tokenize splits a line into word runs, whitespace runs and single
// structural characters. Concatenating the tokens yields the line.
func Tokenize(line string) []string {
	if line == "" {
		return nil
	}

	tokens := make([]string, 0, len(line)/2+1)
	start := 0
	prev := classify(firstRune(line))
	for i, r := range line {
		if i == 0 {
			continue
		}
		class := classify(r)
		// Structural characters never merge, not even with each other.
		if class != prev || class == classStruct {
			tokens = append(tokens, line[start:i])
			start = i
		}
		prev = class
	}
	tokens = append(tokens, line[start:])
	return tokens
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
