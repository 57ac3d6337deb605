// Package jsonfmt re-indents JSON documents so that structurally equal
// inputs produce the same lines.
package jsonfmt

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Indent is the indentation used by Normalize.
const Indent = "  "

// options keeps source key order and always expands arrays.
var options = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// IsJSON reports whether s is a valid JSON document.
func IsJSON(s string) bool {
	return gjson.Valid(s)
}

// Normalize returns s re-serialized with two-space indentation when it is
// valid JSON, and s unchanged otherwise.
func Normalize(s string) string {
	if !IsJSON(s) {
		return s
	}
	out := pretty.PrettyOptions([]byte(s), options)
	return string(bytes.TrimRight(out, "\n"))
}

// Compact returns valid JSON with all insignificant whitespace removed,
// and s unchanged otherwise.
func Compact(s string) string {
	if !IsJSON(s) {
		return s
	}
	return string(pretty.Ugly([]byte(s)))
}
