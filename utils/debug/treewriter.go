// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates lines of a tree dump, each indented according to its
// depth.
type TreeWriter struct {
	sb    strings.Builder
	unit  string
	lines int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{unit: "  "}
}

// WithIndent changes indentation unit, empty unit keeps current one.
func (tw *TreeWriter) WithIndent(unit string) *TreeWriter {
	if unit != "" {
		tw.unit = unit
	}
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// Lines returns number of lines written so far.
func (tw *TreeWriter) Lines() int {
	return tw.lines
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.prefix(depth)
	fmt.Fprintf(&tw.sb, format, args...)
	tw.end()
}

// TextBlock writes "label: value" with value quoted so that multi-line and
// control characters stay on a single line.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.prefix(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	tw.sb.WriteString(encodeText(value))
	tw.end()
}

func (tw *TreeWriter) prefix(depth int) {
	for range depth {
		tw.sb.WriteString(tw.unit)
	}
}

func (tw *TreeWriter) end() {
	tw.sb.WriteByte('\n')
	tw.lines++
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
