// Package console prints diagnostics to a terminal with source context.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"resona/internal/diag"
	"resona/internal/source"
)

// Reporter implements diag.Handler by writing Rust-style diagnostics with a
// quoted source line and a marker under the referenced span.
type Reporter struct {
	filename string
	index    *source.Index
	out      io.Writer
}

// NewReporter returns a reporter for a single file. The index must be built
// from the same text the diagnosed spans refer to.
func NewReporter(out io.Writer, filename string, index *source.Index) *Reporter {
	return &Reporter{
		filename: filename,
		index:    index,
		out:      out,
	}
}

// Report renders one diagnostic line. It never cancels.
func (r *Reporter) Report(span source.Span, level diag.Level, code int, text string) error {
	var b strings.Builder

	paint := levelColor(level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Header: error[R0003]: message
	if code != 0 {
		fmt.Fprintf(&b, "%s[R%04d]: %s\n", paint(level.String()), code, text)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", paint(level.String()), text)
	}

	pos := r.index.Pos(span.Start)
	lineWidth := lineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", lineWidth)

	// Locator: --> filename:line:column
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, pos.Line, pos.Col)

	if line, ok := r.index.Line(pos.Line); ok {
		fmt.Fprintf(&b, "%s %s\n", indent, dim("|"))
		fmt.Fprintf(&b, "%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineWidth, pos.Line)), dim("|"), line)
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("|"), r.marker(span, pos, len(line), level))
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// marker underlines the span within its line.
func (r *Reporter) marker(span source.Span, pos source.Pos, lineLen int, level diag.Level) string {
	length := int(span.Len())
	if length < 1 {
		length = 1
	}
	if rest := lineLen - pos.Col; length > rest && rest > 0 {
		length = rest
	}
	return strings.Repeat(" ", pos.Col) + levelColor(level)(strings.Repeat("^", length))
}

func levelColor(level diag.Level) func(...interface{}) string {
	switch level {
	case diag.Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case diag.Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case diag.Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	}
	return color.New(color.FgRed, color.Bold).SprintFunc()
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
