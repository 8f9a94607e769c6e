package diag

import (
	"errors"
	"strings"

	"resona/internal/strbuf"
)

// maxLines is the hard cap on lines per message template: a primary line and
// one continuation note line.
const maxLines = 2

// Writer formats diagnostic messages and dispatches them line by line to a
// Handler. The zero value uses the built-in message catalog.
type Writer struct {
	// Lookup returns the template for a message code. Nil means the
	// built-in catalog (MessageText).
	Lookup func(code int) (string, bool)
}

// splitMessage cuts a template into its component lines, at most maxLines.
func splitMessage(text string) []string {
	lines := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		j := strings.IndexByte(text, '\n')
		if j < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:j])
		text = text[j+1:]
	}
	return lines
}

// Write renders the message with the given code and dispatches one handler
// call per template line. The leading entries of params must be span
// parameters, one per line, anchoring each line; the remaining entries are
// the substitution parameters for $1..$9 references. The first line is
// reported with the given level and code, every following line with Note and
// code 0.
//
// If the handler returns Canceled, the remaining lines are still rendered
// and dispatched, and Write returns Canceled once all lines have been
// processed. Any other handler error aborts immediately.
func (w *Writer) Write(h Handler, level Level, code int, params []strbuf.Param) error {
	lookup := w.Lookup
	if lookup == nil {
		lookup = MessageText
	}
	text, ok := lookup(code)
	if !ok {
		return ErrUnknownMessage
	}
	lines := splitMessage(text)
	if len(params) < len(lines) {
		return ErrBadParams
	}
	for i := range lines {
		if _, ok := params[i].Span(); !ok {
			return ErrBadParams
		}
	}
	rest := params[len(lines):]
	canceled := false
	var buf strbuf.Builder
	for i, line := range lines {
		buf.Reset()
		buf.FormatTemplate(line, rest)
		span, _ := params[i].Span()
		lineLevel, lineCode := level, code
		if i > 0 {
			lineLevel, lineCode = Note, 0
		}
		if err := h.Report(span, lineLevel, lineCode, buf.String()); err != nil {
			// A canceled handler still sees the rest of this message.
			if errors.Is(err, Canceled) {
				canceled = true
			} else {
				return err
			}
		}
	}
	if canceled {
		return Canceled
	}
	return nil
}
