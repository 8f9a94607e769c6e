// Package diag renders structured diagnostic messages with embedded source
// references and substitution parameters.
package diag

import (
	"errors"

	"resona/internal/source"
)

// Level is the severity of a diagnostic message.
type Level int

const (
	Error Level = iota
	Warning
	Note
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	}
	return "unknown"
}

// Canceled is the cooperative cancellation signal. A Handler returns it to
// stop compilation; the writer still dispatches the remaining lines of the
// current message before propagating it.
var Canceled = errors.New("canceled")

// ErrUnknownMessage is returned by Write for a message code with no template.
var ErrUnknownMessage = errors.New("unknown message code")

// ErrBadParams is returned by Write when the parameter list does not start
// with one span parameter per message line.
var ErrBadParams = errors.New("malformed parameter list")

// Handler receives rendered diagnostic lines. It is implemented by whatever
// collects or prints diagnostics; the core depends only on this interface.
type Handler interface {
	Report(span source.Span, level Level, code int, text string) error
}
