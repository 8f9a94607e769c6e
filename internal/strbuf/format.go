package strbuf

import (
	"strings"

	"resona/internal/source"
)

type paramType int

const (
	paramNone paramType = iota
	paramU64
	paramSpan
)

// Param is a parameter for template interpolation: either a 64-bit unsigned
// integer or a source span.
type Param struct {
	typ  paramType
	u64  uint64
	span source.Span
}

// U64 returns an integer format parameter.
func U64(v uint64) Param {
	return Param{typ: paramU64, u64: v}
}

// SpanParam returns a source span format parameter. Spans are not rendered by
// FormatTemplate; they anchor diagnostic lines (see the diag package).
func SpanParam(s source.Span) Param {
	return Param{typ: paramSpan, span: s}
}

// Span returns the span value and whether the parameter holds one.
func (p Param) Span() (source.Span, bool) {
	return p.span, p.typ == paramSpan
}

// FormatTemplate expands a message template and appends it to the buffer.
// References $1..$9 are replaced by the corresponding parameter ($1 by
// params[0], and so on), and $$ emits a literal $.
//
// Errors in the template or parameters are never fatal: short markers are
// embedded in the output instead, so that rendering a diagnostic cannot
// itself fail. The markers are:
//
//   - $(missing): the reference names a parameter that was not supplied.
//   - $(badformat): a $ escape that is not $1..$9 or $$.
//   - $(badtype): the parameter is not renderable as text.
func (b *Builder) FormatTemplate(msg string, params []Param) {
	for msg != "" {
		dollar := strings.IndexByte(msg, '$')
		if dollar < 0 {
			b.PutString(msg)
			return
		}
		b.PutString(msg[:dollar])
		if dollar+1 == len(msg) {
			// $ at end of template.
			b.PutString("$(badformat)")
			return
		}
		c := msg[dollar+1]
		msg = msg[dollar+2:]
		switch {
		case '1' <= c && c <= '9':
			idx := int(c - '1')
			if idx >= len(params) {
				b.PutString("$(missing)")
				break
			}
			switch params[idx].typ {
			case paramU64:
				b.PutUint64(params[idx].u64)
			default:
				b.PutString("$(badtype)")
			}
		case c == '$':
			b.PutByte('$')
		default:
			b.PutString("$(badformat)")
		}
	}
}
