package lexer

import "resona/internal/source"

// Type classifies a token.
type Type int

const (
	End        Type = iota // End of input.
	Error                  // Invalid byte.
	Comment                // ; to end of line, line break excluded.
	Symbol                 // Symbol or operator name.
	Number                 // Numeric literal.
	ParenOpen              // (
	ParenClose             // )
)

var typeNames = [...]string{
	End:        "End",
	Error:      "Error",
	Comment:    "Comment",
	Symbol:     "Symbol",
	Number:     "Number",
	ParenOpen:  "ParenOpen",
	ParenClose: "ParenClose",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// Token is a single token in an s-expression. Text is a subslice of the
// buffer being tokenized, so a token is only valid as long as that buffer
// lives.
type Token struct {
	Type   Type
	Text   []byte
	Offset uint32 // Byte offset of the token in the source buffer.
}

// Span returns the source span covered by the token.
func (t Token) Span() source.Span {
	return source.NewSpan(t.Offset, t.Offset+uint32(len(t.Text)))
}
