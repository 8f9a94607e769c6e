// Package lexer tokenizes the s-expression surface syntax of the Resona
// language.
package lexer

// isSpace reports whether c is ASCII whitespace: space, \t, \n, \v, \f, \r.
func isSpace(c byte) bool {
	return c == ' ' || ('\t' <= c && c <= '\r')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isSymbolStart reports whether c can begin a symbol outright. The characters
// - + . also begin symbols but get their own number disambiguation.
func isSymbolStart(c byte) bool {
	if isAlpha(c) {
		return true
	}
	switch c {
	case '!', '$', '%', '&', '*', '/', ':', '<', '=', '>', '?', '@', '^', '_', '~':
		return true
	}
	return false
}

// isSymbolBody reports whether c can appear inside a symbol or number.
// Numbers and symbols share the same body character class; only the leading
// characters differ.
func isSymbolBody(c byte) bool {
	if isAlpha(c) || isDigit(c) {
		return true
	}
	switch c {
	case '-', '!', '$', '%', '&', '*', '+', '.', '/', ':', '<', '=', '>', '?', '@', '^', '_', '~':
		return true
	}
	return false
}

// Tokenizer produces one token per call to Next. It holds only a cursor over
// a borrowed buffer: it never allocates and retains no token history.
type Tokenizer struct {
	text []byte
	pos  uint32
}

// New returns a tokenizer over the given buffer. The buffer is borrowed; the
// tokens returned by Next point into it.
func New(text []byte) *Tokenizer {
	return &Tokenizer{text: text}
}

// scanBody advances past a maximal run of symbol-constituent characters.
func (z *Tokenizer) scanBody() {
	for z.pos < uint32(len(z.text)) && isSymbolBody(z.text[z.pos]) {
		z.pos++
	}
}

// scanLine advances to the next line terminator or end of input, exclusive.
func (z *Tokenizer) scanLine() {
	for z.pos < uint32(len(z.text)) {
		c := z.text[z.pos]
		if c == '\n' || c == '\r' {
			return
		}
		z.pos++
	}
}

// Next returns the next token. At end of input it returns a zero-length End
// token at the current position; an invalid byte yields a one-byte Error
// token and scanning continues after it.
func (z *Tokenizer) Next() Token {
	end := uint32(len(z.text))
	for z.pos < end && isSpace(z.text[z.pos]) {
		z.pos++
	}
	start := z.pos
	if z.pos == end {
		return Token{Type: End, Text: z.text[start:start], Offset: start}
	}
	c := z.text[z.pos]
	z.pos++
	var typ Type
	switch {
	case isSymbolStart(c):
		typ = Symbol
		z.scanBody()

	case c == ';':
		typ = Comment
		z.scanLine()

	case c == '-' || c == '+':
		typ = Symbol
		z.scanBody()
		// -1 and +.5 are numbers; - and +-> are symbols.
		if z.pos-start >= 2 {
			c = z.text[start+1]
			if isDigit(c) {
				typ = Number
			} else if c == '.' && z.pos-start >= 3 && isDigit(z.text[start+2]) {
				typ = Number
			}
		}

	case c == '.':
		typ = Symbol
		z.scanBody()
		if z.pos-start >= 2 && isDigit(z.text[start+1]) {
			typ = Number
		}

	case isDigit(c):
		typ = Number
		z.scanBody()

	case c == '(':
		typ = ParenOpen

	case c == ')':
		typ = ParenClose

	default:
		typ = Error
	}
	return Token{Type: typ, Text: z.text[start:z.pos], Offset: start}
}
