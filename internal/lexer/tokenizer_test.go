package lexer

import (
	"bytes"
	"testing"
)

// Each case text is one token followed by a one-byte delimiter that must not
// be consumed.
var simpleCases = []struct {
	text string
	typ  Type
}{
	{";comment\n", Comment},
	{";\n", Comment},
	{"symbol ", Symbol},
	{"ABCXYZ ", Symbol},
	{"abcxyz ", Symbol},
	{"a0123456789 ", Symbol},
	{"s;", Symbol},
	{"s\n", Symbol},
	{"s(", Symbol},
	{"s)", Symbol},
	{". ", Symbol},
	{"- ", Symbol},
	{"+ ", Symbol},
	{"-. ", Symbol},
	{"+. ", Symbol},
	{"0 ", Number},
	{"987 ", Number},
	{"5.0abc@@&* ", Number},
	{"+0 ", Number},
	{"+555 ", Number},
	{"-9 ", Number},
	{".00 ", Number},
	{".99 ", Number},
	{"-.0 ", Number},
	{"+.9 ", Number},
	{"(a", ParenOpen},
	{")a", ParenClose},
	{"\x01 ", Error},
	{"\x7f ", Error},
	{"\x80 ", Error},
	{"\xff ", Error},
}

func checkToken(t *testing.T, tok Token, typ Type, offset uint32, text string) {
	t.Helper()
	if tok.Type != typ {
		t.Errorf("type = %s, expect %s", tok.Type, typ)
	}
	if tok.Offset != offset {
		t.Errorf("offset = %d, expect %d", tok.Offset, offset)
	}
	if !bytes.Equal(tok.Text, []byte(text)) {
		t.Errorf("text = %q, expect %q", tok.Text, text)
	}
}

func TestSimpleTokens(t *testing.T) {
	for _, tc := range simpleCases {
		want := tc.text[:len(tc.text)-1]

		// The token by itself, with nothing before or after.
		tz := New([]byte(want))
		checkToken(t, tz.Next(), tc.typ, 0, want)

		// The token with text before and after.
		buf := []byte("^ " + tc.text)
		tz = New(buf)
		checkToken(t, tz.Next(), Symbol, 0, "^")
		checkToken(t, tz.Next(), tc.typ, 2, want)
	}
}

// Every punctuation character that can appear in a symbol, doubled, scans as
// a single two-byte symbol.
func TestSymbolPunctuation(t *testing.T) {
	const sym = "-!$%&*+./:<=>?@^_~"
	for i := 0; i < len(sym); i++ {
		buf := []byte{sym[i], sym[i]}
		tz := New(buf)
		checkToken(t, tz.Next(), Symbol, 0, string(buf))
	}
}

func TestEndOfInput(t *testing.T) {
	tz := New(nil)
	checkToken(t, tz.Next(), End, 0, "")

	tz = New([]byte("   "))
	checkToken(t, tz.Next(), End, 3, "")

	// End is stable across repeated calls.
	tz = New([]byte("x"))
	checkToken(t, tz.Next(), Symbol, 0, "x")
	checkToken(t, tz.Next(), End, 1, "")
	checkToken(t, tz.Next(), End, 1, "")
}

func TestInvalidByte(t *testing.T) {
	// A NUL byte is an error token; scanning continues after it.
	tz := New([]byte{0, 'a'})
	checkToken(t, tz.Next(), Error, 0, "\x00")
	checkToken(t, tz.Next(), Symbol, 1, "a")
}

func TestTokenSequence(t *testing.T) {
	input := []byte("(osc 440) ; mix\n-1.5")
	tz := New(input)
	checkToken(t, tz.Next(), ParenOpen, 0, "(")
	checkToken(t, tz.Next(), Symbol, 1, "osc")
	checkToken(t, tz.Next(), Number, 5, "440")
	checkToken(t, tz.Next(), ParenClose, 8, ")")
	checkToken(t, tz.Next(), Comment, 10, "; mix")
	checkToken(t, tz.Next(), Number, 16, "-1.5")
	checkToken(t, tz.Next(), End, 20, "")
}

// Token text must be a view into the scanned buffer, not a copy.
func TestTokenTextBorrowed(t *testing.T) {
	input := []byte("abc")
	tz := New(input)
	tok := tz.Next()
	if &tok.Text[0] != &input[0] {
		t.Error("token text does not alias the input buffer")
	}
	input[0] = 'x'
	if string(tok.Text) != "xbc" {
		t.Errorf("token text = %q after mutation, expect %q", tok.Text, "xbc")
	}
}

func TestTokenSpan(t *testing.T) {
	tz := New([]byte("  hello"))
	tok := tz.Next()
	span := tok.Span()
	if span.Start != 2 || span.End != 7 {
		t.Errorf("span = [%d, %d), expect [2, 7)", span.Start, span.End)
	}
}
