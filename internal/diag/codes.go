package diag

// Diagnostic message codes for errors in input programs. Code 0 is reserved
// for note continuation lines and never names a message of its own.
//
// Each template may hold at most two lines: a primary line and one "note"
// line rendered at Note severity. References $1..$9 are substitution
// parameters; see strbuf.FormatTemplate.
const (
	// Source file exceeds the 32-bit offset range.
	CodeFileTooLong = 1

	// Symbol exceeds the maximum symbol length.
	CodeSymbolTooLong = 2

	// Opening paren with no matching close paren.
	CodeUnclosedParen = 3

	// Closing paren with no matching open paren.
	CodeExtraParen = 4

	// Byte that cannot begin any token.
	CodeInvalidChar = 5
)

var messageText = map[int]string{
	CodeFileTooLong: "Source file is too large: file is $1 bytes long, " +
		"but the maximum length is $2 bytes.",
	CodeSymbolTooLong: "Symbol is too long: symbol is $1 bytes long, " +
		"but the maximum length is $2 bytes.",
	CodeUnclosedParen: "Missing closing paren ')'.\n" +
		"To match opening paren '(' here.",
	CodeExtraParen:  "Extra closing paren ')'.",
	CodeInvalidChar: "Invalid character in input.",
}

// MessageText returns the template for the given message code. It is the
// default catalog used by Writer; callers may supply their own lookup.
func MessageText(code int) (string, bool) {
	text, ok := messageText[code]
	return text, ok
}
