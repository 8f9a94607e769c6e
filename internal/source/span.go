package source

// Span is a half-open [Start, End) byte range into source text. Offsets are
// raw byte positions into the buffer given to Index.SetText; no encoding
// adjustment is performed.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan returns the span covering [start, end).
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Pos is a decoded position within a source file.
type Pos struct {
	Line int // Line number, starting from 1.
	Col  int // Column byte offset within the line, starting from 0.
}
