// Package source translates byte offsets in source text to human-readable
// line and column positions.
package source

import "errors"

// ErrTextTooLarge is returned by SetText when the source text cannot be
// addressed with 32-bit byte offsets.
var ErrTextTooLarge = errors.New("source text too large")

// Index maps byte offsets in a source file to line numbers and columns. The
// zero value is ready for SetText.
//
// The index records a "break" at the start offset of every line. The break
// table always begins with 0 and ends with the text length, so breaks bracket
// every line, including a trailing partial line.
type Index struct {
	text   string
	breaks []uint32
}

// SetText builds the line table for the given source text. The index keeps a
// reference to text; it is not copied.
func (x *Index) SetText(text string) error {
	if uint64(len(text)) > uint64(^uint32(0)) {
		return ErrTextTooLarge
	}
	x.text = text
	x.breaks = x.breaks[:0]
	x.breaks = append(x.breaks, 0)
	end := uint32(len(text))
	for pos := uint32(0); pos < end; {
		c := text[pos]
		pos++
		switch c {
		case '\n':
			x.breaks = append(x.breaks, pos)
		case '\r':
			if pos < end && text[pos] == '\n' {
				pos++
			}
			x.breaks = append(x.breaks, pos)
		}
	}
	if x.breaks[len(x.breaks)-1] != end {
		x.breaks = append(x.breaks, end)
	}
	return nil
}

// Line returns the contents of the given 1-indexed line, without the trailing
// line break. The second result is false if no such line exists.
func (x *Index) Line(lineno int) (string, bool) {
	if lineno <= 0 || lineno >= len(x.breaks) {
		return "", false
	}
	start := x.breaks[lineno-1]
	end := x.breaks[lineno]
	line := x.text[start:end]
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, true
}

// Pos translates a byte offset to a line and column. The offset may equal the
// text length, which denotes the end-of-file position.
func (x *Index) Pos(offset uint32) Pos {
	if len(x.breaks) == 0 {
		return Pos{}
	}
	left, right := 0, len(x.breaks)-1
	for right-left > 1 {
		middle := left + (right-left)/2
		val := x.breaks[middle]
		if val < offset {
			left = middle
		} else if val > offset {
			right = middle
		} else {
			left = middle
			break
		}
	}
	return Pos{
		Line: left + 1,
		Col:  int(offset - x.breaks[left]),
	}
}
