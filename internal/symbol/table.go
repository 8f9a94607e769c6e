// Package symbol interns case-insensitive symbol names into stable non-zero
// integer ids.
package symbol

import (
	"errors"
	"math/bits"
)

// MaxLen is the maximum length of a symbol, in bytes.
const MaxLen = 100

// ErrTooLong is returned by Add when the symbol text exceeds MaxLen bytes.
var ErrTooLong = errors.New("symbol too long")

// An entry in the table. An id of 0 marks an empty slot.
type entry struct {
	id   uint32
	text string // Lowercase-normalized symbol text.
}

// Table maps symbol names to stable ids. Two names differing only in ASCII
// case intern to the same id. Ids are assigned starting from 1 in insertion
// order and are never reused or renumbered; 0 means "no symbol". The zero
// value is an empty table.
//
// The table is open-addressed with linear probing. The slot count is always a
// power of two and the live-entry count is kept at or below two thirds of it.
type Table struct {
	arr   []entry
	count uint32
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	return int(t.count)
}

func roundUpPow2(x uint32) uint32 {
	if x <= 1 {
		return 1
	}
	return 1 << bits.Len32(x-1)
}

func eqNorm(text string, norm []byte) bool {
	if len(text) != len(norm) {
		return false
	}
	for i := 0; i < len(norm); i++ {
		if text[i] != norm[i] {
			return false
		}
	}
	return true
}

// transfer rehashes every live entry of src into dst, which must be larger
// than the live count. Slot positions change; ids do not.
func transfer(dst, src []entry) {
	mask := uint32(len(dst) - 1)
	for _, e := range src {
		if e.id == 0 {
			continue
		}
		h := hash([]byte(e.text))
		for i := uint32(0); ; i++ {
			pos := (h + i) & mask
			if dst[pos].id == 0 {
				dst[pos] = e
				break
			}
		}
	}
}

// Add interns the given symbol text and returns its id. If the text was
// already interned (ignoring ASCII case), the previously assigned id is
// returned unchanged.
func (t *Table) Add(text string) (uint32, error) {
	if len(text) > MaxLen {
		return 0, ErrTooLong
	}
	var normbuf [MaxLen]byte
	norm := normbuf[:len(text)]
	for i := 0; i < len(text); i++ {
		c := text[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		norm[i] = c
	}
	h := hash(norm)
	n := uint32(len(t.arr))
	var pos uint32
	for i := uint32(0); i < n; i++ {
		pos = (h + i) & (n - 1)
		if t.arr[pos].id == 0 {
			// Empty slot, symbol not present.
			break
		}
		if eqNorm(t.arr[pos].text, norm) {
			return t.arr[pos].id, nil
		}
	}
	newcount := t.count + 1
	minsize := newcount + newcount>>1
	if n < minsize {
		newsize := roundUpPow2(minsize)
		grown := make([]entry, newsize)
		transfer(grown, t.arr)
		t.arr = grown
		n = newsize
		for i := uint32(0); ; i++ {
			// The table was just enlarged, so there is a free slot.
			pos = (h + i) & (n - 1)
			if t.arr[pos].id == 0 {
				break
			}
		}
	}
	t.arr[pos] = entry{id: newcount, text: string(norm)}
	t.count = newcount
	return newcount, nil
}
