// Package strbuf provides the byte buffer used to assemble diagnostic text.
package strbuf

import "math/bits"

// Builder is a growable append-only byte buffer. The zero value is an empty
// buffer ready for use. Capacity grows to the smallest power of two that
// holds the buffer contents plus the appended bytes.
type Builder struct {
	buf []byte
}

// roundUpPow2 returns the smallest power of two >= n.
func roundUpPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func (b *Builder) reserve(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	grown := make([]byte, len(b.buf), roundUpPow2(len(b.buf)+n))
	copy(grown, b.buf)
	b.buf = grown
}

// PutByte appends a single byte to the buffer.
func (b *Builder) PutByte(c byte) {
	b.reserve(1)
	b.buf = append(b.buf, c)
}

// PutBytes appends the given bytes to the buffer.
func (b *Builder) PutBytes(p []byte) {
	b.reserve(len(p))
	b.buf = append(b.buf, p...)
}

// PutString appends the given string to the buffer.
func (b *Builder) PutString(s string) {
	b.reserve(len(s))
	b.buf = append(b.buf, s...)
}

// PutUint64 appends the decimal representation of v, with no leading zeros
// except for the value zero itself.
func (b *Builder) PutUint64(v uint64) {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	b.PutBytes(tmp[i:])
}

// Len returns the number of bytes written to the buffer.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Bytes returns the buffer contents. The slice is valid until the next write.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// String returns the buffer contents as a string.
func (b *Builder) String() string {
	return string(b.buf)
}

// Reset discards the buffer contents but keeps the allocation.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}
