package symbol

import (
	"encoding/binary"
	"math/bits"
)

// hash mixes the input into a 32-bit value, Murmur3 style: little-endian
// 4-byte blocks with multiply/rotate, a tail for the final 0-3 bytes, and a
// 64-bit avalanche folded back to 32 bits. It is deterministic within a run;
// no stability across versions is promised.
func hash(p []byte) uint32 {
	const c1, c2 = 0xcc9e2d51, 0x1b873593
	y := uint32(0xc90fdaa2)
	n := len(p) / 4
	for i := 0; i < n; i++ {
		x := binary.LittleEndian.Uint32(p[4*i:])
		x *= c1
		x = bits.RotateLeft32(x, 15)
		x *= c2
		y ^= x
		y = bits.RotateLeft32(y, 13)
		y = y*5 + 0xe6546b64
	}
	var x uint32
	switch len(p) & 3 {
	case 3:
		x = uint32(p[4*n+2]) << 16
		fallthrough
	case 2:
		x |= uint32(p[4*n+1]) << 8
		fallthrough
	case 1:
		x |= uint32(p[4*n])
		x *= c1
		x = bits.RotateLeft32(x, 15)
		x *= c2
		y ^= x
	}
	y ^= uint32(len(p))
	z := uint64(y)
	z *= 0xff51afd7ed558ccd
	z ^= z >> 33
	z *= 0xc4ceb9fe1a85ec53
	z ^= z >> 33
	return uint32(z)
}
