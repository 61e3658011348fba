package codec

import "github.com/faanross/pixveil/internal/spec"

// ToNibbles expands a 64-bit value into one nibble per byte, most significant
// nibble first. The high four bits of every output byte are zero. Storing one
// nibble per carrier byte lets header fields survive any payload granularity:
// the header region is always readable from the low four bits alone.
func ToNibbles(v uint64) [spec.NIBBLE_COUNT]byte {
	var out [spec.NIBBLE_COUNT]byte
	for i := range out {
		shift := uint(spec.NIBBLE_COUNT-1-i) * 4
		out[i] = byte(v>>shift) & 0x0F
	}
	return out
}

// FromNibbles is the inverse of ToNibbles. The high four bits of every input
// byte are ignored.
func FromNibbles(data [spec.NIBBLE_COUNT]byte) uint64 {
	var v uint64
	for i, b := range data {
		shift := uint(spec.NIBBLE_COUNT-1-i) * 4
		v |= uint64(b&0x0F) << shift
	}
	return v
}
