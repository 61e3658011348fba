package codec

import (
	"fmt"
	"github.com/faanross/pixveil/internal/spec"
)

// Granularity selects how many payload bits are embedded per carrier byte.
// The numeric value is the literal bit depth and is what the header stores,
// so it is part of the persisted format.
type Granularity uint8

const (
	FourBits Granularity = 4 // 2 carrier bytes per payload byte
	TwoBits  Granularity = 2 // 4 carrier bytes per payload byte
	OneBit   Granularity = 1 // 8 carrier bytes per payload byte
)

// ParseGranularity validates a granularity value read from a header.
func ParseGranularity(v uint8) (Granularity, error) {
	switch g := Granularity(v); g {
	case FourBits, TwoBits, OneBit:
		return g, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownGranularity, v)
}

// CarriersPerByte returns how many carrier bytes one payload byte occupies.
func (g Granularity) CarriersPerByte() int {
	return spec.BITS_PER_BYTE / int(g)
}

func (g Granularity) String() string {
	return fmt.Sprintf("%d-bit", uint8(g))
}

// mask covers the low bits a sub-code occupies in a carrier byte.
func (g Granularity) mask() byte {
	return byte(1)<<g - 1
}

// Split explodes one payload byte into 8/depth sub-codes, most significant
// bit group first. Every sub-code fits in the low depth bits.
func Split(g Granularity, b byte) []byte {
	n := g.CarriersPerByte()
	codes := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := spec.BITS_PER_BYTE - int(g)*(i+1)
		codes[i] = (b >> shift) & g.mask()
	}
	return codes
}

// Merge reassembles the byte Split produced. Exactly 8/depth sub-codes are
// read; extra entries are ignored, supplying fewer is a caller error.
func Merge(g Granularity, codes []byte) byte {
	n := g.CarriersPerByte()
	var b byte
	for i := 0; i < n; i++ {
		shift := spec.BITS_PER_BYTE - int(g)*(i+1)
		b |= (codes[i] & g.mask()) << shift
	}
	return b
}

// Zip embeds one sub-code into the low depth bits of a carrier byte without
// disturbing its high bits.
func Zip(g Granularity, carrier, code byte) byte {
	return carrier&^g.mask() | code&g.mask()
}

// ZipInto zips src element-wise into the low bits of dst.
func ZipInto(dst, src []byte, g Granularity) {
	for i, code := range src {
		dst[i] = Zip(g, dst[i], code)
	}
}
