package codec

import (
	"github.com/faanross/pixveil/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestToNibblesVectors(t *testing.T) {
	assert.Equal(t, [spec.NIBBLE_COUNT]byte{}, ToNibbles(0))

	assert.Equal(t,
		[spec.NIBBLE_COUNT]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x0B, 0x0E, 0x0A, 0x0D},
		ToNibbles(0xBEAD))

	assert.Equal(t,
		[spec.NIBBLE_COUNT]byte{0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F},
		ToNibbles(math.MaxUint64))

	// One nibble per hex digit, most significant first.
	assert.Equal(t,
		[spec.NIBBLE_COUNT]byte{0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF},
		ToNibbles(0x0123456789ABCDEF))
}

func TestNibbleRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 0x0F, 0x10, 0xBEAD, 0xDEADBEEF,
		1 << 32, 1 << 63, math.MaxUint64, 0x0123456789ABCDEF,
	}

	for _, v := range values {
		nibbles := ToNibbles(v)
		for _, n := range nibbles {
			require.Zero(t, n&0xF0, "high bits of nibble must be clear")
		}
		require.Equal(t, v, FromNibbles(nibbles), "%#x", v)
	}
}

func TestFromNibblesIgnoresHighBits(t *testing.T) {
	nibbles := ToNibbles(0xDEADBEEF12345678)
	for i := range nibbles {
		nibbles[i] |= 0xA0
	}
	assert.Equal(t, uint64(0xDEADBEEF12345678), FromNibbles(nibbles))
}
