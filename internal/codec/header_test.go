package codec

import (
	"github.com/faanross/pixveil/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestSerializeLayout(t *testing.T) {
	h := Header{
		Magic:       spec.MAGIC,
		Version:     spec.VERSION,
		ByteCount:   0x0123456789ABCDEF,
		Checksum:    0xFEDCBA9876543210,
		Compression: GzipCompression,
		Granularity: TwoBits,
	}

	raw := h.Serialize()

	// Magic 0xBEAD, one nibble per carrier.
	assert.Equal(t, []byte{0x0B, 0x0E, 0x0A, 0x0D}, raw[0:4])
	// Version 0x01.
	assert.Equal(t, []byte{0x00, 0x01}, raw[4:6])
	// Byte count, 16 nibbles big-endian.
	assert.Equal(t,
		[]byte{0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xA, 0xB, 0xC, 0xD, 0xE, 0xF},
		raw[6:22])
	// Checksum, 16 nibbles big-endian.
	assert.Equal(t,
		[]byte{0xF, 0xE, 0xD, 0xC, 0xB, 0xA, 0x9, 0x8, 0x7, 0x6, 0x5, 0x4, 0x3, 0x2, 0x1, 0x0},
		raw[22:38])
	// Compression ordinal and literal granularity value.
	assert.Equal(t, byte(1), raw[38])
	assert.Equal(t, byte(2), raw[39])

	// Only the low nibble of every carrier byte is used.
	for i, b := range raw {
		assert.Zero(t, b&0xF0, "high bits set at carrier %d", i)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	counts := []uint64{0, 1, 548, math.MaxUint64}
	checksums := []uint64{0, 0xDEADBEEF, math.MaxUint64}

	for _, compression := range []Compression{NoCompression, GzipCompression} {
		for _, granularity := range []Granularity{FourBits, TwoBits, OneBit} {
			for _, count := range counts {
				for _, checksum := range checksums {
					h := NewHeader(compression, granularity)
					h.ByteCount = count
					h.Checksum = checksum

					parsed, err := ParseHeader(h.Serialize())
					require.NoError(t, err)
					require.Equal(t, h, parsed)
				}
			}
		}
	}
}

func TestParseHeaderMasksHighBits(t *testing.T) {
	h := NewHeader(GzipCompression, OneBit)
	h.ByteCount = 42
	h.Checksum = 0x123456789ABCDEF0

	raw := h.Serialize()
	// Simulate the noise the surrounding image contributes to the unused
	// high bits of each carrier byte.
	for i := range raw {
		raw[i] |= byte(i) << 4
	}

	parsed, err := ParseHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParseHeaderBadMagic(t *testing.T) {
	var raw [spec.HEADER_LENGTH]byte
	_, err := ParseHeader(raw)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestParseHeaderUnsupportedVersion(t *testing.T) {
	h := NewHeader(NoCompression, FourBits)
	raw := h.Serialize()
	raw[4], raw[5] = 0x0, 0x2

	_, err := ParseHeader(raw)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParseHeaderUnknownCompression(t *testing.T) {
	h := NewHeader(NoCompression, FourBits)
	raw := h.Serialize()
	raw[38] = 0x7

	_, err := ParseHeader(raw)
	assert.ErrorIs(t, err, ErrUnknownCompression)
}

func TestParseHeaderUnknownGranularity(t *testing.T) {
	h := NewHeader(NoCompression, FourBits)
	raw := h.Serialize()
	raw[39] = 0x3

	_, err := ParseHeader(raw)
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression(0)
	require.NoError(t, err)
	assert.Equal(t, NoCompression, c)

	c, err = ParseCompression(1)
	require.NoError(t, err)
	assert.Equal(t, GzipCompression, c)

	_, err = ParseCompression(2)
	assert.ErrorIs(t, err, ErrUnknownCompression)
}
