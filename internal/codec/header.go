package codec

import (
	"fmt"
	"github.com/faanross/pixveil/internal/spec"
)

// Header field layout inside the 40 reserved carrier bytes. Every numeric
// field is nibble-expanded, one nibble per carrier byte; multi-nibble fields
// keep only as many trailing nibbles as the layout gives them, left-padded
// with zero nibbles.
const (
	magicStart, magicEnd       = 0, 4
	versionStart, versionEnd   = 4, 6
	countStart, countEnd       = 6, 22
	checksumStart, checksumEnd = 22, 38
	compressionOffset          = 38
	granularityOffset          = 39
)

// Header is the fixed-size metadata block embedded ahead of the payload.
// It is always serialized at one nibble per carrier byte regardless of the
// payload granularity, so a decoder can read it before knowing the
// granularity field it contains. ByteCount and Checksum describe the
// original pre-split byte stream (post-compression when a compression pass
// is configured).
type Header struct {
	Magic       uint16
	Version     uint8
	ByteCount   uint64
	Checksum    uint64
	Compression Compression
	Granularity Granularity
}

// NewHeader returns a header for the current format version with a zero byte
// count and checksum; the encoder fills those in after streaming the payload.
func NewHeader(compression Compression, granularity Granularity) Header {
	return Header{
		Magic:       spec.MAGIC,
		Version:     spec.VERSION,
		Compression: compression,
		Granularity: granularity,
	}
}

// Serialize lays the header out over its 40 carrier bytes.
func (h Header) Serialize() [spec.HEADER_LENGTH]byte {
	magic := ToNibbles(uint64(h.Magic))
	version := ToNibbles(uint64(h.Version))
	count := ToNibbles(h.ByteCount)
	checksum := ToNibbles(h.Checksum)
	compression := ToNibbles(uint64(h.Compression))
	granularity := ToNibbles(uint64(h.Granularity))

	var raw [spec.HEADER_LENGTH]byte
	copy(raw[magicStart:magicEnd], magic[spec.NIBBLE_COUNT-(magicEnd-magicStart):])
	copy(raw[versionStart:versionEnd], version[spec.NIBBLE_COUNT-(versionEnd-versionStart):])
	copy(raw[countStart:countEnd], count[:])
	copy(raw[checksumStart:checksumEnd], checksum[:])
	raw[compressionOffset] = compression[spec.NIBBLE_COUNT-1]
	raw[granularityOffset] = granularity[spec.NIBBLE_COUNT-1]
	return raw
}

// ParseHeader reconstructs and validates a header from its 40 carrier bytes.
// Only the low four bits of each byte are read, so noise in the unused high
// bits of the carrier is tolerated. Parsing is all-or-nothing: there are no
// partial or recoverable header states.
func ParseHeader(raw [spec.HEADER_LENGTH]byte) (Header, error) {
	for i := range raw {
		raw[i] &= 0x0F
	}

	magic := uint16(nibbleField(raw[magicStart:magicEnd]))
	if magic != spec.MAGIC {
		return Header{}, fmt.Errorf("%w: %#x", ErrBadMagic, magic)
	}

	version := uint8(nibbleField(raw[versionStart:versionEnd]))
	if version != spec.VERSION {
		return Header{}, fmt.Errorf("%w: %#x", ErrUnsupportedVersion, version)
	}

	compression, err := ParseCompression(uint8(nibbleField(raw[compressionOffset : compressionOffset+1])))
	if err != nil {
		return Header{}, err
	}

	granularity, err := ParseGranularity(uint8(nibbleField(raw[granularityOffset : granularityOffset+1])))
	if err != nil {
		return Header{}, err
	}

	return Header{
		Magic:       magic,
		Version:     version,
		ByteCount:   nibbleField(raw[countStart:countEnd]),
		Checksum:    nibbleField(raw[checksumStart:checksumEnd]),
		Compression: compression,
		Granularity: granularity,
	}, nil
}

// nibbleField collapses a right-aligned run of header nibbles into a value.
func nibbleField(nibbles []byte) uint64 {
	var field [spec.NIBBLE_COUNT]byte
	copy(field[spec.NIBBLE_COUNT-len(nibbles):], nibbles)
	return FromNibbles(field)
}
