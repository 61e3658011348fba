package spec

// Wire format constants
const (
	MAGIC         = 0xBEAD // format identity, first four header nibbles
	VERSION       = 0x1    // compatibility gate, bumped on format changes
	HEADER_LENGTH = 40     // carrier bytes reserved for the header
	NIBBLE_COUNT  = 16     // nibbles in one expanded 64-bit value
	BITS_PER_BYTE = 8      // standard byte size
)
