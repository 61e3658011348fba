package codec

import "fmt"

// Compression selects the optional payload compression pass. The numeric
// value is the header ordinal and is part of the persisted format.
type Compression uint8

const (
	NoCompression   Compression = 0
	GzipCompression Compression = 1
)

// ParseCompression validates a compression ordinal read from a header.
func ParseCompression(v uint8) (Compression, error) {
	switch c := Compression(v); c {
	case NoCompression, GzipCompression:
		return c, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownCompression, v)
}

func (c Compression) String() string {
	if c == GzipCompression {
		return "gzip"
	}
	return "none"
}
