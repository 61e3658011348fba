package codec

import "errors"

// Structural header errors. Header parsing is all-or-nothing: any of these
// aborts a decode before payload processing starts.
var (
	ErrBadMagic           = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrUnknownCompression = errors.New("unsupported value for compression mode")
	ErrUnknownGranularity = errors.New("unsupported value for granularity")
)
