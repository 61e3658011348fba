package decoder

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/cespare/xxhash/v2"
	"github.com/faanross/pixveil/internal/codec"
	"github.com/faanross/pixveil/internal/imaging"
	"github.com/faanross/pixveil/internal/spec"
	"github.com/klauspost/compress/gzip"
	"io"
	"log/slog"
)

// Validation errors. Every one of them is terminal for the decode in
// progress; no partial payload is ever returned.
var (
	ErrHeaderMissing    = errors.New("validation failure: image header is not present")
	ErrCarrierTooSmall  = errors.New("validation failure: image data is too small/does not match bytes count in header")
	ErrChecksumMismatch = errors.New("validation failure: data checksum does not match checksum in header")
)

// Decoder recovers a payload hidden in a carrier array by the encoder.
type Decoder struct{}

// New creates a decoder instance.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses and validates the header in the first 40 carrier bytes,
// reconstructs the declared number of payload bytes, verifies the checksum
// and writes the recovered payload to output. The carrier is only read, never
// modified; trailing carriers beyond the declared payload are ignored.
func (d *Decoder) Decode(carrier []byte, output io.Writer) error {
	if len(carrier) < spec.HEADER_LENGTH {
		return ErrHeaderMissing
	}

	var raw [spec.HEADER_LENGTH]byte
	copy(raw[:], carrier[:spec.HEADER_LENGTH])

	header, err := codec.ParseHeader(raw)
	if err != nil {
		return err
	}

	slog.Debug("decoded header",
		"bytes", header.ByteCount,
		"checksum", header.Checksum,
		"granularity", header.Granularity,
		"compression", header.Compression)

	chunkSize := header.Granularity.CarriersPerByte()
	remaining := carrier[spec.HEADER_LENGTH:]

	// The first comparison guards the multiplication below against a
	// nonsensical byte count in a corrupted-but-valid-looking header.
	if header.ByteCount > uint64(len(remaining)) {
		return ErrCarrierTooSmall
	}
	if len(remaining) < int(header.ByteCount)*chunkSize {
		return ErrCarrierTooSmall
	}

	digest := xxhash.New()
	merged := bytes.Buffer{}

	for i := 0; i < int(header.ByteCount); i++ {
		b := codec.Merge(header.Granularity, remaining[i*chunkSize:(i+1)*chunkSize])
		digest.Write([]byte{b})
		merged.WriteByte(b)
	}

	payload := merged.Bytes()
	if header.Compression == codec.GzipCompression {
		payload, err = decompress(payload)
		if err != nil {
			return err
		}
	}

	if digest.Sum64() != header.Checksum {
		return fmt.Errorf("%w (computed: %d, header: %d)",
			ErrChecksumMismatch, digest.Sum64(), header.Checksum)
	}

	if _, err := output.Write(payload); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}

// DecodeImage is the file-level entry point: it decodes the image and
// recovers the payload hidden in its pixel samples.
func (d *Decoder) DecodeImage(input io.Reader, output io.Writer) error {
	pix, _, _, err := imaging.Decode(input)
	if err != nil {
		return err
	}
	return d.Decode(pix, output)
}

// decompress inflates the merged payload bytes in memory.
func decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	inflated, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	if err := reader.Close(); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return inflated, nil
}
