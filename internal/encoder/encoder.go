package encoder

import (
	"bufio"
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

// ErrCoverTooSmall reports that the header plus the split payload needs more
// carrier bytes than the cover image has.
var ErrCoverTooSmall = errors.New("cover image is too small for input")

// Encoder hides a payload stream inside the low bits of a carrier array.
type Encoder struct {
	compression codec.Compression
	granularity codec.Granularity
}

// New creates an encoder with the given compression mode and payload
// granularity.
func New(compression codec.Compression, granularity codec.Granularity) *Encoder {
	return &Encoder{
		compression: compression,
		granularity: granularity,
	}
}

// encodeOutput holds the serialized header and the payload sub-codes pending
// their merge into the carrier. It only lives for the duration of one encode.
type encodeOutput struct {
	header [spec.HEADER_LENGTH]byte
	data   []byte
}

func (out *encodeOutput) size() int {
	return len(out.header) + len(out.data)
}

// Encode overwrites the low bits of carrier in place with the header and the
// split payload. The header region is always embedded at 4-bit granularity so
// a decoder can read it before learning the payload granularity stored inside
// it; the payload region uses the configured granularity.
func (e *Encoder) Encode(carrier []byte, payload io.Reader) error {
	if e.compression == codec.GzipCompression {
		compressed, err := compress(payload)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(compressed)
	}

	out, err := e.encodePayload(payload)
	if err != nil {
		return err
	}

	if err := checkUtilisation(len(carrier), out.size()); err != nil {
		return err
	}

	codec.ZipInto(carrier[:spec.HEADER_LENGTH], out.header[:], codec.FourBits)
	codec.ZipInto(carrier[spec.HEADER_LENGTH:spec.HEADER_LENGTH+len(out.data)], out.data, e.granularity)

	return nil
}

// EncodeImage is the file-level entry point: it decodes the cover image,
// embeds the payload into its pixel samples and writes the result as PNG.
func (e *Encoder) EncodeImage(cover, payload io.Reader, output io.Writer) error {
	pix, width, height, err := imaging.Decode(cover)
	if err != nil {
		return err
	}

	if err := e.Encode(pix, payload); err != nil {
		return err
	}

	return imaging.Encode(output, pix, width, height)
}

// encodePayload streams the payload one byte at a time, splitting each byte
// into sub-codes while folding it into the running checksum and byte count.
func (e *Encoder) encodePayload(payload io.Reader) (*encodeOutput, error) {
	reader := bufio.NewReader(payload)
	digest := xxhash.New()
	header := codec.NewHeader(e.compression, e.granularity)

	var data []byte
	for {
		b, err := reader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading payload: %w", err)
		}

		digest.Write([]byte{b})
		data = append(data, codec.Split(e.granularity, b)...)
		header.ByteCount++
	}

	header.Checksum = digest.Sum64()

	slog.Debug("encode header",
		"bytes", header.ByteCount,
		"checksum", header.Checksum,
		"granularity", header.Granularity,
		"compression", header.Compression)

	return &encodeOutput{header: header.Serialize(), data: data}, nil
}

// compress runs the gzip pass over the payload, buffering the result in
// memory.
func compress(payload io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)

	uncompressed, err := io.Copy(writer, payload)
	if err != nil {
		return nil, fmt.Errorf("compression write failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("compression close failed: %w", err)
	}

	if uncompressed > 0 {
		slog.Debug("compression ratio",
			"ratio", fmt.Sprintf("%.4f%%", float64(buf.Len())/float64(uncompressed)*100))
	}

	return buf.Bytes(), nil
}

// checkUtilisation makes sure the encoded bytes fit into the cover image and
// reports how much of it they occupy.
func checkUtilisation(coverSize, encodedSize int) error {
	utilisation := float64(encodedSize) / float64(coverSize) * 100

	if encodedSize > coverSize {
		return fmt.Errorf("%w, perhaps try a different encoding granularity or compress! (cover image size: %d, encoded data size: %d, utilisation: %.4f%%)",
			ErrCoverTooSmall, coverSize, encodedSize, utilisation)
	}

	slog.Debug("cover utilisation",
		"cover_image_size", coverSize,
		"encoded_data_size", encodedSize,
		"utilisation", fmt.Sprintf("%.4f%%", utilisation))

	return nil
}
