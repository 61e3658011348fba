package decoder

import (
	"fmt"
	"github.com/faanross/pixveil/internal/codec"
	"github.com/faanross/pixveil/internal/spec"
)

// AnalyzeCarrier prints an LSB distribution sample and, when the header
// region carries the expected magic, the decoded header fields. Used by the
// decoder CLI's -analyze flag.
func AnalyzeCarrier(pix []byte) {
	fmt.Printf("\n🔍 Carrier Analysis:\n")
	fmt.Printf("   Carrier bytes: %d\n", len(pix))

	sample := min(len(pix), 10000)
	if sample > 0 {
		zeros := 0
		for _, b := range pix[:sample] {
			if b&1 == 0 {
				zeros++
			}
		}

		ratio := float64(zeros) / float64(sample) * 100
		fmt.Printf("   Sample LSB distribution: %.1f%% zeros, %.1f%% ones\n", ratio, 100-ratio)

		if ratio > 45 && ratio < 55 {
			fmt.Printf("   LSB plane looks uniform - may carry embedded data\n")
		} else {
			fmt.Printf("   LSB plane looks biased - likely a natural image\n")
		}
	}

	if len(pix) < spec.HEADER_LENGTH {
		fmt.Printf("   Too small to hold a header\n")
		return
	}

	var raw [spec.HEADER_LENGTH]byte
	copy(raw[:], pix[:spec.HEADER_LENGTH])

	header, err := codec.ParseHeader(raw)
	if err != nil {
		fmt.Printf("   No recognizable header: %v\n", err)
		return
	}

	fmt.Printf("\n   Header found:\n")
	fmt.Printf("     Version: %d\n", header.Version)
	fmt.Printf("     Payload bytes: %d\n", header.ByteCount)
	fmt.Printf("     Checksum: %#016x\n", header.Checksum)
	fmt.Printf("     Granularity: %s\n", header.Granularity)
	fmt.Printf("     Compression: %s\n", header.Compression)
}
