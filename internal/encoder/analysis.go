package encoder

import (
	"fmt"
	"github.com/faanross/pixveil/internal/codec"
	"github.com/faanross/pixveil/internal/spec"
)

// Capacity returns how many payload bytes fit into a cover of coverSize
// carrier bytes at the given granularity, after the fixed header reservation.
func Capacity(coverSize int, granularity codec.Granularity) int {
	if coverSize <= spec.HEADER_LENGTH {
		return 0
	}
	return (coverSize - spec.HEADER_LENGTH) / granularity.CarriersPerByte()
}

// AnalyzeCover prints a capacity and LSB distribution report for a cover
// image. Used by the encoder CLI's -analyze flag.
func AnalyzeCover(pix []byte, width, height int) {
	fmt.Printf("\n📊 Cover Analysis:\n")
	fmt.Printf("   Dimensions: %dx%d\n", width, height)
	fmt.Printf("   Carrier bytes: %d\n", len(pix))

	fmt.Printf("\n   Capacity (header reserves %d carriers):\n", spec.HEADER_LENGTH)
	for _, g := range []codec.Granularity{codec.FourBits, codec.TwoBits, codec.OneBit} {
		fmt.Printf("     %s: %d payload bytes\n", g, Capacity(len(pix), g))
	}

	// Sample the LSB plane; a heavily biased plane means embedding at 1-bit
	// granularity will measurably shift the distribution.
	sample := min(len(pix), 10000)
	if sample == 0 {
		return
	}

	zeros := 0
	for _, b := range pix[:sample] {
		if b&1 == 0 {
			zeros++
		}
	}

	ratio := float64(zeros) / float64(sample) * 100
	fmt.Printf("\n   Sample LSB distribution: %.1f%% zeros, %.1f%% ones\n", ratio, 100-ratio)
}
