package main

import (
	"fmt"
	"github.com/faanross/pixveil/internal/codec"
	"github.com/faanross/pixveil/internal/encoder"
	"github.com/faanross/pixveil/internal/imaging"
	"github.com/spf13/pflag"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

func main() {
	// Command line arguments
	coverFile := pflag.String("cover", "", "Path to cover image (PNG or JPEG)")
	inputFile := pflag.String("input", "", "Path to payload file (default: stdin)")
	outputFile := pflag.String("output", "stego.png", "Output PNG file")
	granularity := pflag.Uint8("granularity", 4, "Payload bits per carrier byte (4, 2 or 1)")
	compress := pflag.Bool("compress", false, "Gzip the payload before embedding")
	analyze := pflag.Bool("analyze", false, "Show cover capacity analysis and exit")
	verbose := pflag.Bool("verbose", false, "Enable debug logging")

	pflag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Validate input
	if *coverFile == "" {
		log.Fatal("❌ Please provide a cover image with -cover flag")
	}

	fmt.Println("\n🖼  Pixveil Encoder")
	fmt.Println("=" + strings.Repeat("=", 40))

	cover, err := os.Open(*coverFile)
	if err != nil {
		log.Fatalf("❌ Error opening cover image: %v", err)
	}
	defer cover.Close()

	// Capacity analysis mode
	if *analyze {
		pix, width, height, err := imaging.Decode(cover)
		if err != nil {
			log.Fatalf("❌ Error decoding cover image: %v", err)
		}
		encoder.AnalyzeCover(pix, width, height)
		return
	}

	grain, err := codec.ParseGranularity(*granularity)
	if err != nil {
		log.Fatalf("❌ Invalid granularity: %v", err)
	}

	compression := codec.NoCompression
	if *compress {
		compression = codec.GzipCompression
	}

	// Payload source
	var payload io.Reader = os.Stdin
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			log.Fatalf("❌ Error opening payload file: %v", err)
		}
		defer file.Close()
		payload = file

		fmt.Printf("\n📄 Payload file: %s\n", *inputFile)
	}

	output, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("❌ Cannot create output file: %v", err)
	}
	defer output.Close()

	stegoEncoder := encoder.New(compression, grain)
	if err := stegoEncoder.EncodeImage(cover, payload, output); err != nil {
		log.Fatalf("❌ Encoding failed: %v", err)
	}

	fmt.Printf("\n✅ Payload embedded!\n")
	fmt.Printf("   Cover: %s\n", *coverFile)
	fmt.Printf("   Output: %s\n", *outputFile)
	fmt.Printf("   Granularity: %s\n", grain)
	fmt.Printf("   Compression: %s\n", compression)
	fmt.Printf("\n🔓 To recover: run the decoder on %s\n", *outputFile)
}
