package main

import (
	"fmt"
	"github.com/faanross/pixveil/internal/decoder"
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
	inputFile := pflag.String("input", "", "Path to stego image")
	outputFile := pflag.String("output", "", "Save recovered payload to file (default: stdout)")
	analyze := pflag.Bool("analyze", false, "Inspect the image for embedded data and exit")
	verbose := pflag.Bool("verbose", false, "Enable debug logging")

	pflag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Validate input
	if *inputFile == "" {
		log.Fatal("❌ Please provide input image with -input flag")
	}

	// Progress goes to stderr: the recovered payload may be on stdout.
	fmt.Fprintln(os.Stderr, "\n🔓 Pixveil Decoder")
	fmt.Fprintln(os.Stderr, "="+strings.Repeat("=", 40))

	file, err := os.Open(*inputFile)
	if err != nil {
		log.Fatalf("❌ Error opening file: %v", err)
	}
	defer file.Close()

	// Inspection mode
	if *analyze {
		pix, _, _, err := imaging.Decode(file)
		if err != nil {
			log.Fatalf("❌ Error decoding image: %v", err)
		}
		decoder.AnalyzeCarrier(pix)
		return
	}

	var output io.Writer = os.Stdout
	if *outputFile != "" {
		out, err := os.Create(*outputFile)
		if err != nil {
			log.Fatalf("❌ Cannot create output file: %v", err)
		}
		defer out.Close()
		output = out
	}

	stegoDecoder := decoder.New()
	if err := stegoDecoder.DecodeImage(file, output); err != nil {
		log.Fatalf("❌ Decoding failed: %v", err)
	}

	fmt.Fprintf(os.Stderr, "\n✅ Payload recovered!\n")
	fmt.Fprintf(os.Stderr, "   Input: %s\n", *inputFile)
	if *outputFile != "" {
		fmt.Fprintf(os.Stderr, "   Saved to: %s\n", *outputFile)
	}
}
