// Command filterdemo applies a named filter preset to a PNG or JPEG image.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	filters "github.com/fengyun21/canvas-instagram-filters"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (PNG or JPEG)")
		output  = flag.String("output", "out.png", "output file (PNG)")
		preset  = flag.String("preset", "clarendon", "filter preset name")
		list    = flag.Bool("list", false, "list available presets and exit")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(filters.Presets(), "\n"))
		return
	}
	if *input == "" {
		log.Fatal("missing -input")
	}

	if *verbose {
		filters.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	spec, ok := filters.Preset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q, try -list", *preset)
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		log.Fatalf("Failed to decode input: %v", err)
	}

	result, err := filters.Run(filters.FromImage(img), spec, nil)
	if err != nil {
		log.Fatalf("Failed to apply %q: %v", *preset, err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(out, result.ToImage()); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}

	log.Printf("%s applied, saved to %s (%dx%d)\n", *preset, *output, result.Width(), result.Height())
}
