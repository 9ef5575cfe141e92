// Command teximage inspects an image the way the texture upload path
// sees it: it decodes the file, infers the client pixel format,
// flattens the pixels into GPU row order, and reports what a matching
// GPU-side texture would look like.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"

	"github.com/loafofpiecrust/glium"
	"github.com/loafofpiecrust/glium/texture"
)

func main() {
	var (
		input   = flag.String("input", "", "image file to inspect (PNG or JPEG)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		glium.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	img, kind, err := image.Decode(f)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	data := texture.FromImage(img)
	width, height := data.Dimensions()
	format := data.Format()

	// Go images store the top row first; the flat sequence comes out
	// in GPU order with the bottom row first.
	flat := data.Flatten(texture.TopFirst)

	fmt.Printf("file:          %s (%s)\n", *input, kind)
	fmt.Printf("dimensions:    %dx%d\n", width, height)
	fmt.Printf("client format: %s (%d channels, %d bits, %s)\n",
		format, format.Channels(), format.ChannelBits(), format.Kind())
	fmt.Printf("wgpu format:   %v\n", format.ToWGPU())
	fmt.Printf("extent:        %+v\n", texture.Extent2D(width, height))
	fmt.Printf("flat sequence: %d pixels, %d bytes\n",
		len(flat), len(flat)*format.BytesPerPixel())

	// Stage the pixels the way an upload would, minus the GPU: a
	// logical pixel buffer tracks capacity and format without a device.
	buf, err := texture.NewPixelBuffer[texture.RGBA8](nil, len(flat), "teximage-staging")
	if err != nil {
		log.Fatalf("pixel buffer: %v", err)
	}
	defer buf.Destroy()
	fmt.Printf("staging:       %d bytes (%s)\n", buf.SizeBytes(), buf.Format())
}
