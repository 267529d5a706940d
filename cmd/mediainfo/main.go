// Command mediainfo probes a media file and prints its kind and intrinsic
// properties, using the same loading path as the viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucacicada/slick-viewer/internal/media"
)

func main() {
	path := flag.String("file", "", "Path to an image or video file")
	flag.Parse()

	if *path == "" && flag.NArg() > 0 {
		*path = flag.Arg(0)
	}
	if *path == "" {
		fmt.Println("Usage: mediainfo [-file] <path>")
		os.Exit(1)
	}

	kind := media.DetectKind(*path)
	fmt.Printf("Kind: %s\n", kind)
	if kind == media.KindUnknown {
		fmt.Fprintf(os.Stderr, "Unsupported file extension\n")
		os.Exit(1)
	}

	m, err := media.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load media: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dimensions: %dx%d pixels\n", m.Width(), m.Height())
	if m.Kind == media.KindVideo {
		fmt.Printf("FPS: %.3f\n", m.FPS)
		if m.FrameCount > 0 {
			fmt.Printf("Frames: %d\n", m.FrameCount)
			if m.FPS > 0 {
				fmt.Printf("Duration: %.2fs\n", float64(m.FrameCount)/m.FPS)
			}
		}
	}
}
