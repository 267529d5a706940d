// Package media provides loading and probing of viewable content: still
// images decoded into memory, and video files probed for their intrinsic
// size and a poster frame.
package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucacicada/slick-viewer/pkg/geometry"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Kind distinguishes the supported content types.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Media is one loaded piece of content. For videos, Image holds the poster
// frame (may be nil if the first frame could not be decoded) and the video
// fields are populated.
type Media struct {
	Path  string
	Kind  Kind
	Image image.Image

	// Natural size in content pixels. Zero until decoding/probing
	// succeeds; a zero size is the "not ready" signal downstream.
	NaturalSize geometry.Size

	// Video metadata (KindVideo only).
	FPS        float64
	FrameCount int
}

// Width returns the natural width in pixels.
func (m *Media) Width() int {
	return int(m.NaturalSize.Width)
}

// Height returns the natural height in pixels.
func (m *Media) Height() int {
	return int(m.NaturalSize.Height)
}

// DetectKind guesses the content kind from the file extension.
func DetectKind(path string) Kind {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff":
		return KindImage
	case ".mp4", ".webm", ".mkv", ".avi", ".mov", ".m4v":
		return KindVideo
	default:
		return KindUnknown
	}
}

// Load opens the file at path and returns its decoded content. Videos are
// probed rather than fully loaded: only the intrinsic size, basic metadata,
// and the first frame are read.
func Load(path string) (*Media, error) {
	switch DetectKind(path) {
	case KindImage:
		return loadImage(path)
	case KindVideo:
		return probeVideo(path)
	default:
		return nil, fmt.Errorf("unsupported media type: %s", filepath.Ext(path))
	}
}

// loadImage decodes a still image into memory.
func loadImage(path string) (*Media, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &Media{
		Path:        path,
		Kind:        KindImage,
		Image:       img,
		NaturalSize: geometry.NewSize(float64(bounds.Dx()), float64(bounds.Dy())),
	}, nil
}
