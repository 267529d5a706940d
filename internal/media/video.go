package media

import (
	"fmt"

	"github.com/lucacicada/slick-viewer/pkg/geometry"

	"gocv.io/x/gocv"
)

// probeVideo opens a video file just long enough to read its intrinsic
// dimensions, frame rate, and first frame as a poster image. The capture is
// closed before returning; playback is the rendering layer's concern.
func probeVideo(path string) (*Media, error) {
	capture, err := gocv.OpenVideoCapture(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video: %w", err)
	}
	defer capture.Close()

	if !capture.IsOpened() {
		return nil, fmt.Errorf("failed to open video: %s", path)
	}

	m := &Media{
		Path:       path,
		Kind:       KindVideo,
		FPS:        capture.Get(gocv.VideoCaptureFPS),
		FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
	}

	w := capture.Get(gocv.VideoCaptureFrameWidth)
	h := capture.Get(gocv.VideoCaptureFrameHeight)

	frame := gocv.NewMat()
	defer frame.Close()
	if capture.Read(&frame) && !frame.Empty() {
		img, err := frame.ToImage()
		if err == nil {
			m.Image = img
			// Some containers misreport the header dimensions; the
			// decoded frame is authoritative.
			bounds := img.Bounds()
			w = float64(bounds.Dx())
			h = float64(bounds.Dy())
		}
	}

	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("video has no readable dimensions: %s", path)
	}
	m.NaturalSize = geometry.NewSize(w, h)

	return m, nil
}
