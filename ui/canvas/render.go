package canvas

import (
	"image"
	"image/color"

	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// Background behind the media, matching the application theme.
var backgroundColor = color.RGBA{R: 0x16, G: 0x16, B: 0x18, A: 0xFF}

// selectionColor is used for the rubber-band rectangle outline.
var selectionColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// draw is the raster drawing function.
func (vc *ViewerCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(output.Pix); i += 4 {
		output.Pix[i] = backgroundColor.R
		output.Pix[i+1] = backgroundColor.G
		output.Pix[i+2] = backgroundColor.B
		output.Pix[i+3] = 255
	}

	v := vc.state.Viewport
	container := v.Container()
	if container.Width <= 0 || container.Height <= 0 {
		return output
	}

	// The raster is in device pixels while events and the viewport run
	// in points, so rendering maps pixels back into point space first.
	scale := float64(w) / container.Width

	if m := vc.state.CurrentMedia(); m != nil && m.Image != nil && v.Ready() {
		vc.drawMedia(output, m.Image, w, h, scale)
	}

	if sel, ok := v.Selection(); ok {
		vc.drawSelectionRect(output, sel, scale)
	}

	return output
}

// drawMedia samples the source image through the inverse view transform.
func (vc *ViewerCanvas) drawMedia(output *image.RGBA, src image.Image, w, h int, scale float64) {
	inv, ok := vc.state.Viewport.Transform().Inverse()
	if !ok {
		return
	}

	srcBounds := src.Bounds()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := inv.ApplyXY(float64(x)/scale, float64(y)/scale)

			srcX := srcBounds.Min.X + int(cx)
			srcY := srcBounds.Min.Y + int(cy)
			if cx < 0 || cy < 0 ||
				srcX < srcBounds.Min.X || srcX >= srcBounds.Max.X ||
				srcY < srcBounds.Min.Y || srcY >= srcBounds.Max.Y {
				continue
			}

			output.Set(x, y, src.At(srcX, srcY))
		}
	}
}

// drawSelectionRect draws a dashed rectangle outline in screen space.
func (vc *ViewerCanvas) drawSelectionRect(output *image.RGBA, sel geometry.Rect, scale float64) {
	x1 := int(sel.X * scale)
	y1 := int(sel.Y * scale)
	x2 := int((sel.X + sel.Width) * scale)
	y2 := int((sel.Y + sel.Height) * scale)

	bounds := output.Bounds()

	// Alternate pixels for a dashed pattern.
	for x := x1; x <= x2; x++ {
		if (x+y1)%4 < 2 && x >= bounds.Min.X && x < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			output.Set(x, y1, selectionColor)
		}
		if (x+y2)%4 < 2 && x >= bounds.Min.X && x < bounds.Max.X && y2 >= bounds.Min.Y && y2 < bounds.Max.Y {
			output.Set(x, y2, selectionColor)
		}
	}
	for y := y1; y <= y2; y++ {
		if (x1+y)%4 < 2 && x1 >= bounds.Min.X && x1 < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			output.Set(x1, y, selectionColor)
		}
		if (x2+y)%4 < 2 && x2 >= bounds.Min.X && x2 < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			output.Set(x2, y, selectionColor)
		}
	}
}
