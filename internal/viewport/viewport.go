// Package viewport implements the transform engine behind the media view: an
// affine view transform over a piece of content of known natural size, the
// semantic operations on it (pan, zoom, rotate, fit, zoom-to-selection), and
// the classification of raw pointer/wheel/keyboard input into those
// operations.
//
// Everything in this package runs on the UI event loop. State is mutated
// synchronously inside input handlers and read back by the rendering layer,
// so no locking is needed; the transform itself is an immutable value type.
package viewport

import (
	"math"

	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// minOnScreenPx is the zoom-out floor: a zoom-out is rejected once the
// larger on-screen content dimension would already be below this many
// pixels. Besides keeping the content usable, the floor keeps the transform
// comfortably away from singularity.
const minOnScreenPx = 50

// EventType identifies viewport change notifications.
type EventType int

const (
	// EventTransformChanged fires after any operation that changed the
	// view transform.
	EventTransformChanged EventType = iota
	// EventSelectionChanged fires when the pending selection rectangle is
	// set, updated, or cleared.
	EventSelectionChanged
	// EventContentChanged fires when the content natural size changes.
	EventContentChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Viewport owns the current view transform and the transient selection
// rectangle, and exposes the semantic view operations. Geometry operations
// silently no-op until both the container and the content have a known,
// non-zero size.
type Viewport struct {
	transform geometry.AffineTransform
	selection *geometry.Rect

	container geometry.Rect // container bounds in screen pixels
	content   geometry.Size // content natural size in content pixels

	listeners map[EventType][]EventListener
}

// New creates a viewport with an identity transform and no content.
func New() *Viewport {
	return &Viewport{
		transform: geometry.Identity(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (v *Viewport) On(event EventType, listener EventListener) {
	v.listeners[event] = append(v.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (v *Viewport) Emit(event EventType, data interface{}) {
	for _, listener := range v.listeners[event] {
		listener(data)
	}
}

// Transform returns the current view transform. The returned value maps
// content-space coordinates to container-local screen coordinates.
func (v *Viewport) Transform() geometry.AffineTransform {
	return v.transform
}

// RotationDegrees returns the current view rotation, clamped to 0 when
// within display epsilon of zero.
func (v *Viewport) RotationDegrees() float64 {
	return v.transform.RotationDegrees()
}

// ScaleFactor returns the current zoom level.
func (v *Viewport) ScaleFactor() float64 {
	return v.transform.ScaleFactor()
}

// Selection returns the pending selection rectangle, if any, in
// container-local pixels.
func (v *Viewport) Selection() (geometry.Rect, bool) {
	if v.selection == nil {
		return geometry.Rect{}, false
	}
	return *v.selection, true
}

// SetSelection sets the pending selection rectangle (container-local).
func (v *Viewport) SetSelection(rect geometry.Rect) {
	v.selection = &rect
	v.Emit(EventSelectionChanged, rect)
}

// ClearSelection discards the pending selection rectangle.
func (v *Viewport) ClearSelection() {
	if v.selection == nil {
		return
	}
	v.selection = nil
	v.Emit(EventSelectionChanged, nil)
}

// SetContainer updates the container bounds (screen pixels). Fit policy on
// resize lives in SizeTracker, not here.
func (v *Viewport) SetContainer(rect geometry.Rect) {
	v.container = rect
}

// Container returns the current container bounds.
func (v *Viewport) Container() geometry.Rect {
	return v.container
}

// SetContentSize updates the content natural size (content pixels). A zero
// size means the content is not decoded yet; all geometry operations no-op
// until it becomes known.
func (v *Viewport) SetContentSize(size geometry.Size) {
	if size == v.content {
		return
	}
	v.content = size
	v.Emit(EventContentChanged, size)
}

// ContentSize returns the content natural size.
func (v *Viewport) ContentSize() geometry.Size {
	return v.content
}

// Ready reports whether both container and content sizes are known.
func (v *Viewport) Ready() bool {
	return !v.content.IsZero() && v.container.Width > 0 && v.container.Height > 0
}

// setTransform installs a new transform and notifies listeners.
func (v *Viewport) setTransform(t geometry.AffineTransform) {
	v.transform = t
	v.Emit(EventTransformChanged, t)
}

// inverse returns the inverse of the current transform. The zoom floor
// keeps the transform invertible at all times, so failure here is a
// programming error, not a runtime condition.
func (v *Viewport) inverse() geometry.AffineTransform {
	inv, ok := v.transform.Inverse()
	if !ok {
		panic("viewport: view transform became singular")
	}
	return inv
}

// toContent maps a screen point to content space through the inverse
// transform.
func (v *Viewport) toContent(screenX, screenY float64) geometry.Point2D {
	return v.inverse().Apply(geometry.Point2D{
		X: screenX - v.container.X,
		Y: screenY - v.container.Y,
	})
}

// Zoom scales the view by factor about the content center. Zoom-out
// requests are rejected once the larger on-screen content dimension falls
// below the floor.
func (v *Viewport) Zoom(factor float64) {
	v.ZoomAbout(factor, v.content.Center())
}

// ZoomAbout scales the view by factor about a pivot in content space. The
// pivot keeps its on-screen position.
func (v *Viewport) ZoomAbout(factor float64, pivot geometry.Point2D) {
	if !v.Ready() || factor <= 0 {
		return
	}
	if factor < 1 {
		onScreen := v.transform.ScaleFactor() * math.Max(v.content.Width, v.content.Height)
		if onScreen < minOnScreenPx {
			return
		}
	}
	v.setTransform(v.transform.ScaleAbout(factor, pivot))
}

// ZoomAt scales the view by factor keeping the content point under the
// given screen position fixed.
func (v *Viewport) ZoomAt(factor float64, screenX, screenY float64) {
	if !v.Ready() {
		return
	}
	v.ZoomAbout(factor, v.toContent(screenX, screenY))
}

// Rotate rotates the view by deltaDeg degrees about the content center.
func (v *Viewport) Rotate(deltaDeg float64) {
	v.RotateAbout(deltaDeg, v.content.Center())
}

// RotateAbout rotates the view by deltaDeg degrees about a pivot in
// content space.
func (v *Viewport) RotateAbout(deltaDeg float64, pivot geometry.Point2D) {
	if !v.Ready() {
		return
	}
	v.setTransform(v.transform.RotateAbout(deltaDeg, pivot))
}

// RotateAt rotates the view by deltaDeg degrees about the content point
// under the given screen position.
func (v *Viewport) RotateAt(deltaDeg float64, screenX, screenY float64) {
	if !v.Ready() {
		return
	}
	v.RotateAbout(deltaDeg, v.toContent(screenX, screenY))
}

// RotateExact sets the absolute view rotation to targetDeg, preserving
// scale and the position of the content center. The current angle is
// re-extracted from the matrix; the epsilon clamp in RotationDegrees keeps
// repeated calls from drifting on the ~1e-11 degree extraction residual.
func (v *Viewport) RotateExact(targetDeg float64) {
	if !v.Ready() {
		return
	}
	delta := targetDeg - v.transform.RotationDegrees()
	if delta == 0 {
		return
	}
	v.RotateAbout(delta, v.content.Center())
}

// Fit resets the view to an unrotated, centered transform that fits the
// content inside the container minus padding on both axes.
func (v *Viewport) Fit(padding float64) {
	if !v.Ready() {
		return
	}
	scale := math.Min(
		(v.container.Width-padding)/v.content.Width,
		(v.container.Height-padding)/v.content.Height,
	)
	if scale <= 0 {
		return
	}
	t := geometry.Translation(
		v.container.Width/2-scale*v.content.Width/2,
		v.container.Height/2-scale*v.content.Height/2,
	).Compose(geometry.Scale(scale, scale))
	v.setTransform(t)
}

// Pan moves the view by a screen-space delta. The delta is mapped through
// the inverse transform so a one-pixel drag moves the content one screen
// pixel regardless of the current zoom and rotation.
func (v *Viewport) Pan(dxScreen, dyScreen float64) {
	if !v.Ready() {
		return
	}
	if dxScreen == 0 && dyScreen == 0 {
		return
	}
	v.setTransform(v.panned(v.transform, dxScreen, dyScreen))
}

// panned returns t translated so that the view shifts by the given screen
// delta.
func (v *Viewport) panned(t geometry.AffineTransform, dxScreen, dyScreen float64) geometry.AffineTransform {
	inv, ok := t.Inverse()
	if !ok {
		panic("viewport: view transform became singular")
	}
	d := inv.Apply(geometry.Point2D{X: dxScreen, Y: dyScreen}).Sub(inv.Apply(geometry.Point2D{}))
	return t.Translate(d.X, d.Y)
}

// SelectRect zooms the view so the given container-local rectangle fills
// the container: the view is scaled by the rect-to-container fit factor
// about the rectangle's content-space center, then shifted so that point
// lands on the container center. Consumes (clears) any pending selection.
func (v *Viewport) SelectRect(rect geometry.Rect) {
	if !v.Ready() || rect.Empty() {
		return
	}
	factor := math.Min(v.container.Width/rect.Width, v.container.Height/rect.Height)
	center := rect.Center()
	pivot := v.inverse().Apply(center)

	// Scaling about the pivot keeps the rect center at its old screen
	// position; the pan moves it to the container center.
	t := v.transform.ScaleAbout(factor, pivot)
	t = v.panned(t, v.container.Width/2-center.X, v.container.Height/2-center.Y)

	v.selection = nil
	v.setTransform(t)
	v.Emit(EventSelectionChanged, nil)
}
