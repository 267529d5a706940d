// Package canvas provides the media display widget with pan, zoom,
// rotation, and area-select driven by the viewport engine.
package canvas

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/lucacicada/slick-viewer/internal/app"
	"github.com/lucacicada/slick-viewer/internal/viewport"
	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// ViewerCanvas renders the open media document through the viewport
// transform and feeds pointer input to the gesture classifier.
type ViewerCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// Modifier state mirrored from the window's key hooks; Fyne scroll
	// events carry no modifiers of their own.
	shiftDown bool
	ctrlDown  bool
}

var _ desktop.Mouseable = (*ViewerCanvas)(nil)
var _ desktop.Hoverable = (*ViewerCanvas)(nil)
var _ fyne.Scrollable = (*ViewerCanvas)(nil)
var _ fyne.SecondaryTappable = (*ViewerCanvas)(nil)

// NewViewerCanvas creates a canvas bound to the application state.
func NewViewerCanvas(state *app.State) *ViewerCanvas {
	vc := &ViewerCanvas{state: state}

	vc.raster = fynecanvas.NewRaster(vc.draw)
	vc.raster.ScaleMode = fynecanvas.ImageScalePixels

	// Repaint whenever the view or document changes.
	redraw := func(interface{}) { vc.Refresh() }
	state.On(app.EventViewChanged, redraw)
	state.On(app.EventSelectionChanged, redraw)
	state.On(app.EventMediaLoaded, redraw)
	state.On(app.EventMediaCleared, redraw)

	vc.ExtendBaseWidget(vc)
	return vc
}

// SetModifierState updates the tracked keyboard modifier state.
func (vc *ViewerCanvas) SetModifierState(shift, ctrl bool) {
	vc.shiftDown = shift
	vc.ctrlDown = ctrl
}

// Refresh repaints the canvas.
func (vc *ViewerCanvas) Refresh() {
	vc.raster.Refresh()
	vc.BaseWidget.Refresh()
}

func (vc *ViewerCanvas) pointerEvent(ev *desktop.MouseEvent) viewport.PointerEvent {
	return viewport.PointerEvent{
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Button: buttonFromDesktop(ev.Button),
		Shift:  ev.Modifier&fyne.KeyModifierShift != 0,
		Ctrl:   ev.Modifier&fyne.KeyModifierControl != 0,
	}
}

func buttonFromDesktop(b desktop.MouseButton) viewport.MouseButton {
	switch b {
	case desktop.MouseButtonPrimary:
		return viewport.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return viewport.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return viewport.ButtonMiddle
	default:
		return viewport.ButtonNone
	}
}

// MouseDown implements desktop.Mouseable.
func (vc *ViewerCanvas) MouseDown(ev *desktop.MouseEvent) {
	vc.state.Classifier.PointerDown(vc.pointerEvent(ev))
}

// MouseUp implements desktop.Mouseable.
func (vc *ViewerCanvas) MouseUp(ev *desktop.MouseEvent) {
	vc.state.Classifier.PointerUp(vc.pointerEvent(ev))
}

// MouseIn implements desktop.Hoverable.
func (vc *ViewerCanvas) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable.
func (vc *ViewerCanvas) MouseMoved(ev *desktop.MouseEvent) {
	vc.state.Classifier.PointerMove(vc.pointerEvent(ev))
}

// MouseOut implements desktop.Hoverable.
func (vc *ViewerCanvas) MouseOut() {}

// Scrolled routes wheel input to the shortcut dispatcher.
func (vc *ViewerCanvas) Scrolled(ev *fyne.ScrollEvent) {
	vc.state.Dispatcher.Wheel(viewport.WheelEvent{
		X:     float64(ev.Position.X),
		Y:     float64(ev.Position.Y),
		DY:    float64(ev.Scrolled.DY),
		Shift: vc.shiftDown,
	})
}

// TappedSecondary shows the context menu unless a drag just ended.
func (vc *ViewerCanvas) TappedSecondary(ev *fyne.PointEvent) {
	if vc.state.Menu.SuppressNext() {
		return
	}

	c := fyne.CurrentApp().Driver().CanvasForObject(vc)
	if c == nil {
		return
	}

	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Fit to Window", func() {
			vc.state.Viewport.Fit(vc.state.Options.Padding)
		}),
		fyne.NewMenuItem("Zoom In", func() {
			vc.state.Viewport.ZoomAt(1.1, float64(ev.Position.X), float64(ev.Position.Y))
		}),
		fyne.NewMenuItem("Zoom Out", func() {
			vc.state.Viewport.ZoomAt(0.9, float64(ev.Position.X), float64(ev.Position.Y))
		}),
		fyne.NewMenuItem("Straighten", func() {
			vc.state.Viewport.RotateExact(0)
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, c, ev.AbsolutePosition)
}

// CreateRenderer implements fyne.Widget.
func (vc *ViewerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &viewerCanvasRenderer{canvas: vc}
}

type viewerCanvasRenderer struct {
	canvas *ViewerCanvas
}

func (r *viewerCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	// Pointer events are widget-local, so the container origin is zero.
	r.canvas.state.Tracker.ObserveContainer(
		geometry.NewRect(0, 0, float64(size.Width), float64(size.Height)))
}

func (r *viewerCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *viewerCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *viewerCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *viewerCanvasRenderer) Destroy() {}
