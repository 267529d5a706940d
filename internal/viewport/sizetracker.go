package viewport

import (
	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// SizeTracker feeds container and content geometry into a viewport and owns the re-fit
// policy: the view is re-fitted when content first becomes measurable, when
// the content is replaced, and once per observed container resize (not
// continuously while a resize is in flight). The initial container
// measurement from the toolkit can be unreliable, so the first real resize
// observation always re-fits.
type SizeTracker struct {
	v       *Viewport
	padding float64

	lastContainer geometry.Size
	fitted        bool
}

// NewSizeTracker creates a tracker that drives v's fit lifecycle with the
// given fit padding.
func NewSizeTracker(v *Viewport, padding float64) *SizeTracker {
	return &SizeTracker{v: v, padding: padding}
}

// ObserveContainer records a new container bounding rectangle (screen
// pixels). A changed container size triggers exactly one re-fit.
func (t *SizeTracker) ObserveContainer(rect geometry.Rect) {
	size := geometry.NewSize(rect.Width, rect.Height)
	changed := size != t.lastContainer && !size.IsZero()
	t.lastContainer = size
	t.v.SetContainer(rect)
	if changed {
		t.refit()
	}
}

// ObserveContentSize records a new content natural size (content pixels).
// Content replacement or late decode completion resets the view to
// identity-then-fit.
func (t *SizeTracker) ObserveContentSize(size geometry.Size) {
	if size == t.v.ContentSize() {
		return
	}
	t.v.SetContentSize(size)
	t.fitted = false
	t.refit()
}

// Fitted reports whether the initial fit has run for the current content.
func (t *SizeTracker) Fitted() bool {
	return t.fitted
}

func (t *SizeTracker) refit() {
	if !t.v.Ready() {
		return
	}
	t.v.Fit(t.padding)
	t.fitted = true
}
