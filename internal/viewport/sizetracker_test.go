package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

func TestTrackerFitsWhenBothSizesKnown(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 0)

	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	assert.False(t, tr.Fitted()) // content still unknown

	tr.ObserveContentSize(geometry.NewSize(400, 300))
	require.True(t, tr.Fitted())
	assert.InDelta(t, 2, v.ScaleFactor(), 1e-9)
}

func TestTrackerFitsOncePerResizeObservation(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 0)
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContentSize(geometry.NewSize(400, 300))

	var fits int
	v.On(EventTransformChanged, func(interface{}) { fits++ })

	// Same bounds reported again: no re-fit.
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	assert.Equal(t, 0, fits)

	// A moved but unresized container does not re-fit either.
	tr.ObserveContainer(geometry.NewRect(50, 20, 800, 600))
	assert.Equal(t, 0, fits)

	// A real size change re-fits exactly once.
	tr.ObserveContainer(geometry.NewRect(0, 0, 1000, 700))
	assert.Equal(t, 1, fits)
}

func TestTrackerRefitsOnContentReplacement(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 0)
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContentSize(geometry.NewSize(400, 300))

	// User zooms around, then a new file is loaded.
	v.Zoom(3)
	v.Rotate(90)

	tr.ObserveContentSize(geometry.NewSize(200, 200))
	assert.Equal(t, 0.0, v.RotationDegrees())
	assert.InDelta(t, 3, v.ScaleFactor(), 1e-9) // min(800/200, 600/200)
}

func TestTrackerIgnoresDuplicateContentSize(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 0)
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContentSize(geometry.NewSize(400, 300))

	v.Zoom(3)
	before := v.Transform()

	tr.ObserveContentSize(geometry.NewSize(400, 300))
	assert.Equal(t, before, v.Transform())
}

func TestTrackerAppliesPadding(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 40)
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContentSize(geometry.NewSize(400, 300))

	assert.InDelta(t, 560.0/300.0, v.ScaleFactor(), 1e-9)
}

func TestTrackerZeroContentIsNotReady(t *testing.T) {
	v := New()
	tr := NewSizeTracker(v, 0)
	tr.ObserveContainer(geometry.NewRect(0, 0, 800, 600))
	tr.ObserveContentSize(geometry.Size{})

	assert.False(t, tr.Fitted())
	assert.False(t, v.Ready())
	assert.Equal(t, geometry.Identity(), v.Transform())
}
