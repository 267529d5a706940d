package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// readyViewport returns a viewport with an 800x600 container and 400x300
// content, fitted with no padding.
func readyViewport(t *testing.T) *Viewport {
	t.Helper()
	v := New()
	v.SetContainer(geometry.NewRect(0, 0, 800, 600))
	v.SetContentSize(geometry.NewSize(400, 300))
	v.Fit(0)
	return v
}

func assertTransformsEqual(t *testing.T, want, got geometry.AffineTransform, tol float64) {
	t.Helper()
	assert.InDelta(t, want.A, got.A, tol)
	assert.InDelta(t, want.B, got.B, tol)
	assert.InDelta(t, want.C, got.C, tol)
	assert.InDelta(t, want.D, got.D, tol)
	assert.InDelta(t, want.TX, got.TX, tol)
	assert.InDelta(t, want.TY, got.TY, tol)
}

func TestOperationsNoOpBeforeReady(t *testing.T) {
	cases := []struct {
		name string
		op   func(v *Viewport)
	}{
		{"zoom", func(v *Viewport) { v.Zoom(2) }},
		{"zoom at point", func(v *Viewport) { v.ZoomAt(2, 100, 100) }},
		{"rotate", func(v *Viewport) { v.Rotate(45) }},
		{"rotate exact", func(v *Viewport) { v.RotateExact(90) }},
		{"fit", func(v *Viewport) { v.Fit(0) }},
		{"pan", func(v *Viewport) { v.Pan(10, 10) }},
		{"select rect", func(v *Viewport) { v.SelectRect(geometry.NewRect(0, 0, 100, 100)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.SetContainer(geometry.NewRect(0, 0, 800, 600))
			// Content still 0x0: not ready.
			tc.op(v)
			assert.Equal(t, geometry.Identity(), v.Transform())
		})
	}
}

func TestZoomRoundTrip(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(30)
	before := v.Transform()

	pivot := geometry.Point2D{X: 120, Y: 80}
	v.ZoomAbout(1.7, pivot)
	v.ZoomAbout(1/1.7, pivot)

	assertTransformsEqual(t, before, v.Transform(), 1e-9)
}

func TestZoomFloorStopsZoomOut(t *testing.T) {
	v := readyViewport(t)

	var last geometry.AffineTransform
	for i := 0; i < 100; i++ {
		last = v.Transform()
		v.Zoom(0.9)
	}
	// The sequence must have converged: the floor rejects further zoom-out.
	assert.Equal(t, last, v.Transform())

	onScreen := v.ScaleFactor() * 400
	assert.Less(t, onScreen, 50.0/0.9+1e-9)
	assert.GreaterOrEqual(t, onScreen, 50.0*0.9)

	// Zooming back in always works.
	before := v.Transform()
	v.Zoom(1.1)
	assert.NotEqual(t, before, v.Transform())
}

func TestZoomAtKeepsCursorPointFixed(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(25)

	screen := geometry.Point2D{X: 250, Y: 180}
	inv, ok := v.Transform().Inverse()
	require.True(t, ok)
	before := inv.Apply(screen)

	v.ZoomAt(1.3, screen.X, screen.Y)

	inv, ok = v.Transform().Inverse()
	require.True(t, ok)
	after := inv.Apply(screen)

	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestZoomAtHonorsContainerOrigin(t *testing.T) {
	v := New()
	v.SetContainer(geometry.NewRect(20, 30, 800, 600))
	v.SetContentSize(geometry.NewSize(400, 300))
	v.Fit(0)

	// Screen point (420, 330) is container-local (400, 300): the view
	// center, which fit placed the content center on.
	inv, ok := v.Transform().Inverse()
	require.True(t, ok)
	before := inv.Apply(geometry.Point2D{X: 400, Y: 300})

	v.ZoomAt(2, 420, 330)

	inv, ok = v.Transform().Inverse()
	require.True(t, ok)
	after := inv.Apply(geometry.Point2D{X: 400, Y: 300})
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestRotateExactIdempotent(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(37.2)
	v.Zoom(1.4)

	v.RotateExact(0)
	assert.Equal(t, 0.0, v.RotationDegrees())
	once := v.Transform()

	v.RotateExact(0)
	assert.Equal(t, once, v.Transform())
}

func TestRotateExactSetsAbsoluteAngle(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(10)
	v.Rotate(25)

	v.RotateExact(90)
	assert.InDelta(t, 90, v.RotationDegrees(), 1e-9)

	// Scale survives the recomposition: fit with no padding gave 2.
	assert.InDelta(t, 2, v.ScaleFactor(), 1e-9)
}

func TestFitScalesAndCenters(t *testing.T) {
	v := New()
	v.SetContainer(geometry.NewRect(0, 0, 800, 600))
	v.SetContentSize(geometry.NewSize(400, 300))

	v.Fit(40)

	// scale = min(760/400, 560/300) = 560/300
	assert.InDelta(t, 560.0/300.0, v.ScaleFactor(), 1e-9)
	assert.Equal(t, 0.0, v.RotationDegrees())

	// Content center lands on the container center.
	cx, cy := v.Transform().ApplyXY(200, 150)
	assert.InDelta(t, 400, cx, 1e-9)
	assert.InDelta(t, 300, cy, 1e-9)
}

func TestFitDiscardsRotation(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(123)
	v.Pan(40, -20)

	v.Fit(10)
	assert.Equal(t, 0.0, v.RotationDegrees())
}

func TestPanMovesBySameScreenDistanceRegardlessOfView(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *Viewport)
	}{
		{"fitted", func(v *Viewport) {}},
		{"zoomed", func(v *Viewport) { v.Zoom(2.5) }},
		{"rotated", func(v *Viewport) { v.Rotate(67) }},
		{"zoomed and rotated", func(v *Viewport) { v.Zoom(0.7); v.Rotate(-140) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := readyViewport(t)
			tt.setup(v)

			q := geometry.Point2D{X: 100, Y: 100} // arbitrary content point
			before := v.Transform().Apply(q)

			v.Pan(10, -5)

			after := v.Transform().Apply(q)
			assert.InDelta(t, 10, after.X-before.X, 1e-9)
			assert.InDelta(t, -5, after.Y-before.Y, 1e-9)
		})
	}
}

func TestSelectRectCentersAndScales(t *testing.T) {
	v := readyViewport(t)

	rect := geometry.NewRect(100, 100, 50, 60)
	oldScale := v.ScaleFactor()
	inv, ok := v.Transform().Inverse()
	require.True(t, ok)
	pivot := inv.Apply(rect.Center())

	v.SelectRect(rect)

	// factor = min(800/50, 600/60) = 10
	assert.InDelta(t, oldScale*10, v.ScaleFactor(), 1e-9)

	// The rect's content-space center is now on the container center.
	sx, sy := v.Transform().ApplyXY(pivot.X, pivot.Y)
	assert.InDelta(t, 400, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)
}

// TestSelectRectAgainstLeastSquaresReference cross-checks the zoom-to-
// selection recomposition, including the rotated case, against an
// independently estimated transform mapping the selection's content-space
// corners onto the fitted target rectangle.
func TestSelectRectAgainstLeastSquaresReference(t *testing.T) {
	for _, angle := range []float64{0, 18, -45, 90} {
		v := readyViewport(t)
		v.Rotate(angle)

		rect := geometry.NewRect(200, 150, 120, 90)
		factor := 600.0 / 90.0 // min(800/120, 600/90)

		inv, ok := v.Transform().Inverse()
		require.True(t, ok)

		corners := rect.Corners()
		src := make([]geometry.Point2D, 0, 4)
		dst := make([]geometry.Point2D, 0, 4)
		center := rect.Center()
		for _, c := range corners {
			src = append(src, inv.Apply(c))
			dst = append(dst, geometry.Point2D{
				X: 400 + (c.X-center.X)*factor,
				Y: 300 + (c.Y-center.Y)*factor,
			})
		}
		ref, err := geometry.EstimateAffine(src, dst)
		require.NoError(t, err)

		v.SelectRect(rect)
		assertTransformsEqual(t, ref, v.Transform(), 1e-6)
	}
}

func TestSelectRectConsumesSelection(t *testing.T) {
	v := readyViewport(t)
	v.SetSelection(geometry.NewRect(100, 100, 50, 60))

	rect, ok := v.Selection()
	require.True(t, ok)
	v.SelectRect(rect)

	_, ok = v.Selection()
	assert.False(t, ok)
}

func TestSelectRectIgnoresEmptyRect(t *testing.T) {
	v := readyViewport(t)
	before := v.Transform()
	v.SelectRect(geometry.NewRect(10, 10, 0, 40))
	assert.Equal(t, before, v.Transform())
}

func TestTransformChangedEvents(t *testing.T) {
	v := readyViewport(t)

	var changes int
	v.On(EventTransformChanged, func(interface{}) { changes++ })

	v.Zoom(1.2)
	v.Rotate(5)
	v.Pan(3, 3)
	v.Zoom(1) // factor 1 still recomposes about the pivot, but is a change event
	assert.Equal(t, 4, changes)
}

func TestCurrentRotationReadIsClamped(t *testing.T) {
	v := readyViewport(t)
	v.Rotate(33)
	v.RotateExact(0)
	// Residual extraction error must read back as exactly zero.
	assert.Equal(t, 0.0, v.RotationDegrees())
}
