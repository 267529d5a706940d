package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyZoomOncePerKeydown(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	oldScale := v.ScaleFactor()
	assert.True(t, d.KeyDown(KeyEvent{Key: "+"}))
	assert.InDelta(t, oldScale*1.1, v.ScaleFactor(), 1e-9)

	// Auto-repeat events from a held key change nothing.
	for i := 0; i < 5; i++ {
		assert.False(t, d.KeyDown(KeyEvent{Key: "+", Repeat: true}))
	}
	assert.InDelta(t, oldScale*1.1, v.ScaleFactor(), 1e-9)
}

func TestKeyTable(t *testing.T) {
	tests := []struct {
		key   string
		check func(t *testing.T, v *Viewport)
	}{
		{"=", func(t *testing.T, v *Viewport) { assert.InDelta(t, 2.2, v.ScaleFactor(), 1e-9) }},
		{"-", func(t *testing.T, v *Viewport) { assert.InDelta(t, 1.8, v.ScaleFactor(), 1e-9) }},
		{"]", func(t *testing.T, v *Viewport) { assert.InDelta(t, 15, v.RotationDegrees(), 1e-9) }},
		{"[", func(t *testing.T, v *Viewport) { assert.InDelta(t, -15, v.RotationDegrees(), 1e-9) }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := readyViewport(t)
			d := NewDispatcher(v, DefaultOptions())
			require.True(t, d.KeyDown(KeyEvent{Key: tt.key}))
			tt.check(t, v)
		})
	}
}

func TestKeyFitResets(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	v.Rotate(45)
	v.Zoom(3)
	require.True(t, d.KeyDown(KeyEvent{Key: "0"}))
	assert.Equal(t, 0.0, v.RotationDegrees())
	assert.InDelta(t, 2, v.ScaleFactor(), 1e-9)
}

func TestKeyStraighten(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	v.Rotate(33)
	require.True(t, d.KeyDown(KeyEvent{Key: "s"}))
	assert.Equal(t, 0.0, v.RotationDegrees())
	assert.InDelta(t, 2, v.ScaleFactor(), 1e-9)
}

func TestUnknownKeyNotConsumed(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())
	assert.False(t, d.KeyDown(KeyEvent{Key: "q"}))
}

func TestHandlerCanOptOutOfConsumption(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	var called bool
	d.Bind("x", func() bool {
		called = true
		return false
	})
	assert.False(t, d.KeyDown(KeyEvent{Key: "x"}))
	assert.True(t, called)
}

func TestWheelZoomsAtCursor(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	oldScale := v.ScaleFactor()
	assert.True(t, d.Wheel(WheelEvent{X: 250, Y: 180, DY: 1}))
	assert.InDelta(t, oldScale*1.1, v.ScaleFactor(), 1e-9)

	assert.True(t, d.Wheel(WheelEvent{X: 250, Y: 180, DY: -1}))
	assert.InDelta(t, oldScale*1.1*0.9, v.ScaleFactor(), 1e-9)
}

func TestShiftWheelRotatesAtCursor(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	assert.True(t, d.Wheel(WheelEvent{X: 400, Y: 300, DY: -1, Shift: true}))
	assert.InDelta(t, 15, v.RotationDegrees(), 1e-9)

	assert.True(t, d.Wheel(WheelEvent{X: 400, Y: 300, DY: 1, Shift: true}))
	assert.Equal(t, 0.0, v.RotationDegrees())
}

func TestArrowKeysPan(t *testing.T) {
	v := readyViewport(t)
	d := NewDispatcher(v, DefaultOptions())

	q := v.ContentSize().Center()
	before := v.Transform().Apply(q)

	require.True(t, d.KeyDown(KeyEvent{Key: "ArrowLeft"}))
	after := v.Transform().Apply(q)
	assert.InDelta(t, 50, after.X-before.X, 1e-9)
	assert.InDelta(t, 0, after.Y-before.Y, 1e-9)
}
