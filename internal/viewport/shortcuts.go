package viewport

// Wheel and shortcut step constants.
const (
	wheelZoomIn    = 1.1
	wheelZoomOut   = 0.9
	wheelRotateDeg = 15
	keyPanStepPx   = 50
)

// KeyEvent is a toolkit-independent keydown sample. Key holds the key value
// ("+", "0", "ArrowLeft", ...); Repeat marks auto-repeat events, which the
// dispatcher ignores.
type KeyEvent struct {
	Key    string
	Repeat bool
}

// WheelEvent is a toolkit-independent wheel sample at a screen position.
// DY > 0 means scrolling up / away from the user.
type WheelEvent struct {
	X, Y  float64
	DY    float64
	Shift bool
}

// KeyHandler performs a shortcut action. Returning false opts out of event
// consumption, letting the event propagate to the host.
type KeyHandler func() bool

// Dispatcher maps single keydown events and wheel input to viewport
// operations. No modifier chords: a key value either has a handler or it
// does not.
type Dispatcher struct {
	viewport *Viewport
	handlers map[string]KeyHandler
}

// NewDispatcher creates a dispatcher with the default shortcut table bound
// to v.
func NewDispatcher(v *Viewport, opts Options) *Dispatcher {
	d := &Dispatcher{
		viewport: v,
		handlers: make(map[string]KeyHandler),
	}

	consume := func(fn func()) KeyHandler {
		return func() bool {
			fn()
			return true
		}
	}

	d.Bind("+", consume(func() { v.Zoom(wheelZoomIn) }))
	d.Bind("=", consume(func() { v.Zoom(wheelZoomIn) }))
	d.Bind("-", consume(func() { v.Zoom(wheelZoomOut) }))
	d.Bind("0", consume(func() { v.Fit(opts.Padding) }))
	d.Bind("[", consume(func() { v.Rotate(-wheelRotateDeg) }))
	d.Bind("]", consume(func() { v.Rotate(wheelRotateDeg) }))
	d.Bind("s", consume(func() { v.RotateExact(0) }))
	d.Bind("ArrowUp", consume(func() { v.Pan(0, keyPanStepPx) }))
	d.Bind("ArrowDown", consume(func() { v.Pan(0, -keyPanStepPx) }))
	d.Bind("ArrowLeft", consume(func() { v.Pan(keyPanStepPx, 0) }))
	d.Bind("ArrowRight", consume(func() { v.Pan(-keyPanStepPx, 0) }))

	return d
}

// Bind registers or replaces the handler for a key value.
func (d *Dispatcher) Bind(key string, handler KeyHandler) {
	d.handlers[key] = handler
}

// Unbind removes the handler for a key value.
func (d *Dispatcher) Unbind(key string) {
	delete(d.handlers, key)
}

// KeyDown dispatches a keydown event. It returns true if the event was
// handled and should be consumed. Auto-repeat events are never handled: a
// held "+" zooms exactly once.
func (d *Dispatcher) KeyDown(ev KeyEvent) bool {
	if ev.Repeat {
		return false
	}
	handler, ok := d.handlers[ev.Key]
	if !ok {
		return false
	}
	return handler()
}

// Wheel dispatches a wheel event: plain wheel zooms in small steps about
// the cursor, shift+wheel rotates in fixed steps about the cursor. Returns
// true if the event was consumed.
func (d *Dispatcher) Wheel(ev WheelEvent) bool {
	if ev.DY == 0 {
		return false
	}
	if ev.Shift {
		if ev.DY > 0 {
			d.viewport.RotateAt(-wheelRotateDeg, ev.X, ev.Y)
		} else {
			d.viewport.RotateAt(wheelRotateDeg, ev.X, ev.Y)
		}
		return true
	}
	if ev.DY > 0 {
		d.viewport.ZoomAt(wheelZoomIn, ev.X, ev.Y)
	} else {
		d.viewport.ZoomAt(wheelZoomOut, ev.X, ev.Y)
	}
	return true
}
