package viewport

import (
	"math"

	"github.com/lucacicada/slick-viewer/pkg/geometry"
)

// minDragPx is the per-axis threshold a drag must exceed before an
// area-select becomes a real selection, and the total-drag threshold past
// which the next native context menu is suppressed. Anything smaller is
// treated as a click.
const minDragPx = 12

// rotateDegPerPixel converts edge-drag distance to rotation.
const rotateDegPerPixel = 0.25

// PointerEvent is a toolkit-independent pointer sample in container-local
// coordinates.
type PointerEvent struct {
	PointerID int
	X, Y      float64
	Button    MouseButton
	Shift     bool
	Ctrl      bool
}

// Point returns the event position as a geometry point.
func (ev PointerEvent) Point() geometry.Point2D {
	return geometry.Point2D{X: ev.X, Y: ev.Y}
}

// MoveFunc receives the incremental delta since the previous move and the
// running totals since the press.
type MoveFunc func(ev PointerEvent, dx, dy, totalX, totalY float64)

// UpFunc receives the final totals when the pointer is released or the
// stream is cancelled.
type UpFunc func(ev PointerEvent, totalX, totalY float64)

// ActionBinding is one entry of the classifier's ordered action list. On
// pointer-down the bindings are evaluated in slice order and the first one
// whose Down predicate returns true claims the pointer stream; that order is
// the contract, not an accident of iteration.
type ActionBinding struct {
	Name string
	Down func(ev PointerEvent) bool
	Move MoveFunc
	Up   UpFunc
}

// Session is the ephemeral state of one active pointer-driven action, from
// press to release or cancel.
type Session struct {
	PointerID      int
	Action         string
	StartX, StartY float64
	LastX, LastY   float64

	binding *ActionBinding
}

// Classifier turns raw pointer streams into viewport actions. At most one
// session is active at a time; events for any other pointer id are dropped,
// so a second finger cannot disturb an in-flight gesture.
type Classifier struct {
	bindings []ActionBinding
	session  *Session
	menu     *MenuSuppressor
}

// NewClassifier creates a classifier over an ordered action list. menu may
// be nil if context-menu suppression is not wired up.
func NewClassifier(bindings []ActionBinding, menu *MenuSuppressor) *Classifier {
	return &Classifier{bindings: bindings, menu: menu}
}

// Active reports whether a gesture session is in flight.
func (c *Classifier) Active() bool {
	return c.session != nil
}

// ActiveAction returns the name of the in-flight action, or "".
func (c *Classifier) ActiveAction() string {
	if c.session == nil {
		return ""
	}
	return c.session.Action
}

// PointerDown evaluates the binding list against a press. The first binding
// whose predicate accepts the event starts a session; if none match, or a
// session is already active, the event is ignored.
func (c *Classifier) PointerDown(ev PointerEvent) {
	if c.session != nil {
		return
	}
	for i := range c.bindings {
		b := &c.bindings[i]
		if b.Down == nil || !b.Down(ev) {
			continue
		}
		c.session = &Session{
			PointerID: ev.PointerID,
			Action:    b.Name,
			StartX:    ev.X,
			StartY:    ev.Y,
			LastX:     ev.X,
			LastY:     ev.Y,
			binding:   b,
		}
		return
	}
}

// PointerMove streams a move to the bound action. Events that do not carry
// the session's pointer id are dropped.
func (c *Classifier) PointerMove(ev PointerEvent) {
	s := c.session
	if s == nil || ev.PointerID != s.PointerID {
		return
	}
	dx := ev.X - s.LastX
	dy := ev.Y - s.LastY
	s.LastX = ev.X
	s.LastY = ev.Y
	if s.binding.Move != nil {
		s.binding.Move(ev, dx, dy, ev.X-s.StartX, ev.Y-s.StartY)
	}
}

// PointerUp finishes the session: the bound action's Up handler runs with
// the final totals, and if the drag travelled past the click threshold the
// next native context menu is flagged for suppression.
func (c *Classifier) PointerUp(ev PointerEvent) {
	c.finish(ev)
}

// PointerCancel ends the session the same way a release does, per the
// single-pointer event model.
func (c *Classifier) PointerCancel(ev PointerEvent) {
	c.finish(ev)
}

func (c *Classifier) finish(ev PointerEvent) {
	s := c.session
	if s == nil || ev.PointerID != s.PointerID {
		return
	}
	c.session = nil

	totalX := ev.X - s.StartX
	totalY := ev.Y - s.StartY
	if s.binding.Up != nil {
		s.binding.Up(ev, totalX, totalY)
	}
	if c.menu != nil && math.Max(math.Abs(totalX), math.Abs(totalY)) > minDragPx {
		c.menu.Arm()
	}
}

// DefaultBindings builds the reference action list for a viewport, in
// priority order: pan, rotate, area-select.
//
//   - primary or middle button, no shift/ctrl, outside the rotate margin: pan
//   - primary button, no shift/ctrl, inside the rotate margin: rotate,
//     with the drag direction flipped per container half so dragging along
//     any edge turns the content the way the hand moves
//   - secondary button, no shift/ctrl: area-select; the rubber band only
//     becomes a selection once both axes pass the click threshold
//
// Shift or ctrl at press time disqualifies every built-in action; those
// chords are left to host-level overrides via Options.Actions.
func DefaultBindings(v *Viewport, opts Options) []ActionBinding {
	margin := opts.RotateMargin
	if margin <= 0 {
		margin = DefaultOptions().RotateMargin
	}

	inMargin := func(ev PointerEvent) bool {
		c := v.Container()
		return ev.X < margin || ev.Y < margin ||
			ev.X > c.Width-margin || ev.Y > c.Height-margin
	}
	plain := func(ev PointerEvent) bool {
		return !ev.Shift && !ev.Ctrl
	}
	downFor := func(name string, def func(ev PointerEvent) bool) func(ev PointerEvent) bool {
		cfg := opts.actionConfig(name)
		if !cfg.Enabled {
			return func(PointerEvent) bool { return false }
		}
		if cfg.Trigger != nil {
			trig := *cfg.Trigger
			return trig.Matches
		}
		return def
	}

	bindings := []ActionBinding{
		{
			Name: ActionPan,
			Down: downFor(ActionPan, func(ev PointerEvent) bool {
				return plain(ev) &&
					(ev.Button == ButtonPrimary || ev.Button == ButtonMiddle) &&
					!inMargin(ev)
			}),
			Move: func(ev PointerEvent, dx, dy, totalX, totalY float64) {
				v.Pan(dx, dy)
			},
		},
		{
			Name: ActionRotate,
			Down: downFor(ActionRotate, func(ev PointerEvent) bool {
				return plain(ev) && ev.Button == ButtonPrimary && inMargin(ev)
			}),
			Move: func(ev PointerEvent, dx, dy, totalX, totalY float64) {
				c := v.Container()
				deg := 0.0
				if ev.Y < c.Height/2 {
					deg += dx * rotateDegPerPixel
				} else {
					deg -= dx * rotateDegPerPixel
				}
				if ev.X >= c.Width/2 {
					deg += dy * rotateDegPerPixel
				} else {
					deg -= dy * rotateDegPerPixel
				}
				v.Rotate(deg)
			},
		},
		{
			Name: ActionAreaSelect,
			Down: downFor(ActionAreaSelect, func(ev PointerEvent) bool {
				return plain(ev) && ev.Button == ButtonSecondary
			}),
			Move: func(ev PointerEvent, dx, dy, totalX, totalY float64) {
				if math.Abs(totalX) < minDragPx || math.Abs(totalY) < minDragPx {
					v.ClearSelection()
					return
				}
				start := geometry.Point2D{X: ev.X - totalX, Y: ev.Y - totalY}
				v.SetSelection(geometry.RectFromPoints(start, ev.Point()))
			},
			Up: func(ev PointerEvent, totalX, totalY float64) {
				if rect, ok := v.Selection(); ok {
					v.SelectRect(rect)
					return
				}
				v.ClearSelection()
			},
		},
	}
	return bindings
}
