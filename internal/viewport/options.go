package viewport

// MouseButton identifies a pointer button, independent of the UI toolkit.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Action names for the built-in gesture bindings, in their evaluation order.
const (
	ActionPan        = "pan"
	ActionRotate     = "rotate"
	ActionAreaSelect = "area-select"
)

// Trigger describes the press that starts an action. A nil Trigger in an
// ActionConfig keeps the built-in policy for that action.
type Trigger struct {
	Button MouseButton
	Shift  bool
	Ctrl   bool
}

// Matches reports whether a pointer press satisfies the trigger.
func (t Trigger) Matches(ev PointerEvent) bool {
	return ev.Button == t.Button && ev.Shift == t.Shift && ev.Ctrl == t.Ctrl
}

// ActionConfig enables or rebinds one named action.
type ActionConfig struct {
	Enabled bool
	Trigger *Trigger
}

// Options configures the viewport's interaction policy.
type Options struct {
	// Padding is the gap, in pixels, left around fitted content.
	Padding float64

	// RotateMargin is the width, in pixels, of the edge band where a
	// primary-button drag rotates instead of pans.
	RotateMargin float64

	// Actions overrides the built-in gesture bindings by name (ActionPan,
	// ActionRotate, ActionAreaSelect). Absent entries keep the defaults.
	Actions map[string]ActionConfig
}

// DefaultOptions returns the reference interaction policy.
func DefaultOptions() Options {
	return Options{
		Padding:      0,
		RotateMargin: 40,
	}
}

// actionConfig resolves the configuration for a named action.
func (o Options) actionConfig(name string) ActionConfig {
	if cfg, ok := o.Actions[name]; ok {
		return cfg
	}
	return ActionConfig{Enabled: true}
}
