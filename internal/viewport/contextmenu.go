package viewport

// MenuSuppressor tracks whether the just-completed gesture should swallow
// the next native context-menu event. Releasing a secondary-button drag
// otherwise pops a ghost menu over the freshly selected area. The flag is
// scoped to one gesture: it is armed at session end and consumed by the
// first context-menu query, never carried further.
type MenuSuppressor struct {
	pending bool
}

// Arm requests that the next context-menu event be suppressed.
func (m *MenuSuppressor) Arm() {
	m.pending = true
}

// SuppressNext reports whether the upcoming context-menu event should be
// suppressed, consuming the flag.
func (m *MenuSuppressor) SuppressNext() bool {
	p := m.pending
	m.pending = false
	return p
}
