// Package app provides application lifecycle management, configuration, and events.
package app

import (
	"sync"

	"github.com/lucacicada/slick-viewer/internal/media"
	"github.com/lucacicada/slick-viewer/internal/viewport"
)

// State holds the application state: the open media document and the
// viewport machinery that presents it.
type State struct {
	mu sync.RWMutex

	// Current document, nil until the first successful load.
	Media *media.Media

	// View machinery. The viewport owns the transform; the tracker owns
	// the fit policy; the classifier and dispatcher translate input.
	Viewport   *viewport.Viewport
	Tracker    *viewport.SizeTracker
	Classifier *viewport.Classifier
	Dispatcher *viewport.Dispatcher
	Menu       *viewport.MenuSuppressor
	Options    viewport.Options

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventMediaLoaded EventType = iota
	EventMediaCleared
	EventViewChanged
	EventSelectionChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state wired to a fresh viewport.
func NewState(opts viewport.Options) *State {
	v := viewport.New()
	menu := &viewport.MenuSuppressor{}

	s := &State{
		Viewport:   v,
		Tracker:    viewport.NewSizeTracker(v, opts.Padding),
		Classifier: viewport.NewClassifier(viewport.DefaultBindings(v, opts), menu),
		Dispatcher: viewport.NewDispatcher(v, opts),
		Menu:       menu,
		Options:    opts,
		listeners:  make(map[EventType][]EventListener),
	}

	// Forward viewport events so UI code only has to watch the state.
	v.On(viewport.EventTransformChanged, func(data interface{}) {
		s.Emit(EventViewChanged, nil)
	})
	v.On(viewport.EventSelectionChanged, func(data interface{}) {
		s.Emit(EventSelectionChanged, data)
	})

	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadMedia opens the file at path, replaces the current document, and
// feeds the new intrinsic size to the tracker so the view refits.
func (s *State) LoadMedia(path string) error {
	m, err := media.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Media = m
	s.mu.Unlock()

	s.Tracker.ObserveContentSize(m.NaturalSize)
	s.Emit(EventMediaLoaded, m)
	return nil
}

// ClearMedia drops the current document.
func (s *State) ClearMedia() {
	s.mu.Lock()
	s.Media = nil
	s.mu.Unlock()

	s.Viewport.ClearSelection()
	s.Emit(EventMediaCleared, nil)
}

// CurrentMedia returns the open document, or nil.
func (s *State) CurrentMedia() *media.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Media
}

// HasMedia reports whether a document is open.
func (s *State) HasMedia() bool {
	return s.CurrentMedia() != nil
}
