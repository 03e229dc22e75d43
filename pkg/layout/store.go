package layout

import (
	"sync"

	"github.com/charmbracelet/log"
)

// StateObserver is notified after the state changed.
type StateObserver interface {
	StateChanged(prev, next State)
}

// OutputObserver is notified after the published output changed.
type OutputObserver interface {
	OutputChanged(prev, next Output)
}

// StateObserverFunc adapts a function to StateObserver.
type StateObserverFunc func(prev, next State)

func (f StateObserverFunc) StateChanged(prev, next State) { f(prev, next) }

// OutputObserverFunc adapts a function to OutputObserver.
type OutputObserverFunc func(prev, next Output)

func (f OutputObserverFunc) OutputChanged(prev, next Output) { f(prev, next) }

// Store holds the layout state and the last published output. It applies
// changes and messages, and notifies observers when either snapshot
// actually changed. Observers run on the caller's goroutine after the
// store's lock is released, in subscription order.
type Store struct {
	logger *log.Logger

	mu      sync.Mutex
	state   State
	output  Output
	nextID  int
	states  []stateSub
	outputs []outputSub
}

type stateSub struct {
	id int
	o  StateObserver
}

type outputSub struct {
	id int
	o  OutputObserver
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger logs unknown messages and observer counts.
func WithStoreLogger(l *log.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a store holding initial.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{state: initial, logger: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Output returns the last published output.
func (s *Store) Output() Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output
}

// Apply runs the changes in order as one update and returns the resulting
// state.
func (s *Store) Apply(changes ...Change) State {
	s.mu.Lock()
	prev := s.state
	next := prev
	for _, c := range changes {
		c(&next)
	}
	s.state = next
	obs := s.stateObservers()
	s.mu.Unlock()

	if prev != next {
		for _, o := range obs {
			o.StateChanged(prev, next)
		}
	}
	return next
}

// Dispatch applies one message.
func (s *Store) Dispatch(m Message) { s.DispatchAll(m) }

// DispatchAll applies ms as one update: observers see at most one state
// and one output notification.
func (s *Store) DispatchAll(ms ...Message) {
	s.mu.Lock()
	prevState, prevOut := s.state, s.output
	for _, m := range ms {
		s.apply(m)
	}
	nextState, nextOut := s.state, s.output
	stateObs := s.stateObservers()
	outputObs := s.outputObservers()
	s.mu.Unlock()

	if prevState != nextState {
		for _, o := range stateObs {
			o.StateChanged(prevState, nextState)
		}
	}
	if prevOut != nextOut {
		for _, o := range outputObs {
			o.OutputChanged(prevOut, nextOut)
		}
	}
}

// apply mutates the snapshots for one message. Callers must hold s.mu.
func (s *Store) apply(m Message) {
	switch m := m.(type) {
	case SetLayoutInput:
		s.state.Input = m.Input
	case SetCameraDockOptimalGridSize:
		s.state.Input.CameraDock.OptimalGrid = m.Size
	case SetNavbarOutput:
		s.output.Navbar = m.Output
	case SetActionBarOutput:
		s.output.ActionBar = m.Output
	case SetSidebarNavigationOutput:
		s.output.SidebarNavigation = m.Output
	case SetSidebarContentOutput:
		s.output.SidebarContent = m.Output
	case SetMediaAreaSize:
		s.output.Main = m.Main
		s.output.MediaArea = m.Area
	case SetCameraDockOutput:
		s.output.CameraDock = m.Output
	case SetPresentationOutput:
		s.output.Presentation = m.Output
	case SetScreenShareOutput:
		s.output.ScreenShare = m.Output
	case SetExternalVideoOutput:
		s.output.ExternalVideo = m.Output
	default:
		s.logger.Warn("ignoring unknown message", "type", m.Type())
	}
}

// Subscribe registers o for state changes and returns a function that
// removes it. The function is safe to call more than once.
func (s *Store) Subscribe(o StateObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.states = append(s.states, stateSub{id: id, o: o})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.states {
			if sub.id == id {
				s.states = append(s.states[:i:i], s.states[i+1:]...)
				return
			}
		}
	}
}

// SubscribeOutput registers o for output changes and returns a function
// that removes it.
func (s *Store) SubscribeOutput(o OutputObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.outputs = append(s.outputs, outputSub{id: id, o: o})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.outputs {
			if sub.id == id {
				s.outputs = append(s.outputs[:i:i], s.outputs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) stateObservers() []StateObserver {
	obs := make([]StateObserver, len(s.states))
	for i, sub := range s.states {
		obs[i] = sub.o
	}
	return obs
}

func (s *Store) outputObservers() []OutputObserver {
	obs := make([]OutputObserver, len(s.outputs))
	for i, sub := range s.outputs {
		obs[i] = sub.o
	}
	return obs
}
