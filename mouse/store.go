package mouse

import (
	"sort"

	"github.com/OpticalFlyer/retain/geom"
)

// State is what the Application knows about one mouse.
type State struct {
	// Position is in the coordinates of the root component.
	Position geom.Point
	Buttons  PressedButtons
}

// Store keeps the State of every mouse that is currently inside the window.
// It is owned by the Application and only read by components.
type Store struct {
	states map[Mouse]*State
}

func NewStore() *Store {
	return &Store{states: make(map[Mouse]*State)}
}

// Add registers m with the given state, replacing any previous state.
func (s *Store) Add(m Mouse, state State) {
	s.states[m] = &state
}

// Remove forgets m. Removing an unknown mouse does nothing.
func (s *Store) Remove(m Mouse) {
	delete(s.states, m)
}

// Get returns a copy of the state of m.
func (s *Store) Get(m Mouse) (State, bool) {
	state, ok := s.states[m]
	if !ok {
		return State{}, false
	}
	return *state, true
}

// GetMut returns the stored state of m for in-place updates, or nil when m is
// unknown.
func (s *Store) GetMut(m Mouse) *State {
	return s.states[m]
}

// Mice returns all known mice in ascending order.
func (s *Store) Mice() []Mouse {
	mice := make([]Mouse, 0, len(s.states))
	for m := range s.states {
		mice = append(mice, m)
	}
	sort.Slice(mice, func(i, j int) bool { return mice[i] < mice[j] })
	return mice
}

func (s *Store) Len() int {
	return len(s.states)
}
