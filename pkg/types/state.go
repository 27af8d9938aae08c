package types

import "github.com/google/uuid"

// State captures UI selections that persist across sessions, such as which
// backlog is currently visible. It flows through the same Store contract as
// the domain entities.
type State struct {
	ID             uuid.UUID
	VisibleBacklog uuid.UUID // uuid.Nil when no backlog is selected.
}

// NewState creates a State with a fresh identifier and no visible backlog.
func NewState() State {
	return State{ID: NewID()}
}

// ItemID returns the state's stable identifier.
func (s State) ItemID() uuid.UUID { return s.ID }

// Kind returns "State".
func (s State) Kind() string { return "State" }

// SetVisibleBacklog records list as the currently visible backlog.
func (s *State) SetVisibleBacklog(list TaskList) {
	s.VisibleBacklog = list.ID
}
