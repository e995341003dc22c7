package checkout

import "fmt"

// State is a step of a checkout session.
type State string

const (
	Idle       State = "idle"
	FormEntry  State = "form_entry"
	Validating State = "validating"
	Rejected   State = "rejected"
	Processing State = "processing"
	Declined   State = "declined"
	Succeeded  State = "succeeded"
)

var transitions = map[State][]State{
	Idle:       {FormEntry},
	FormEntry:  {Validating},
	Validating: {Rejected, Processing},
	Rejected:   {FormEntry},
	Processing: {Succeeded, Declined, FormEntry},
	Declined:   {FormEntry},
}

// CanTransition reports whether a session may move from one state to the other.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s accepts no further transitions.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// Editable reports whether the form accepts input in s.
func (s State) Editable() bool {
	switch s {
	case Idle, FormEntry, Rejected, Declined:
		return true
	default:
		return false
	}
}

func (s *Session) transition(to State) error {
	if !CanTransition(s.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.State, to)
	}
	s.State = to
	return nil
}
