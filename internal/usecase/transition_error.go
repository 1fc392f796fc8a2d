package usecase

import "fmt"

// InvalidTransitionError reports a state precondition violation. It carries
// the entity id plus the current and requested state so callers can render a
// useful message and re-fetch before retrying.
type InvalidTransitionError struct {
	EntityKind string
	EntityID   string
	Current    string
	Requested  string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s cannot move from %q to %q",
		e.EntityKind, e.EntityID, e.Current, e.Requested)
}

func newInvalidTransition(kind, id, current, requested string) *InvalidTransitionError {
	return &InvalidTransitionError{EntityKind: kind, EntityID: id, Current: current, Requested: requested}
}
