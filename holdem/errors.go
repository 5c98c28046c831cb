package holdem

import "fmt"

// InvalidActorError is returned when an event names a player who is
// not the one currently owed to act.
type InvalidActorError struct {
	Expected uint64
	Got      uint64
}

func (e *InvalidActorError) Error() string {
	return fmt.Sprintf("holdem: player %d acted out of turn, expected %d", e.Got, e.Expected)
}

// InvalidActionError is returned when an action is structurally
// disallowed for the current betting state (e.g. a check after a bet,
// a raise below the minimum, a bet below the big blind).
type InvalidActionError struct {
	Action ActionType
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("holdem: invalid %s: %s", e.Action, e.Reason)
}

// InvalidStateError is returned when an event is received while the
// hand is in a state that cannot accept it (e.g. an action from a
// player whose status no longer allows acting, or an unrecognized
// event kind).
type InvalidStateError struct {
	Stage  Stage
	Street Street
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("holdem: invalid state (stage=%s street=%s): %s", e.Stage, e.Street, e.Reason)
}

// MissingRevealError is returned when settlement is attempted before
// the host has supplied all hole cards required for showdown.
type MissingRevealError struct {
	PlayerID uint64
}

func (e *MissingRevealError) Error() string {
	return fmt.Sprintf("holdem: missing revealed hole cards for player %d", e.PlayerID)
}

// InternalInvariantError marks a condition that should be impossible
// if the state machine is correct — e.g. a pot whose owner set is
// empty, or a prize sum that doesn't match total chips collected. It
// is never expected to surface outside of a test or a bug.
type InternalInvariantError struct {
	Detail string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("holdem: internal invariant violated: %s", e.Detail)
}
