package holdem

import "github.com/race-protocol/holdem-core/card"

// EventKind tags the inbound events HandleEvent accepts. Grounded on
// the original's handle_event dispatch (Custom/ActionTimeout/
// WaitingTimeout/Join/GameStart/Leave/RandomnessReady/SecretsReady),
// renamed to this engine's vocabulary.
type EventKind byte

const (
	EventGameStart EventKind = iota
	EventJoin
	EventLeave
	EventCustom
	EventActionTimeout
	EventWaitTimeout
	EventRandomnessReady
	EventRevealReady
)

// Event is the tagged union HandleEvent switches on. Only the fields
// relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind EventKind

	// PlayerID is the actor for Custom/ActionTimeout, the joiner for
	// Join, and the leaver for Leave.
	PlayerID uint64
	Chips    uint64 // Join: buy-in

	Custom GameEvent // EventCustom payload

	// Revealed carries the host's answer to a RevealCards request:
	// deck slot -> real face, for EventRevealReady.
	Revealed map[int]card.Card
}
