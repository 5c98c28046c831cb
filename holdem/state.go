package holdem

import "github.com/race-protocol/holdem-core/card"

// HandState is the entire mutable state of one hand in progress. It is
// a plain, serializable struct with no goroutines or mutexes: every
// mutation happens inside HandleEvent, driven synchronously by the
// host. This mirrors the no-internal-concurrency design the teacher
// uses for its own Game aggregate, generalized to the id-keyed,
// host-driven shape the spec calls for.
type HandState struct {
	config Config

	registry *registry

	buttonPos int
	order     []uint64 // acting order, recomputed each time nextState runs

	// dealSeats is the acting order fixed at the moment this hand was
	// dealt (seat left of the button first, button last). Hole-card and board slot indices are
	// defined relative to it and must never shift once the hand is
	// underway, even though `order` itself is recomputed on every
	// nextState call as the reference position changes.
	dealSeats []uint64

	Street Street
	Stage  Stage

	actingSet    bool
	actingPlayer uint64

	streetBet    uint64
	minRaise     uint64
	blindsPosted bool

	// actedThisStreet tracks who has made a voluntary decision since
	// the street began or was last reopened by a raise. A player can
	// owe an action (owesAction()==true) yet not be in this set, which
	// is exactly the "checked around to me, but a later raise reopened
	// action" case the data model's status enum alone can't represent.
	actedThisStreet map[uint64]bool

	board card.List
	deck  card.List // host-supplied remaining stock, for display only

	pots []Pot

	handNumber uint64
	outbox     []OutgoingCall
	display    []DisplayEvent
}

// newHandState builds the state for a fresh hand from a registry of
// seated players. It does not reset players, post blinds or deal
// cards; machine.go's startHand and the events after it do that.
func newHandState(cfg Config, reg *registry, buttonPos int, handNumber uint64) *HandState {
	return &HandState{
		config:          cfg,
		registry:        reg,
		buttonPos:       buttonPos,
		Street:          StreetInit,
		Stage:           StageInit,
		actedThisStreet: make(map[uint64]bool),
		handNumber:      handNumber,
	}
}

// Players returns every seated player, in table position order. The
// returned slice is read-only from the caller's perspective; mutate
// state only through HandleEvent.
func (s *HandState) Players() []*Player {
	return s.registry.bySeat()
}

func (s *HandState) Player(id uint64) (*Player, bool) {
	return s.registry.get(id)
}

func (s *HandState) Board() []card.Card {
	return append([]card.Card(nil), s.board...)
}

func (s *HandState) ActingPlayer() (uint64, bool) {
	if !s.actingSet {
		return 0, false
	}
	return s.actingPlayer, true
}
