package testutil

import (
	"github.com/race-protocol/holdem-core/card"
	"github.com/race-protocol/holdem-core/holdem"
)

// SeatSpec describes one player to seat before a fixture hand starts.
type SeatSpec struct {
	ID       uint64
	Chips    uint64
	Position int
}

// HandSpec is a declarative fixture: seats, a fixed deck order (so
// the dealt hole cards and board are exactly known), and a ruleset
// override. Build creates the HandState (via holdem.NewHand) and a FakeHost wired to the
// same deck, ready for the caller to drive with HandleEvent.
type HandSpec struct {
	Seats     []SeatSpec
	Deck      []card.Card // dealt in order: p0c0, p0c1, p1c0, p1c1, ..., flop x3, turn, river
	Config    holdem.Config
	ButtonPos int
}

func (spec HandSpec) Build() (*holdem.HandState, *FakeHost, error) {
	players := make([]*holdem.Player, 0, len(spec.Seats))
	for _, seat := range spec.Seats {
		players = append(players, holdem.NewPlayerForTest(seat.ID, seat.Chips, seat.Position))
	}
	cfg := spec.Config
	state, err := holdem.NewHand(cfg, players, spec.ButtonPos)
	if err != nil {
		return nil, nil, err
	}
	host := NewFakeHost(spec.Deck)
	return state, host, nil
}

// StandardDeckFor52 returns the 52-card deck in a fixed, non-shuffled
// order, useful as a Deck default when a test doesn't care about the
// exact cards dealt.
func StandardDeckFor52() []card.Card {
	return append([]card.Card(nil), card.StandardDeck...)
}
