package holdem

import "github.com/race-protocol/holdem-core/card"

// Snapshot is a read-only projection of a HandState, safe to hand to
// a UI or a spectator client: it copies every slice and map so the
// caller can't reach back into the live hand.
type Snapshot struct {
	HandNumber uint64
	Street     Street
	Stage      Stage
	ButtonPos  int
	StreetBet  uint64
	MinRaise   uint64
	Board      []card.Card
	Acting     uint64
	ActingSet  bool
	Players    []PlayerSnapshot
	Pots       []Pot
}

type PlayerSnapshot struct {
	ID            uint64
	Position      int
	Chips         uint64
	Status        Status
	BetThisStreet uint64
	TotalBet      uint64
}

// Snapshot takes a point-in-time copy of the hand for display or
// logging, independent of the live display event log.
func (s *HandState) Snapshot() Snapshot {
	var players []PlayerSnapshot
	for _, p := range s.registry.bySeat() {
		players = append(players, PlayerSnapshot{
			ID:            p.ID,
			Position:      p.Position,
			Chips:         p.Chips,
			Status:        p.Status,
			BetThisStreet: p.BetThisStreet,
			TotalBet:      p.TotalBet,
		})
	}
	acting, ok := s.ActingPlayer()
	return Snapshot{
		HandNumber: s.handNumber,
		Street:     s.Street,
		Stage:      s.Stage,
		ButtonPos:  s.buttonPos,
		StreetBet:  s.streetBet,
		MinRaise:   s.minRaise,
		Board:      s.Board(),
		Acting:     acting,
		ActingSet:  ok,
		Players:    players,
		Pots:       append([]Pot(nil), s.pots...),
	}
}
