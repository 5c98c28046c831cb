package holdem

import "github.com/race-protocol/holdem-core/card"

// Player is one seat's state for the current hand.
type Player struct {
	ID       uint64
	Chips    uint64
	Position int
	Status   Status

	// TimeoutCount accrues across hands; kickTimedOut evicts anyone who
	// reaches Config.MaxConsecutiveTimeouts. A successful voluntary
	// action resets it to zero.
	TimeoutCount int

	// BetThisStreet is the player's total contribution to the current
	// street, reset at each street change. It is compared against
	// HandState.streetBet to decide whether the player still owes
	// money to call.
	BetThisStreet uint64

	// TotalBet is the player's total contribution across the whole
	// hand, used by collectBets to build pots.
	TotalBet uint64

	// HoleCards are assigned by the host through "assign_card" outbox
	// calls as soon as randomness is ready. They start as card.CardRear placeholders and
	// are swapped for real values when the host reveals them (at
	// showdown, or earlier for an all-in runner).
	HoleCards [2]card.Card
	Revealed  bool
}

func newPlayer(id uint64, chips uint64, position int, status Status) *Player {
	return &Player{
		ID:       id,
		Chips:    chips,
		Position: position,
		Status:   status,
	}
}

// NewPlayerForTest builds a Player in StatusWait, ready to be seated
// into a fresh hand via NewHand. Exported for holdem/testutil fixture
// builders; production hosts build players through Join events
// instead.
func NewPlayerForTest(id uint64, chips uint64, position int) *Player {
	return newPlayer(id, chips, position, StatusWait)
}

func (p *Player) canAct() bool {
	return p.Status.owesAction()
}

func (p *Player) isLive() bool {
	switch p.Status {
	case StatusFold, StatusLeave, StatusOut, StatusInit:
		return false
	default:
		return true
	}
}

// resetForHand prepares a returning player for a fresh deal: clears
// per-street and per-hand betting counters and promotes Init/Wait
// players into the new hand.
func (p *Player) resetForHand() {
	p.BetThisStreet = 0
	p.TotalBet = 0
	p.HoleCards = [2]card.Card{card.CardRear, card.CardRear}
	p.Revealed = false
	if p.Chips == 0 {
		p.Status = StatusOut
		return
	}
	switch p.Status {
	case StatusLeave, StatusOut:
		return
	default:
		p.Status = StatusWait
	}
}

func (p *Player) resetForStreet() {
	p.BetThisStreet = 0
}
