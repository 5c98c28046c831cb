package holdem

import (
	"sort"

	"github.com/race-protocol/holdem-core/card"
)

// AwardPot is one pot's resolution: who won it, how much each got, and
// the reason it's shown under ("main_pot", "side_pot", "uncontested").
type AwardPot struct {
	Reason   string
	Amount   uint64
	Winners  []uint64
	Shares   map[uint64]uint64
}

// PrizeResult is the complete showdown (or uncontested-win) outcome
// for a hand, ready for the host's Settle call.
type PrizeResult struct {
	Awards   []AwardPot
	Rake     uint64
	Payouts  map[uint64]uint64 // chips won per player ID, rake already deducted
}

// calcPrize resolves every pot against the showdown hand ranks and
// distributes odd chips per the button-relative rule: the first live
// winner strictly after the button's position, wrapping around the
// table (see orderForOddChip). Cross-checked against
// orderWinnersForOddChip from the wider pool of reference engines,
// which uses the same "first winner past the button, wrapping" rule.
func calcPrize(pots []Pot, ranks map[uint64]HandRank, players map[uint64]*Player, buttonPos int, rakeBps uint16) PrizeResult {
	payouts := make(map[uint64]uint64)
	var awards []AwardPot
	var totalRake uint64

	for i, pot := range pots {
		contested := len(pot.Eligible) > 1
		var best []uint64
		var bestScore int16
		first := true
		for _, id := range pot.Eligible {
			r, ok := ranks[id]
			if !ok {
				continue
			}
			switch {
			case first || r.Score > bestScore:
				bestScore = r.Score
				best = []uint64{id}
				first = false
			case r.Score == bestScore:
				best = append(best, id)
			}
		}
		if len(best) == 0 {
			// single remaining eligible player with no recorded rank:
			// an uncontested award, e.g. everyone else folded.
			best = append(best, pot.Eligible...)
			contested = false
		}

		amount := pot.Amount
		var rake uint64
		if contested && rakeBps > 0 {
			rake = amount * uint64(rakeBps) / 10000
			amount -= rake
			totalRake += rake
		}

		shares := make(map[uint64]uint64, len(best))
		share := amount / uint64(len(best))
		remainder := amount % uint64(len(best))
		for _, id := range best {
			shares[id] = share
			payouts[id] += share
		}

		if remainder > 0 {
			order := orderForOddChip(buttonPos, best, players)
			id := order[0]
			shares[id] += remainder
			payouts[id] += remainder
		}

		reason := "main_pot"
		if i > 0 {
			reason = "side_pot"
		}
		if !contested {
			reason = "uncontested"
		}
		awards = append(awards, AwardPot{Reason: reason, Amount: amount, Winners: best, Shares: shares})
	}

	return PrizeResult{Awards: awards, Rake: totalRake, Payouts: payouts}
}

// orderForOddChip returns winners ordered starting from the first
// whose seat position is strictly after the button, wrapping to the
// lowest position if none are.
func orderForOddChip(buttonPos int, winners []uint64, players map[uint64]*Player) []uint64 {
	ordered := append([]uint64(nil), winners...)
	sort.Slice(ordered, func(i, j int) bool {
		return players[ordered[i]].Position < players[ordered[j]].Position
	})
	start := 0
	for i, id := range ordered {
		if players[id].Position > buttonPos {
			start = i
			break
		}
	}
	out := make([]uint64, len(ordered))
	for i := range ordered {
		out[i] = ordered[(start+i)%len(ordered)]
	}
	return out
}

// evaluateShowdown scores every live player's best hand. Folded,
// left, out and mid-hand-join players are simply absent from the
// result map; calcPrize treats that as "not a candidate for this
// pot." A live player whose hole cards are not both revealed yields a
// MissingRevealError.
func evaluateShowdown(players []*Player, board [5]card.Card) (map[uint64]HandRank, error) {
	ranks := make(map[uint64]HandRank)
	for _, p := range players {
		if p.Status == StatusFold || p.Status == StatusLeave || p.Status == StatusOut || p.Status == StatusInit {
			continue
		}
		if !p.Revealed {
			return nil, &MissingRevealError{PlayerID: p.ID}
		}
		rank, err := evalSeven(p.HoleCards, board)
		if err != nil {
			return nil, err
		}
		ranks[p.ID] = rank
	}
	return ranks, nil
}
