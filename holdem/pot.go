package holdem

import "sort"

// Pot is one level of the pot: a main pot or a side pot, with the set
// of player IDs eligible to win it. Eligibility is fixed at the
// moment a pot level is collected, per the all-in side-pot rule: a
// player who has gone all-in for less than a later raise can only win
// pots built from contributions up to their own total.
type Pot struct {
	Amount    uint64
	Eligible  []uint64 // ascending by ID, stable for display/testing
}

// collectBets turns the per-player TotalBet contributions accumulated
// over a hand into an ordered list of pots, one per distinct
// contribution level. Grounded on the original's collect_bets /
// calc_prize split: it walks contribution levels ascending, and at
// each level charges every player who contributed at least that much,
// crediting eligibility only to players who are still live (not
// folded) and contributed at least that level.
func collectBets(players []*Player) []Pot {
	levels := contributionLevels(players)
	if len(levels) == 0 {
		return nil
	}

	var pots []Pot
	prev := uint64(0)
	for _, level := range levels {
		delta := level - prev
		if delta == 0 {
			prev = level
			continue
		}

		var contributors []*Player
		for _, p := range players {
			if p.TotalBet >= level {
				contributors = append(contributors, p)
			}
		}
		amount := delta * uint64(len(contributors))

		var eligible []uint64
		for _, p := range contributors {
			if p.Status != StatusFold {
				eligible = append(eligible, p.ID)
			}
		}
		sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })

		if amount > 0 && len(eligible) > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		} else if amount > 0 {
			// every contributor at this level has folded: the chips
			// are returned to whoever put them in, not awarded.
			refundOrphanLevel(players, level, prev)
		}
		prev = level
	}
	return pots
}

// refundOrphanLevel returns chips nobody is eligible to win (every
// contributor at this level folded) back to the contributors in
// proportion to their stake at this level. This only happens when a
// player bets, everyone folds to them, and a separate all-in dispute
// had already fixed this contribution band — an edge case the
// original handles by never letting it reach calc_prize at all since
// a fold always collapses the hand first; kept here as a defensive
// invariant guard rather than a reachable path.
func refundOrphanLevel(players []*Player, level, prev uint64) {
	delta := level - prev
	for _, p := range players {
		if p.TotalBet >= level {
			p.Chips += delta
			p.TotalBet -= delta
		}
	}
}

func contributionLevels(players []*Player) []uint64 {
	seen := make(map[uint64]struct{})
	var levels []uint64
	for _, p := range players {
		if p.TotalBet == 0 {
			continue
		}
		if _, ok := seen[p.TotalBet]; ok {
			continue
		}
		seen[p.TotalBet] = struct{}{}
		levels = append(levels, p.TotalBet)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// mergeSamePots collapses adjacent pots that ended up with identical
// eligibility sets (as when a folded player's total sits between two
// live players' totals), so the display layer doesn't show redundant
// side pots.
func mergeSamePots(pots []Pot) []Pot {
	if len(pots) == 0 {
		return pots
	}
	out := []Pot{pots[0]}
	for _, p := range pots[1:] {
		last := &out[len(out)-1]
		if sameEligible(last.Eligible, p.Eligible) {
			last.Amount += p.Amount
			continue
		}
		out = append(out, p)
	}
	return out
}

func sameEligible(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
