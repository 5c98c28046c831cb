package holdem

import "sort"

// nextButton picks the next button position strictly after the
// current one, wrapping to the lowest occupied position if the
// current button was the highest. Grounded on the original's
// get_next_btn.
func nextButton(players []*Player, currentButton int) int {
	if len(players) == 0 {
		return 0
	}
	positions := make([]int, 0, len(players))
	for _, p := range players {
		positions = append(positions, p.Position)
	}
	sort.Ints(positions)

	for _, pos := range positions {
		if pos > currentButton {
			return pos
		}
	}
	return positions[0]
}

// arrangePlayers returns players still in the hand (excludes Init,
// the mid-hand-join placeholder) in acting order starting just after
// the button. Grounded on the original's arrange_players, which
// re-keys every seat's distance from the button so a single sort
// produces the action order.
func arrangePlayers(players []*Player, buttonPos int) []uint64 {
	type keyed struct {
		id  uint64
		key int
	}
	ks := make([]keyed, 0, len(players))
	for _, p := range players {
		if p.Status == StatusInit {
			continue
		}
		var key int
		if p.Position > buttonPos {
			key = p.Position - buttonPos
		} else {
			key = p.Position + 100
		}
		ks = append(ks, keyed{id: p.ID, key: key})
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })

	order := make([]uint64, len(ks))
	for i, k := range ks {
		order[i] = k.id
	}
	return order
}

// blindPositions identifies small-blind and big-blind seats from an
// acting order already rotated to start after the button.
// arrangePlayers always sorts the button to the end of the order, so
// in a heads-up hand order[1] is the button: the button posts the
// small blind and the other seat posts the big blind, reversing the
// usual convention. With three or more players order[0] is the seat
// immediately left of the button and posts the small blind as usual.
// Grounded on the original's special case in blind_bets.
func blindPositions(order []uint64) (sb, bb uint64) {
	if len(order) == 2 {
		return order[1], order[0]
	}
	return order[0], order[1]
}

// rotateLeft returns a copy of order shifted left by n seats, wrapping
// around. Used once, right after blinds are posted, to find preflop's
// opening actor: left of the big blind rather than left of the button.
func rotateLeft(order []uint64, n int) []uint64 {
	if len(order) == 0 {
		return nil
	}
	n %= len(order)
	out := make([]uint64, len(order))
	copy(out, order[n:])
	copy(out[len(order)-n:], order[:n])
	return out
}
