package holdem

import "github.com/race-protocol/holdem-core/card"

// singlePlayerWin closes the hand when only one player remains live,
// either because everyone else left the table or because every other
// player folded. No showdown is needed: the pot is simply collected
// and awarded uncontested. Grounded on the original's
// single_player_win.
func (s *HandState) singlePlayerWin(winner uint64) error {
	s.Stage = StageSettle
	pots := collectBets(s.registry.bySeat())
	s.pots = pots
	w, ok := s.registry.get(winner)
	if !ok {
		return &InternalInvariantError{Detail: "single-hand winner missing from registry"}
	}

	before := chipsBefore(s.registry.bySeat())

	var total uint64
	for _, pot := range pots {
		total += pot.Amount
	}
	w.Chips += total

	awards := []AwardPot{{Reason: "uncontested", Amount: total, Winners: []uint64{winner}, Shares: map[uint64]uint64{winner: total}}}
	result := s.finalizeResult(awards, 0, before)
	return s.closeHand(result)
}

// settleShowdown is reached once the board and every contending
// player's hole cards are fully revealed, whether via a normal
// showdown or a forced runner. It scores every live hand, resolves
// every pot, and closes the hand out. Grounded on the original's
// settle.
func (s *HandState) settleShowdown() error {
	s.Stage = StageSettle
	var board [5]card.Card
	copy(board[:], s.board)

	players := s.registry.bySeat()
	pots := mergeSamePots(collectBets(players))
	s.pots = pots
	before := chipsBefore(players)

	playerByID := make(map[uint64]*Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}

	ranks, err := evaluateShowdown(players, board)
	if err != nil {
		return err
	}

	result := calcPrize(pots, ranks, playerByID, s.buttonPos, s.config.RakeBps)
	for id, delta := range result.Payouts {
		if p, ok := playerByID[id]; ok {
			p.Chips += delta
		}
	}

	gameResult := s.finalizeResult(result.Awards, result.Rake, before)
	for id, rank := range ranks {
		pr := gameResult.Players[id]
		rCopy := rank
		pr.HandRank = &rCopy
		gameResult.Players[id] = pr
	}
	return s.closeHand(gameResult)
}

// chipsBefore snapshots chip stacks prior to applying a hand's payouts,
// so finalizeResult can report each player's before/after delta.
func chipsBefore(players []*Player) map[uint64]uint64 {
	out := make(map[uint64]uint64, len(players))
	for _, p := range players {
		out[p.ID] = p.Chips
	}
	return out
}

func (s *HandState) finalizeResult(awards []AwardPot, rake uint64, before map[uint64]uint64) GameResult {
	players := make(map[uint64]PlayerResult, s.registry.count())
	for _, p := range s.registry.bySeat() {
		players[p.ID] = PlayerResult{PlayerID: p.ID, ChipsBefore: before[p.ID], ChipsAfter: p.Chips}
	}
	s.logDisplay(DisplayEvent{Kind: DisplayAwardPots, AwardPots: &AwardPotsDisplay{Pots: awards}})
	result := GameResult{
		HandNumber: s.handNumber,
		Board:      append([]card.Card(nil), s.board...),
		Awards:     awards,
		Rake:       rake,
		Players:    players,
	}
	s.logDisplay(DisplayEvent{Kind: DisplayGameResult, GameResult: &result})
	return result
}

// closeHand runs the two-phase cleanup from the original
// (mark_out_players then remove_leave_and_out_players), hands the
// host the settlement, and schedules the next hand. kickTimedOut runs
// between the two so a player evicted for stalling is marked Leave in
// time to be swept up and reported by the same removeLeaveAndOut pass
// as a natural leave or bust.
func (s *HandState) closeHand(result GameResult) error {
	s.registry.markOutPlayers()
	s.registry.kickTimedOut(s.config.MaxConsecutiveTimeouts)
	result.EjectedIDs = s.registry.removeLeaveAndOut()

	s.emit(OutgoingCall{Kind: "settle", Result: &result})

	wait := s.config.WaitTimeoutDefault
	if s.registry.count() == 2 {
		wait = s.config.WaitTimeoutLastPlayer
	}
	s.emit(OutgoingCall{Kind: "schedule", DelayMs: wait, Event: Event{Kind: EventWaitTimeout}})
	return nil
}
