package holdem

import (
	"github.com/sirupsen/logrus"

	"github.com/race-protocol/holdem-core/card"
)

// HandleEvent is the engine's single entry point: given the current
// state and one inbound event, it mutates the state in place and
// returns an error only for a structurally invalid event (wrong
// actor, illegal action, event received in the wrong stage). Outgoing
// host-facing effects accumulate in the outbox (see OutgoingCall) for
// the caller to drain.
func (s *HandState) HandleEvent(ev Event) error {
	switch ev.Kind {
	case EventGameStart:
		return s.startHand()
	case EventJoin:
		return s.handleJoin(ev)
	case EventLeave:
		return s.handleLeave(ev)
	case EventCustom:
		if err := s.applyAction(ev.PlayerID, ev.Custom); err != nil {
			return err
		}
		s.actingSet = false
		s.resetTimeout(ev.PlayerID)
		return s.nextState()
	case EventActionTimeout:
		return s.handleActionTimeout(ev)
	case EventWaitTimeout:
		return s.startHand()
	case EventRandomnessReady:
		return s.handleRandomnessReady()
	case EventRevealReady:
		return s.handleRevealReady(ev)
	default:
		return &InvalidStateError{Stage: s.Stage, Street: s.Street, Reason: "unrecognized event kind"}
	}
}

func (s *HandState) handleJoin(ev Event) error {
	pos := s.firstFreeSeat()
	s.registry.add(newPlayer(ev.PlayerID, ev.Chips, pos, StatusInit))
	return nil
}

func (s *HandState) firstFreeSeat() int {
	taken := make(map[int]bool)
	for _, p := range s.registry.bySeat() {
		taken[p.Position] = true
	}
	for i := 0; i < s.config.MaxPlayers; i++ {
		if !taken[i] {
			return i
		}
	}
	return len(taken)
}

func (s *HandState) handleLeave(ev Event) error {
	s.registry.markLeave(ev.PlayerID)
	if s.actingSet && s.actingPlayer == ev.PlayerID {
		s.actingSet = false
		return s.nextState()
	}
	return nil
}

func (s *HandState) resetTimeout(id uint64) {
	if p, ok := s.registry.get(id); ok {
		p.TimeoutCount = 0
	}
}

func (s *HandState) handleActionTimeout(ev Event) error {
	p, ok := s.registry.get(ev.PlayerID)
	if !ok || s.actingPlayer != ev.PlayerID {
		return nil // stale timer, action already happened
	}
	p.TimeoutCount++
	if s.streetBet == p.BetThisStreet {
		_ = s.applyCheck(p)
	} else {
		_ = s.applyFold(p)
	}
	s.actingSet = false
	return s.nextState()
}

// startHand resets every eligible player for a new deal, rotates the
// button, requests a fresh shuffle, and waits for RandomnessReady
// before dealing. Grounded on the original's top-level hand-start
// sequence (arrange -> blind_bets via next_state, triggered once
// randomness and hole cards are in place).
func (s *HandState) startHand() error {
	s.registry.removeLeaveAndOut()
	live := s.registry.bySeat()
	if s.countEligible(live) < s.config.MinPlayers {
		s.emit(OutgoingCall{Kind: "schedule", DelayMs: s.config.WaitTimeoutDefault, Event: Event{Kind: EventWaitTimeout}})
		return nil
	}

	for _, p := range live {
		p.resetForHand()
	}

	s.buttonPos = nextButton(live, s.buttonPos)
	s.order = arrangePlayers(live, s.buttonPos)
	s.dealSeats = append([]uint64(nil), s.order...)
	s.Street = StreetPreflop
	s.Stage = StageInit
	s.streetBet = 0
	s.minRaise = s.config.BigBlind
	s.blindsPosted = false
	s.actedThisStreet = make(map[uint64]bool)
	s.board = nil
	s.pots = nil
	s.display = nil

	s.handNumber++
	s.emit(OutgoingCall{Kind: "init_randomness", Slots: []int{52}})
	return nil
}

func (s *HandState) countEligible(players []*Player) int {
	n := 0
	for _, p := range players {
		if p.Status != StatusInit && p.Status != StatusOut && p.Status != StatusLeave {
			n++
		}
	}
	return n
}

func (s *HandState) handleRandomnessReady() error {
	for i, id := range s.dealSeats {
		s.emit(OutgoingCall{Kind: "assign_card", PlayerID: id, Slots: []int{i * 2}})
		s.emit(OutgoingCall{Kind: "assign_card", PlayerID: id, Slots: []int{i*2 + 1}})
	}
	// The board's five slots are dealt from the same shuffle up front,
	// face down (playerID 0), so a later RevealCards request only needs
	// to ask the host to turn a slot face up, never to deal a new one.
	boardStart := len(s.dealSeats) * 2
	for i := 0; i < 5; i++ {
		s.emit(OutgoingCall{Kind: "assign_card", PlayerID: 0, Slots: []int{boardStart + i}})
	}
	if s.config.Ante > 0 {
		s.postAntes()
	}
	return s.nextState()
}

func (s *HandState) postAntes() {
	for _, id := range s.dealSeats {
		p, ok := s.registry.get(id)
		if !ok {
			continue
		}
		amount := s.config.Ante
		if amount > p.Chips {
			amount = p.Chips
		}
		p.Chips -= amount
		p.TotalBet += amount
	}
}

func (s *HandState) handleRevealReady(ev Event) error {
	prevBoardLen := len(s.board)
	for slot, c := range ev.Revealed {
		s.applyRevealedSlot(slot, c)
	}
	if len(s.board) > prevBoardLen {
		s.logDisplay(DisplayEvent{Kind: DisplayDealBoard, DealBoard: &DealBoardDisplay{
			Prev:  prevBoardLen,
			Board: append([]card.Card(nil), s.board...),
		}})
	}
	switch s.Stage {
	case StageRunner, StageShowdown:
		return s.settleShowdown()
	default:
		// a plain board deal (flop/turn/river): the board is now
		// visible, betting continues.
		return s.nextState()
	}
}

func (s *HandState) applyRevealedSlot(slot int, c card.Card) {
	boardStart := len(s.dealSeats) * 2
	if slot >= boardStart {
		idx := slot - boardStart
		for len(s.board) <= idx {
			s.board = append(s.board, card.CardInvalid)
		}
		s.board[idx] = c
		return
	}
	holeIdx := slot % 2
	playerIdx := slot / 2
	if playerIdx >= len(s.dealSeats) {
		return
	}
	p, ok := s.registry.get(s.dealSeats[playerIdx])
	if !ok {
		return
	}
	p.HoleCards[holeIdx] = c
	if p.HoleCards[0] != card.CardRear && p.HoleCards[0] != card.CardInvalid &&
		p.HoleCards[1] != card.CardRear && p.HoleCards[1] != card.CardInvalid {
		p.Revealed = true
	}
}

// nextState is the central dispatcher, walked after every action,
// every timeout, and every reveal. Grounded closely on the original's
// next_state: arrange the acting order from the last reference
// position, classify players into to-stay/to-act/all-in buckets, and
// pick exactly one of: single-player win, post blinds, ask next
// actor, trigger the runner, advance the street, or go to showdown.
func (s *HandState) nextState() error {
	refPos := s.buttonPos
	if s.actingSet || (s.blindsPosted && s.actingPlayer != 0) {
		if p, ok := s.registry.get(s.actingPlayer); ok {
			refPos = p.Position
		}
	}
	all := s.registry.bySeat()
	s.order = arrangePlayers(all, refPos)

	var toStay, toAct, allin []uint64
	for _, id := range s.order {
		p, ok := s.registry.get(id)
		if !ok {
			continue
		}
		switch {
		case p.Status == StatusAllin:
			toStay = append(toStay, id)
			allin = append(allin, id)
		case p.canAct():
			toStay = append(toStay, id)
			toAct = append(toAct, id)
		}
	}

	if len(s.order) == 1 {
		return s.singlePlayerWin(s.order[0])
	}
	if len(toStay) == 1 {
		return s.singlePlayerWin(toStay[0])
	}

	if s.Street == StreetPreflop && !s.blindsPosted {
		return s.postBlindsAndAsk()
	}

	if next, ok := s.nextActionPlayer(toAct); ok {
		return s.askForAction(next)
	}

	if s.Stage != StageRunner && len(allin)+1 >= len(toStay) {
		return s.enterRunner()
	}

	nextStreet := s.Street.next()
	if nextStreet != StreetShowdown {
		return s.changeStreet(nextStreet)
	}
	return s.enterShowdown()
}

// nextActionPlayer mirrors the original's next_action_player: the
// first candidate, in acting order, who either hasn't matched the
// street bet yet or hasn't voluntarily acted since the street began
// (or was last reopened by a raise).
func (s *HandState) nextActionPlayer(candidates []uint64) (uint64, bool) {
	for _, id := range candidates {
		p, ok := s.registry.get(id)
		if !ok {
			continue
		}
		if p.BetThisStreet < s.streetBet || !s.actedThisStreet[id] {
			return id, true
		}
	}
	return 0, false
}

func (s *HandState) postBlindsAndAsk() error {
	sbID, bbID := blindPositions(s.order)
	sb, sbOK := s.registry.get(sbID)
	bb, bbOK := s.registry.get(bbID)
	if !sbOK || !bbOK {
		return &InternalInvariantError{Detail: "blinds reference missing players"}
	}
	if s.takeBet(sb, s.config.SmallBlind) {
		sb.Status = StatusAllin
	}
	if s.takeBet(bb, s.config.BigBlind) {
		bb.Status = StatusAllin
	}
	s.streetBet = s.config.BigBlind
	s.minRaise = s.config.BigBlind
	s.blindsPosted = true
	s.Stage = StagePlay

	// Preflop action starts left of the big blind, not left of the
	// button: rotate the seating order by one seat heads-up (so the
	// button/small blind acts first) or two seats otherwise (so UTG
	// acts first), matching the original's rotate_left inside
	// blind_bets. This only picks the opening actor; nextState's own
	// arrangePlayers call takes over for every later decision in the
	// street once an acting player reference position exists.
	shift := 2
	if len(s.order) == 2 {
		shift = 1
	}
	opening := rotateLeft(s.order, shift)
	for _, id := range opening {
		if p, ok := s.registry.get(id); ok && p.canAct() {
			return s.askForAction(id)
		}
	}
	// everyone is already all-in from blinds alone (micro-stack edge
	// case): fall through to the generic dispatcher to trigger the
	// runner or settle.
	return s.nextState()
}

func (s *HandState) askForAction(id uint64) error {
	p, ok := s.registry.get(id)
	if !ok {
		return &InternalInvariantError{Detail: "ask-for-action target missing"}
	}
	p.Status = StatusActing
	s.actingPlayer = id
	s.actingSet = true
	s.logf(logrus.DebugLevel, logrus.Fields{"player": id, "street": s.Street}, "asking player to act")
	timeout := s.actionTimeout()
	s.emit(OutgoingCall{Kind: "schedule", DelayMs: timeout, Event: Event{Kind: EventActionTimeout, PlayerID: id}})
	return nil
}

func (s *HandState) actionTimeout() int64 {
	switch s.Street {
	case StreetTurn:
		return s.config.ActionTimeoutTurn
	case StreetRiver:
		return s.config.ActionTimeoutRiver
	case StreetFlop:
		return s.config.ActionTimeoutPostflop
	case StreetPreflop:
		if s.streetBet == s.config.BigBlind {
			return s.config.ActionTimeoutPreflop
		}
		return s.config.ActionTimeoutPostflop
	default:
		return 0
	}
}

// changeStreet closes out betting for the street, collects it into
// pots, deals the next community cards, and resets street-scoped
// state. Grounded on the original's change_street.
func (s *HandState) changeStreet(next Street) error {
	players := s.registry.bySeat()
	bets := make(map[uint64]uint64)
	for _, p := range players {
		if p.BetThisStreet > 0 {
			bets[p.ID] = p.BetThisStreet
		}
		p.resetForStreet()
	}
	oldPots := s.pots
	s.pots = mergeSamePots(collectBets(players))
	s.logDisplay(DisplayEvent{Kind: DisplayCollectBets, CollectBets: &CollectBetsDisplay{OldPots: oldPots, Bets: bets}})

	s.logf(logrus.DebugLevel, logrus.Fields{"from": s.Street, "to": next}, "street changed")
	s.Street = next
	s.streetBet = 0
	s.minRaise = s.config.BigBlind
	s.actingPlayer = 0
	s.actingSet = false
	s.actedThisStreet = make(map[uint64]bool)

	boardStart := len(s.dealSeats) * 2

	switch next {
	case StreetFlop:
		slots := []int{boardStart, boardStart + 1, boardStart + 2}
		s.emit(OutgoingCall{Kind: "reveal_cards", Slots: slots})
	case StreetTurn:
		s.emit(OutgoingCall{Kind: "reveal_cards", Slots: []int{boardStart + 3}})
	case StreetRiver:
		s.emit(OutgoingCall{Kind: "reveal_cards", Slots: []int{boardStart + 4}})
	}
	return nil
}

// enterRunner is reached once nobody owes an action and at most one
// player left in the hand is not all-in (allin+1 >= toStay), so no
// further betting is possible: the remaining streets are dealt without further betting and
// everyone's hole cards are revealed for a full runout settlement.
func (s *HandState) enterRunner() error {
	s.Stage = StageRunner
	s.Street = StreetShowdown
	return s.requestShowdownReveal()
}

func (s *HandState) enterShowdown() error {
	s.Stage = StageShowdown
	s.Street = StreetShowdown
	return s.requestShowdownReveal()
}

func (s *HandState) requestShowdownReveal() error {
	var slots []int
	for i, id := range s.dealSeats {
		p, ok := s.registry.get(id)
		if !ok {
			continue
		}
		if p.Status != StatusFold {
			slots = append(slots, i*2, i*2+1)
		}
	}
	boardStart := len(s.dealSeats) * 2
	need := 5 - len(s.board)
	for i := 0; i < need; i++ {
		slots = append(slots, boardStart+len(s.board)+i)
	}
	s.emit(OutgoingCall{Kind: "reveal_cards", Slots: slots})
	return nil
}
