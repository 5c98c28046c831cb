package holdem

import "github.com/sirupsen/logrus"

// applyAction validates and applies one player's betting decision
// against the current street state, updating the actor's chips,
// BetThisStreet, TotalBet and Status; machine.go calls it and then
// asks order.go-derived helpers who acts next.
//
// Amount on Bet and Raise is always the player's new total
// contribution for the street, not an incremental delta — the
// convention used throughout the reference pool, and simpler to
// validate than the original's mixed total/delta split between Bet
// and Raise.
func (s *HandState) applyAction(actor uint64, ev GameEvent) error {
	p, ok := s.registry.get(actor)
	if !ok {
		return s.rejectAction(actor, ev.Type, &InvalidActorError{Expected: s.actingPlayer, Got: actor})
	}
	if !s.actingSet || s.actingPlayer != actor {
		return s.rejectAction(actor, ev.Type, &InvalidActorError{Expected: s.actingPlayer, Got: actor})
	}
	if !p.canAct() {
		return s.rejectAction(actor, ev.Type, &InvalidStateError{Stage: s.Stage, Street: s.Street, Reason: "player is not in an acting status"})
	}

	var err error
	switch ev.Type {
	case ActionFold:
		err = s.applyFold(p)
	case ActionCheck:
		err = s.applyCheck(p)
	case ActionCall:
		err = s.applyCall(p)
	case ActionBet:
		err = s.applyBet(p, ev.Amount)
	case ActionRaise:
		err = s.applyRaise(p, ev.Amount)
	default:
		err = &InvalidActionError{Action: ev.Type, Reason: "unrecognized action type"}
	}
	if err != nil {
		return s.rejectAction(actor, ev.Type, err)
	}
	return nil
}

// rejectAction logs a rejected action before returning it, so a host
// can trace why a player's decision never took effect without the
// engine itself formatting a user-facing message.
func (s *HandState) rejectAction(actor uint64, action ActionType, err error) error {
	s.logf(logrus.WarnLevel, logrus.Fields{
		"player": actor,
		"action": action,
		"street": s.Street,
		"reason": err.Error(),
	}, "action rejected")
	return err
}

func (s *HandState) applyFold(p *Player) error {
	p.Status = StatusFold
	s.markActed(p)
	return nil
}

func (s *HandState) applyCheck(p *Player) error {
	if p.BetThisStreet != s.streetBet {
		return &InvalidActionError{Action: ActionCheck, Reason: "cannot check with an unmatched bet outstanding"}
	}
	s.markActedWithStatus(p, false)
	return nil
}

func (s *HandState) applyCall(p *Player) error {
	owed := s.streetBet - p.BetThisStreet
	allin := s.takeBet(p, owed)
	s.markActedWithStatus(p, allin)
	return nil
}

func (s *HandState) applyBet(p *Player, amount uint64) error {
	if s.streetBet != 0 {
		return &InvalidActionError{Action: ActionBet, Reason: "a bet is already outstanding, use raise"}
	}
	if amount < s.config.BigBlind && amount < p.Chips+p.BetThisStreet {
		return &InvalidActionError{Action: ActionBet, Reason: "bet below the big blind"}
	}
	delta := amount - p.BetThisStreet
	allin := s.takeBet(p, delta)
	s.markActedWithStatus(p, allin)
	s.minRaise = amount
	s.streetBet = amount
	return nil
}

func (s *HandState) applyRaise(p *Player, amount uint64) error {
	if s.streetBet == 0 {
		return &InvalidActionError{Action: ActionRaise, Reason: "no outstanding bet to raise"}
	}
	if amount <= p.BetThisStreet {
		return &InvalidActionError{Action: ActionRaise, Reason: "raise total must exceed current bet"}
	}
	isAllIn := amount == p.Chips+p.BetThisStreet
	if amount < s.streetBet+s.minRaise && !isAllIn {
		return &InvalidActionError{Action: ActionRaise, Reason: "raise is below the minimum"}
	}

	delta := amount - p.BetThisStreet
	allin := s.takeBet(p, delta)

	newMinRaise := amount - s.streetBet
	if newMinRaise > s.minRaise {
		s.minRaise = newMinRaise
	}
	s.streetBet = amount

	// A legal raise reopens action for everyone else who already
	// acted this street.
	s.clearActedExcept(p.ID)
	s.markActedWithStatus(p, allin)
	return nil
}

// takeBet moves up to `amount` chips from the player's stack into the
// pot, capping at the player's remaining chips so a short stack goes
// all-in instead of erroring. Returns whether the player is now
// all-in.
func (s *HandState) takeBet(p *Player, amount uint64) bool {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.BetThisStreet += amount
	p.TotalBet += amount
	return p.Chips == 0
}

func (s *HandState) markActed(p *Player) {
	if s.actedThisStreet == nil {
		s.actedThisStreet = make(map[uint64]bool)
	}
	s.actedThisStreet[p.ID] = true
}

func (s *HandState) markActedWithStatus(p *Player, allin bool) {
	if allin {
		p.Status = StatusAllin
	} else if p.Status == StatusActing {
		p.Status = StatusWait
	}
	s.markActed(p)
}

// clearActedExcept forgets every "already acted" flag except the
// raiser's own, implementing the reopen rule: a legal raise obliges
// everyone else to act again, even a player who had already checked
// or called this street.
func (s *HandState) clearActedExcept(keep uint64) {
	for id := range s.actedThisStreet {
		if id != keep {
			delete(s.actedThisStreet, id)
		}
	}
}
