// Package testutil provides an in-memory Host implementation and hand
// fixtures for exercising the holdem state machine without a real
// table runtime. It plays the same role the teacher's replay harness
// plays for its own Game: a deterministic stand-in for the host side
// of the interface so tests can drive a hand end to end.
package testutil

import (
	"sort"

	"github.com/race-protocol/holdem-core/card"
	"github.com/race-protocol/holdem-core/holdem"
)

// Host documents the shape of effects a live dispatcher would perform
// in response to holdem.OutgoingCall values drained from a HandState.
// The engine itself has no such interface — HandleEvent only ever
// appends to its outbox — this exists purely so fixtures and any
// future real dispatcher share one typed contract for the five kinds
// of call the engine emits.
type Host interface {
	Schedule(delayMs int64, ev holdem.Event)
	InitRandomness(deckSize int)
	AssignCard(slot int, playerID uint64)
	RevealCards(slots []int)
	Settle(result holdem.GameResult)
}

var _ Host = (*FakeHost)(nil)

// FakeHost is a synchronous, deterministic Host: InitRandomness uses a
// caller-supplied deck order instead of real randomness, Schedule
// records the request instead of arming a timer, and Settle just
// appends to a log the test can assert against.
type FakeHost struct {
	Deck []card.Card

	slots     map[int]card.Card
	nextSlot  int
	Scheduled []ScheduledCall
	Settled   []holdem.GameResult
}

type ScheduledCall struct {
	DelayMs int64
	Event   holdem.Event
}

func NewFakeHost(deck []card.Card) *FakeHost {
	return &FakeHost{Deck: deck, slots: make(map[int]card.Card)}
}

func (h *FakeHost) Schedule(delayMs int64, ev holdem.Event) {
	h.Scheduled = append(h.Scheduled, ScheduledCall{DelayMs: delayMs, Event: ev})
}

func (h *FakeHost) InitRandomness(deckSize int) {
	h.nextSlot = 0
}

func (h *FakeHost) AssignCard(slot int, playerID uint64) {
	if h.nextSlot >= len(h.Deck) {
		return
	}
	h.slots[slot] = h.Deck[h.nextSlot]
	h.nextSlot++
}

func (h *FakeHost) RevealCards(slots []int) {
	// no-op: slots were already assigned real faces up front, the
	// caller reads them back via RevealEvent.
}

func (h *FakeHost) Settle(result holdem.GameResult) {
	h.Settled = append(h.Settled, result)
}

// RevealEvent builds the EventRevealReady event for the given slots,
// looking up each slot's pre-assigned face from the fixture deck.
func (h *FakeHost) RevealEvent(slots []int) holdem.Event {
	revealed := make(map[int]card.Card, len(slots))
	for _, slot := range slots {
		if c, ok := h.slots[slot]; ok {
			revealed[slot] = c
		}
	}
	return holdem.Event{Kind: holdem.EventRevealReady, Revealed: revealed}
}

// PendingTimeout returns the most recently scheduled ActionTimeout
// event, if any, for tests that want to simulate a player stalling.
func (h *FakeHost) PendingTimeout() (ScheduledCall, bool) {
	for i := len(h.Scheduled) - 1; i >= 0; i-- {
		if h.Scheduled[i].Event.Kind == holdem.EventActionTimeout {
			return h.Scheduled[i], true
		}
	}
	return ScheduledCall{}, false
}

// Drive applies every outgoing call in calls to the host and, for any
// reveal_cards/init_randomness calls, immediately folds the result
// back into events the caller should feed to HandleEvent
// next. It mirrors how a real host would respond inline rather than
// across a network hop, which is enough to drive a fixture hand to
// completion deterministically.
func Drive(h *FakeHost, s *holdem.HandState, calls []holdem.OutgoingCall) []holdem.Event {
	var followups []holdem.Event
	var revealSlots []int
	sawInit := false
	for _, c := range calls {
		switch c.Kind {
		case "schedule":
			h.Schedule(c.DelayMs, c.Event)
		case "init_randomness":
			deckSize := 52
			if len(c.Slots) > 0 {
				deckSize = c.Slots[0]
			}
			h.InitRandomness(deckSize)
			sawInit = true
		case "assign_card":
			h.AssignCard(c.Slots[0], c.PlayerID)
		case "reveal_cards":
			revealSlots = append(revealSlots, c.Slots...)
		case "settle":
			if c.Result != nil {
				h.Settle(*c.Result)
			}
		}
	}
	if sawInit {
		followups = append(followups, holdem.Event{Kind: holdem.EventRandomnessReady})
	}
	if len(revealSlots) > 0 {
		sort.Ints(revealSlots)
		followups = append(followups, h.RevealEvent(revealSlots))
	}
	return followups
}
