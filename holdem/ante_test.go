package holdem

import "testing"

func TestPostAntes_DeductsFromEverySeatedPlayer(t *testing.T) {
	p1 := newPlayer(1, 1000, 0, StatusWait)
	p2 := newPlayer(2, 1000, 1, StatusWait)
	s := newTestState(t, p1, p2)
	s.config.Ante = 10
	s.dealSeats = []uint64{1, 2}

	s.postAntes()

	if p1.Chips != 990 || p2.Chips != 990 {
		t.Fatalf("expected both players to pay the ante, got p1=%d p2=%d", p1.Chips, p2.Chips)
	}
	if p1.TotalBet != 10 || p2.TotalBet != 10 {
		t.Fatalf("expected ante counted toward TotalBet, got p1=%d p2=%d", p1.TotalBet, p2.TotalBet)
	}
}

func TestPostAntes_CapsAtShortStack(t *testing.T) {
	p1 := newPlayer(1, 5, 0, StatusWait)
	s := newTestState(t, p1)
	s.config.Ante = 10
	s.dealSeats = []uint64{1}

	s.postAntes()

	if p1.Chips != 0 {
		t.Fatalf("expected short stack capped to zero, got %d chips left", p1.Chips)
	}
	if p1.TotalBet != 5 {
		t.Fatalf("expected ante capped at available chips, got TotalBet=%d", p1.TotalBet)
	}
}

func TestPostAntes_ZeroConfiguredSkipsPosting(t *testing.T) {
	// handleRandomnessReady only calls postAntes when Config.Ante > 0;
	// this pins that postAntes itself is a no-op-friendly helper that
	// doesn't need its own zero-guard, since the caller already gates it.
	p1 := newPlayer(1, 1000, 0, StatusWait)
	s := newTestState(t, p1)
	s.config.Ante = 0
	s.dealSeats = []uint64{1}

	s.postAntes()

	if p1.Chips != 1000 {
		t.Fatalf("expected no chips deducted when ante is 0, got %d", p1.Chips)
	}
}
