package holdem

import "testing"

func betPlayer(id uint64, totalBet uint64, status Status) *Player {
	p := newPlayer(id, 0, int(id), status)
	p.TotalBet = totalBet
	return p
}

func TestCollectBets_EvenBetsSinglePot(t *testing.T) {
	players := []*Player{
		betPlayer(1, 100, StatusWait),
		betPlayer(2, 100, StatusWait),
		betPlayer(3, 100, StatusFold),
	}
	pots := collectBets(players)
	if len(pots) != 1 {
		t.Fatalf("expected one pot, got %d", len(pots))
	}
	if pots[0].Amount != 300 {
		t.Fatalf("expected pot of 300, got %d", pots[0].Amount)
	}
	if len(pots[0].Eligible) != 2 || pots[0].Eligible[0] != 1 || pots[0].Eligible[1] != 2 {
		t.Fatalf("expected [1 2] eligible (folded player excluded), got %v", pots[0].Eligible)
	}
}

func TestCollectBets_UnevenAllInBuildsSidePots(t *testing.T) {
	// player 1 is short-stacked all-in for 50, players 2 and 3 go to 150.
	players := []*Player{
		betPlayer(1, 50, StatusAllin),
		betPlayer(2, 150, StatusWait),
		betPlayer(3, 150, StatusWait),
	}
	pots := collectBets(players)
	if len(pots) != 2 {
		t.Fatalf("expected main pot + one side pot, got %d: %+v", len(pots), pots)
	}
	main := pots[0]
	if main.Amount != 150 { // 50 * 3 contributors
		t.Fatalf("expected main pot of 150, got %d", main.Amount)
	}
	if len(main.Eligible) != 3 {
		t.Fatalf("expected all three eligible for main pot, got %v", main.Eligible)
	}
	side := pots[1]
	if side.Amount != 200 { // 100 * 2 contributors
		t.Fatalf("expected side pot of 200, got %d", side.Amount)
	}
	if len(side.Eligible) != 2 || side.Eligible[0] != 2 || side.Eligible[1] != 3 {
		t.Fatalf("expected [2 3] eligible for side pot, got %v", side.Eligible)
	}
}

func TestCollectBets_ZeroContributionPlayersIgnored(t *testing.T) {
	players := []*Player{
		betPlayer(1, 100, StatusWait),
		betPlayer(2, 0, StatusOut),
	}
	pots := collectBets(players)
	if len(pots) != 1 || pots[0].Amount != 100 {
		t.Fatalf("expected single 100-chip pot, got %+v", pots)
	}
}

func TestMergeSamePots_CollapsesIdenticalEligibility(t *testing.T) {
	pots := []Pot{
		{Amount: 100, Eligible: []uint64{1, 2}},
		{Amount: 50, Eligible: []uint64{1, 2}},
		{Amount: 30, Eligible: []uint64{1}},
	}
	merged := mergeSamePots(pots)
	if len(merged) != 2 {
		t.Fatalf("expected 2 pots after merge, got %d: %+v", len(merged), merged)
	}
	if merged[0].Amount != 150 {
		t.Fatalf("expected merged pot of 150, got %d", merged[0].Amount)
	}
}
