package holdem

import (
	"testing"

	"github.com/race-protocol/holdem-core/card"
)

func mustCards(codes ...string) []card.Card {
	out := make([]card.Card, len(codes))
	for i, c := range codes {
		out[i] = card.MustParseCard(c)
	}
	return out
}

func TestEvalSeven_QuadsBeatsTwoPair(t *testing.T) {
	board := [5]card.Card{}
	copy(board[:], mustCards("2s", "2h", "7c", "7d", "9s"))

	quadsHole := [2]card.Card{}
	copy(quadsHole[:], mustCards("2d", "2c"))

	twoPairHole := [2]card.Card{}
	copy(twoPairHole[:], mustCards("9h", "Kc"))

	quads, err := evalSeven(quadsHole, board)
	if err != nil {
		t.Fatalf("evalSeven quads err: %v", err)
	}
	twoPair, err := evalSeven(twoPairHole, board)
	if err != nil {
		t.Fatalf("evalSeven two-pair err: %v", err)
	}
	if quads.Score <= twoPair.Score {
		t.Fatalf("expected quads (%d) to outscore two pair (%d)", quads.Score, twoPair.Score)
	}
	if quads.Description == "" || twoPair.Description == "" {
		t.Fatalf("expected non-empty hand descriptions")
	}
}

func TestEvalSeven_IdenticalBestFiveSplits(t *testing.T) {
	board := [5]card.Card{}
	copy(board[:], mustCards("As", "Ks", "Qs", "Js", "Ts"))

	hole1 := [2]card.Card{}
	copy(hole1[:], mustCards("2d", "3c"))
	hole2 := [2]card.Card{}
	copy(hole2[:], mustCards("4h", "5d"))

	r1, err := evalSeven(hole1, board)
	if err != nil {
		t.Fatalf("evalSeven r1 err: %v", err)
	}
	r2, err := evalSeven(hole2, board)
	if err != nil {
		t.Fatalf("evalSeven r2 err: %v", err)
	}
	if r1.Score != r2.Score {
		t.Fatalf("expected both hands to play the same royal flush board for a split, got %d vs %d", r1.Score, r2.Score)
	}
}

func TestOracleSuit_AcceptsAllFourSuits(t *testing.T) {
	for _, s := range []card.Suit{card.Spade, card.Heart, card.Club, card.Diamond} {
		c := card.Card(byte(s)<<4 | 0x01) // ace of s
		if _, err := oracleCard(c); err != nil {
			t.Fatalf("oracleCard(%v) err: %v", s, err)
		}
	}
}
