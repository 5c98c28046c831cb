package card

import "testing"

func TestParseCard_RoundTripsRankAndSuit(t *testing.T) {
	c, err := ParseCard("As")
	if err != nil {
		t.Fatalf("ParseCard err: %v", err)
	}
	if c.Rank() != 1 {
		t.Fatalf("expected ace to be rank 1 (low), got %d", c.Rank())
	}
	if c.Suit() != Spade {
		t.Fatalf("expected spade, got %v", c.Suit())
	}
}

func TestParseCard_AcceptsTenAliases(t *testing.T) {
	t1, err := ParseCard("Th")
	if err != nil {
		t.Fatalf("ParseCard(Th) err: %v", err)
	}
	t2, err := ParseCard("10h")
	if err != nil {
		t.Fatalf("ParseCard(10h) err: %v", err)
	}
	if t1 != t2 {
		t.Fatalf("expected Th and 10h to parse identically")
	}
}

func TestParseCard_RejectsInvalidSuit(t *testing.T) {
	if _, err := ParseCard("Ax"); err == nil {
		t.Fatalf("expected error for invalid suit")
	}
}

func TestCompare_IgnoresSuit(t *testing.T) {
	a := MustParseCard("Ks")
	b := MustParseCard("Kd")
	if a.Compare(b) != 0 {
		t.Fatalf("expected same-rank cards to compare equal regardless of suit")
	}
}

func TestRankHigh_TreatsAceAsFourteen(t *testing.T) {
	a := MustParseCard("As")
	if a.RankHigh() != 14 {
		t.Fatalf("expected ace-high rank 14, got %d", a.RankHigh())
	}
	k := MustParseCard("Ks")
	if k.RankHigh() != 13 {
		t.Fatalf("expected king rank 13, got %d", k.RankHigh())
	}
}

func TestStandardDeck_Has52UniqueCards(t *testing.T) {
	if len(StandardDeck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(StandardDeck))
	}
	seen := make(map[Card]bool, 52)
	for _, c := range StandardDeck {
		if seen[c] {
			t.Fatalf("duplicate card %v in standard deck", c)
		}
		seen[c] = true
	}
}

func TestList_PopCardsRespectsOrderAndBounds(t *testing.T) {
	var l List
	l.Init(StandardDeck)
	popped, ok := l.PopCards(3)
	if !ok {
		t.Fatalf("expected pop of 3 to succeed")
	}
	if len(popped) != 3 || popped[0] != StandardDeck[0] {
		t.Fatalf("expected first 3 standard-deck cards, got %v", popped)
	}
	if l.Count() != 49 {
		t.Fatalf("expected 49 cards remaining, got %d", l.Count())
	}
	if _, ok := l.PopCards(50); ok {
		t.Fatalf("expected pop beyond remaining count to fail")
	}
}
