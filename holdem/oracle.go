package holdem

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/race-protocol/holdem-core/card"
)

// HandRank is the result of evaluating a player's best five-card hand
// out of their two hole cards and the five-card board. Score is only
// meaningful relative to other HandRanks from the same evaluation
// pass: higher wins, equal scores split the pot.
type HandRank struct {
	Score       int16
	Description string
}

// oracleSuit translates our Card's suit nibble into paulhankin/poker's
// club/diamond/heart/spade ordering. This is the one place the two
// packages' encodings meet; everything else in the engine only ever
// touches our own card.Card.
func oracleSuit(s card.Suit) poker.Suit {
	switch s {
	case card.Club:
		return poker.Suit(0)
	case card.Diamond:
		return poker.Suit(1)
	case card.Heart:
		return poker.Suit(2)
	case card.Spade:
		return poker.Suit(3)
	default:
		return poker.Suit(0)
	}
}

func oracleCard(c card.Card) (poker.Card, error) {
	pc, err := poker.MakeCard(oracleSuit(c.Suit()), poker.Rank(c.Rank()))
	if err != nil {
		return poker.Card(0), fmt.Errorf("holdem: oracle rejected card %s: %w", c, err)
	}
	return pc, nil
}

// evalSeven scores the best hand obtainable from exactly seven cards
// (two hole cards plus a five-card board). It is the only place the
// engine delegates to the external strength oracle; the state machine
// never reasons about hand rankings itself.
func evalSeven(hole [2]card.Card, board [5]card.Card) (HandRank, error) {
	var seven [7]poker.Card
	for i, c := range []card.Card{board[0], board[1], board[2], board[3], board[4], hole[0], hole[1]} {
		pc, err := oracleCard(c)
		if err != nil {
			return HandRank{}, err
		}
		seven[i] = pc
	}

	score := poker.Eval7(&seven)
	desc, err := poker.Describe(seven[:])
	if err != nil {
		return HandRank{}, fmt.Errorf("holdem: oracle describe failed: %w", err)
	}
	return HandRank{Score: score, Description: desc}, nil
}
