package card

import (
	"fmt"
	"strings"
)

// Card packs a suit and a rank into a single byte.
//
// Layout: high nibble is the suit (0:Spade 1:Heart 2:Club 3:Diamond),
// low nibble is the rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K). Two cards
// with the same rank compare equal under Compare regardless of suit;
// suit is informational only, as the spec requires.
type Card byte

const (
	CardInvalid Card = 0
	CardRear    Card = 0xFF // face-down placeholder, never dealt
)

func (c Card) String() string {
	if c == CardInvalid {
		return "invalid"
	}
	if c == CardRear {
		return "rear"
	}

	rank := c & 0x0F
	var rankStr string
	switch rank {
	case 1:
		rankStr = "A"
	case 10:
		rankStr = "T"
	case 11:
		rankStr = "J"
	case 12:
		rankStr = "Q"
	case 13:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", rank)
	}
	return rankStr + c.Suit().String()
}

// Rank returns the face value, 1..13 with Ace low (1).
func (c Card) Rank() byte {
	if c == CardInvalid || c == CardRear {
		return 0
	}
	return byte(c & 0x0F)
}

// Suit returns the suit nibble.
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// RankHigh returns the rank with Ace treated as 14, for callers that
// need Ace-high comparisons outside the oracle (e.g. wheel detection
// helpers in tests).
func (c Card) RankHigh() int {
	r := int(c.Rank())
	if r == 1 {
		return 14
	}
	return r
}

// Compare orders two cards by rank only, Ace low. It never inspects
// suit: the spec requires cards be "comparable by rank; suit is
// informational."
func (c Card) Compare(other Card) int {
	a, b := c.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseCard converts a two-character code such as "As", "Td", "9h"
// into a Card. "10h" is accepted as an alias for "Th".
func ParseCard(code string) (Card, error) {
	if len(code) < 2 {
		return CardInvalid, fmt.Errorf("card: invalid code %q", code)
	}

	suitChar := code[len(code)-1]
	var suitBase Card
	switch suitChar {
	case 's', 'S':
		suitBase = 0x00
	case 'h', 'H':
		suitBase = 0x10
	case 'c', 'C':
		suitBase = 0x20
	case 'd', 'D':
		suitBase = 0x30
	default:
		return CardInvalid, fmt.Errorf("card: invalid suit %q in %q", string(suitChar), code)
	}

	rankStr := code[:len(code)-1]
	var rankVal Card
	switch strings.ToUpper(rankStr) {
	case "A":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "8":
		rankVal = 0x08
	case "9":
		rankVal = 0x09
	case "T", "10":
		rankVal = 0x0A
	case "J":
		rankVal = 0x0B
	case "Q":
		rankVal = 0x0C
	case "K":
		rankVal = 0x0D
	default:
		return CardInvalid, fmt.Errorf("card: invalid rank %q in %q", rankStr, code)
	}

	return suitBase + rankVal, nil
}

// MustParseCard is ParseCard for fixtures and tests where a bad
// literal is a programmer error, not a runtime condition.
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}
