package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/race-protocol/holdem-core/card"
)

func playersByPos(positions map[uint64]int) map[uint64]*Player {
	out := make(map[uint64]*Player, len(positions))
	for id, pos := range positions {
		out[id] = newPlayer(id, 0, pos, StatusWait)
	}
	return out
}

func TestOrderForOddChip_FirstWinnerAfterButtonWrapping(t *testing.T) {
	players := playersByPos(map[uint64]int{1: 0, 2: 1, 3: 2, 4: 3})
	// button on seat 1 (position 0); winners are seats 2 and 4.
	order := orderForOddChip(0, []uint64{2, 4}, players)
	require.Equal(t, []uint64{2, 4}, order)
}

func TestOrderForOddChip_WrapsWhenNoWinnerPastButton(t *testing.T) {
	players := playersByPos(map[uint64]int{1: 0, 2: 1, 3: 2, 4: 3})
	// button on seat 4 (position 3); only winners are seats 1 and 2,
	// both strictly before the button positionally, so the order wraps
	// to the lowest position.
	order := orderForOddChip(3, []uint64{1, 2}, players)
	require.Equal(t, []uint64{1, 2}, order)
}

func TestCalcPrize_ContestedPotIsRaked(t *testing.T) {
	players := map[uint64]*Player{
		1: newPlayer(1, 0, 0, StatusWait),
		2: newPlayer(2, 0, 1, StatusWait),
	}
	pots := []Pot{{Amount: 1000, Eligible: []uint64{1, 2}}}
	ranks := map[uint64]HandRank{1: {Score: 10}, 2: {Score: 5}}

	result := calcPrize(pots, ranks, players, 0, 500) // 5% rake
	require.Equal(t, uint64(50), result.Rake)
	require.Equal(t, uint64(950), result.Payouts[1])
	require.Equal(t, uint64(0), result.Payouts[2])
	require.Len(t, result.Awards, 1)
	require.Equal(t, "main_pot", result.Awards[0].Reason)
}

func TestCalcPrize_UncontestedPotIsNotRaked(t *testing.T) {
	players := map[uint64]*Player{
		1: newPlayer(1, 0, 0, StatusWait),
	}
	pots := []Pot{{Amount: 1000, Eligible: []uint64{1}}}
	result := calcPrize(pots, nil, players, 0, 500)
	require.Equal(t, uint64(0), result.Rake)
	require.Equal(t, uint64(1000), result.Payouts[1])
	require.Equal(t, "uncontested", result.Awards[0].Reason)
}

func TestCalcPrize_SplitPotOddChipGoesToFirstWinnerPastButton(t *testing.T) {
	players := map[uint64]*Player{
		1: newPlayer(1, 0, 0, StatusWait), // button
		2: newPlayer(2, 0, 1, StatusWait),
		3: newPlayer(3, 0, 2, StatusWait),
	}
	pots := []Pot{{Amount: 101, Eligible: []uint64{2, 3}}}
	ranks := map[uint64]HandRank{2: {Score: 10}, 3: {Score: 10}}

	result := calcPrize(pots, ranks, players, 0, 0)
	// 101 split two ways: 50 each plus one odd chip to the first winner
	// strictly after the button (position 0), which is seat 2.
	require.Equal(t, uint64(51), result.Payouts[2])
	require.Equal(t, uint64(50), result.Payouts[3])
}

func TestCalcPrize_SplitPotRemainderGoesEntirelyToOneWinner(t *testing.T) {
	players := map[uint64]*Player{
		1: newPlayer(1, 0, 0, StatusWait), // button
		2: newPlayer(2, 0, 1, StatusWait), // alice
		3: newPlayer(3, 0, 2, StatusWait), // bob
		4: newPlayer(4, 0, 3, StatusWait), // dave
	}
	pots := []Pot{{Amount: 200, Eligible: []uint64{2, 3, 4}}}
	ranks := map[uint64]HandRank{2: {Score: 10}, 3: {Score: 10}, 4: {Score: 10}}

	result := calcPrize(pots, ranks, players, 0, 0)
	// 200 split three ways: 66 base each, remainder 2 goes entirely to
	// the first winner strictly after the button (seat 2, alice), not
	// spread one chip each across the first two winners in order.
	require.Equal(t, uint64(68), result.Payouts[2])
	require.Equal(t, uint64(66), result.Payouts[3])
	require.Equal(t, uint64(66), result.Payouts[4])
	require.Equal(t, uint64(68), result.Awards[0].Shares[2])
}

func TestEvaluateShowdown_SkipsFoldedAndInitPlayers(t *testing.T) {
	board := [5]card.Card{}
	copy(board[:], mustCards("2s", "5h", "9c", "Jd", "Ks"))

	live := newPlayer(1, 0, 0, StatusWait)
	live.HoleCards = [2]card.Card{card.MustParseCard("As"), card.MustParseCard("Ad")}
	live.Revealed = true

	folded := newPlayer(2, 0, 1, StatusFold)
	midJoin := newPlayer(3, 0, 2, StatusInit)

	ranks, err := evaluateShowdown([]*Player{live, folded, midJoin}, board)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	_, ok := ranks[1]
	require.True(t, ok)
}
