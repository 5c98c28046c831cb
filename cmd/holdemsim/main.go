// Command holdemsim deals and settles a single Hold'em hand against a
// scripted deck, then prints the board and the settlement. It exists to
// exercise the holdem package end to end outside of a test binary,
// in the same spirit as the teacher's own replay tooling.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/race-protocol/holdem-core/holdem"
	"github.com/race-protocol/holdem-core/holdem/testutil"
)

type CLI struct {
	Players  int    `short:"p" help:"Number of players to seat (2-9)." default:"3"`
	Chips    uint64 `short:"c" help:"Starting chip stack per player." default:"1000"`
	Verbose  bool   `short:"v" help:"Log every engine transition."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("holdemsim"),
		kong.Description("Deal and settle one Hold'em hand against a fixed deck."),
		kong.UsageOnError(),
	)

	if cli.Players < 2 || cli.Players > 9 {
		fmt.Fprintln(os.Stderr, "players must be between 2 and 9")
		os.Exit(1)
	}

	logger := logrus.New()
	if cli.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	seats := make([]testutil.SeatSpec, cli.Players)
	for i := 0; i < cli.Players; i++ {
		seats[i] = testutil.SeatSpec{ID: uint64(i + 1), Chips: cli.Chips, Position: i}
	}

	cfg := holdem.DefaultConfig()
	cfg.Logger = logger

	spec := testutil.HandSpec{
		Seats:     seats,
		Deck:      testutil.StandardDeckFor52(),
		Config:    cfg,
		ButtonPos: -1,
	}

	state, host, err := spec.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "build hand:", err)
		os.Exit(1)
	}

	if err := runToCompletion(state, host); err != nil {
		fmt.Fprintln(os.Stderr, "simulation error:", err)
		os.Exit(1)
	}

	printResult(state, host)
}

// runToCompletion feeds GameStart and then loops: drain the outbox,
// translate it into host-side effects via testutil.Drive, and feed
// any follow-up events back in. Since nobody is typing into this demo,
// every acting player auto-calls (or checks when free) until the hand
// settles — good enough to walk the whole state machine end to end.
func runToCompletion(state *holdem.HandState, host *testutil.FakeHost) error {
	events := []holdem.Event{{Kind: holdem.EventGameStart}}
	for {
		for len(events) > 0 {
			ev := events[0]
			events = events[1:]

			if err := state.HandleEvent(ev); err != nil {
				return err
			}
			calls := state.DrainOutbox()
			followups := testutil.Drive(host, state, calls)
			events = append(events, followups...)
		}

		if len(host.Settled) > 0 {
			return nil
		}

		id, ok := state.ActingPlayer()
		if !ok {
			return nil
		}
		p, _ := state.Player(id)
		snap := state.Snapshot()
		action := holdem.Check()
		if p.BetThisStreet < snap.StreetBet {
			action = holdem.Call()
		}
		events = append(events, holdem.Event{Kind: holdem.EventCustom, PlayerID: id, Custom: action})
	}
}

func printResult(state *holdem.HandState, host *testutil.FakeHost) {
	snap := state.Snapshot()
	fmt.Printf("Hand #%d settled on street %s\n", snap.HandNumber, snap.Street)
	fmt.Print("Board:")
	for _, c := range snap.Board {
		fmt.Printf(" %s", c)
	}
	fmt.Println()

	if len(host.Settled) == 0 {
		fmt.Println("no settlement produced")
		return
	}
	result := host.Settled[len(host.Settled)-1]
	for _, award := range result.Awards {
		fmt.Printf("%s: %d chips to %v\n", award.Reason, award.Amount, award.Winners)
	}
	for id, pr := range result.Players {
		desc := "folded"
		if pr.HandRank != nil {
			desc = pr.HandRank.Description
		}
		fmt.Printf("player %d: %d chips (%s)\n", id, pr.ChipsAfter, desc)
	}
}
