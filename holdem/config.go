package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config is the fixed, per-table ruleset a HandState is built from. It
// is supplied once by the host at table creation and does not change
// between hands, except for the button pointer the host persists and
// feeds back in on the next hand.
type Config struct {
	SmallBlind uint64
	BigBlind   uint64
	Ante       uint64

	MinPlayers int
	MaxPlayers int

	ActionTimeoutPreflop  int64
	ActionTimeoutPostflop int64
	ActionTimeoutTurn     int64
	ActionTimeoutRiver    int64
	WaitTimeoutDefault    int64
	WaitTimeoutLastPlayer int64

	// MaxConsecutiveTimeouts is the number of action timeouts a player
	// can accrue across hands before being kicked. 0 uses
	// MaxConsecutiveTimeoutsDefault.
	MaxConsecutiveTimeouts int

	// RakeBps is the rake taken from contested showdown prizes, in
	// basis points (1/100 of a percent). Uncontested single-winner
	// prizes are never raked. 0 disables rake.
	RakeBps uint16

	// Logger receives structured per-hand diagnostics. A nil Logger
	// falls back to a discard logger built with logrus' standard
	// defaults, so callers never need a nil check before logging.
	Logger *logrus.Logger
}

// DefaultConfig returns the ruleset used by holdemsim and the test
// fixtures absent an explicit override.
func DefaultConfig() Config {
	return Config{
		SmallBlind:             50,
		BigBlind:               100,
		MinPlayers:             2,
		MaxPlayers:             9,
		ActionTimeoutPreflop:   15000,
		ActionTimeoutPostflop:  20000,
		ActionTimeoutTurn:      20000,
		ActionTimeoutRiver:     30000,
		WaitTimeoutDefault:     10000,
		WaitTimeoutLastPlayer:  60000,
		MaxConsecutiveTimeouts: MaxConsecutiveTimeoutsDefault,
	}
}

func (c *Config) validate() error {
	if c.SmallBlind == 0 || c.BigBlind == 0 {
		return fmt.Errorf("holdem: blinds must be positive")
	}
	if c.BigBlind < c.SmallBlind {
		return fmt.Errorf("holdem: big blind must be >= small blind")
	}
	if c.MinPlayers < 2 {
		return fmt.Errorf("holdem: min players must be >= 2")
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("holdem: max players must be >= min players")
	}
	if c.MaxPlayers > 9 {
		return fmt.Errorf("holdem: max players must be <= 9")
	}
	if c.RakeBps > 10000 {
		return fmt.Errorf("holdem: rake bps must be <= 10000")
	}
	if c.MaxConsecutiveTimeouts <= 0 {
		c.MaxConsecutiveTimeouts = MaxConsecutiveTimeoutsDefault
	}
	if c.Logger == nil {
		c.Logger = newDiscardLogger()
	}
	return nil
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
