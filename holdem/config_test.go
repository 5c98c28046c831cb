package holdem

import "testing"

func TestConfigValidate_RejectsZeroBlinds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SmallBlind = 0
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected error for zero small blind")
	}
}

func TestConfigValidate_RejectsBigBlindBelowSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BigBlind = cfg.SmallBlind - 1
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected error when big blind is below small blind")
	}
}

func TestConfigValidate_DefaultsLoggerAndTimeouts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxConsecutiveTimeouts = 0
	if err := cfg.validate(); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	if cfg.Logger == nil {
		t.Fatalf("expected a discard logger to be filled in")
	}
	if cfg.MaxConsecutiveTimeouts != MaxConsecutiveTimeoutsDefault {
		t.Fatalf("expected default max consecutive timeouts, got %d", cfg.MaxConsecutiveTimeouts)
	}
}

func TestConfigValidate_RejectsTooManyPlayers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 10
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected error for more than 9 max players")
	}
}
