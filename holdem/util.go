package holdem

// NewHand builds a fresh HandState for a table. cfg is validated and
// defaulted in place (a nil Logger becomes a discard logger). players
// should list every seated player; buttonPos is the seat
// position the previous hand's button was on, or InvalidPosition for
// the first hand at a table. startHand always advances to the next
// occupied position strictly after buttonPos, so InvalidPosition
// correctly lets the lowest occupied position play the button first
// rather than being skipped.
func NewHand(cfg Config, players []*Player, buttonPos int) (*HandState, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	reg := newRegistry()
	reg.setLogger(cfg.Logger)
	for _, p := range players {
		reg.add(p)
	}
	return newHandState(cfg, reg, buttonPos, 0), nil
}
