package holdem

// OutgoingCall records one host-facing effect — a timer, a shuffle
// request, a card assignment, a reveal request, or a settlement — that
// a single HandleEvent call produced. This is the engine's only I/O
// seam: HandleEvent never performs I/O itself, it only appends to the
// outbox, so it stays a pure, synchronous function of (state, event).
// A caller drains the outbox with DrainOutbox and is responsible for
// turning each call into whatever its transport actually is (a real
// network/shuffle/ledger backend, or testutil.FakeHost for tests).
type OutgoingCall struct {
	Kind    string
	DelayMs int64
	Event   Event
	Slots   []int
	PlayerID uint64
	Result  *GameResult
}

func (s *HandState) emit(c OutgoingCall) {
	s.outbox = append(s.outbox, c)
}

// DrainOutbox returns and clears the calls accumulated since the last
// drain. HandleEvent always leaves the outbox populated with whatever
// a live dispatcher needs to act on; testutil.FakeHost (or a real
// dispatcher implementing testutil.Host) is the typical consumer.
func (s *HandState) DrainOutbox() []OutgoingCall {
	out := s.outbox
	s.outbox = nil
	return out
}
