package holdem

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// registry holds every seat at the table, independent of whether they
// are in the current hand. It is keyed by player ID rather than a
// fixed chair index because players join and leave between hands.
type registry struct {
	players map[uint64]*Player
	order   []uint64 // insertion order, stable for iteration
	log     *logrus.Logger
}

func newRegistry() *registry {
	return &registry{players: make(map[uint64]*Player), log: newDiscardLogger()}
}

// setLogger swaps in the hand's configured logger, called once from
// NewHand after Config.validate has filled in a default if needed.
func (r *registry) setLogger(l *logrus.Logger) {
	if l != nil {
		r.log = l
	}
}

func (r *registry) add(p *Player) {
	if _, exists := r.players[p.ID]; exists {
		return
	}
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
}

func (r *registry) get(id uint64) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// bySeat returns every seated player ordered by table position,
// ascending. This is the canonical iteration order for dealing,
// button rotation, and the acting sequence.
func (r *registry) bySeat() []*Player {
	out := make([]*Player, 0, len(r.players))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// live returns seated players who are still in the current hand
// (not Fold/Leave/Out/Init), ordered by position.
func (r *registry) live() []*Player {
	var out []*Player
	for _, p := range r.bySeat() {
		if p.isLive() {
			out = append(out, p)
		}
	}
	return out
}

func (r *registry) count() int {
	return len(r.players)
}

// markLeave flags a player for removal at the next hand boundary;
// per the spec a leave mid-hand takes effect only once the hand ends,
// matching the original's two-phase mark-then-kick cleanup.
func (r *registry) markLeave(id uint64) {
	if p, ok := r.players[id]; ok {
		p.Status = StatusLeave
	}
}

// markOutPlayers flags every zero-chip player as Out. Grounded on the
// original's mark_out_players. It only marks: removal is left to
// removeLeaveAndOut, which closeHand runs right after it, so a busted
// player is dropped from the registry at the end of the same hand.
func (r *registry) markOutPlayers() {
	for _, p := range r.players {
		if p.Chips == 0 && p.Status != StatusLeave {
			p.Status = StatusOut
			r.log.WithField("player", p.ID).Info("player busted, marked out")
		}
	}
}

// removeLeaveAndOut drops every player marked Leave or Out from the
// registry entirely. Grounded on the original's
// remove_leave_and_out_players, run once per hand boundary after
// settlement and before the next deal.
func (r *registry) removeLeaveAndOut() []uint64 {
	var removed []uint64
	for id, p := range r.players {
		if p.Status == StatusLeave || p.Status == StatusOut {
			removed = append(removed, id)
			delete(r.players, id)
		}
	}
	if len(removed) > 0 {
		kept := r.order[:0]
		for _, id := range r.order {
			if _, ok := r.players[id]; ok {
				kept = append(kept, id)
			}
		}
		r.order = kept
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	if len(removed) > 0 {
		r.log.WithField("players", removed).Info("players ejected from table")
	}
	return removed
}

// kickTimedOut evicts any player whose TimeoutCount has reached the
// configured ceiling, treating it like a forced leave.
func (r *registry) kickTimedOut(max int) []uint64 {
	var kicked []uint64
	for _, p := range r.players {
		if p.TimeoutCount >= max {
			p.Status = StatusLeave
			kicked = append(kicked, p.ID)
			r.log.WithFields(logrus.Fields{"player": p.ID, "timeouts": p.TimeoutCount}).Warn("player kicked for consecutive timeouts")
		}
	}
	sort.Slice(kicked, func(i, j int) bool { return kicked[i] < kicked[j] })
	return kicked
}
