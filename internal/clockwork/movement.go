package clockwork

import "time"

// Movement drives a State from wall-clock frames and reports the ticks
// of its escapement.
type Movement struct {
	State *State

	esc     *Escapement
	last    time.Time
	started bool
}

func NewMovement(s *State, marksPerTurn int) *Movement {
	return &Movement{State: s, esc: NewEscapement(marksPerTurn)}
}

// Frame advances the state by the time elapsed since the previous frame
// and returns the number of hour marks hand 0 crossed. The first frame
// only records the time.
func (m *Movement) Frame(now time.Time) int {
	if !m.started {
		m.last = now
		m.started = true
		m.esc.Step(m.State.Mainspring)
		return 0
	}
	m.State.Advance(now.Sub(m.last))
	m.last = now
	return m.esc.Step(m.State.Mainspring)
}

// Reset zeroes the mainspring without ticking for the jump.
func (m *Movement) Reset() {
	m.State.Reset()
	m.esc.Reset()
	m.esc.Step(m.State.Mainspring)
}
