package clockwork

import "math"

// Escapement counts the hour marks hand 0 passes as the mainspring moves.
type Escapement struct {
	marks float64
	last  float64
	init  bool
}

// NewEscapement returns an escapement with marksPerTurn marks around the face.
func NewEscapement(marksPerTurn int) *Escapement {
	if marksPerTurn < 1 {
		marksPerTurn = 1
	}
	return &Escapement{marks: float64(marksPerTurn)}
}

func (e *Escapement) mark(mainspring float64) float64 {
	return math.Floor(mainspring * e.marks / (2 * math.Pi))
}

// Step records the new mainspring position and returns how many marks
// were crossed since the previous call, in either direction.
// The first call only primes the escapement.
func (e *Escapement) Step(mainspring float64) int {
	if !e.init {
		e.last = mainspring
		e.init = true
		return 0
	}
	n := int(math.Abs(e.mark(mainspring) - e.mark(e.last)))
	e.last = mainspring
	return n
}

// Reset forgets the last position so a jump (e.g. a reset) does not tick.
func (e *Escapement) Reset() { e.init = false }
