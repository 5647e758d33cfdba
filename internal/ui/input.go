// Package ui implements the overlay control panel without touching the
// graphics backend. The game feeds it an Input snapshot every tick and
// draws it from the rectangles it exposes.
package ui

// Input is the pointer and keyboard state for one tick.
type Input struct {
	X, Y     int
	Down     bool // left button held
	Pressed  bool // left button went down this tick
	Released bool // left button went up this tick
	Left     bool // step the focused slider down
	Right    bool // step the focused slider up
}
