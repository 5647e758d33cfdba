// Package clockwork holds the clock state and the geometry derived from it.
package clockwork

import (
	"time"

	"github.com/samber/lo"

	"github.com/iburimskiy/gear-clock/internal/config"
)

// State is the single mutable record owned by the frame loop.
type State struct {
	Mainspring float64
	Rate       float64
	Hands      int
	GearRatio  int
	Paused     bool
}

func NewState() *State {
	return &State{
		Rate:      config.DefaultRate,
		Hands:     config.DefaultHands,
		GearRatio: config.DefaultGear,
	}
}

// Advance turns the mainspring by dt scaled by the rate.
// Non-positive dt and a paused state leave it untouched.
func (s *State) Advance(dt time.Duration) {
	if s.Paused || dt <= 0 {
		return
	}
	s.Mainspring += dt.Seconds() * s.Rate
}

func (s *State) SetRate(v float64) {
	s.Rate = lo.Clamp(v, config.RateMin, config.RateMax)
}

func (s *State) SetHands(n int) {
	s.Hands = lo.Clamp(n, config.HandsMin, config.HandsMax)
}

func (s *State) SetGearRatio(n int) {
	s.GearRatio = lo.Clamp(n, config.GearRatioMin, config.GearRatioMax)
}

func (s *State) TogglePause() { s.Paused = !s.Paused }

// Reset zeroes the mainspring; the controls keep their values.
func (s *State) Reset() { s.Mainspring = 0 }
