// Package audio synthesizes the escapement tick and plays it through the
// beep speaker.
package audio

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/gear-clock/internal/config"
)

// Click is a short exponentially decaying sine burst.
type Click struct {
	rate float64
	pos  int
	n    int
}

func NewClick(sr beep.SampleRate) *Click {
	return &Click{rate: float64(sr), n: sr.N(config.ClickDuration)}
}

func (c *Click) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.n {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.n {
			break
		}
		t := float64(c.pos) / c.rate
		v := config.ClickGain * math.Exp(-config.ClickDecay*t) * math.Sin(2*math.Pi*config.ClickFreq*t)
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *Click) Err() error { return nil }

// Len is the click length in samples.
func (c *Click) Len() int { return c.n }
