package clockwork

import (
	"math"

	"github.com/iburimskiy/gear-clock/internal/config"
)

// Vec is a point in face coordinates: origin at the face center, y up.
type Vec struct {
	X, Y float64
}

func (v Vec) Scale(k float64) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Hand is one ring plus one arrow.
type Hand struct {
	Index      int
	Length     float64 // fraction of the face radius, 1 for hand 0
	Divisor    float64
	Tip        Vec
	Tail       Vec
	RingRadius float64
	Stroke     float64
	HeadWidth  float64
}

// FaceRadius returns the face radius for a window of w x h pixels.
func FaceRadius(w, h float64) float64 {
	pw := w - 2*config.FacePadding
	ph := h - 2*config.FacePadding
	r := math.Min(pw, ph) / 2
	if r < 0 {
		return 0
	}
	return r
}

// Compute lays out every hand of s on a face of the given radius.
// Hand h turns GearRatio^h times slower than hand 0.
func Compute(s State, radius float64) []Hand {
	if s.Hands <= 0 {
		return nil
	}
	hands := make([]Hand, 0, s.Hands)
	for h := 0; h < s.Hands; h++ {
		length := float64(s.Hands-h) / float64(s.Hands)
		divisor := math.Pow(float64(s.GearRatio), float64(h))
		angle := s.Mainspring / divisor
		tip := Vec{
			X: math.Sin(angle) * length * radius,
			Y: math.Cos(angle) * length * radius,
		}
		hands = append(hands, Hand{
			Index:      h,
			Length:     length,
			Divisor:    divisor,
			Tip:        tip,
			Tail:       tip.Scale(-config.TailFraction),
			RingRadius: radius * length,
			Stroke:     config.ArrowStroke / float64(h+1),
			HeadWidth:  config.ArrowHeadSize / float64(h+1),
		})
	}
	return hands
}
