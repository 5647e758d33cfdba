package clockwork

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestFaceRadius(t *testing.T) {
	tests := []struct {
		w, h, want float64
	}{
		{1024, 768, 368},
		{200, 400, 84},
		{20, 20, 0},
	}
	for _, tt := range tests {
		if got := FaceRadius(tt.w, tt.h); got != tt.want {
			t.Errorf("FaceRadius(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestComputeSingleHand(t *testing.T) {
	s := State{Hands: 1, GearRatio: 10}
	hands := Compute(s, 100)
	if len(hands) != 1 {
		t.Fatalf("got %d hands, want 1", len(hands))
	}
	h := hands[0]
	if h.Length != 1 || h.RingRadius != 100 || h.Divisor != 1 {
		t.Errorf("unexpected hand: %+v", h)
	}
	// Mainspring 0 points to twelve o'clock.
	if math.Abs(h.Tip.X) > eps || math.Abs(h.Tip.Y-100) > eps {
		t.Errorf("tip = %+v, want (0, 100)", h.Tip)
	}
	if math.Abs(h.Tail.Y+25) > eps {
		t.Errorf("tail = %+v, want (0, -25)", h.Tail)
	}
}

func TestComputeClockwise(t *testing.T) {
	s := State{Mainspring: math.Pi / 2, Hands: 1, GearRatio: 2}
	tip := Compute(s, 10)[0].Tip
	if math.Abs(tip.X-10) > eps || math.Abs(tip.Y) > eps {
		t.Errorf("quarter turn tip = %+v, want (10, 0)", tip)
	}
}

func TestComputeMagnitudeBound(t *testing.T) {
	const radius = 300.0
	for hands := 1; hands <= 8; hands++ {
		for _, gear := range []int{2, 7, 60} {
			for _, spring := range []float64{0, 1.3, -42, 1e6} {
				s := State{Mainspring: spring, Hands: hands, GearRatio: gear}
				got := Compute(s, radius)
				if len(got) != hands {
					t.Fatalf("got %d hands, want %d", len(got), hands)
				}
				for _, h := range got {
					if h.Tip.Len() > radius*h.Length+eps {
						t.Fatalf("hand %d tip %v exceeds %v", h.Index, h.Tip.Len(), radius*h.Length)
					}
				}
			}
		}
	}
}

func TestComputeGearLaw(t *testing.T) {
	s := State{Mainspring: 5, Hands: 4, GearRatio: 3}
	hands := Compute(s, 1)
	for i, h := range hands {
		if want := math.Pow(3, float64(i)); h.Divisor != want {
			t.Errorf("hand %d divisor = %v, want %v", i, h.Divisor, want)
		}
		if want := float64(4-i) / 4; h.Length != want {
			t.Errorf("hand %d length = %v, want %v", i, h.Length, want)
		}
		if want := 16.0 / float64(i+1); h.Stroke != want {
			t.Errorf("hand %d stroke = %v, want %v", i, h.Stroke, want)
		}
		if i > 0 && h.Length >= hands[i-1].Length {
			t.Errorf("hand %d not shorter than hand %d", i, i-1)
		}
	}
}
