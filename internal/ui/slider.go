package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/samber/lo"

	"github.com/iburimskiy/gear-clock/internal/config"
)

// Slider is bound to a value through Get and Set.
type Slider struct {
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Integer bool
	Get     func() float64
	Set     func(float64)

	track    image.Rectangle
	dragging bool
}

func NewFloatSlider(label string, min, max, step float64, get func() float64, set func(float64)) *Slider {
	return &Slider{Label: label, Min: min, Max: max, Step: step, Get: get, Set: set}
}

// NewIntSlider binds an integer value; the slider rounds to the nearest step.
func NewIntSlider(label string, min, max int, get func() int, set func(int)) *Slider {
	return &Slider{
		Label:   label,
		Min:     float64(min),
		Max:     float64(max),
		Step:    config.IntSliderStep,
		Integer: true,
		Get:     func() float64 { return float64(get()) },
		Set:     func(v float64) { set(int(v)) },
	}
}

// Track is the clickable area of the slider in screen pixels.
func (s *Slider) Track() image.Rectangle { return s.track }

func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) Value() float64 { return s.Get() }

// Fraction is the value position along the track in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return lo.Clamp((s.Get()-s.Min)/(s.Max-s.Min), 0, 1)
}

// Knob returns the knob rectangle for the current value.
func (s *Slider) Knob() image.Rectangle {
	span := s.track.Dx() - config.KnobWidth
	x := s.track.Min.X + int(math.Round(s.Fraction()*float64(span)))
	return image.Rect(x, s.track.Min.Y, x+config.KnobWidth, s.track.Max.Y)
}

func (s *Slider) Text() string {
	if s.Integer {
		return fmt.Sprintf("%d", int(s.Get()))
	}
	return fmt.Sprintf("%.2f", s.Get())
}

func (s *Slider) set(v float64) {
	v = lo.Clamp(v, s.Min, s.Max)
	if s.Integer {
		v = math.Round(v)
	}
	s.Set(v)
}

func (s *Slider) setFromX(x int) {
	span := float64(s.track.Dx() - config.KnobWidth)
	if span <= 0 {
		return
	}
	f := lo.Clamp((float64(x-s.track.Min.X)-config.KnobWidth/2)/span, 0, 1)
	s.set(s.Min + f*(s.Max-s.Min))
}

// step moves the value by n steps and snaps it to the step grid.
func (s *Slider) step(n int) {
	v := s.Get() + float64(n)*s.Step
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
	}
	s.set(v)
}
