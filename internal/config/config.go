package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Gear Clock - Space: Pause, R: Reset, M: Mute, Esc/Q: Quit"

	// Face
	FacePadding   = 16
	RingStroke    = 2
	TailFraction  = 0.25
	ArrowStroke   = 16.0
	ArrowHeadSize = 20.0

	// Panel dimensions
	PanelX        = 20
	PanelY        = 20
	PanelWidth    = 220
	TitleHeight   = 20
	LabelHeight   = 16
	SliderHeight  = 14
	SliderSpacing = 10
	PanelPadding  = 8
	KnobWidth     = 8

	// Slider ranges
	RateMin       = -10.0
	RateMax       = 10.0
	RateStep      = 0.1
	HandsMin      = 1
	HandsMax      = 8
	GearRatioMin  = 2
	GearRatioMax  = 60
	DefaultRate   = 1.0
	DefaultHands  = 3
	DefaultGear   = 10
	IntSliderStep = 1

	// Keyboard auto-repeat, in ticks
	KeyRepeatDelay    = 30
	KeyRepeatInterval = 3

	// Debug font cell
	GlyphWidth = 6
	TextMargin = 12

	// Escapement
	MarksPerTurn  = 12
	SampleRate    = 44100
	SpeakerBuffer = time.Second / 20
	ClickDuration = 30 * time.Millisecond
	ClickFreq     = 1800.0
	ClickDecay    = 180.0 // per second
	ClickGain     = 0.5
	MeterRingSize = 2048

	// Pivot flash drawn while a tick is audible
	PivotRadius = 4.0
	PivotFlash  = 12.0
)

var (
	Background = color.Black
	SlateBlue  = color.RGBA{R: 106, G: 90, B: 205, A: 255}
	MintCream  = color.RGBA{R: 245, G: 255, B: 250, A: 255}

	PanelFill   = color.RGBA{R: 27, G: 27, B: 27, A: 230}
	PanelBorder = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	TitleFill   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	TrackFill   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	TrackFocus  = color.RGBA{R: 90, G: 110, B: 150, A: 255}
	KnobFill    = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	KnobActive  = color.RGBA{R: 200, G: 215, B: 240, A: 255}
)
