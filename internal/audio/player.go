package audio

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/gear-clock/internal/config"
)

// Player mixes clicks into one endless stream: mixer -> volume -> meter.
// Until Start is called nothing reaches the speaker and the stream can be
// pulled directly.
type Player struct {
	rate    beep.SampleRate
	mixer   *beep.Mixer
	volume  *effects.Volume
	meter   *meter
	started bool
}

func NewPlayer(sr beep.SampleRate) *Player {
	mixer := &beep.Mixer{}
	volume := &effects.Volume{Streamer: mixer, Base: 2}
	return &Player{
		rate:   sr,
		mixer:  mixer,
		volume: volume,
		meter:  newMeter(volume, config.MeterRingSize),
	}
}

// Start opens the audio device and begins playback of the mix.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(config.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.meter)
	p.started = true
	return nil
}

func (p *Player) lock() {
	if p.started {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.started {
		speaker.Unlock()
	}
}

// Tick queues one click.
func (p *Player) Tick() {
	p.lock()
	p.mixer.Add(NewClick(p.rate))
	p.unlock()
}

// ToggleMute silences or restores the output and returns the new state.
func (p *Player) ToggleMute() bool {
	p.lock()
	defer p.unlock()
	p.volume.Silent = !p.volume.Silent
	return p.volume.Silent
}

// Level is the peak amplitude of the last few milliseconds of output.
func (p *Player) Level() float64 {
	return p.meter.peak(p.rate.N(config.ClickDuration))
}

// Stream pulls the mix directly; used when the speaker is not started.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	return p.meter.Stream(samples)
}

func (p *Player) Err() error { return nil }
