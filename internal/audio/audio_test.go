package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"

	"github.com/iburimskiy/gear-clock/internal/config"
)

const testRate = beep.SampleRate(config.SampleRate)

func peakOf(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestClickDrains(t *testing.T) {
	c := NewClick(testRate)
	want := testRate.N(config.ClickDuration)
	if c.Len() != want {
		t.Fatalf("len = %d, want %d", c.Len(), want)
	}

	buf := make([][2]float64, 4096)
	n, ok := c.Stream(buf)
	if !ok || n != want {
		t.Fatalf("stream = (%d, %v), want (%d, true)", n, ok, want)
	}
	if p := peakOf(buf[:n]); p == 0 || p > config.ClickGain {
		t.Errorf("peak = %v, want in (0, %v]", p, config.ClickGain)
	}
	if n, ok := c.Stream(buf); n != 0 || ok {
		t.Errorf("drained click streamed (%d, %v)", n, ok)
	}
}

func TestClickDecays(t *testing.T) {
	c := NewClick(testRate)
	buf := make([][2]float64, c.Len())
	c.Stream(buf)
	head := peakOf(buf[:len(buf)/4])
	tail := peakOf(buf[3*len(buf)/4:])
	if tail >= head {
		t.Errorf("tail peak %v not below head peak %v", tail, head)
	}
}

func TestPlayerTick(t *testing.T) {
	p := NewPlayer(testRate)
	buf := make([][2]float64, 512)

	p.Stream(buf)
	if peakOf(buf) != 0 || p.Level() != 0 {
		t.Fatalf("idle player not silent")
	}

	p.Tick()
	n, ok := p.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("stream = (%d, %v)", n, ok)
	}
	if peakOf(buf) == 0 {
		t.Error("tick produced no sound")
	}
	if p.Level() == 0 {
		t.Error("level did not register the tick")
	}

	// Long enough for the click to leave the metered window.
	p.Stream(make([][2]float64, 4096))
	if p.Level() != 0 {
		t.Errorf("level = %v after the click ended", p.Level())
	}
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(testRate)
	if !p.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	p.Tick()
	buf := make([][2]float64, 2048)
	p.Stream(buf)
	if peakOf(buf) != 0 || p.Level() != 0 {
		t.Error("muted player produced sound")
	}
	if p.ToggleMute() {
		t.Fatal("second toggle should unmute")
	}
	p.Tick()
	p.Stream(buf)
	if peakOf(buf) == 0 {
		t.Error("unmuted player is silent")
	}
}

func TestMeterPeakWindow(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0, 0}
		}
		samples[0] = [2]float64{0.25, -0.75}
		return len(samples), true
	})
	m := newMeter(src, 8)
	m.Stream(make([][2]float64, 4))
	if got := m.peak(4); got != 0.75 {
		t.Errorf("peak(4) = %v, want 0.75", got)
	}
	if got := m.peak(3); got != 0 {
		t.Errorf("peak(3) = %v, want 0", got)
	}
	if got := m.peak(100); got != 0.75 {
		t.Errorf("peak over the whole ring = %v, want 0.75", got)
	}
}
