// Package game runs the clock inside an ebiten window.
package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/gear-clock/internal/clockwork"
	"github.com/iburimskiy/gear-clock/internal/config"
	"github.com/iburimskiy/gear-clock/internal/ui"
)

// Sound plays the escapement ticks.
type Sound interface {
	Tick()
	ToggleMute() bool
	Level() float64
}

type Game struct {
	log      *slog.Logger
	state    *clockwork.State
	movement *clockwork.Movement
	panel    *ui.Panel
	sound    Sound // nil when no audio device is available
	now      func() time.Time

	started time.Time
	width   int
	height  int
	muted   bool
}

// New builds the game; sound may be nil.
func New(log *slog.Logger, sound Sound) *Game {
	st := clockwork.NewState()
	g := &Game{
		log:      log,
		state:    st,
		movement: clockwork.NewMovement(st, config.MarksPerTurn),
		sound:    sound,
		now:      time.Now,
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
	g.panel = ui.NewPanel("Controls",
		ui.NewFloatSlider("rate:", config.RateMin, config.RateMax, config.RateStep,
			func() float64 { return st.Rate }, st.SetRate),
		ui.NewIntSlider("number of hands:", config.HandsMin, config.HandsMax,
			func() int { return st.Hands }, st.SetHands),
		ui.NewIntSlider("gear ratio:", config.GearRatioMin, config.GearRatioMax,
			func() int { return st.GearRatio }, st.SetGearRatio),
	)
	g.started = g.now()
	return g
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	g.panel.Update(ui.Input{
		X:        mouseX,
		Y:        mouseY,
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Left:     repeating(ebiten.KeyArrowLeft),
		Right:    repeating(ebiten.KeyArrowRight),
	}, g.width, g.height)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.movement.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		g.muted = g.sound.ToggleMute()
		g.log.Info("sound toggled", "muted", g.muted)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if ticks := g.movement.Frame(g.now()); ticks > 0 && g.sound != nil {
		g.sound.Tick()
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// repeating reports a key press and its auto-repeat while held.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= config.KeyRepeatDelay && (d-config.KeyRepeatDelay)%config.KeyRepeatInterval == 0)
}
