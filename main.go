package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/gear-clock/internal/audio"
	"github.com/iburimskiy/gear-clock/internal/config"
	"github.com/iburimskiy/gear-clock/internal/game"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(log); err != nil {
		log.Error("clock stopped", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title("Gear Clock"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var sound game.Sound
	player := audio.NewPlayer(beep.SampleRate(config.SampleRate))
	if err := player.Start(); err != nil {
		log.Warn("audio unavailable, running silent", "err", err)
	} else {
		log.Info("audio started", "rate", config.SampleRate)
		sound = player
	}

	log.Info("starting clock", "width", config.WindowWidth, "height", config.WindowHeight)
	if err := ebiten.RunGame(game.New(log, sound)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("clock closed")
	return nil
}
