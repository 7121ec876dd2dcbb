package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shieldroids/internal/config"
	"github.com/tomz197/shieldroids/internal/logging"
	"github.com/tomz197/shieldroids/internal/object"
	"github.com/tomz197/shieldroids/internal/window"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(os.Stderr, settings.LogLevel, "window")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	screen := object.NewScreen(settings.Width, settings.Height)
	g := window.NewGame(screen, nil, logger)

	ebiten.SetWindowSize(int(settings.Width), int(settings.Height))
	ebiten.SetWindowTitle("Shieldroids")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(settings.FPS)

	logger.Info("window opened", "width", settings.Width, "height", settings.Height, "tps", settings.FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
