package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/shieldroids/internal/config"
	"github.com/tomz197/shieldroids/internal/logging"
	"github.com/tomz197/shieldroids/internal/loop"
	"github.com/tomz197/shieldroids/internal/object"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// The terminal belongs to the game; logs only go to a file when asked for.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SHIELDROIDS_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := logging.New(logOut, settings.LogLevel, "game")
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Screen: object.NewScreen(settings.Width, settings.Height),
		FPS:    settings.FPS,
		Logger: logger,
	})
}
