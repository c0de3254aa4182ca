package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/oil-fountains/internal/audio"
	"github.com/iburimskiy/oil-fountains/internal/config"
	"github.com/iburimskiy/oil-fountains/internal/game"
	"github.com/iburimskiy/oil-fountains/internal/term"
)

const appTitle = "Oil Fountains"

var (
	profileFlag = flag.String("profile", config.DefaultProfile, "look to use: classic, dense")
	pickFlag    = flag.Bool("pick", false, "choose the profile from a dialog")
	termFlag    = flag.Bool("term", false, "draw in the terminal instead of a window")
	overlayFlag = flag.Bool("overlay", false, "transparent borderless window over the desktop")
	widthFlag   = flag.Int("width", config.WindowWidth, "window width")
	heightFlag  = flag.Int("height", config.WindowHeight, "window height")
	trailFlag   = flag.Bool("trail", false, "leave motion trails instead of clearing each frame")
	muteFlag    = flag.Bool("mute", false, "disable splash sounds")
	volumeFlag  = flag.Float64("volume", config.SplashVolume, "splash volume as a power of two (0 = full)")
	seedFlag    = flag.Uint64("seed", 0, "random seed (0 = time based)")
	debugFlag   = flag.Bool("debug", false, "show the status overlay")
	fpsFlag     = flag.Int("fps", config.TargetFPS, "terminal frames per second")
	verboseFlag = flag.Bool("v", false, "verbose logging")
	logFlag     = flag.String("log", "", "write logs to this file")
)

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger(*verboseFlag, *logFlag, *termFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(logger); err != nil {
		logger.Error("fatal", "err", err)
		if !*termFlag {
			_ = zenity.Error(err.Error(), zenity.Title(appTitle), zenity.ErrorIcon)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	profile, err := chooseProfile(*profileFlag, *pickFlag)
	if err != nil {
		return err
	}
	if *trailFlag {
		profile.Trail = true
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	logger.Info("profile", "name", profile.Name, "trail", profile.Trail)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	player := startAudio(logger, seed)
	if player != nil {
		defer player.Close()
	}

	if *termFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := term.Options{
			Profile: profile,
			Seed:    seed,
			FPS:     *fpsFlag,
			Debug:   *debugFlag,
			Logger:  logger,
		}
		if player != nil {
			opts.Sound = player
		}
		return term.Run(ctx, opts)
	}

	opts := game.Options{
		Profile: profile,
		Seed:    seed,
		Title:   appTitle,
		Width:   *widthFlag,
		Height:  *heightFlag,
		Overlay: *overlayFlag,
		Debug:   *debugFlag,
		Logger:  logger,
	}
	if player != nil {
		opts.Sound = player
	}
	return game.Run(opts)
}

// chooseProfile resolves the profile flag, optionally asking with a dialog.
// Cancelling the dialog keeps the flag value.
func chooseProfile(name string, pick bool) (config.Profile, error) {
	if pick {
		picked, err := zenity.List("Choose a look",
			config.Names(),
			zenity.Title(appTitle),
			zenity.DefaultItems(name),
		)
		switch {
		case err == nil && picked != "":
			name = picked
		case err != nil && !errors.Is(err, zenity.ErrCanceled):
			return config.Profile{}, errors.Wrap(err, "profile dialog")
		}
	}
	return config.ByName(name)
}

// startAudio opens the sound device. Failure is not fatal: the fountains run muted.
func startAudio(logger *slog.Logger, seed uint64) *audio.Player {
	if *muteFlag {
		return nil
	}
	player := audio.NewPlayer(config.SampleRate, *volumeFlag, seed)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return player
}

// newLogger writes to stderr, or to path when set. The terminal frontend
// owns the screen, so without a path it logs nowhere.
func newLogger(verbose bool, path string, terminal bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case terminal:
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
