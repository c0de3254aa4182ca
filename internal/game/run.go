package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Run opens the window (or desktop overlay) and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Trails need the previous frame kept around.
	ebiten.SetScreenClearedEveryFrame(!opts.Profile.Trail)

	runOpts := &ebiten.RunGameOptions{}
	if opts.Overlay {
		w, h := ebiten.Monitor().Size()
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowPosition(0, 0)
		runOpts.ScreenTransparent = true
	} else {
		ebiten.SetWindowSize(opts.Width, opts.Height)
	}

	g.log.Info("starting window",
		"profile", opts.Profile.Name,
		"overlay", opts.Overlay,
		"trail", opts.Profile.Trail,
	)
	if err := ebiten.RunGameWithOptions(g, runOpts); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
