package term

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/oil-fountains/internal/config"
	"github.com/iburimskiy/oil-fountains/internal/sim"
)

// Options configures the terminal frontend.
type Options struct {
	Profile config.Profile
	Seed    uint64
	FPS     int
	Debug   bool
	Sound   sim.Splasher
	Logger  *slog.Logger
}

type terminal struct {
	screen   tcell.Screen
	scene    *sim.Scene
	viewport *sim.Viewport
	grid     *grid
	sound    sim.Splasher
	log      *slog.Logger
	fps      int
	debug    bool

	mouseDown bool
}

// Run draws the fountains in the terminal until ctx is done or the user quits.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	t := newTerminal(screen, opts)
	t.grid.resize(screen.Size())
	return t.run(ctx)
}

func newTerminal(screen tcell.Screen, opts Options) *terminal {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	return &terminal{
		screen:   screen,
		scene:    sim.NewScene(opts.Profile, rng),
		viewport: sim.NewViewport(opts.Profile.SettleDelay),
		grid:     newGrid(0, 0),
		sound:    opts.Sound,
		log:      logger,
		fps:      fps,
		debug:    opts.Debug,
	}
}

func (t *terminal) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.log.Info("starting terminal", "profile", t.scene.Profile().Name, "fps", t.fps)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handle(ev) {
				return nil
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// handle processes one terminal event and reports whether to keep running.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			t.debug = !t.debug
		}

	case *tcell.EventResize:
		t.screen.Sync()
		t.grid.resize(ev.Size())

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !t.mouseDown {
			col, _ := ev.Position()
			t.tap((float64(col) + 0.5) * cw)
		}
		t.mouseDown = pressed
	}
	return true
}

func (t *terminal) tap(x float64) {
	f, kicked := t.scene.Boost(x)
	if f == nil {
		return
	}
	t.log.Debug("boost", "tap", x, "fountain", f.X, "kicked", kicked)
	if t.sound != nil && f.Len() > 0 {
		t.sound.Splash(float64(kicked) / float64(f.Len()))
	}
}

// syncViewport rebuilds the scene once the grid size has settled.
func (t *terminal) syncViewport() {
	w, h, ok := t.viewport.Observe(t.grid.size())
	if !ok {
		return
	}
	plan := t.scene.Resize(w, h)
	t.log.Info("layout",
		"cols", t.grid.cols,
		"rows", t.grid.rows,
		"fountains", plan.Count,
		"particles", t.scene.ParticleCount(),
	)
}

func (t *terminal) frame() {
	t.syncViewport()
	t.scene.Tick(t.grid)
	t.grid.flush(t.screen)
	if t.debug {
		t.drawStatus()
	}
	t.screen.Show()
}

func (t *terminal) drawStatus() {
	line := fmt.Sprintf(" %s  %dx%d  fountains %d  particles %d  frame %d ",
		t.scene.Profile().Name, t.grid.cols, t.grid.rows,
		len(t.scene.Fountains()), t.scene.ParticleCount(), t.scene.Frame())
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range line {
		if col >= t.grid.cols {
			break
		}
		t.screen.SetContent(col, 0, r, nil, style)
		col++
	}
}
