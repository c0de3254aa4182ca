package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/oil-fountains/internal/config"
	"github.com/iburimskiy/oil-fountains/internal/sim"
)

// Options configures the window frontend.
type Options struct {
	Profile config.Profile
	Seed    uint64
	Title   string
	Width   int
	Height  int
	// Overlay runs as a transparent, borderless, always-on-top window.
	Overlay bool
	Debug   bool
	Sound   sim.Splasher
	Logger  *slog.Logger
}

// Game hosts a Scene inside ebiten. Taps are handled in Update and the
// scene ticks in Draw, once per display refresh, on the same goroutine.
type Game struct {
	scene    *sim.Scene
	viewport *sim.Viewport
	surface  *surface
	sound    sim.Splasher
	log      *slog.Logger

	debug   bool
	overlay bool

	// last size reported by Layout
	outsideW, outsideH int
	sized              bool

	touchIDs []ebiten.TouchID
	taps     []float64

	start time.Time
}

// NewGame builds the scene; the first layout happens on the first Update.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	return &Game{
		scene:    sim.NewScene(opts.Profile, rng),
		viewport: sim.NewViewport(opts.Profile.SettleDelay),
		surface:  &surface{transparent: opts.Overlay},
		sound:    opts.Sound,
		log:      logger,
		debug:    opts.Debug,
		overlay:  opts.Overlay,
		start:    time.Now(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.syncViewport()

	g.taps = g.collectTaps(g.taps[:0])
	g.handleTaps(g.taps)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.scene.Tick(g.surface)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	g.sized = true
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// syncViewport rebuilds the scene when the window size has settled.
func (g *Game) syncViewport() {
	if !g.sized {
		return
	}
	w, h, ok := g.viewport.Observe(float64(g.outsideW), float64(g.outsideH))
	if !ok {
		return
	}
	plan := g.scene.Resize(w, h)
	g.log.Info("layout",
		"width", plan.Width,
		"height", plan.Height,
		"fountains", plan.Count,
		"mobile", plan.Mobile,
		"particles", g.scene.ParticleCount(),
	)
}

// handleTaps boosts the fountain nearest to each tapped x.
func (g *Game) handleTaps(xs []float64) {
	for _, x := range xs {
		f, kicked := g.scene.Boost(x)
		if f == nil {
			continue
		}
		g.log.Debug("boost", "tap", x, "fountain", f.X, "kicked", kicked)
		if g.sound != nil && f.Len() > 0 {
			g.sound.Splash(float64(kicked) / float64(f.Len()))
		}
	}
}
