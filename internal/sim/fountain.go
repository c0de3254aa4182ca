package sim

import (
	"image/color"
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

// frameDT is the per-frame step fed to tweens. Simulation constants are tuned
// per frame, so decoration timing follows the same fixed step.
const frameDT = float32(1.0 / config.TargetFPS)

// Fountain is an emission point with a fixed pool of particles. Origin,
// power and pool size never change after construction.
type Fountain struct {
	X, Y  float64
	Power float64

	particles []Particle
	profile   *config.Profile
	rng       *rand.Rand

	pulse *pulse
}

// pulse is the ring that spreads over the pool after a tap.
type pulse struct {
	scale, alpha *gween.Tween
	curScale     float64
	curAlpha     float64
}

// NewFountain creates a fountain at (x, y) and launches count particles from it.
func NewFountain(x, y float64, count int, power float64, profile *config.Profile, rng *rand.Rand) *Fountain {
	if count < 0 {
		count = 0
	}
	f := &Fountain{
		X:         x,
		Y:         y,
		Power:     power,
		particles: make([]Particle, count),
		profile:   profile,
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i].Reset(f)
	}
	return f
}

// Len returns the fixed particle count.
func (f *Fountain) Len() int {
	return len(f.particles)
}

// Particles exposes the pool for in-place mutation. The slice must not be resized.
func (f *Fountain) Particles() []Particle {
	return f.particles
}

// Update advances every particle one frame and returns how many were recycled.
func (f *Fountain) Update() int {
	recycled := 0
	for i := range f.particles {
		if f.particles[i].Update(f) {
			recycled++
		}
	}
	f.updatePulse()
	return recycled
}

// Draw paints pool, nozzle, nozzle shine and then the particles on top.
func (f *Fountain) Draw(dst Surface) {
	d := f.profile.Decor

	poolY := f.Y + d.PoolOffsetY
	dst.FillEllipse(f.X, poolY, d.PoolRadiusX, d.PoolRadiusY, d.PoolFill)
	dst.StrokeEllipse(f.X, poolY, d.PoolRadiusX, d.PoolRadiusY, d.PoolLineWidth, d.PoolStroke)
	if p := f.pulse; p != nil {
		c := colorWithAlpha(d.PulseColor, p.curAlpha)
		dst.StrokeEllipse(f.X, poolY, d.PoolRadiusX*p.curScale, d.PoolRadiusY*p.curScale, d.PoolLineWidth, c)
	}

	nx, ny := f.X+d.NozzleX, f.Y+d.NozzleY
	dst.FillRect(nx, ny, d.NozzleWidth, d.NozzleHeight, d.NozzleFill)
	dst.FillRect(nx, ny, d.ShineWidth, d.NozzleHeight, d.ShineFill)

	for i := range f.particles {
		f.particles[i].Draw(dst, f)
	}
}

// Pulsing reports whether a tap pulse is still animating.
func (f *Fountain) Pulsing() bool {
	return f.pulse != nil
}

func (f *Fountain) startPulse() {
	d := f.profile.Decor
	secs := float32(d.PulseDuration.Seconds())
	if secs <= 0 {
		return
	}
	f.pulse = &pulse{
		scale:    gween.New(1, float32(d.PulseScale), secs, ease.OutQuad),
		alpha:    gween.New(1, 0, secs, ease.Linear),
		curScale: 1,
		curAlpha: 1,
	}
}

func (f *Fountain) updatePulse() {
	p := f.pulse
	if p == nil {
		return
	}
	s, _ := p.scale.Update(frameDT)
	a, done := p.alpha.Update(frameDT)
	p.curScale, p.curAlpha = float64(s), float64(a)
	if done {
		f.pulse = nil
	}
}

// colorWithAlpha scales the alpha channel of c by k in [0, 1].
func colorWithAlpha(c color.NRGBA, k float64) color.NRGBA {
	c.A = uint8(float64(c.A) * k)
	return c
}
