package sim

import (
	"image/color"
)

// Particle is a single oil droplet. It is owned by exactly one Fountain,
// which is passed in on every call instead of being stored, so a particle
// never keeps a replaced fountain alive.
type Particle struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Size           float64 // radius at full life
	Life           float64 // (0, 1], shrinks by Decay every frame
	Decay          float64
	Gravity        float64
	Color          color.NRGBA
	Highlight      color.NRGBA
}

// Reset re-launches the particle from the fountain's nozzle.
func (p *Particle) Reset(f *Fountain) {
	cfg, rng := f.profile, f.rng

	p.X = f.X + (rng.Float64()*2-1)*cfg.Jitter
	p.Y = f.Y
	p.Size = cfg.Size.Random(rng)
	p.SpeedY = -(cfg.Launch.Random(rng) + f.Power)
	p.SpeedX = cfg.Drift.Random(rng)
	p.Gravity = cfg.Gravity
	p.Color = cfg.OilColors[rng.IntN(len(cfg.OilColors))]
	p.Highlight = cfg.HighlightColors[rng.IntN(len(cfg.HighlightColors))]
	p.Life = 1
	p.Decay = cfg.Decay.Random(rng)
}

// Update advances the particle one frame. It reports whether the particle
// was recycled because it fell below the nozzle or ran out of life.
func (p *Particle) Update(f *Fountain) bool {
	p.SpeedY += p.Gravity
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Life -= p.Decay

	if p.Y > f.Y || p.Life <= 0 {
		p.Reset(f)
		return true
	}
	return false
}

// Radius is the drawn radius; droplets shrink as they age.
func (p *Particle) Radius() float64 {
	return p.Size * p.Life
}

// Draw paints the droplet and its glossy highlight. Droplets smaller than
// minRadius are skipped.
func (p *Particle) Draw(dst Surface, f *Fountain) {
	cfg := f.profile
	r := p.Radius()
	if r < cfg.MinRadius {
		return
	}
	dst.FillCircle(p.X, p.Y, r, p.Color)

	off := r * cfg.HighlightOffset
	dst.FillCircle(p.X-off, p.Y-off, r*cfg.HighlightScale, p.Highlight)
}
