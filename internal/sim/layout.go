package sim

import (
	"math"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

// Plan is the fountain arrangement for one viewport size.
type Plan struct {
	Width, Height float64
	Count         int
	Spacing       float64
	Mobile        bool
	Xs            []float64
	Y             float64
}

// NormalizeViewport replaces degenerate dimensions with the profile fallback.
func NormalizeViewport(w, h float64, p *config.Profile) (float64, float64) {
	if w < p.MinViewport || math.IsNaN(w) {
		w = p.FallbackWidth
	}
	if h < p.MinViewport || math.IsNaN(h) {
		h = p.FallbackHeight
	}
	return w, h
}

// FountainCount returns how many fountains fit a viewport of width w,
// always within [MinFountains, MaxFountains].
func FountainCount(w float64, p *config.Profile) int {
	minSpacing := p.DesktopSpacing
	if w < p.SpacingBreakpoint {
		minSpacing = p.MobileSpacing
	}
	n := math.Floor(w / minSpacing)
	switch {
	case math.IsNaN(n) || n < float64(p.MinFountains):
		return p.MinFountains
	case n > float64(p.MaxFountains):
		return p.MaxFountains
	}
	return int(n)
}

// Layout computes evenly spaced fountain positions for a w x h viewport.
func Layout(w, h float64, p *config.Profile) Plan {
	w, h = NormalizeViewport(w, h, p)
	n := FountainCount(w, p)
	spacing := w / float64(n+1)

	plan := Plan{
		Width:   w,
		Height:  h,
		Count:   n,
		Spacing: spacing,
		Mobile:  w < p.MobileBreakpoint,
		Xs:      make([]float64, n),
		Y:       h - p.BaseOffset,
	}
	for i := range plan.Xs {
		plan.Xs[i] = spacing * float64(i+1)
	}
	return plan
}

// particleRanges picks the per-fountain particle count and power ranges.
func particleRanges(mobile bool, p *config.Profile) (count, power config.Range) {
	if mobile {
		return p.MobileParticles, p.MobilePower
	}
	return p.DesktopParticles, p.DesktopPower
}
