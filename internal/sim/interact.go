package sim

import "math"

// Nearest returns the index of the fountain horizontally closest to x, or -1
// when there are none. Ties resolve to the earliest fountain.
func Nearest(fountains []*Fountain, x float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, f := range fountains {
		if d := math.Abs(f.X - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Boost kicks a random subset of the particles of the fountain nearest to x
// straight up. Only velocities change; life, size and colors are kept.
// It returns the boosted fountain and how many particles were kicked, or
// nil when the scene has no fountains.
func (s *Scene) Boost(x float64) (*Fountain, int) {
	i := Nearest(s.fountains, x)
	if i < 0 {
		return nil, 0
	}
	f := s.fountains[i]
	p := s.profile

	kicked := 0
	for j := range f.particles {
		if s.rng.Float64() >= p.BoostChance {
			continue
		}
		pt := &f.particles[j]
		pt.SpeedY = -p.BoostSpeedY.Random(s.rng)
		pt.SpeedX = p.BoostSpeedX.Random(s.rng)
		kicked++
	}
	f.startPulse()
	return f, kicked
}
