package sim

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

// Scene is the simulation context: the active profile, the random source
// and the live fountain sequence. It is owned by a single goroutine.
type Scene struct {
	profile *config.Profile
	rng     *rand.Rand

	width, height float64
	fountains     []*Fountain
	frame         uint64
}

// NewScene creates an empty scene. Call Resize before the first Tick.
func NewScene(profile config.Profile, rng *rand.Rand) *Scene {
	return &Scene{
		profile: &profile,
		rng:     rng,
	}
}

// Profile returns the tunables the scene was built with.
func (s *Scene) Profile() *config.Profile {
	return s.profile
}

// Size returns the viewport the current fountains were laid out for.
func (s *Scene) Size() (float64, float64) {
	return s.width, s.height
}

// Fountains returns the live fountain sequence.
func (s *Scene) Fountains() []*Fountain {
	return s.fountains
}

// Frame returns the number of ticks run so far.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// ParticleCount sums the pool sizes of all fountains.
func (s *Scene) ParticleCount() int {
	n := 0
	for _, f := range s.fountains {
		n += f.Len()
	}
	return n
}

// Resize discards every fountain and builds a fresh set for a w x h viewport.
// The new sequence replaces the old one in a single assignment.
func (s *Scene) Resize(w, h float64) Plan {
	plan := Layout(w, h, s.profile)
	countRange, powerRange := particleRanges(plan.Mobile, s.profile)

	fountains := make([]*Fountain, 0, plan.Count)
	for _, x := range plan.Xs {
		count := int(math.Ceil(countRange.Random(s.rng)))
		power := powerRange.Random(s.rng)
		fountains = append(fountains, NewFountain(x, plan.Y, count, power, s.profile, s.rng))
	}

	s.width, s.height = plan.Width, plan.Height
	s.fountains = fountains
	return plan
}
