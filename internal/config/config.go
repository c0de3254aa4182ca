package config

import (
	"image/color"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/pkg/errors"
)

const (
	// Window defaults for the desktop frontend.
	WindowWidth  = 1024
	WindowHeight = 512

	// Terminal cells are mapped to surface units so the layout thresholds
	// behave the same way in both frontends.
	CellWidth  = 8
	CellHeight = 16

	// Frames per second assumed by the frame-based tweens.
	TargetFPS = 60

	// Audio
	SampleRate   = 44100
	SplashVolume = -1.0
)

// Range is a closed [Min, Max] interval used for randomized attributes.
type Range struct {
	Min, Max float64
}

// Random returns a uniform value in [Min, Max).
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Decor describes the static fountain decoration drawn under the particles.
type Decor struct {
	PoolOffsetY   float64
	PoolRadiusX   float64
	PoolRadiusY   float64
	PoolFill      color.NRGBA
	PoolStroke    color.NRGBA
	PoolLineWidth float64

	NozzleX, NozzleY          float64 // relative to the fountain origin
	NozzleWidth, NozzleHeight float64
	NozzleFill                color.NRGBA
	ShineWidth                float64
	ShineFill                 color.NRGBA

	// Tap pulse ring around the pool.
	PulseColor    color.NRGBA
	PulseScale    float64
	PulseDuration time.Duration
}

// Profile is the complete set of tunables for one look of the effect.
type Profile struct {
	Name string

	// Layout
	SpacingBreakpoint float64
	MobileSpacing     float64
	DesktopSpacing    float64
	MinFountains      int
	MaxFountains      int
	MobileBreakpoint  float64
	BaseOffset        float64
	MobileParticles   Range
	DesktopParticles  Range
	MobilePower       Range
	DesktopPower      Range

	// Viewport
	MinViewport    float64
	FallbackWidth  float64
	FallbackHeight float64
	SettleDelay    time.Duration

	// Particles
	Jitter          float64
	Size            Range
	Launch          Range
	Drift           Range
	Gravity         float64
	Decay           Range
	MinRadius       float64
	HighlightOffset float64
	HighlightScale  float64
	OilColors       []color.NRGBA
	HighlightColors []color.NRGBA

	// Interaction
	BoostChance float64
	BoostSpeedY Range
	BoostSpeedX Range

	// Rendering
	Trail        bool
	TrailColor   color.NRGBA
	GroundHeight float64
	GroundTop    color.NRGBA
	GroundBottom color.NRGBA

	Decor Decor
}

// Validate reports the first tunable that would break the layout or the
// particle invariants.
func (p Profile) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"mobile particles", p.MobileParticles},
		{"desktop particles", p.DesktopParticles},
		{"mobile power", p.MobilePower},
		{"desktop power", p.DesktopPower},
		{"size", p.Size},
		{"launch", p.Launch},
		{"drift", p.Drift},
		{"decay", p.Decay},
		{"boost speed y", p.BoostSpeedY},
		{"boost speed x", p.BoostSpeedX},
	}
	for _, r := range ranges {
		if !r.r.valid() {
			return errors.Errorf("profile %q: %s range min %.3f > max %.3f", p.Name, r.name, r.r.Min, r.r.Max)
		}
	}
	switch {
	case p.MobileSpacing <= 0 || p.DesktopSpacing <= 0:
		return errors.Errorf("profile %q: spacing must be positive", p.Name)
	case p.MinFountains < 1 || p.MaxFountains < p.MinFountains:
		return errors.Errorf("profile %q: fountain bounds [%d, %d] invalid", p.Name, p.MinFountains, p.MaxFountains)
	case p.Decay.Min <= 0:
		return errors.Errorf("profile %q: decay must be positive", p.Name)
	case p.MobileParticles.Min < 1 || p.DesktopParticles.Min < 1:
		return errors.Errorf("profile %q: fountains need at least one particle", p.Name)
	case p.Launch.Min+min(p.MobilePower.Min, p.DesktopPower.Min) <= 0:
		return errors.Errorf("profile %q: launch speed plus power must be positive", p.Name)
	case p.BoostChance < 0 || p.BoostChance > 1:
		return errors.Errorf("profile %q: boost chance %.2f outside [0, 1]", p.Name, p.BoostChance)
	case len(p.OilColors) == 0 || len(p.HighlightColors) == 0:
		return errors.Errorf("profile %q: empty palette", p.Name)
	case p.FallbackWidth < p.MinViewport || p.FallbackHeight < p.MinViewport:
		return errors.Errorf("profile %q: fallback viewport smaller than minimum", p.Name)
	}
	return nil
}

var profiles = map[string]func() Profile{
	"classic": Classic,
	"dense":   Dense,
}

// DefaultProfile is used when no profile is requested.
const DefaultProfile = "classic"

// ByName returns a fresh copy of the named profile.
func ByName(name string) (Profile, error) {
	fn, ok := profiles[name]
	if !ok {
		return Profile{}, errors.Errorf("unknown profile %q (have %v)", name, Names())
	}
	return fn(), nil
}

// Names lists the registered profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classic is the canonical look: bright droplets on a hard-cleared surface.
func Classic() Profile {
	return Profile{
		Name: "classic",

		SpacingBreakpoint: 500,
		MobileSpacing:     100,
		DesktopSpacing:    180,
		MinFountains:      2,
		MaxFountains:      5,
		MobileBreakpoint:  768,
		BaseOffset:        60,
		MobileParticles:   Range{40, 65},
		DesktopParticles:  Range{70, 95},
		MobilePower:       Range{7, 11},
		DesktopPower:      Range{9, 14},

		MinViewport:    10,
		FallbackWidth:  360,
		FallbackHeight: 640,
		SettleDelay:    200 * time.Millisecond,

		Jitter:          5,
		Size:            Range{4, 10},
		Launch:          Range{0, 8},
		Drift:           Range{-1.5, 1.5},
		Gravity:         0.15,
		Decay:           Range{0.002, 0.006},
		MinRadius:       0.5,
		HighlightOffset: 0.3,
		HighlightScale:  0.4,
		OilColors:       slices.Clone(classicOil),
		HighlightColors: slices.Clone(classicHighlights),

		BoostChance: 0.6,
		BoostSpeedY: Range{14, 20},
		BoostSpeedX: Range{-3, 3},

		TrailColor:   rgba("#000000", 0.25),
		GroundHeight: 120,
		GroundTop:    rgba("#14141e", 0),
		GroundBottom: rgba("#14141e", 0.3),

		Decor: Decor{
			PoolOffsetY:   10,
			PoolRadiusX:   45,
			PoolRadiusY:   18,
			PoolFill:      rgba("#32323c", 0.9),
			PoolStroke:    rgba("#505064", 0.5),
			PoolLineWidth: 2,
			NozzleX:       -6,
			NozzleY:       -6,
			NozzleWidth:   12,
			NozzleHeight:  16,
			NozzleFill:    rgba("#3a3a45", 1),
			ShineWidth:    4,
			ShineFill:     rgba("#646478", 0.6),
			PulseColor:    rgba("#787896", 0.8),
			PulseScale:    1.6,
			PulseDuration: 600 * time.Millisecond,
		},
	}
}

// Dense is the darker overlay look: more, smaller, shorter-lived droplets
// drawn with motion trails.
func Dense() Profile {
	p := Classic()
	p.Name = "dense"
	p.DesktopSpacing = 200
	p.DesktopParticles = Range{70, 100}
	p.DesktopPower = Range{10, 15}
	p.Size = Range{3, 9}
	p.Decay = Range{0.003, 0.008}
	p.MinRadius = 1
	p.HighlightScale = 0.35
	p.OilColors = slices.Clone(denseOil)
	p.HighlightColors = slices.Clone(denseHighlights)
	p.BoostChance = 0.5
	p.Trail = true
	p.TrailColor = rgba("#000000", 0.3)
	p.Decor.PoolFill = rgba("#1e1e23", 1)
	p.Decor.PoolStroke = rgba("#2a2a30", 1)
	p.Decor.PoolLineWidth = 1
	p.Decor.NozzleX = -5
	p.Decor.NozzleY = -8
	p.Decor.NozzleWidth = 10
	p.Decor.NozzleFill = rgba("#2a2a30", 1)
	p.Decor.ShineFill = rgba("#3a3a40", 1)
	p.Decor.ShineWidth = 2
	return p
}
