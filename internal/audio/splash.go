package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	splashLength = 350 * time.Millisecond
	// maxVoices caps overlapping splashes when taps come in quickly.
	maxVoices = 6
)

// Player mixes short procedural splash sounds, one per boosted fountain.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	volume float64
	rng    *rand.Rand
	ready  bool
}

// NewPlayer creates a player. volume is a base-2 exponent: 0 is unchanged,
// -1 is half amplitude.
func NewPlayer(sampleRate int, volume float64, seed uint64) *Player {
	return &Player{
		rate:   beep.SampleRate(sampleRate),
		mixer:  &beep.Mixer{},
		volume: volume,
		rng:    rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Splash plays one splash. strength in [0, 1] is the share of droplets
// kicked; stronger taps sound deeper and louder. It is a no-op until Init
// succeeds.
func (p *Player) Splash(strength float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	voice := p.voice(strength)

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(voice)
	}
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

func (p *Player) voice(strength float64) beep.Streamer {
	strength = math.Max(0, math.Min(1, strength))
	gen := newSplash(p.rate, 320-140*strength, p.rng.Uint64())
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(splashLength), gen),
		Base:     2,
		Volume:   p.volume - (1 - strength),
	}
}

// splash is filtered noise with a falling "bloop" tone under an
// exponential envelope.
type splash struct {
	rate  beep.SampleRate
	pos   int
	pitch float64
	phase float64
	lp    float64
	rng   *rand.Rand
}

func newSplash(rate beep.SampleRate, pitch float64, seed uint64) *splash {
	return &splash{
		rate:  rate,
		pitch: pitch,
		rng:   rand.New(rand.NewPCG(seed, 1)),
	}
}

func (s *splash) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(s.rate)
	for i := range samples {
		t := float64(s.pos) / sr

		envelope := math.Exp(-t * 9)

		noise := s.rng.Float64()*2 - 1
		s.lp += 0.15 * (noise - s.lp)

		freq := s.pitch * (1 + 2*math.Exp(-t*25))
		s.phase += 2 * math.Pi * freq / sr
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}

		v := envelope * (0.5*s.lp + 0.4*math.Sin(s.phase))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *splash) Err() error {
	return nil
}
