package sim

import (
	"testing"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

func TestTickOrder(t *testing.T) {
	s := NewScene(config.Classic(), newTestRNG())
	s.Resize(1024, 768)

	var rec recorder
	s.Tick(&rec)

	kinds := rec.kinds()
	if kinds[0] != "clear" {
		t.Fatalf("first op = %s, want clear", kinds[0])
	}
	if kinds[1] != "gradient" {
		t.Fatalf("second op = %s, want ground gradient", kinds[1])
	}
	ground := rec.ops[1]
	if ground.y != 768-120 || ground.a != 1024 || ground.b != 120 {
		t.Errorf("ground = %v", ground)
	}
	if got := rec.count("ellipse"); got != len(s.Fountains()) {
		t.Errorf("pools drawn = %d, want %d", got, len(s.Fountains()))
	}
	if s.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", s.Frame())
	}
}

func TestTickTrailFades(t *testing.T) {
	s := NewScene(config.Dense(), newTestRNG())
	s.Resize(800, 600)

	var rec recorder
	s.Tick(&rec)
	if rec.ops[0].kind != "fade" {
		t.Fatalf("first op = %s, want fade", rec.ops[0].kind)
	}
	if rec.count("clear") != 0 {
		t.Error("trail profile should never clear")
	}
}

func TestTickReadsLiveFountains(t *testing.T) {
	s := NewScene(config.Classic(), newTestRNG())
	s.Resize(1920, 1080)

	var rec recorder
	s.Tick(&rec)
	if got := rec.count("ellipse"); got != 5 {
		t.Fatalf("pools = %d, want 5", got)
	}

	s.Resize(250, 600)
	rec = recorder{}
	s.Tick(&rec)
	if got := rec.count("ellipse"); got != 2 {
		t.Errorf("after resize pools = %d, want 2", got)
	}
	for _, o := range rec.ops {
		if o.kind == "ellipse" && o.x > 250 {
			t.Errorf("pool drawn at x=%f from the replaced layout", o.x)
		}
	}
}

func TestTickEmptyScene(t *testing.T) {
	s := NewScene(config.Classic(), newTestRNG())
	var rec recorder
	s.Tick(&rec)
	if rec.count("ellipse") != 0 {
		t.Error("empty scene should draw no fountains")
	}
}

func TestTickRunsManyFrames(t *testing.T) {
	s := NewScene(config.Classic(), newTestRNG())
	s.Resize(360, 640)
	want := s.ParticleCount()
	var rec recorder
	for i := 0; i < 600; i++ {
		rec.ops = rec.ops[:0]
		s.Tick(&rec)
	}
	if got := s.ParticleCount(); got != want {
		t.Errorf("particle count drifted from %d to %d", want, got)
	}
	for _, f := range s.Fountains() {
		for i, p := range f.Particles() {
			if p.Life <= 0 || p.Life > 1 {
				t.Fatalf("particle %d life = %f", i, p.Life)
			}
			if p.Y > f.Y {
				t.Fatalf("particle %d below nozzle after update", i)
			}
		}
	}
}
