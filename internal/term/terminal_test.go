package term

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/oil-fountains/internal/config"
	"github.com/iburimskiy/oil-fountains/internal/sim"
)

type fakeSplasher struct {
	strengths []float64
}

func (f *fakeSplasher) Splash(s float64) {
	f.strengths = append(f.strengths, s)
}

func newTestTerminal(cols, rows int, sound sim.Splasher) *terminal {
	t := newTerminal(nil, Options{
		Profile: config.Classic(),
		Seed:    5,
		Sound:   sound,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.grid.resize(cols, rows)
	return t
}

func TestHandleQuitKeys(t *testing.T) {
	term := newTestTerminal(80, 24, nil)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		if got := term.handle(tt.ev); got != tt.keep {
			t.Errorf("%s: handle = %v, want %v", tt.name, got, tt.keep)
		}
	}
}

func TestHandleDebugToggle(t *testing.T) {
	term := newTestTerminal(80, 24, nil)
	term.handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if !term.debug {
		t.Error("d should enable the status line")
	}
}

func TestMouseClickBoostsOnce(t *testing.T) {
	snd := &fakeSplasher{}
	term := newTestTerminal(80, 24, snd)
	term.syncViewport()

	term.handle(tcell.NewEventMouse(0, 10, tcell.Button1, tcell.ModNone))
	// Holding the button must not repeat the boost.
	term.handle(tcell.NewEventMouse(1, 10, tcell.Button1, tcell.ModNone))
	term.handle(tcell.NewEventMouse(1, 10, tcell.ButtonNone, tcell.ModNone))

	if len(snd.strengths) != 1 {
		t.Fatalf("splashes = %d, want 1", len(snd.strengths))
	}
	if !term.scene.Fountains()[0].Pulsing() {
		t.Error("leftmost fountain should be boosted")
	}

	term.handle(tcell.NewEventMouse(79, 10, tcell.Button1, tcell.ModNone))
	if len(snd.strengths) != 2 {
		t.Errorf("splashes = %d, want 2 after second click", len(snd.strengths))
	}
}

func TestSyncViewportUsesCellUnits(t *testing.T) {
	term := newTestTerminal(80, 24, nil)
	term.syncViewport()
	w, h := term.scene.Size()
	if w != 640 || h != 384 {
		t.Errorf("scene size = %vx%v, want 640x384", w, h)
	}
	// 640 wide: desktop spacing 180 gives 3 fountains.
	if n := len(term.scene.Fountains()); n != 3 {
		t.Errorf("fountains = %d, want 3", n)
	}
}

func TestTapEmptyScene(t *testing.T) {
	snd := &fakeSplasher{}
	term := newTestTerminal(80, 24, snd)
	term.tap(10)
	if len(snd.strengths) != 0 {
		t.Error("tap before layout should be a no-op")
	}
}
