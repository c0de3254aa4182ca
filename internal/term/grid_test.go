package term

import (
	"image/color"
	"testing"
)

func TestGridClear(t *testing.T) {
	g := newGrid(10, 5)
	g.FillCircle(40, 40, 20, color.NRGBA{200, 200, 200, 255})
	g.Clear()
	for i, cl := range g.cells {
		if cl.r != ' ' || cl.bg != g.background {
			t.Fatalf("cell %d not cleared: %+v", i, cl)
		}
	}
}

func TestGridSize(t *testing.T) {
	g := newGrid(80, 24)
	w, h := g.size()
	if w != 640 || h != 384 {
		t.Errorf("size() = %vx%v, want 640x384", w, h)
	}
	g.resize(-3, 2)
	if g.cols != 0 || len(g.cells) != 0 {
		t.Errorf("negative resize: cols=%d cells=%d", g.cols, len(g.cells))
	}
}

func TestFillCircleCoversCenterCells(t *testing.T) {
	g := newGrid(20, 10)
	// Radius 16 around (80, 80) covers cell (10, 5) and its neighbours.
	g.FillCircle(80, 80, 16, color.NRGBA{255, 0, 0, 255})

	if r := g.at(9, 4).r; r != '●' {
		t.Errorf("center cell glyph = %q, want ●", r)
	}
	if r := g.at(0, 0).r; r != ' ' {
		t.Errorf("far cell glyph = %q, want blank", r)
	}
	if fg := g.at(9, 4).fg; fg.R < 0.99 || fg.G > 0.01 {
		t.Errorf("center fg = %+v, want red", fg)
	}
}

func TestFillCircleTinyDropletMarksCell(t *testing.T) {
	g := newGrid(20, 10)
	g.FillCircle(3, 3, 1, color.NRGBA{255, 255, 255, 255})
	if r := g.at(0, 0).r; r != '·' {
		t.Errorf("glyph = %q, want ·", r)
	}
}

func TestInkKeepsBiggerGlyph(t *testing.T) {
	g := newGrid(4, 4)
	g.FillCircle(12, 24, 9, color.NRGBA{100, 100, 100, 255})
	g.FillCircle(12, 24, 1, color.NRGBA{255, 255, 255, 255})
	if r := g.at(1, 1).r; r != '●' {
		t.Errorf("glyph = %q, highlight should not shrink the droplet", r)
	}
	if fg := g.at(1, 1).fg; fg.R < 0.99 {
		t.Errorf("highlight should tint fg, got %+v", fg)
	}
}

func TestFillRectBlendsBackground(t *testing.T) {
	g := newGrid(10, 10)
	g.FillRect(0, 0, 80, 160, color.NRGBA{0, 0, 255, 128})
	bg := g.at(5, 5).bg
	if bg.B < 0.49 || bg.B > 0.51 {
		t.Errorf("half-alpha blue over black = %+v, want B~0.5", bg)
	}
	if g.at(5, 5).r != ' ' {
		t.Error("fills must not draw glyphs")
	}
}

func TestFillRectNarrowMarksCell(t *testing.T) {
	g := newGrid(10, 10)
	// Narrower than a cell and off the cell centers.
	g.FillRect(9, 1, 2, 6, color.NRGBA{255, 255, 255, 255})
	if bg := g.at(1, 0).bg; bg.R < 0.99 {
		t.Errorf("narrow rect not drawn, bg = %+v", bg)
	}
}

func TestFillEllipse(t *testing.T) {
	g := newGrid(20, 10)
	g.FillEllipse(80, 80, 45, 18, color.NRGBA{0, 255, 0, 255})
	if bg := g.at(10, 5).bg; bg.G < 0.99 {
		t.Errorf("ellipse center bg = %+v", bg)
	}
	if bg := g.at(2, 5).bg; bg.G != 0 {
		t.Errorf("cell outside ellipse tinted: %+v", bg)
	}
}

func TestStrokeEllipseRing(t *testing.T) {
	g := newGrid(30, 12)
	g.StrokeEllipse(120, 96, 80, 48, 2, color.NRGBA{255, 255, 255, 255})
	if bg := g.at(15, 6).bg; bg.R != 0 {
		t.Errorf("ring interior tinted: %+v", bg)
	}
	if bg := g.at(24, 6).bg; bg.R < 0.99 {
		t.Errorf("ring edge not tinted: %+v", bg)
	}
}

func TestFillGradient(t *testing.T) {
	g := newGrid(4, 10)
	g.FillGradient(0, 0, 32, 160, color.NRGBA{255, 255, 255, 0}, color.NRGBA{255, 255, 255, 255})
	top, bottom := g.at(0, 0).bg, g.at(0, 9).bg
	if top.R >= bottom.R {
		t.Errorf("gradient not increasing: top %+v bottom %+v", top, bottom)
	}
	if top.R > 0.1 {
		t.Errorf("top row should be nearly transparent, got %+v", top)
	}
}

func TestFadeDropsFadedGlyphs(t *testing.T) {
	g := newGrid(4, 4)
	g.FillCircle(12, 24, 9, color.NRGBA{60, 60, 60, 255})
	for i := 0; i < 40; i++ {
		g.Fade(color.NRGBA{0, 0, 0, 80})
	}
	if r := g.at(1, 1).r; r != ' ' {
		t.Errorf("glyph %q survived fading", r)
	}
}

func TestDropGlyph(t *testing.T) {
	tests := []struct {
		r    float64
		want rune
	}{
		{10, '●'},
		{8, '●'},
		{5, '•'},
		{1, '·'},
	}
	for _, tt := range tests {
		if got := dropGlyph(tt.r); got != tt.want {
			t.Errorf("dropGlyph(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
