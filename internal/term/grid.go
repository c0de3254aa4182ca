package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

const (
	cw = float64(config.CellWidth)
	ch = float64(config.CellHeight)
)

type cell struct {
	bg, fg colorful.Color
	r      rune
}

// grid is a Surface made of terminal cells. Surface units map to cells at
// CellWidth x CellHeight per cell; fills tint the cell background and
// droplets become glyphs.
type grid struct {
	cols, rows int
	cells      []cell
	background colorful.Color
}

func newGrid(cols, rows int) *grid {
	g := &grid{}
	g.resize(cols, rows)
	return g
}

func (g *grid) resize(cols, rows int) {
	g.cols, g.rows = max(cols, 0), max(rows, 0)
	g.cells = make([]cell, g.cols*g.rows)
	g.Clear()
}

// size returns the grid extent in surface units.
func (g *grid) size() (float64, float64) {
	return float64(g.cols) * cw, float64(g.rows) * ch
}

func (g *grid) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

func (g *grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{bg: g.background, fg: g.background, r: ' '}
	}
}

func (g *grid) Fade(c color.Color) {
	col, a := toColorful(c)
	for i := range g.cells {
		cl := &g.cells[i]
		cl.bg = cl.bg.BlendRgb(col, a)
		cl.fg = cl.fg.BlendRgb(col, a)
		if cl.r != ' ' && cl.fg.DistanceRgb(cl.bg) < 0.02 {
			cl.r = ' '
		}
	}
}

func (g *grid) FillCircle(x, y, r float64, c color.Color) {
	col, a := toColorful(c)
	glyph := dropGlyph(r)
	hit := g.cover(x-r, y-r, x+r, y+r, func(cx, cy float64) bool {
		dx, dy := cx-x, cy-y
		return dx*dx+dy*dy <= r*r
	}, func(cl *cell) { g.ink(cl, glyph, col, a) })
	if !hit {
		if cl := g.at(int(math.Floor(x/cw)), int(math.Floor(y/ch))); cl != nil {
			g.ink(cl, glyph, col, a)
		}
	}
}

func (g *grid) FillEllipse(x, y, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	col, a := toColorful(c)
	g.cover(x-rx, y-ry, x+rx, y+ry, func(cx, cy float64) bool {
		return ellipse(cx-x, cy-y, rx, ry) <= 1
	}, func(cl *cell) { cl.bg = cl.bg.BlendRgb(col, a) })
}

// StrokeEllipse tints the ring of cells within half a cell of the outline.
func (g *grid) StrokeEllipse(x, y, rx, ry, _ float64, c color.Color) {
	col, a := toColorful(c)
	ox, oy := rx+cw/2, ry+ch/2
	ix, iy := rx-cw/2, ry-ch/2
	g.cover(x-ox, y-oy, x+ox, y+oy, func(cx, cy float64) bool {
		dx, dy := cx-x, cy-y
		if ellipse(dx, dy, ox, oy) > 1 {
			return false
		}
		return ix <= 0 || iy <= 0 || ellipse(dx, dy, ix, iy) > 1
	}, func(cl *cell) { cl.bg = cl.bg.BlendRgb(col, a) })
}

func (g *grid) FillRect(x, y, w, h float64, c color.Color) {
	col, a := toColorful(c)
	tint := func(cl *cell) { cl.bg = cl.bg.BlendRgb(col, a) }
	hit := g.cover(x, y, x+w, y+h, func(cx, cy float64) bool {
		return cx >= x && cx < x+w && cy >= y && cy < y+h
	}, tint)
	if !hit {
		if cl := g.at(int(math.Floor((x+w/2)/cw)), int(math.Floor((y+h/2)/ch))); cl != nil {
			tint(cl)
		}
	}
}

func (g *grid) FillGradient(x, y, w, h float64, top, bottom color.Color) {
	if h <= 0 {
		return
	}
	tc, ta := toColorful(top)
	bc, ba := toColorful(bottom)
	for row := 0; row < g.rows; row++ {
		cy := (float64(row) + 0.5) * ch
		if cy < y || cy >= y+h {
			continue
		}
		t := (cy - y) / h
		shade := tc.BlendRgb(bc, t)
		a := ta + (ba-ta)*t
		for col := 0; col < g.cols; col++ {
			cx := (float64(col) + 0.5) * cw
			if cx < x || cx >= x+w {
				continue
			}
			cl := g.at(col, row)
			cl.bg = cl.bg.BlendRgb(shade, a)
		}
	}
}

// cover calls fn for every cell in the bounding box whose center passes
// inside. It reports whether any cell matched.
func (g *grid) cover(x0, y0, x1, y1 float64, inside func(cx, cy float64) bool, fn func(*cell)) bool {
	c0, c1 := clampIdx(math.Floor(x0/cw), g.cols), clampIdx(math.Ceil(x1/cw), g.cols)
	r0, r1 := clampIdx(math.Floor(y0/ch), g.rows), clampIdx(math.Ceil(y1/ch), g.rows)
	hit := false
	for row := r0; row < r1; row++ {
		cy := (float64(row) + 0.5) * ch
		for col := c0; col < c1; col++ {
			cx := (float64(col) + 0.5) * cw
			if !inside(cx, cy) {
				continue
			}
			hit = true
			if fn != nil {
				fn(g.at(col, row))
			}
		}
	}
	return hit
}

// ink draws a droplet glyph into the cell, never replacing a bigger glyph
// already there this frame.
func (g *grid) ink(cl *cell, glyph rune, col colorful.Color, a float64) {
	base := cl.bg
	if cl.r != ' ' {
		base = cl.fg
	}
	cl.fg = base.BlendRgb(col, a)
	if glyphWeight(glyph) >= glyphWeight(cl.r) {
		cl.r = glyph
	}
}

// flush copies the grid to the terminal screen.
func (g *grid) flush(s tcell.Screen) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cl := g.at(col, row)
			style := tcell.StyleDefault.Background(tcellColor(cl.bg)).Foreground(tcellColor(cl.fg))
			s.SetContent(col, row, cl.r, nil, style)
		}
	}
}

func dropGlyph(r float64) rune {
	switch {
	case r >= ch/2:
		return '●'
	case r >= cw/2:
		return '•'
	default:
		return '·'
	}
}

func glyphWeight(r rune) int {
	switch r {
	case '●':
		return 3
	case '•':
		return 2
	case '·':
		return 1
	}
	return 0
}

func ellipse(dx, dy, rx, ry float64) float64 {
	return (dx*dx)/(rx*rx) + (dy*dy)/(ry*ry)
}

func clampIdx(v float64, n int) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > float64(n):
		return n
	}
	return int(v)
}

func toColorful(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
