package sim

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/oil-fountains/internal/config"
)

// op is one recorded Surface call.
type op struct {
	kind       string
	x, y, a, b float64
	c          color.Color
}

// recorder is a Surface that remembers every call in order.
type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recorder) Fade(c color.Color) {
	r.ops = append(r.ops, op{kind: "fade", c: c})
}
func (r *recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "circle", x: x, y: y, a: rad, c: c})
}
func (r *recorder) FillEllipse(x, y, rx, ry float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "ellipse", x: x, y: y, a: rx, b: ry, c: c})
}
func (r *recorder) StrokeEllipse(x, y, rx, ry, _ float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "stroke", x: x, y: y, a: rx, b: ry, c: c})
}
func (r *recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, a: w, b: h, c: c})
}
func (r *recorder) FillGradient(x, y, w, h float64, top, _ color.Color) {
	r.ops = append(r.ops, op{kind: "gradient", x: x, y: y, a: w, b: h, c: top})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, o := range r.ops {
		out[i] = o.kind
	}
	return out
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (o op) String() string {
	return fmt.Sprintf("%s(%.2f, %.2f, %.2f, %.2f)", o.kind, o.x, o.y, o.a, o.b)
}

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestProfile() *config.Profile {
	p := config.Classic()
	return &p
}

func newTestFountain(x, y float64, count int) *Fountain {
	return NewFountain(x, y, count, 10, newTestProfile(), newTestRNG())
}
