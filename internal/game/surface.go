package game

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ellipseSegments = 48

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// surface draws scene primitives onto the current ebiten screen.
type surface struct {
	dst *ebiten.Image
	// transparent fades toward clear instead of painting over the desktop.
	transparent bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *surface) Clear() {
	s.dst.Clear()
}

func (s *surface) Fade(c color.Color) {
	b := s.dst.Bounds()
	if !s.transparent {
		vector.DrawFilledRect(s.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
		return
	}
	// Erase by the fade alpha so the desktop keeps showing through.
	s.quad(0, 0, float64(b.Dx()), float64(b.Dy()), c, c)
	s.draw(&ebiten.DrawTrianglesOptions{Blend: ebiten.BlendDestinationOut})
}

func (s *surface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *surface) FillEllipse(x, y, rx, ry float64, c color.Color) {
	path := ellipsePath(x, y, rx, ry)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.paint(c)
	s.draw(&ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *surface) StrokeEllipse(x, y, rx, ry, width float64, c color.Color) {
	path := ellipsePath(x, y, rx, ry)
	opts := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], opts)
	s.paint(c)
	s.draw(&ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *surface) FillGradient(x, y, w, h float64, top, bottom color.Color) {
	s.quad(x, y, w, h, top, bottom)
	s.draw(&ebiten.DrawTrianglesOptions{})
}

// quad loads a rectangle whose top and bottom edges carry their own colors.
func (s *surface) quad(x, y, w, h float64, top, bottom color.Color) {
	tr, tg, tb, ta := straight(top)
	br, bg, bb, ba := straight(bottom)
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)

	s.vertices = append(s.vertices[:0],
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 1, SrcY: 1, ColorR: tr, ColorG: tg, ColorB: tb, ColorA: ta},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	)
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 2, 3)
}

// paint sets every pending vertex to c and points it at the white pixel.
func (s *surface) paint(c color.Color) {
	r, g, b, a := straight(c)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
}

func (s *surface) draw(op *ebiten.DrawTrianglesOptions) {
	if len(s.indices) == 0 {
		return
	}
	s.dst.DrawTriangles(s.vertices, s.indices, white(), op)
}

// straight converts c to straight-alpha components, the default vertex
// color mode of DrawTriangles.
func straight(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + rx*math.Cos(a))
		y := float32(cy + ry*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()
	return &path
}
