package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// collectTaps appends the x coordinate of every click and new touch this frame.
func (g *Game) collectTaps(taps []float64) []float64 {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		taps = append(taps, float64(x))
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		taps = append(taps, float64(x))
	}
	return taps
}
