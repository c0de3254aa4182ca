package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) status() string {
	w, h := g.scene.Size()
	return fmt.Sprintf("FPS %.1f  TPS %.1f\n%s  %.0fx%.0f\nfountains %d  particles %d\nup %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.scene.Profile().Name, w, h,
		len(g.scene.Fountains()), g.scene.ParticleCount(),
		formatDuration(time.Since(g.start)),
	)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}
