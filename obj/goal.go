package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Goal is the level-end flag. It is passive; the world flags completion
// when the player overlaps it.
type Goal struct {
	Base
}

// NewGoal anchors the flag so its base sits at (x, y).
func NewGoal(x, y, height float64) *Goal {
	g := &Goal{Base: NewBase(x, y-height, 12, height, TypeGoal)}
	g.Solid = false
	return g
}

func (g *Goal) Update(dt float64, w *World) {}

func (g *Goal) Draw(screen *ebiten.Image, camX, camY float64) {
	if !g.Visible {
		return
	}
	sx := float32(g.X - camX)
	sy := float32(g.Y - camY)

	// pole
	vector.DrawFilledRect(screen, sx+5, sy, 2, float32(g.Height), colornames.Silver, false)
	// flag
	vector.DrawFilledRect(screen, sx+7, sy+10, 40, 20, colornames.Limegreen, false)
}
