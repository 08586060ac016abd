package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

// Coin is a non-solid collectible that bobs in place until touched.
type Coin struct {
	Base
	bobTime      float64
	bobAmplitude float64
	bobFrequency float64
	baseY        float64
}

func NewCoin(x, y float64, spec *prefabs.ItemSpec) *Coin {
	c := &Coin{
		Base:         NewBase(x, y, spec.Coin.Width, spec.Coin.Height, TypeCollectible),
		bobAmplitude: spec.Coin.BobAmplitude,
		bobFrequency: spec.Coin.BobFrequency,
		baseY:        y,
	}
	c.Solid = false
	return c
}

func (c *Coin) Update(dt float64, w *World) {
	if !c.Active {
		return
	}

	c.bobTime += dt
	c.Y = c.baseY + c.bobAmplitude*math.Sin(c.bobTime*c.bobFrequency)

	p := w.Player
	if p != nil && p.Active && Overlaps(&c.Base, &p.Base) {
		p.CollectCoin()
		w.Spawn(NewScorePopup(c.CenterX(), c.Y-10, coinScore, colornames.Yellow))
		c.Destroy()
	}
}

func (c *Coin) Draw(screen *ebiten.Image, camX, camY float64) {
	if !c.Visible {
		return
	}
	cx := float32(c.CenterX() - camX)
	cy := float32(c.CenterY() - camY)
	r := float32(c.Width)/2 - 1

	vector.DrawFilledCircle(screen, cx, cy, r, colornames.Gold, false)
	vector.StrokeLine(screen, cx, cy-r/2, cx, cy+r/2, 2, colornames.White, false)
}
