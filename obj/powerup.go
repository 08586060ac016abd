package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/geom"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

// PowerUp is a touchable item that raises the player's power level. It
// is a solid collider so a mushroom drifts along the ground and bounces
// off walls, but it never blocks anyone: only platforms and blocks act
// as obstacles, and pickup happens through the overlap trigger.
type PowerUp struct {
	Base
	Level     int // power level granted on pickup
	Speed     float64
	Direction float64
	tint      color.Color
}

func NewMushroom(x, y float64, spec *prefabs.ItemSpec) *PowerUp {
	p := &PowerUp{
		Base:      NewBase(x, y, spec.Mushroom.Width, spec.Mushroom.Height, TypePowerUp),
		Level:     1,
		Speed:     spec.Mushroom.Speed,
		Direction: 1,
		tint:      colornames.Orangered,
	}
	return p
}

func NewFireFlower(x, y float64, spec *prefabs.ItemSpec) *PowerUp {
	p := &PowerUp{
		Base:  NewBase(x, y, spec.FireFlower.Width, spec.FireFlower.Height, TypePowerUp),
		Level: 2,
		tint:  colornames.Orange,
	}
	return p
}

func (p *PowerUp) Update(dt float64, w *World) {
	if !p.Active {
		return
	}

	w.ApplyGravity(&p.Base, dt)
	p.VelocityX = p.Direction * p.Speed

	if side := w.StepHorizontal(&p.Base, dt); side == geom.SideLeft || side == geom.SideRight {
		p.Direction = -p.Direction
	}
	w.StepVertical(p, dt)
	p.Grounded = w.ProbeGround(&p.Base)

	if w.Player != nil && w.Player.Active && Overlaps(&p.Base, &w.Player.Base) {
		if w.Player.ApplyPower(p.Level) {
			w.Spawn(NewScorePopup(p.CenterX(), p.Y-10, powerUpScore, colornames.Lime))
		}
		p.Destroy()
	}
}

func (p *PowerUp) Draw(screen *ebiten.Image, camX, camY float64) {
	if !p.Visible {
		return
	}
	sx := float32(p.X - camX)
	sy := float32(p.Y - camY)
	width := float32(p.Width)
	height := float32(p.Height)

	if p.Level >= 2 {
		// flower: petals over a stem
		vector.DrawFilledRect(screen, sx+width/2-2, sy+height-8, 4, 8, colornames.Green, false)
		vector.DrawFilledRect(screen, sx+2, sy, width-4, height-8, p.tint, false)
	} else {
		// mushroom: cap over a stalk
		vector.DrawFilledRect(screen, sx+4, sy+height/2, width-8, height/2, colornames.White, false)
		vector.DrawFilledRect(screen, sx, sy, width, height/2+2, p.tint, false)
	}
	vector.StrokeRect(screen, sx, sy, width, height, 1, colornames.White, false)
}
