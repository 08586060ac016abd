package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"golang.org/x/image/colornames"
)

// Platform is static solid geometry. One platform may cover a run of
// merged tiles, so its width is any multiple of the tile size.
type Platform struct {
	Base
	TileType string // ground, grass, stone
}

func NewPlatform(x, y, width, height float64, tileType string) *Platform {
	p := &Platform{
		Base:     NewBase(x, y, width, height, TypePlatform),
		TileType: tileType,
	}
	p.Layer = common.LayerPlatforms
	return p
}

func (p *Platform) Update(dt float64, w *World) {}

func (p *Platform) color() color.Color {
	switch p.TileType {
	case "grass":
		return colornames.Forestgreen
	case "stone":
		return colornames.Gray
	case "ground":
		return colornames.Saddlebrown
	}
	return colornames.Dimgray
}

func (p *Platform) Draw(screen *ebiten.Image, camX, camY float64) {
	if !p.Visible {
		return
	}
	sx := float32(p.X - camX)
	sy := float32(p.Y - camY)
	vector.DrawFilledRect(screen, sx, sy, float32(p.Width), float32(p.Height), p.color(), false)
	vector.StrokeRect(screen, sx, sy, float32(p.Width), float32(p.Height), 1, colornames.Black, false)
}
