package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

const blockBumpTime = 0.12

// Bumpable is implemented by solid entities that react to the player
// hitting them from below. The vertical resolution step calls Bump at
// the moment the head-bonk is pinned.
type Bumpable interface {
	Bump(p *Player, w *World)
}

// Block is a plain solid block. Hitting it from below only plays the
// nudge animation.
type Block struct {
	Base
	bumpTimer  float64
	bumpOffset float64
}

func NewBlock(x, y float64) *Block {
	b := &Block{Base: NewBase(x, y, common.TileSize, common.TileSize, TypeBlock)}
	return b
}

func (b *Block) Bump(p *Player, w *World) {
	b.bumpTimer = blockBumpTime
}

func (b *Block) Update(dt float64, w *World) {
	b.tickBump(dt)
}

func (b *Block) tickBump(dt float64) {
	if b.bumpTimer > 0 {
		b.bumpTimer -= dt
		b.bumpOffset = 0
		if int(b.bumpTimer*30)%2 == 0 {
			b.bumpOffset = -2
		}
	} else {
		b.bumpOffset = 0
	}
}

func (b *Block) Draw(screen *ebiten.Image, camX, camY float64) {
	if !b.Visible {
		return
	}
	drawBlockFace(screen, &b.Base, camX, camY, b.bumpOffset, colornames.Peru)
}

// QuestionBlock dispenses its content on the first bump, then goes dark.
type QuestionBlock struct {
	Block
	Contains string // coin, mushroom, fire_flower
	Used     bool
	items    *prefabs.ItemSpec
}

func NewQuestionBlock(x, y float64, contains string, items *prefabs.ItemSpec) *QuestionBlock {
	q := &QuestionBlock{Contains: contains, items: items}
	q.Base = NewBase(x, y, common.TileSize, common.TileSize, TypeBlock)
	return q
}

func (q *QuestionBlock) Bump(p *Player, w *World) {
	if q.Used {
		return
	}
	q.bumpTimer = blockBumpTime
	q.Used = true

	spawnX := q.X + (q.Width-q.items.Mushroom.Width)/2
	spawnY := q.Y - q.items.Mushroom.Height

	switch q.Contains {
	case "mushroom":
		w.Spawn(NewMushroom(spawnX, spawnY, q.items))
	case "fire_flower":
		w.Spawn(NewFireFlower(spawnX, spawnY, q.items))
	default:
		// coins are credited instantly
		p.CollectCoin()
		w.Spawn(NewScorePopup(q.CenterX(), q.Y-10, coinScore, colornames.Yellow))
	}
}

func (q *QuestionBlock) Draw(screen *ebiten.Image, camX, camY float64) {
	if !q.Visible {
		return
	}
	face := colornames.Goldenrod
	if q.Used {
		face = colornames.Sienna
	}
	drawBlockFace(screen, &q.Base, camX, camY, q.bumpOffset, face)
	if !q.Used {
		sx := float32(q.X - camX)
		sy := float32(q.Y - camY + q.bumpOffset)
		vector.DrawFilledRect(screen, sx+10, sy+8, 12, 6, colornames.Black, false)
		vector.DrawFilledRect(screen, sx+14, sy+16, 4, 4, colornames.Black, false)
	}
}

// BrickBlock shatters when bumped by a powered-up player; otherwise it
// just nudges.
type BrickBlock struct {
	Block
}

func NewBrickBlock(x, y float64) *BrickBlock {
	b := &BrickBlock{}
	b.Base = NewBase(x, y, common.TileSize, common.TileSize, TypeBlock)
	return b
}

func (b *BrickBlock) Bump(p *Player, w *World) {
	b.bumpTimer = blockBumpTime
	if p.PowerLevel >= 1 {
		w.Spawn(NewExplosion(b.CenterX(), b.CenterY(), colornames.Peru, 12))
		b.Destroy()
	}
}

func (b *BrickBlock) Draw(screen *ebiten.Image, camX, camY float64) {
	if !b.Visible {
		return
	}
	drawBlockFace(screen, &b.Base, camX, camY, b.bumpOffset, colornames.Firebrick)
	// mortar lines
	sx := float32(b.X - camX)
	sy := float32(b.Y - camY + b.bumpOffset)
	vector.StrokeLine(screen, sx, sy+float32(b.Height)/2, sx+float32(b.Width), sy+float32(b.Height)/2, 1, colornames.Black, false)
	vector.StrokeLine(screen, sx+float32(b.Width)/2, sy, sx+float32(b.Width)/2, sy+float32(b.Height)/2, 1, colornames.Black, false)
}

func drawBlockFace(screen *ebiten.Image, b *Base, camX, camY, offset float64, face color.Color) {
	sx := float32(b.X - camX)
	sy := float32(b.Y - camY + offset)
	vector.DrawFilledRect(screen, sx, sy, float32(b.Width), float32(b.Height), face, false)
	vector.StrokeRect(screen, sx, sy, float32(b.Width), float32(b.Height), 1, colornames.Black, false)
}
