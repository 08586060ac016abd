package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/geom"
)

// Type discriminates entities for collision filtering and queries.
type Type string

const (
	TypePlayer      Type = "player"
	TypeEnemy       Type = "enemy"
	TypePlatform    Type = "platform"
	TypePowerUp     Type = "powerup"
	TypeGoal        Type = "goal"
	TypeBlock       Type = "block"
	TypeCollectible Type = "collectible"
	TypeEffect      Type = "effect"
)

// Base carries the simulated state shared by every entity. Position is the
// top-left corner; velocity is in pixels per second. The bounding rect and
// edge accessors are always derived from the live fields, never cached.
type Base struct {
	X, Y          float64
	Width, Height float64

	VelocityX float64
	VelocityY float64

	// Active gates simulation; an inactive entity is skipped by every
	// update and collision pass and purged on the next collection drain.
	Active bool
	// Visible gates rendering only.
	Visible bool
	// Solid marks participation in collision as an obstacle or collider.
	Solid bool

	Grounded bool

	Layer int
	Type  Type
}

func NewBase(x, y, width, height float64, typ Type) Base {
	return Base{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Active:  true,
		Visible: true,
		Solid:   true,
		Layer:   common.LayerEntities,
		Type:    typ,
	}
}

func (b *Base) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Base) CenterX() float64 { return b.X + b.Width/2 }
func (b *Base) CenterY() float64 { return b.Y + b.Height/2 }
func (b *Base) Bottom() float64  { return b.Y + b.Height }
func (b *Base) Right() float64   { return b.X + b.Width }

// Destroy schedules the entity for removal by deactivating it. The
// collection purges it on its next drain.
func (b *Base) Destroy() {
	b.Active = false
}

// Body returns the shared simulation state. It is defined on Base so that
// every entity embedding Base satisfies Entity without boilerplate.
func (b *Base) Body() *Base { return b }

// Collides is the solid-gated collision test: inactive or non-solid
// participants never collide regardless of geometry.
func Collides(a, b *Base) bool {
	if !a.Active || !b.Active || !a.Solid || !b.Solid {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// Overlaps is the trigger test used by pickups, the goal, and stomp
// classification: it requires both entities active but ignores solidity.
func Overlaps(a, b *Base) bool {
	if !a.Active || !b.Active {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// Entity is a simulated game object. Update must not structurally mutate
// the collection it is iterated from; spawns go through World.Spawn and
// removals through Base.Destroy, both of which are deferred.
type Entity interface {
	Body() *Base
	Update(dt float64, w *World)
	Draw(screen *ebiten.Image, camX, camY float64)
}
