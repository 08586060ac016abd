package obj

import (
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/geom"
)

// cliffProbeDepth is how far (px) below foot level the cliff probe
// extends; cliffProbeReach is how far past the leading edge it sits.
const (
	cliffProbeDepth = 10.0
	cliffProbeReach = 10.0
)

// obstacleKind reports whether a type can block movement at all.
// Platforms and blocks are the only obstacle types; everything else
// (enemies, pickups, the player) interacts through overlap triggers.
func obstacleKind(t Type) bool {
	return t == TypePlatform || t == TypeBlock
}

// isObstacle reports whether an entity blocks movement right now.
func isObstacle(b *Base) bool {
	return b.Active && b.Solid && obstacleKind(b.Type)
}

// obstaclesIn returns the solid obstacles intersecting the probe area,
// excluding self. A removed or inactive entity is simply not considered.
func (w *World) obstaclesIn(self *Base, probe geom.Rect) []Entity {
	var out []Entity
	for _, e := range w.Entities.Entities() {
		b := e.Body()
		if b == self || !isObstacle(b) {
			continue
		}
		if probe.Intersects(b.Rect()) {
			out = append(out, e)
		}
	}
	return out
}

// collidingObstacles returns the obstacles the mover's own box collides
// with under the solid-gated test, excluding self. Movement resolution
// goes through Collides, so an inactive or non-solid participant on
// either side never produces a contact.
func (w *World) collidingObstacles(self *Base) []Entity {
	var out []Entity
	for _, e := range w.Entities.Entities() {
		b := e.Body()
		if b == self || !obstacleKind(b.Type) {
			continue
		}
		if Collides(self, b) {
			out = append(out, e)
		}
	}
	return out
}

// ApplyGravity integrates gravity into the vertical velocity of an
// airborne entity and clamps it at terminal velocity.
func (w *World) ApplyGravity(b *Base, dt float64) {
	if b.Grounded {
		return
	}
	b.VelocityY += common.Gravity * dt
	if b.VelocityY > common.TerminalVelocity {
		b.VelocityY = common.TerminalVelocity
	}
}

// ProbeGround tests a 1px-tall strip directly beneath the entity's
// footprint. It only reads; calling it twice without moving the entity
// yields the same answer.
func (w *World) ProbeGround(b *Base) bool {
	strip := geom.Rect{X: b.X, Y: b.Bottom(), Width: b.Width, Height: 1}
	return len(w.obstaclesIn(b, strip)) > 0
}

// WallAhead probes a 1px-wide, full-height strip at the leading edge for
// the given direction (-1 left, +1 right).
func (w *World) WallAhead(b *Base, direction float64) bool {
	x := b.X - 1
	if direction > 0 {
		x = b.Right()
	}
	probe := geom.Rect{X: x, Y: b.Y, Width: 1, Height: b.Height}
	return len(w.obstaclesIn(b, probe)) > 0
}

// CliffAhead reports whether there is no ground just past the leading
// edge at foot level, i.e. the entity is about to walk off an edge.
func (w *World) CliffAhead(b *Base, direction float64) bool {
	x := b.X - cliffProbeReach
	if direction > 0 {
		x = b.Right() + cliffProbeReach
	}
	probe := geom.Rect{X: x, Y: b.Bottom(), Width: 1, Height: cliffProbeDepth}
	return len(w.obstaclesIn(b, probe)) == 0
}

// StepHorizontal integrates horizontal velocity and resolves the entity
// against every obstacle its box now intersects. A left-side contact pins
// the entity's right edge to the obstacle's left edge and vice versa;
// horizontal velocity is zeroed on contact. Returns the last resolved
// side so AI movers can reverse direction instead.
func (w *World) StepHorizontal(b *Base, dt float64) geom.Side {
	b.X += b.VelocityX * dt

	hit := geom.SideNone
	for _, e := range w.collidingObstacles(b) {
		ob := e.Body()
		switch geom.ResolveSide(b.Rect(), ob.Rect()) {
		case geom.SideLeft:
			b.X = ob.X - b.Width
			b.VelocityX = 0
			hit = geom.SideLeft
		case geom.SideRight:
			b.X = ob.Right()
			b.VelocityX = 0
			hit = geom.SideRight
		}
	}
	return hit
}

// StepVertical integrates vertical velocity and resolves against
// intersecting obstacles. A bottom-side contact while falling lands the
// entity (bottom pinned to the obstacle's top, vy zeroed, grounded); a
// top-side contact while rising is a head bump, which additionally
// notifies bumpable obstacles when the mover is the player.
func (w *World) StepVertical(e Entity, dt float64) geom.Side {
	b := e.Body()
	b.Y += b.VelocityY * dt

	hit := geom.SideNone
	for _, o := range w.collidingObstacles(b) {
		ob := o.Body()
		switch geom.ResolveSide(b.Rect(), ob.Rect()) {
		case geom.SideBottom:
			if b.VelocityY > 0 {
				b.Y = ob.Y - b.Height
				b.VelocityY = 0
				b.Grounded = true
				hit = geom.SideBottom
			}
		case geom.SideTop:
			if b.VelocityY < 0 {
				b.Y = ob.Bottom()
				b.VelocityY = 0
				hit = geom.SideTop
				if p, ok := e.(*Player); ok {
					if bl, ok := o.(Bumpable); ok {
						bl.Bump(p, w)
					}
				}
			}
		}
	}
	return hit
}
