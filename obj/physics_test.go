package obj

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/geom"
)

type stubEntity struct {
	Base
	onUpdate func(s *stubEntity, w *World)
}

func (s *stubEntity) Update(dt float64, w *World) {
	if s.onUpdate != nil {
		s.onUpdate(s, w)
	}
}

func (s *stubEntity) Draw(screen *ebiten.Image, camX, camY float64) {}

func newStub(x, y, w, h float64, typ Type) *stubEntity {
	return &stubEntity{Base: NewBase(x, y, w, h, typ)}
}

// worldWith builds a drained world containing the given entities.
func worldWith(entities ...Entity) *World {
	w := NewWorld()
	for _, e := range entities {
		w.Entities.Add(e)
	}
	w.Entities.Drain()
	return w
}

func TestStepVerticalLandsExactlyOnPlatform(t *testing.T) {
	floor := NewPlatform(0, 160, 320, 32, "ground")
	w := worldWith(floor)

	mover := newStub(100, 100, 32, 32, TypeEnemy)
	dt := 1.0 / 60.0

	for i := 0; i < 200 && !mover.Grounded; i++ {
		w.ApplyGravity(&mover.Base, dt)
		w.StepVertical(mover, dt)
	}

	if !mover.Grounded {
		t.Fatalf("mover never landed")
	}
	if mover.Y != 128 {
		t.Fatalf("expected bottom pinned to platform top (y=128), got y=%v", mover.Y)
	}
	if mover.VelocityY != 0 {
		t.Fatalf("expected vertical velocity zeroed on landing, got %v", mover.VelocityY)
	}
}

func TestStepHorizontalPinsAgainstWall(t *testing.T) {
	cases := []struct {
		name      string
		startX    float64
		velocityX float64
		wantX     float64
		wantSide  geom.Side
	}{
		{"moving_right_pins_right_edge", 150, 180, 168, geom.SideLeft},
		{"moving_left_pins_left_edge", 250, -180, 232, geom.SideRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			wall := NewPlatform(200, 0, 32, 200, "stone")
			w := worldWith(wall)

			mover := newStub(c.startX, 50, 32, 32, TypeEnemy)
			mover.VelocityX = c.velocityX

			side := w.StepHorizontal(&mover.Base, 1.0/6.0)
			if side != c.wantSide {
				t.Fatalf("expected side %v, got %v", c.wantSide, side)
			}
			if mover.X != c.wantX {
				t.Fatalf("expected x=%v after pinning, got %v", c.wantX, mover.X)
			}
			if mover.VelocityX != 0 {
				t.Fatalf("expected horizontal velocity zeroed, got %v", mover.VelocityX)
			}
		})
	}
}

func TestProbeGroundIsIdempotent(t *testing.T) {
	floor := NewPlatform(0, 128, 320, 32, "ground")
	w := worldWith(floor)

	standing := newStub(50, 96, 32, 32, TypeEnemy)
	airborne := newStub(50, 40, 32, 32, TypeEnemy)

	for i := 0; i < 3; i++ {
		if !w.ProbeGround(&standing.Base) {
			t.Fatalf("probe %d: standing entity should report ground", i)
		}
		if w.ProbeGround(&airborne.Base) {
			t.Fatalf("probe %d: airborne entity should not report ground", i)
		}
	}
	if standing.Y != 96 || airborne.Y != 40 {
		t.Fatalf("probing must not move entities: got y=%v and y=%v", standing.Y, airborne.Y)
	}
}

func TestWallAhead(t *testing.T) {
	wall := NewPlatform(200, 0, 32, 200, "stone")
	w := worldWith(wall)

	beside := newStub(168, 50, 32, 32, TypeEnemy) // right edge touching wall left edge
	if !w.WallAhead(&beside.Base, 1) {
		t.Fatalf("expected wall ahead moving right")
	}
	if w.WallAhead(&beside.Base, -1) {
		t.Fatalf("expected no wall behind")
	}

	far := newStub(100, 50, 32, 32, TypeEnemy)
	if w.WallAhead(&far.Base, 1) {
		t.Fatalf("expected no wall ahead from a distance")
	}
}

func TestCliffAhead(t *testing.T) {
	// floor only under x in [0,128)
	floor := NewPlatform(0, 128, 128, 32, "ground")
	w := worldWith(floor)

	walker := newStub(90, 96, 32, 32, TypeEnemy)
	if !w.CliffAhead(&walker.Base, 1) {
		t.Fatalf("expected cliff ahead moving right near the edge")
	}
	if w.CliffAhead(&walker.Base, -1) {
		t.Fatalf("expected solid ground behind")
	}
}

func TestCliffProbeIgnoresNonObstacles(t *testing.T) {
	// a coin at foot level past the edge must not read as ground
	floor := NewPlatform(0, 128, 128, 32, "ground")
	coin := newStub(130, 130, 16, 16, TypeCollectible)
	coin.Solid = false
	w := worldWith(floor, coin)

	walker := newStub(90, 96, 32, 32, TypeEnemy)
	if !w.CliffAhead(&walker.Base, 1) {
		t.Fatalf("non-solid entities must not count as ground for the cliff probe")
	}
}

func TestApplyGravityClampsAtTerminalVelocity(t *testing.T) {
	w := worldWith()
	faller := newStub(0, 0, 32, 32, TypeEnemy)

	for i := 0; i < 120; i++ {
		w.ApplyGravity(&faller.Base, 1.0/60.0)
	}
	if faller.VelocityY != common.TerminalVelocity {
		t.Fatalf("expected terminal velocity %v, got %v", common.TerminalVelocity, faller.VelocityY)
	}

	grounded := newStub(0, 0, 32, 32, TypeEnemy)
	grounded.Grounded = true
	w.ApplyGravity(&grounded.Base, 1.0/60.0)
	if grounded.VelocityY != 0 {
		t.Fatalf("gravity must not apply to grounded entities, got vy=%v", grounded.VelocityY)
	}
}

func TestDestroyedObstacleDoesNotInteract(t *testing.T) {
	// an entity destroyed mid-pass stays in the collection until the
	// next drain but must already be inert for movement and probes
	wall := NewPlatform(200, 0, 32, 200, "stone")
	floor := NewPlatform(0, 128, 320, 32, "ground")
	w := worldWith(wall, floor)
	wall.Destroy()
	floor.Destroy()

	mover := newStub(100, 50, 32, 32, TypeEnemy)
	mover.VelocityX = 600

	if side := w.StepHorizontal(&mover.Base, 0.25); side != geom.SideNone {
		t.Fatalf("expected no collision against destroyed wall, got %v", side)
	}
	if mover.X != 250 {
		t.Fatalf("expected free movement to x=250, got %v", mover.X)
	}

	standing := newStub(50, 96, 32, 32, TypeEnemy)
	if w.ProbeGround(&standing.Base) {
		t.Fatalf("destroyed floor must not read as ground")
	}
}

func TestStepHorizontalIgnoresNonSolid(t *testing.T) {
	ghost := NewPlatform(200, 0, 32, 200, "stone")
	ghost.Solid = false
	w := worldWith(ghost)

	mover := newStub(100, 50, 32, 32, TypeEnemy)
	mover.VelocityX = 600

	if side := w.StepHorizontal(&mover.Base, 0.25); side != geom.SideNone {
		t.Fatalf("expected no collision against non-solid platform, got %v", side)
	}
	if mover.X != 250 {
		t.Fatalf("expected free movement to x=250, got %v", mover.X)
	}
}
