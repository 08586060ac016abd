package obj

import (
	"testing"

	"github.com/kevindesuyo/supermario-platform-game/prefabs"
)

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		MoveSpeed:      200,
		Acceleration:   1000,
		Friction:       800,
		JumpSpeed:      -600,
		RunMultiplier:  2.0,
		JumpBufferTime: 0.1,
		CoyoteTime:     0.2,
		Lives:          3,
		Collider:       prefabs.ColliderSpec{Width: 32, Height: 32},
	}
}

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(x, y, NewInput(), testPlayerSpec())
}

func TestPlayerAccelerationNeverOvershootsTarget(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.Grounded = true
	p.Input.Right = true

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		prev := p.VelocityX
		p.updatePhysics(dt)
		if p.VelocityX > p.MaxSpeed {
			t.Fatalf("frame %d: velocity %v exceeds max speed %v", i, p.VelocityX, p.MaxSpeed)
		}
		if p.VelocityX < prev {
			t.Fatalf("frame %d: velocity decreased from %v to %v while accelerating", i, prev, p.VelocityX)
		}
	}
	if p.VelocityX != p.MaxSpeed {
		t.Fatalf("expected velocity to settle at max speed %v, got %v", p.MaxSpeed, p.VelocityX)
	}
}

func TestPlayerFrictionClampsToZero(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.Grounded = true
	p.VelocityX = 10 // less than one friction step at 60hz

	p.updatePhysics(1.0 / 60.0)
	if p.VelocityX != 0 {
		t.Fatalf("expected friction to stop exactly at zero, got %v", p.VelocityX)
	}
}

func TestPlayerRunMultiplier(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.Grounded = true
	p.Input.Right = true
	p.Input.Run = true

	dt := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		p.updatePhysics(dt)
	}
	want := p.MaxSpeed * p.RunMultiplier
	if p.VelocityX != want {
		t.Fatalf("expected run speed %v, got %v", want, p.VelocityX)
	}
}

func TestPlayerJumpFromGround(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.Grounded = true
	p.CanJump = true
	p.JumpBuffer = 0.1

	p.updatePhysics(1.0 / 60.0)
	if p.VelocityY >= 0 {
		t.Fatalf("expected upward velocity after jump, got %v", p.VelocityY)
	}
	if p.CanJump {
		t.Fatalf("jump must consume the jump flag")
	}
	if p.JumpBuffer != 0 {
		t.Fatalf("jump must clear the buffer, got %v", p.JumpBuffer)
	}
	if p.Grounded {
		t.Fatalf("jump must unground the player")
	}
}

func TestPlayerCoyoteJump(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.CanJump = false
	p.CoyoteTime = 0.1
	p.JumpBuffer = 0.1

	p.updatePhysics(1.0 / 60.0)
	if p.VelocityY >= 0 {
		t.Fatalf("expected coyote jump, got vy=%v", p.VelocityY)
	}

	stale := newTestPlayer(0, 0)
	stale.CanJump = false
	stale.CoyoteTime = 0
	stale.JumpBuffer = 0.1
	stale.updatePhysics(1.0 / 60.0)
	if stale.VelocityY < 0 {
		t.Fatalf("airborne player without coyote window must not jump")
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	cases := []struct {
		name        string
		powerLevel  int
		lives       int
		wantPower   int
		wantLives   int
		wantActive  bool
		wantRespawn bool
	}{
		{"power_absorbs_hit", 2, 3, 1, 3, true, false},
		{"no_power_loses_life", 0, 3, 0, 2, true, true},
		{"last_life_destroys", 0, 1, 0, 0, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(0, 0)
			p.PowerLevel = c.powerLevel
			p.Lives = c.lives

			if !p.TakeDamage() {
				t.Fatalf("expected damage to land")
			}
			if p.PowerLevel != c.wantPower {
				t.Fatalf("power level: want %d, got %d", c.wantPower, p.PowerLevel)
			}
			if p.Lives != c.wantLives {
				t.Fatalf("lives: want %d, got %d", c.wantLives, p.Lives)
			}
			if p.Active != c.wantActive {
				t.Fatalf("active: want %v, got %v", c.wantActive, p.Active)
			}
			if p.NeedsRespawn != c.wantRespawn {
				t.Fatalf("needs respawn: want %v, got %v", c.wantRespawn, p.NeedsRespawn)
			}
		})
	}
}

func TestPlayerInvulnerabilityBlocksSecondHit(t *testing.T) {
	p := newTestPlayer(0, 0)

	if !p.TakeDamage() {
		t.Fatalf("first hit should land")
	}
	if p.Lives != 2 {
		t.Fatalf("expected 2 lives after first hit, got %d", p.Lives)
	}
	if p.TakeDamage() {
		t.Fatalf("second immediate hit must be absorbed by invulnerability")
	}
	if p.Lives != 2 {
		t.Fatalf("lives must be unchanged during invulnerability, got %d", p.Lives)
	}

	// window expires
	for i := 0; i < 200; i++ {
		p.updatePhysics(1.0 / 60.0)
	}
	if p.Invulnerable {
		t.Fatalf("invulnerability should expire")
	}
	if !p.TakeDamage() {
		t.Fatalf("hit after expiry should land")
	}
}

func TestPlayerCollectCoin(t *testing.T) {
	p := newTestPlayer(0, 0)

	p.CollectCoin()
	if p.Coins != 1 || p.Score != 100 {
		t.Fatalf("expected 1 coin and 100 score, got %d and %d", p.Coins, p.Score)
	}

	p.Coins = 99
	lives := p.Lives
	p.CollectCoin()
	if p.Coins != 0 {
		t.Fatalf("coin counter must wrap at 100, got %d", p.Coins)
	}
	if p.Lives != lives+1 {
		t.Fatalf("expected an extra life at 100 coins, got %d", p.Lives)
	}
}

func TestPlayerApplyPower(t *testing.T) {
	p := newTestPlayer(0, 0)

	if !p.ApplyPower(1) {
		t.Fatalf("first mushroom should apply")
	}
	if p.PowerLevel != 1 || p.Score != 1000 {
		t.Fatalf("expected power 1 and 1000 score, got %d and %d", p.PowerLevel, p.Score)
	}

	if p.ApplyPower(1) {
		t.Fatalf("duplicate mushroom must be a no-op")
	}
	if p.Score != 1000 {
		t.Fatalf("duplicate pickup must not award score again, got %d", p.Score)
	}

	if !p.ApplyPower(2) {
		t.Fatalf("fire flower should upgrade from power 1")
	}
	if p.PowerLevel != 2 || p.Score != 2000 {
		t.Fatalf("expected power 2 and 2000 score, got %d and %d", p.PowerLevel, p.Score)
	}

	if p.ApplyPower(1) {
		t.Fatalf("downgrade pickup must be a no-op")
	}
	if p.PowerLevel != 2 {
		t.Fatalf("power level must never decrease on pickup, got %d", p.PowerLevel)
	}
}

func TestPlayerFallDeath(t *testing.T) {
	p := newTestPlayer(100, 1200)
	w := worldWith()
	w.Player = p

	p.Update(1.0/60.0, w)
	if !p.NeedsRespawn {
		t.Fatalf("falling below the kill line must cost a life")
	}
	if p.Lives != 2 {
		t.Fatalf("expected 2 lives after fall death, got %d", p.Lives)
	}
}

func TestPlayerRespawnClearsMotion(t *testing.T) {
	p := newTestPlayer(500, 900)
	p.VelocityX = 120
	p.VelocityY = 300
	p.NeedsRespawn = true

	p.Respawn(50, 608)
	if p.X != 50 || p.Y != 608 {
		t.Fatalf("expected respawn at (50,608), got (%v,%v)", p.X, p.Y)
	}
	if p.VelocityX != 0 || p.VelocityY != 0 {
		t.Fatalf("respawn must clear velocity, got (%v,%v)", p.VelocityX, p.VelocityY)
	}
	if p.NeedsRespawn {
		t.Fatalf("respawn must clear the flag")
	}
}
