package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

const (
	coinScore        = 100
	coinsPerLife     = 100
	powerUpScore     = 1000
	maxPowerLevel    = 2
	hitInvulnTime    = 2.0 // after losing a power level
	deathInvulnTime  = 3.0 // after losing a life
	walkAnimCutoff   = 10.0
	flickerFrequency = 10
)

// Player is the input-driven character. Movement is an
// acceleration/friction model toward a target velocity; jumps go through
// a buffer and coyote window. The controller never repositions the player
// after death; it only raises NeedsRespawn for the level layer.
type Player struct {
	Base
	Input *Input

	StartX, StartY float64

	// tuning, loaded from the player prefab
	MaxSpeed       float64
	Acceleration   float64
	Friction       float64
	JumpSpeed      float64
	RunMultiplier  float64
	jumpBufferTime float64
	coyoteTimeMax  float64

	CanJump        bool
	JumpBuffer     float64
	CoyoteTime     float64
	prevJump       bool
	FacingRight    bool
	AnimState      string // idle, walk, run, jump, fall
	animTimer      float64

	PowerLevel        int
	Invulnerable      bool
	InvulnerableTimer float64

	Lives        int
	Score        int
	Coins        int
	NeedsRespawn bool
}

func NewPlayer(x, y float64, input *Input, spec *prefabs.PlayerSpec) *Player {
	p := &Player{
		Base:           NewBase(x, y, spec.Collider.Width, spec.Collider.Height, TypePlayer),
		Input:          input,
		StartX:         x,
		StartY:         y,
		MaxSpeed:       spec.MoveSpeed,
		Acceleration:   spec.Acceleration,
		Friction:       spec.Friction,
		JumpSpeed:      spec.JumpSpeed,
		RunMultiplier:  spec.RunMultiplier,
		jumpBufferTime: spec.JumpBufferTime,
		coyoteTimeMax:  spec.CoyoteTime,
		CanJump:        true,
		FacingRight:    true,
		AnimState:      "idle",
		Lives:          spec.Lives,
	}
	p.Layer = common.LayerPlayer
	return p
}

func (p *Player) Update(dt float64, w *World) {
	if !p.Active {
		return
	}

	// a jump press (edge, not hold) arms the buffer
	if p.Input.Jump && !p.prevJump {
		p.JumpBuffer = p.jumpBufferTime
	}
	p.prevJump = p.Input.Jump

	p.updatePhysics(dt)

	w.StepHorizontal(&p.Base, dt)
	w.StepVertical(p, dt)

	p.checkGround(w)
	p.updateAnimation(dt)

	// fell off the world
	if p.Y > common.FallDeathY {
		p.TakeDamage()
	}
}

func (p *Player) updatePhysics(dt float64) {
	moveX := p.Input.MoveX()

	target := moveX * p.MaxSpeed
	if p.Input.Run {
		target *= p.RunMultiplier
	}
	switch {
	case moveX < 0:
		p.FacingRight = false
	case moveX > 0:
		p.FacingRight = true
	}

	if target == 0 {
		// friction toward zero, clamped so it cannot cross zero
		p.VelocityX = common.Approach(p.VelocityX, 0, p.Friction*dt)
	} else {
		// acceleration toward target, clamped so it cannot overshoot
		p.VelocityX = common.Approach(p.VelocityX, target, p.Acceleration*dt)
	}

	// honor a buffered jump while grounded or inside the coyote window
	if p.JumpBuffer > 0 && (p.CanJump || p.CoyoteTime > 0) {
		p.VelocityY = p.JumpSpeed
		p.CanJump = false
		p.JumpBuffer = 0
		p.CoyoteTime = 0
		p.Grounded = false
	}

	if !p.Grounded {
		p.VelocityY += common.Gravity * dt
		if p.VelocityY > common.TerminalVelocity {
			p.VelocityY = common.TerminalVelocity
		}
	}

	if p.JumpBuffer > 0 {
		p.JumpBuffer -= dt
	}
	if p.CoyoteTime > 0 {
		p.CoyoteTime -= dt
	}
	if p.InvulnerableTimer > 0 {
		p.InvulnerableTimer -= dt
		if p.InvulnerableTimer <= 0 {
			p.Invulnerable = false
		}
	}
}

func (p *Player) checkGround(w *World) {
	p.Grounded = w.ProbeGround(&p.Base)
	if p.Grounded {
		p.CanJump = true
		p.CoyoteTime = p.coyoteTimeMax
	}
}

func (p *Player) updateAnimation(dt float64) {
	p.animTimer += dt

	switch {
	case !p.Grounded && p.VelocityY < 0:
		p.AnimState = "jump"
	case !p.Grounded:
		p.AnimState = "fall"
	case p.VelocityX > walkAnimCutoff || p.VelocityX < -walkAnimCutoff:
		if p.Input.Run {
			p.AnimState = "run"
		} else {
			p.AnimState = "walk"
		}
	default:
		p.AnimState = "idle"
	}
}

// TakeDamage applies the damage contract and reports whether it landed.
// While invulnerable it is a no-op. A power level absorbs the hit;
// otherwise a life is lost and, at zero lives, the player is destroyed.
func (p *Player) TakeDamage() bool {
	if p.Invulnerable {
		return false
	}

	if p.PowerLevel > 0 {
		p.PowerLevel--
		p.Invulnerable = true
		p.InvulnerableTimer = hitInvulnTime
		return true
	}

	p.Lives--
	if p.Lives <= 0 {
		p.Destroy()
		return true
	}
	// repositioning is the level layer's job; just raise the flag
	p.NeedsRespawn = true
	p.Invulnerable = true
	p.InvulnerableTimer = deathInvulnTime
	return true
}

// CollectCoin bumps the coin counter and score; every 100th coin wraps
// the counter and grants an extra life.
func (p *Player) CollectCoin() {
	p.Coins++
	p.Score += coinScore
	if p.Coins >= coinsPerLife {
		p.Coins = 0
		p.Lives++
	}
}

// ApplyPower raises the power level to the given value, capped at 2.
// Applying a level the player already has or exceeds is a no-op and
// grants no duplicate score bonus.
func (p *Player) ApplyPower(level int) bool {
	if level > maxPowerLevel {
		level = maxPowerLevel
	}
	if p.PowerLevel >= level {
		return false
	}
	p.PowerLevel = level
	p.Score += powerUpScore
	return true
}

// Bounce sets the vertical velocity directly; used for the stomp rebound.
func (p *Player) Bounce(vy float64) {
	p.VelocityY = vy
}

// Respawn repositions the player at the given point and clears transient
// motion state. Called by the level layer when NeedsRespawn is set.
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.VelocityX = 0
	p.VelocityY = 0
	p.NeedsRespawn = false
}

func (p *Player) bodyColor() color.Color {
	switch p.PowerLevel {
	case 2:
		return colornames.Red
	case 1:
		return colornames.Blue
	default:
		return colornames.White
	}
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	if !p.Visible {
		return
	}
	sx := float32(p.X - camX)
	sy := float32(p.Y - camY)

	// flicker while invulnerable
	if p.Invulnerable && int(p.InvulnerableTimer*flickerFrequency)%2 == 1 {
		return
	}

	vector.DrawFilledRect(screen, sx, sy, float32(p.Width), float32(p.Height), p.bodyColor(), false)

	// facing indicator
	eyeX := sx + 5
	if p.FacingRight {
		eyeX = sx + float32(p.Width) - 5
	}
	vector.DrawFilledCircle(screen, eyeX, sy+5, 3, colornames.Yellow, false)
}
