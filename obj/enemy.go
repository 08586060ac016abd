package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/geom"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

const (
	deathAnimTime    = 1.0
	deathBounceSpeed = -200.0
)

// EnemyKind selects the behavior branch inside Enemy. The set is closed;
// every switch over it handles all four kinds.
type EnemyKind int

const (
	KindGoomba EnemyKind = iota
	KindKoopa
	KindPiranha
	KindFlying
)

func (k EnemyKind) String() string {
	switch k {
	case KindGoomba:
		return "goomba"
	case KindKoopa:
		return "koopa"
	case KindPiranha:
		return "piranha"
	case KindFlying:
		return "flying"
	}
	return "unknown"
}

// ParseEnemyKind maps a level spawn name to a kind. Unknown names fall
// back to goomba.
func ParseEnemyKind(name string) EnemyKind {
	switch name {
	case "koopa":
		return KindKoopa
	case "piranha":
		return KindPiranha
	case "flying":
		return KindFlying
	}
	return KindGoomba
}

// Enemy is every hostile in the game, discriminated by Kind. One struct
// instead of a type per kind keeps the AI dispatch in a single switch and
// the collection free of per-kind assertions.
type Enemy struct {
	Base
	Kind EnemyKind

	Direction      float64 // -1 left, 1 right
	StartX         float64
	Speed          float64
	PatrolDistance float64

	Stompable   bool
	StompPoints int

	Stunned    bool
	StunTimer  float64
	Dead       bool
	DeathTimer float64

	// koopa shell state
	ShellMode     bool
	ShellTimer    float64
	shellDuration float64
	shellHeight   float64
	walkHeight    float64
	shellStun     float64
	kickSpeed     float64

	// piranha pop cycle
	PoppedUp     bool
	PopTimer     float64
	popDuration  float64
	hideDuration float64
	pipeOffset   float64

	// flying oscillation
	flyAmplitude float64
	flyFrequency float64
	flySpring    float64
	flightTime   float64

	baseY float64
}

func NewEnemy(kind EnemyKind, x, y float64, spec *prefabs.EnemySpec) *Enemy {
	e := &Enemy{
		Base:           NewBase(x, y, spec.Collider.Width, spec.Collider.Height, TypeEnemy),
		Kind:           kind,
		Direction:      -1,
		StartX:         x,
		Speed:          spec.Speed,
		PatrolDistance: spec.PatrolDistance,
		Stompable:      spec.Stompable,
		StompPoints:    spec.StompPoints,
		shellDuration:  spec.Shell.Duration,
		shellHeight:    spec.Shell.Height,
		walkHeight:     spec.Collider.Height,
		shellStun:      spec.Shell.StunTime,
		kickSpeed:      spec.Shell.KickSpeed,
		popDuration:    spec.Pipe.PopDuration,
		hideDuration:   spec.Pipe.HideDuration,
		pipeOffset:     spec.Pipe.Offset,
		flyAmplitude:   spec.Flight.Amplitude,
		flyFrequency:   spec.Flight.Frequency,
		flySpring:      spec.Flight.Spring,
		baseY:          y,
	}
	if kind == KindPiranha {
		// starts hidden inside its pipe
		e.Y = y + e.pipeOffset
		e.Visible = false
		e.Solid = false
	}
	return e
}

func (e *Enemy) Update(dt float64, w *World) {
	if !e.Active {
		return
	}

	if e.StunTimer > 0 {
		e.StunTimer -= dt
		if e.StunTimer <= 0 {
			e.Stunned = false
		}
	}

	if e.Dead {
		e.DeathTimer -= dt
		if e.DeathTimer <= 0 {
			e.Destroy()
		}
		return
	}

	if !e.Stunned {
		e.updateAI(dt, w)
	}

	// the piranha is anchored to its pipe and never integrates
	if e.Kind != KindPiranha {
		e.updatePhysics(dt, w)
	}
}

func (e *Enemy) updateAI(dt float64, w *World) {
	switch e.Kind {
	case KindGoomba:
		e.patrol(w)
	case KindKoopa:
		e.updateShell(dt)
		if !e.ShellMode {
			e.patrol(w)
		}
	case KindPiranha:
		e.updatePopCycle(dt)
	case KindFlying:
		e.updateFlight(dt)
	}
}

// patrol walks at Speed and reverses at walls, cliffs, and the patrol
// boundary. The boundary check only reverses when still heading outward,
// so a single crossing flips direction exactly once.
func (e *Enemy) patrol(w *World) {
	if w.WallAhead(&e.Base, e.Direction) || w.CliffAhead(&e.Base, e.Direction) {
		e.Direction = -e.Direction
	}

	offset := e.X - e.StartX
	if offset > e.PatrolDistance && e.Direction > 0 {
		e.Direction = -1
	} else if offset < -e.PatrolDistance && e.Direction < 0 {
		e.Direction = 1
	}

	e.VelocityX = e.Direction * e.Speed
}

func (e *Enemy) updateShell(dt float64) {
	if !e.ShellMode {
		return
	}
	e.ShellTimer -= dt
	if e.ShellTimer <= 0 {
		e.ShellMode = false
		e.Height = e.walkHeight
		e.VelocityX = 0
	}
}

func (e *Enemy) updatePopCycle(dt float64) {
	e.PopTimer += dt
	if e.PoppedUp {
		if e.PopTimer >= e.popDuration {
			e.PoppedUp = false
			e.PopTimer = 0
			e.Visible = false
			e.Solid = false
			e.Y = e.baseY + e.pipeOffset
		}
	} else {
		if e.PopTimer >= e.hideDuration {
			e.PoppedUp = true
			e.PopTimer = 0
			e.Visible = true
			e.Solid = true
			e.Y = e.baseY
		}
	}
}

func (e *Enemy) updateFlight(dt float64) {
	e.flightTime += dt
	e.VelocityX = e.Direction * e.Speed

	// spring toward the sine-wave track instead of snapping onto it
	targetY := e.baseY + math.Sin(e.flightTime*e.flyFrequency)*e.flyAmplitude
	e.VelocityY = (targetY - e.Y) * e.flySpring

	if math.Abs(e.X-e.StartX) > e.PatrolDistance {
		e.Direction = -e.Direction
	}
}

func (e *Enemy) updatePhysics(dt float64, w *World) {
	w.ApplyGravity(&e.Base, dt)
	e.Grounded = w.ProbeGround(&e.Base)

	if side := w.StepHorizontal(&e.Base, dt); side == geom.SideLeft || side == geom.SideRight {
		e.Direction = -e.Direction
	}
	w.StepVertical(e, dt)
}

// Stomp handles a hit from above and returns the score it is worth.
// Unstompable kinds return 0 and stay alive. A koopa tucks into its
// shell on the first stomp; stomping the shell kicks it away from the
// player.
func (e *Enemy) Stomp(p *Player) int {
	if !e.Stompable {
		return 0
	}
	if e.Kind == KindKoopa {
		return e.stompKoopa(p)
	}
	e.die()
	return e.StompPoints
}

func (e *Enemy) stompKoopa(p *Player) int {
	if !e.ShellMode {
		e.ShellMode = true
		e.ShellTimer = e.shellDuration
		e.Height = e.shellHeight
		e.VelocityX = 0
		e.Stunned = true
		e.StunTimer = e.shellStun
		return e.StompPoints
	}

	if p.CenterX() < e.CenterX() {
		e.VelocityX = e.kickSpeed
		e.Direction = 1
	} else {
		e.VelocityX = -e.kickSpeed
		e.Direction = -1
	}
	e.Stunned = false
	e.StunTimer = 0
	return e.StompPoints
}

func (e *Enemy) die() {
	e.Dead = true
	e.DeathTimer = deathAnimTime
	e.VelocityY = deathBounceSpeed
	e.Solid = false
}

func (e *Enemy) bodyColor() color.Color {
	if e.Dead {
		return colornames.Gray
	}
	if e.Stunned {
		return colornames.Yellow
	}
	switch e.Kind {
	case KindKoopa:
		if e.ShellMode {
			return colornames.Lime
		}
		return colornames.Green
	case KindPiranha:
		return colornames.Red
	case KindFlying:
		return colornames.Purple
	}
	return colornames.Saddlebrown
}

func (e *Enemy) Draw(screen *ebiten.Image, camX, camY float64) {
	if !e.Visible {
		return
	}
	sx := float32(e.X - camX)
	sy := float32(e.Y - camY)
	width := float32(e.Width)
	height := float32(e.Height)

	vector.DrawFilledRect(screen, sx, sy, width, height, e.bodyColor(), false)
	vector.StrokeRect(screen, sx, sy, width, height, 2, colornames.Black, false)

	if e.Dead || (e.Kind == KindKoopa && e.ShellMode) {
		return
	}

	// eye on the leading edge
	eyeX := sx + 5
	if e.Direction > 0 {
		eyeX = sx + width - 5
	}
	vector.DrawFilledCircle(screen, eyeX, sy+8, 3, colornames.White, false)
	vector.DrawFilledCircle(screen, eyeX, sy+8, 1, colornames.Black, false)
}
