package obj

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"golang.org/x/image/font/basicfont"
)

const particleGravity = 300.0

var popupFace = text.NewGoXFace(basicfont.Face7x13)

type particle struct {
	x, y        float64
	vx, vy      float64
	color       color.RGBA
	size        float64
	lifetime    float64
	maxLifetime float64
}

func (p *particle) update(dt float64) bool {
	p.x += p.vx * dt
	p.y += p.vy * dt
	p.vy += particleGravity * dt
	p.lifetime -= dt
	return p.lifetime > 0
}

// Explosion is a one-shot particle burst. It removes itself once the
// last particle expires.
type Explosion struct {
	Base
	particles []particle
}

// explosionExtent bounds how far any particle can travel over its
// lifetime, so the burst's box keeps it inside view queries.
const explosionExtent = 240.0

func NewExplosion(x, y float64, tint color.RGBA, count int) *Explosion {
	e := &Explosion{Base: NewBase(x-explosionExtent, y-explosionExtent, 2*explosionExtent, 2*explosionExtent, TypeEffect)}
	e.Solid = false
	e.Layer = common.LayerEffects

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := 50 + rand.Float64()*100
		e.particles = append(e.particles, particle{
			x:  x,
			y:  y,
			vx: math.Cos(angle) * speed,
			// upward bias so bursts fountain instead of splat
			vy:          math.Sin(angle)*speed - 100,
			color:       jitterColor(tint),
			size:        2 + rand.Float64()*4,
			lifetime:    0.5 + rand.Float64(),
			maxLifetime: 1.5,
		})
	}
	return e
}

func jitterColor(c color.RGBA) color.RGBA {
	j := func(v uint8) uint8 {
		n := int(v) + rand.Intn(101) - 50
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: j(c.R), G: j(c.G), B: j(c.B), A: 255}
}

func (e *Explosion) Update(dt float64, w *World) {
	live := e.particles[:0]
	for i := range e.particles {
		if e.particles[i].update(dt) {
			live = append(live, e.particles[i])
		}
	}
	e.particles = live
	if len(e.particles) == 0 {
		e.Destroy()
	}
}

func (e *Explosion) Draw(screen *ebiten.Image, camX, camY float64) {
	for i := range e.particles {
		p := &e.particles[i]
		fade := p.lifetime / p.maxLifetime
		c := color.RGBA{
			R: uint8(float64(p.color.R) * fade),
			G: uint8(float64(p.color.G) * fade),
			B: uint8(float64(p.color.B) * fade),
			A: uint8(255 * fade),
		}
		vector.DrawFilledCircle(screen, float32(p.x-camX), float32(p.y-camY), float32(p.size), c, false)
	}
}

// ScorePopup floats a point value upward and fades it out.
type ScorePopup struct {
	Base
	Points   int
	tint     color.RGBA
	duration float64
	timer    float64
}

const popupFloatSpeed = -60.0

func NewScorePopup(x, y float64, points int, tint color.RGBA) *ScorePopup {
	s := &ScorePopup{
		Base:     NewBase(x, y, 48, 14, TypeEffect),
		Points:   points,
		tint:     tint,
		duration: 1.5,
	}
	s.Solid = false
	s.Layer = common.LayerEffects
	return s
}

func (s *ScorePopup) Update(dt float64, w *World) {
	s.Y += popupFloatSpeed * dt
	s.timer += dt
	if s.timer >= s.duration {
		s.Destroy()
	}
}

func (s *ScorePopup) Draw(screen *ebiten.Image, camX, camY float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.X-camX, s.Y-camY)
	op.ColorScale.ScaleWithColor(s.tint)
	op.ColorScale.ScaleAlpha(float32(1 - s.timer/s.duration))
	text.Draw(screen, fmt.Sprintf("%d", s.Points), popupFace, op)
}
