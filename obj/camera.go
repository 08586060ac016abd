package obj

import (
	"github.com/kevindesuyo/supermario-platform-game/common"
)

// Camera follows a target point with exponential smoothing, clamped to
// the level bounds.
type Camera struct {
	X, Y       float64
	Smoothing  float64
	minX, maxX float64
	minY, maxY float64
}

func NewCamera(smoothing float64) *Camera {
	return &Camera{Smoothing: smoothing}
}

// SetBounds constrains the camera to the given world rectangle.
func (c *Camera) SetBounds(minX, maxX, minY, maxY float64) {
	c.minX = minX
	c.maxX = maxX
	c.minY = minY
	c.maxY = maxY
}

// Follow eases the camera toward centering the target on screen.
func (c *Camera) Follow(targetX, targetY, dt float64) {
	tx := targetX - common.ScreenWidth/2
	ty := targetY - common.ScreenHeight/2

	tx = common.Clamp(tx, c.minX, c.maxX-common.ScreenWidth)
	ty = common.Clamp(ty, c.minY, c.maxY-common.ScreenHeight)

	c.X = common.Lerp(c.X, tx, c.Smoothing*dt)
	c.Y = common.Lerp(c.Y, ty, c.Smoothing*dt)
}

// Snap jumps the camera straight to the target, for respawns and level
// starts.
func (c *Camera) Snap(targetX, targetY float64) {
	c.X = common.Clamp(targetX-common.ScreenWidth/2, c.minX, c.maxX-common.ScreenWidth)
	c.Y = common.Clamp(targetY-common.ScreenHeight/2, c.minY, c.maxY-common.ScreenHeight)
}
