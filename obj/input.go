package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame snapshot of the four logical movement actions
// plus the discrete pause action consumed by the surrounding state machine.
type Input struct {
	// Left/Right are true while the matching direction is held.
	Left  bool
	Right bool
	// Jump is true while the jump key is held down.
	Jump bool
	// Run is true while the run modifier is held.
	Run bool
	// PausePressed is true only on the frame the pause key went down.
	PausePressed bool
	// RestartPressed is true only on the frame the restart key went down.
	RestartPressed bool
	// ConfirmPressed is true on the frame Enter or Space went down; used
	// by the menu and game-over screens, not the simulation.
	ConfirmPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// MoveX collapses the held directions to -1, 0 or +1.
func (i *Input) MoveX() float64 {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	default:
		return 0
	}
}

// Update polls the keyboard and first gamepad and refreshes the snapshot.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.Jump = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)
	i.Run = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.ConfirmPressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	// Gamepad: left stick or dpad for movement, primary button for jump,
	// west button for run, start for pause.
	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
		i.Left = true
	}
	if leftX > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
		i.Right = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.Jump = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft) {
		i.Run = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.PausePressed = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.ConfirmPressed = true
	}
}
