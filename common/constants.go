package common

// Logical screen size in pixels.
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

const TileSize = 32

// World physics tuning (pixels and seconds).
const (
	Gravity          = 1200.0 // pixels per second squared
	TerminalVelocity = 800.0  // max falling speed
	JumpSpeed        = -600.0 // negative because Y grows downward

	// FallDeathY is the world depth below which the player takes damage.
	FallDeathY = 1000.0
)

// Render/update layer ordering. Lower layers draw first.
const (
	LayerBackground = 0
	LayerPlatforms  = 1
	LayerEntities   = 2
	LayerPlayer     = 3
	LayerEffects    = 4
	LayerUI         = 5
)
