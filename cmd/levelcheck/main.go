// Command levelcheck validates the bundled level data: every spawn must
// sit inside the level bounds, the spawn and goal must stand over solid
// ground, and merged platform geometry must stay tile-aligned.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/level"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levelcheck"})

	l := level.CreateTestLevel()
	failures := 0

	inBounds := func(name string, x, y float64) {
		if x < 0 || x >= l.PixelWidth || y < 0 || y >= l.PixelHeight {
			logger.Error("spawn out of bounds", "name", name, "x", x, "y", y)
			failures++
		}
	}

	overGround := func(name string, x, y float64) {
		for probe := y; probe < l.PixelHeight; probe += common.TileSize {
			if t := l.TileAtPixel(x, probe); t != nil && t.Solid {
				return
			}
		}
		logger.Error("no ground below", "name", name, "x", x, "y", y)
		failures++
	}

	inBounds("player", l.SpawnX, l.SpawnY)
	overGround("player", l.SpawnX, l.SpawnY)
	inBounds("goal", l.GoalX, l.GoalY)
	overGround("goal", l.GoalX, l.GoalY)

	for _, s := range l.EnemySpawns {
		inBounds("enemy/"+s.Kind, s.X, s.Y)
	}
	for _, s := range l.PowerUpSpawns {
		inBounds("powerup/"+s.Kind, s.X, s.Y)
	}
	for _, s := range l.CollectibleSpawns {
		inBounds("coin", s.X, s.Y)
	}
	for _, s := range l.BlockSpawns {
		inBounds("block/"+s.Kind, s.X, s.Y)
	}

	platforms := l.Platforms()
	for _, p := range platforms {
		if int(p.X)%common.TileSize != 0 || int(p.Y)%common.TileSize != 0 || int(p.Width)%common.TileSize != 0 {
			logger.Error("platform not tile-aligned", "x", p.X, "y", p.Y, "width", p.Width)
			failures++
		}
	}

	logger.Info("level checked",
		"platforms", len(platforms),
		"enemies", len(l.EnemySpawns),
		"powerups", len(l.PowerUpSpawns),
		"coins", len(l.CollectibleSpawns),
		"blocks", len(l.BlockSpawns),
		"failures", failures,
	)
	if failures > 0 {
		os.Exit(1)
	}
}
