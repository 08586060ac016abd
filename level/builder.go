package level

import "github.com/kevindesuyo/supermario-platform-game/common"

// CreateTestLevel builds the bundled 50x25 proving-ground level.
func CreateTestLevel() *Level {
	l := New(50, 25)

	// ground slab
	for x := 0; x < 50; x++ {
		for y := 20; y < 25; y++ {
			l.SetTile(x, y, "ground", true)
		}
	}

	// floating platforms
	for x := 10; x < 15; x++ {
		l.SetTile(x, 15, "grass", true)
	}
	for x := 20; x < 25; x++ {
		l.SetTile(x, 12, "stone", true)
	}
	for x := 30; x < 35; x++ {
		l.SetTile(x, 18, "grass", true)
	}

	// wall before the goal
	for y := 10; y < 20; y++ {
		l.SetTile(40, y, "stone", true)
	}

	l.SpawnX = 50
	l.SpawnY = 19 * common.TileSize
	l.GoalX = 45 * common.TileSize
	l.GoalY = 19 * common.TileSize

	l.AddEnemySpawn(300, 19*common.TileSize, "goomba")
	l.AddEnemySpawn(600, 19*common.TileSize, "koopa")
	l.AddEnemySpawn(900, 19*common.TileSize, "goomba")
	l.AddEnemySpawn(36*common.TileSize, 19*common.TileSize, "piranha")
	l.AddEnemySpawn(27*common.TileSize, 14*common.TileSize, "flying")

	l.AddPowerUpSpawn(400, 14*common.TileSize, "mushroom")
	l.AddPowerUpSpawn(800, 11*common.TileSize, "fire_flower")

	for i := 0; i < 5; i++ {
		l.AddCollectibleSpawn(float64(200+i*100), 19*common.TileSize)
	}

	// a short block gallery above the first platform
	l.AddBlockSpawn(11*common.TileSize, 11*common.TileSize, "question", "coin")
	l.AddBlockSpawn(12*common.TileSize, 11*common.TileSize, "brick", "")
	l.AddBlockSpawn(13*common.TileSize, 11*common.TileSize, "question", "mushroom")
	l.AddBlockSpawn(22*common.TileSize, 8*common.TileSize, "question", "fire_flower")

	return l
}
