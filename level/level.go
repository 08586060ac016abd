// Package level holds tile-based level data and turns it into the
// entities the simulation runs on.
package level

import (
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/obj"
)

// Tile is one grid cell. Non-solid tiles are decorative.
type Tile struct {
	Type  string
	Solid bool
}

// Spawn marks where an entity enters the world. Kind selects the
// concrete entity; Contains is only meaningful for question blocks.
type Spawn struct {
	X, Y     float64
	Kind     string
	Contains string
}

// Level is a tile grid plus the spawn metadata needed to populate a
// world from it.
type Level struct {
	Width  int // in tiles
	Height int

	PixelWidth  float64
	PixelHeight float64

	tiles [][]*Tile

	SpawnX, SpawnY float64
	GoalX, GoalY   float64
	TimeLimit      float64

	EnemySpawns       []Spawn
	PowerUpSpawns     []Spawn
	CollectibleSpawns []Spawn
	BlockSpawns       []Spawn
}

func New(width, height int) *Level {
	tiles := make([][]*Tile, height)
	for y := range tiles {
		tiles[y] = make([]*Tile, width)
	}
	return &Level{
		Width:       width,
		Height:      height,
		PixelWidth:  float64(width) * common.TileSize,
		PixelHeight: float64(height) * common.TileSize,
		tiles:       tiles,
		TimeLimit:   400,
	}
}

// SetTile places a tile at a grid position. Out-of-range positions are
// ignored.
func (l *Level) SetTile(x, y int, tileType string, solid bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.tiles[y][x] = &Tile{Type: tileType, Solid: solid}
}

// TileAt returns the tile at a grid position, or nil.
func (l *Level) TileAt(x, y int) *Tile {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return nil
	}
	return l.tiles[y][x]
}

// TileAtPixel returns the tile containing a world-space point.
func (l *Level) TileAtPixel(px, py float64) *Tile {
	return l.TileAt(int(px/common.TileSize), int(py/common.TileSize))
}

func (l *Level) AddEnemySpawn(x, y float64, kind string) {
	l.EnemySpawns = append(l.EnemySpawns, Spawn{X: x, Y: y, Kind: kind})
}

func (l *Level) AddPowerUpSpawn(x, y float64, kind string) {
	l.PowerUpSpawns = append(l.PowerUpSpawns, Spawn{X: x, Y: y, Kind: kind})
}

func (l *Level) AddCollectibleSpawn(x, y float64) {
	l.CollectibleSpawns = append(l.CollectibleSpawns, Spawn{X: x, Y: y, Kind: "coin"})
}

func (l *Level) AddBlockSpawn(x, y float64, kind, contains string) {
	l.BlockSpawns = append(l.BlockSpawns, Spawn{X: x, Y: y, Kind: kind, Contains: contains})
}

// Platforms converts the solid tiles into platform entities. Horizontal
// runs of same-type tiles within a row merge into a single platform, so
// a 50-tile floor row becomes one entity instead of fifty.
func (l *Level) Platforms() []*obj.Platform {
	var platforms []*obj.Platform

	for y := 0; y < l.Height; y++ {
		x := 0
		for x < l.Width {
			t := l.tiles[y][x]
			if t == nil || !t.Solid {
				x++
				continue
			}

			runStart := x
			for x < l.Width {
				next := l.tiles[y][x]
				if next == nil || !next.Solid || next.Type != t.Type {
					break
				}
				x++
			}

			platforms = append(platforms, obj.NewPlatform(
				float64(runStart)*common.TileSize,
				float64(y)*common.TileSize,
				float64(x-runStart)*common.TileSize,
				common.TileSize,
				t.Type,
			))
		}
	}
	return platforms
}
