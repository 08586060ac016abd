package main

import (
	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kevindesuyo/supermario-platform-game/common"
	"github.com/kevindesuyo/supermario-platform-game/level"
	"github.com/kevindesuyo/supermario-platform-game/obj"
	"github.com/kevindesuyo/supermario-platform-game/prefabs"
	"golang.org/x/image/colornames"
)

const (
	frameDelta = 1.0 / 60.0

	introDuration    = 1.0
	completeDuration = 2.0
	gameOverDuration = 3.0
	timeBonusRate    = 50
)

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

type specSet struct {
	player  *prefabs.PlayerSpec
	enemies map[string]*prefabs.EnemySpec
	items   *prefabs.ItemSpec
	camera  *prefabs.CameraSpec
}

func loadSpecs() (*specSet, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	items, err := prefabs.LoadItemSpec()
	if err != nil {
		return nil, err
	}
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	enemies := make(map[string]*prefabs.EnemySpec)
	for _, kind := range []string{"goomba", "koopa", "piranha", "flying"} {
		spec, err := prefabs.LoadEnemySpec(kind)
		if err != nil {
			return nil, err
		}
		enemies[kind] = spec
	}

	return &specSet{player: player, enemies: enemies, items: items, camera: camera}, nil
}

type Game struct {
	logger *log.Logger
	debug  bool
	frames int

	state GameState

	input  *obj.Input
	world  *obj.World
	camera *obj.Camera
	lvl    *level.Level
	specs  *specSet

	timeRemaining float64
	introTimer    float64
	completeTimer float64
	gameOverTimer float64

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(logger *log.Logger, debug bool) (*Game, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger: logger,
		debug:  debug,
		state:  StateMenu,
		input:  obj.NewInput(),
		lvl:    level.CreateTestLevel(),
		specs:  specs,
	}
	g.pauseUI = NewPauseUI(g)

	// spec edits hot reload on the next level start
	watcher, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		logger.Warn("prefab watch disabled", "err", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// startLevel rebuilds the world from the level data. Also used for
// restarts, which is why it resets every timer.
func (g *Game) startLevel() {
	w := obj.NewWorld()

	for _, p := range g.lvl.Platforms() {
		w.Spawn(p)
	}

	for _, s := range g.lvl.BlockSpawns {
		switch s.Kind {
		case "question":
			w.Spawn(obj.NewQuestionBlock(s.X, s.Y, s.Contains, g.specs.items))
		case "brick":
			w.Spawn(obj.NewBrickBlock(s.X, s.Y))
		default:
			w.Spawn(obj.NewBlock(s.X, s.Y))
		}
	}

	for _, s := range g.lvl.EnemySpawns {
		kind := obj.ParseEnemyKind(s.Kind)
		spec, ok := g.specs.enemies[kind.String()]
		if !ok {
			g.logger.Warn("no spec for enemy", "kind", s.Kind)
			continue
		}
		w.Spawn(obj.NewEnemy(kind, s.X, s.Y, spec))
	}

	for _, s := range g.lvl.PowerUpSpawns {
		switch s.Kind {
		case "fire_flower":
			w.Spawn(obj.NewFireFlower(s.X, s.Y, g.specs.items))
		default:
			w.Spawn(obj.NewMushroom(s.X, s.Y, g.specs.items))
		}
	}

	for _, s := range g.lvl.CollectibleSpawns {
		w.Spawn(obj.NewCoin(s.X, s.Y, g.specs.items))
	}

	w.Spawn(obj.NewGoal(g.lvl.GoalX, g.lvl.GoalY, 100))

	player := obj.NewPlayer(g.lvl.SpawnX, g.lvl.SpawnY, g.input, g.specs.player)
	w.AttachPlayer(player)

	camera := obj.NewCamera(g.specs.camera.Smoothing)
	camera.SetBounds(0, g.lvl.PixelWidth, 0, g.lvl.PixelHeight)
	camera.Snap(player.CenterX(), player.CenterY())

	g.world = w
	g.camera = camera
	g.timeRemaining = g.lvl.TimeLimit
	g.introTimer = introDuration
	g.completeTimer = 0
	g.logger.Info("level started", "enemies", len(g.lvl.EnemySpawns), "time_limit", g.lvl.TimeLimit)
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.drainSpecEvents()

	switch g.state {
	case StateMenu:
		if g.input.ConfirmPressed {
			g.startLevel()
			g.state = StatePlaying
		}
	case StatePlaying:
		g.updatePlaying(frameDelta)
	case StatePaused:
		g.pauseUI.Update()
		if g.input.PausePressed {
			g.state = StatePlaying
		}
	case StateGameOver:
		g.gameOverTimer -= frameDelta
		if g.gameOverTimer <= 0 || g.input.ConfirmPressed {
			g.state = StateMenu
		}
	}
	return nil
}

func (g *Game) updatePlaying(dt float64) {
	if g.input.PausePressed {
		g.state = StatePaused
		return
	}
	if g.input.RestartPressed {
		g.startLevel()
		return
	}

	p := g.world.Player
	if p == nil || !p.Active {
		g.state = StateGameOver
		g.gameOverTimer = gameOverDuration
		g.logger.Info("game over", "score", g.finalScore())
		return
	}

	g.timeRemaining -= dt
	if g.timeRemaining <= 0 {
		g.timeRemaining = 0
		p.TakeDamage()
	}

	if g.introTimer > 0 {
		// brief freeze before handing over control
		g.introTimer -= dt
	} else {
		if p.NeedsRespawn {
			p.Respawn(g.lvl.SpawnX, g.lvl.SpawnY)
			g.camera.Snap(p.CenterX(), p.CenterY())
		}
		g.world.Update(dt)
	}

	g.camera.Follow(p.CenterX(), p.CenterY(), dt)

	if g.world.Complete && g.completeTimer == 0 {
		g.completeTimer = completeDuration
		g.logger.Info("level complete", "score", p.Score, "time_remaining", g.timeRemaining)
	}
	if g.completeTimer > 0 {
		g.completeTimer -= dt
		if g.completeTimer <= 0 {
			p.Score += int(g.timeRemaining) * timeBonusRate
			g.state = StateMenu
		}
	}
}

func (g *Game) finalScore() int {
	if g.world == nil || g.world.Player == nil {
		return 0
	}
	return g.world.Player.Score
}

// drainSpecEvents consumes watcher notifications without blocking and
// reloads the spec set so the next startLevel picks up edits.
func (g *Game) drainSpecEvents() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Debug("spec changed", "file", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watch error", "err", err)
		default:
			if changed {
				specs, err := loadSpecs()
				if err != nil {
					g.logger.Warn("spec reload failed", "err", err)
					return
				}
				g.specs = specs
				g.logger.Info("specs reloaded")
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateMenu:
		drawMenu(screen)
	case StatePlaying:
		g.drawWorld(screen)
		g.drawHUD(screen)
	case StatePaused:
		g.drawWorld(screen)
		g.drawHUD(screen)
		g.pauseUI.Draw(screen)
	case StateGameOver:
		drawGameOver(screen, g.gameOverTimer, g.finalScore())
	}
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	if g.world == nil {
		return
	}
	g.world.Entities.Draw(screen, g.camera.X, g.camera.Y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
