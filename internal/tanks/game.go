package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/registry"
)

// Session states
const (
	StateTitle      = "title"      // title screen, waiting for start
	StatePlaying    = "playing"    // live simulation
	StatePaused     = "paused"     // simulation suspended
	StateStageClear = "stageclear" // bonus tally before the next stage
	StateGameOver   = "gameover"   // base lost or lives exhausted
	StateWin        = "win"        // all stages cleared
)

// Session timers, in ticks.
const (
	GameOverDelay   = 300 // game-over screen before returning to title
	StageClearDelay = 120 // stage-clear screen before the next stage
)

// ShieldFlashPeriod is how often the expiring base shield alternates
// between steel and the original ring tiles.
const ShieldFlashPeriod = 30

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// shieldCell is one saved ring tile under an active base shield.
type shieldCell struct {
	X, Y int
	Tile Tile
}

// Game is the tank game session: the state machine over title,
// playing, defeat and stage-clear, and the per-tick orchestration of
// every subsystem in a fixed order.
type Game struct {
	// World
	grid       *Grid
	player     *Player
	enemies    *EnemyManager
	shots      *ProjectileSet
	items      *ItemManager
	explosions *ExplosionManager

	// Session state
	state      string
	stateTimer int
	score      int
	highScore  int
	stage      int
	tickCount  int

	// Timed effects
	freezeTimer  int
	shieldTimer  int
	shieldBackup []shieldCell
	grenade      bool

	// Collaborators and configuration
	events     core.EventSink
	rng        *SimpleRNG
	runtime    core.RuntimeConfig
	cfg        config.TanksConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new tank game instance.
func New() *Game {
	return &Game{events: core.NopSink{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Battle Tanks"
}

// SetEventSink attaches a gameplay event receiver. A nil sink falls
// back to the discarding stand-in.
func (g *Game) SetEventSink(sink core.EventSink) {
	if sink == nil {
		sink = core.NopSink{}
	}
	g.events = sink
}

// SetHighScore tells the session the stored record, for the HUD and
// the title screen. Persistence itself lives outside the core.
func (g *Game) SetHighScore(hs int) {
	g.highScore = hs
}

// IsNewHighScore reports whether the current score beats the stored
// record handed in via SetHighScore.
func (g *Game) IsNewHighScore() bool {
	return g.score > g.highScore
}

// Reset initializes or restarts the game at the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTanks(configPath)
	if err != nil {
		cfg = config.DefaultTanksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTanksPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// The playfield renders two columns per tile plus a HUD frame.
	g.minScreenW = GridWidth*2 + 2
	g.minScreenH = GridHeight + 4
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.explosions = NewExplosionManager()
	g.shots = NewProjectileSet(g.explosions)
	g.items = NewItemManager(g.itemConfig())

	g.score = 0
	g.stage = 1
	g.tickCount = 0
	g.newPlayer()
	g.initStage()

	g.state = StateTitle
	g.stateTimer = 0
}

// newPlayer creates a fresh player tank with the configured rules.
func (g *Game) newPlayer() {
	g.player = NewPlayer()
	g.player.Lives = g.cfg.Player.Lives
	g.player.MaxLives = g.cfg.Player.MaxLives
	g.player.InvulnTicks = g.cfg.Player.InvulnTicks
}

// itemConfig maps the config layer's item section into the manager's
// parameter struct.
func (g *Game) itemConfig() ItemConfig {
	return ItemConfig{
		LifeTicks:   g.cfg.Items.LifeTicks,
		FlashTicks:  g.cfg.Items.FlashTicks,
		FreezeTicks: g.cfg.Items.FreezeTicks,
		ShieldTicks: g.cfg.Items.ShieldTicks,
		HelmetTicks: g.cfg.Items.HelmetTicks,
	}
}

// aiConfig returns the enemy tuning for the current stage, with the
// difficulty manager's stage scaling applied to the fire chances.
func (g *Game) aiConfig() AIConfig {
	return AIConfig{
		FireChanceAligned: g.difficulty.FireChance(g.cfg.AI.FireChanceAligned, g.stage),
		FireChanceBlind:   g.difficulty.FireChance(g.cfg.AI.FireChanceBlind, g.stage),
		ChaseChance:       g.cfg.AI.ChaseChance,
		RedirectMin:       g.cfg.AI.RedirectMin,
		RedirectMax:       g.cfg.AI.RedirectMax,
		AlignmentRange:    g.cfg.AI.AlignmentRange,
	}
}

// initStage rebuilds the world for the current stage number: fresh
// terrain, an empty battlefield, and a new spawn queue. Score, lives
// and power tier carry across stages.
func (g *Game) initStage() {
	g.grid = LoadStage(g.stage)
	g.player.ResetForStage()

	spawnCfg := SpawnConfig{
		EnemiesPerStage: g.cfg.Spawning.EnemiesPerStage,
		MaxActive:       g.cfg.Spawning.MaxActive,
		SpawnInterval:   g.difficulty.SpawnInterval(g.cfg.Spawning.SpawnInterval, g.stage),
		CarryChance:     g.cfg.Spawning.CarryChance,
	}
	g.enemies = NewEnemyManager(spawnCfg, g.aiConfig(), g.rng)
	g.enemies.InitStage(g.stage)

	g.shots.Clear()
	g.items.Clear()
	g.explosions.Clear()
	g.freezeTimer = 0
	g.shieldTimer = 0
	g.shieldBackup = nil
	g.grenade = false
}

// startCampaign begins a fresh run from stage one.
func (g *Game) startCampaign() {
	g.score = 0
	g.stage = 1
	g.newPlayer()
	g.initStage()
	g.state = StatePlaying
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.state {
	case StateTitle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.startCampaign()
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
			break
		}
		g.updatePlaying(in)

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}

	case StateStageClear:
		g.stateTimer--
		if g.stateTimer <= 0 {
			g.advanceStage()
		}

	case StateGameOver, StateWin:
		if in.Has(core.ActionRestart) {
			g.startCampaign()
			break
		}
		g.stateTimer--
		if g.stateTimer <= 0 {
			g.state = StateTitle
		}
	}

	return core.StepResult{State: g.State()}
}

// updatePlaying runs one simulation tick. The phase order is load
// bearing: scoring in the collision pass assumes projectiles already
// moved, the win/lose checks assume collisions already ran, and the
// grenade consumes kills before the map and explosion timers advance
// past them.
func (g *Game) updatePlaying(in core.InputFrame) {
	g.player.Update(g.grid, in)
	if in.Has(core.ActionFire) && g.player.Alive() && g.player.CanFire(g.shots) {
		g.shots.Add(g.player.Fire())
		g.events.Emit(core.EventFire)
	}

	// A running clock pickup suspends the whole enemy subsystem:
	// no movement, no spawning, no firing.
	if g.freezeTimer > 0 {
		g.freezeTimer--
	} else {
		for _, p := range g.enemies.Update(g.grid, g.shots, g.player) {
			g.shots.Add(p)
			g.events.Emit(core.EventFire)
		}
	}

	baseHit := g.shots.AdvanceAll(g.grid)
	g.shots.ResolveMutualCollisions()

	g.updateItems()
	g.updateShield()
	g.grid.Tick()
	g.explosions.Tick()

	if !baseHit {
		baseHit = g.resolveCollisions()
	}
	if baseHit {
		g.loseBase()
		return
	}
	if !g.player.Alive() {
		g.gameOver()
		return
	}
	if g.enemies.StageComplete() {
		g.clearStage()
	}
}

// updateItems ages the field pickups and detonates a collected
// grenade: every live enemy dies at once, each worth its kill score
// plus the grenade bonus.
func (g *Game) updateItems() {
	g.items.Tick()

	if !g.grenade {
		return
	}
	g.grenade = false
	for _, e := range g.enemies.Enemies() {
		if !e.Active {
			continue
		}
		cx, cy := e.Rect().Center()
		g.explosions.AddExplosion(cx, cy)
		g.events.Emit(core.EventExplosion)
		g.score += e.Kind.ScoreValue() + g.cfg.Scoring.GrenadeBonus
		g.events.Emit(core.EventEnemyDestroyed)
		e.Active = false
	}
	g.enemies.Compact()
}

// applyItem applies a collected pickup's effect.
func (g *Game) applyItem(kind ItemKind) {
	switch kind {
	case ItemStar:
		g.player.PowerUp()
		g.events.Emit(core.EventPowerUp)
	case ItemGrenade:
		// Consumed on the next items phase, not immediately.
		g.grenade = true
	case ItemTank:
		g.player.AddLife()
	case ItemShovel:
		g.activateShield()
	case ItemClock:
		g.freezeTimer = g.cfg.Items.FreezeTicks
	case ItemHelmet:
		g.player.InvulnTimer = g.cfg.Items.HelmetTicks
	}
}

// activateShield turns the base's ring of neighbor cells to steel,
// saving whatever stood there for restoration when the shield
// expires. Collecting a second shovel while shielded just restarts
// the timer.
func (g *Game) activateShield() {
	if g.shieldTimer <= 0 {
		g.shieldBackup = g.shieldBackup[:0]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				tx, ty := BaseTileX+dx, BaseTileY+dy
				if tx < 0 || tx >= GridWidth || ty < 0 || ty >= GridHeight {
					continue
				}
				g.shieldBackup = append(g.shieldBackup, shieldCell{X: tx, Y: ty, Tile: g.grid.TileAt(tx, ty)})
			}
		}
	}
	g.shieldTimer = g.cfg.Items.ShieldTicks
	g.setShieldRing(true)
}

// setShieldRing writes either steel or the saved originals onto the
// ring cells.
func (g *Game) setShieldRing(steel bool) {
	for _, c := range g.shieldBackup {
		if steel {
			g.grid.SetTile(c.X, c.Y, TileSteel)
		} else {
			g.grid.SetTile(c.X, c.Y, c.Tile)
		}
	}
}

// updateShield runs the base shield countdown. Near expiry the ring
// flashes between steel and the original tiles as a warning; at zero
// the originals come back for good.
func (g *Game) updateShield() {
	if g.shieldTimer <= 0 {
		return
	}
	g.shieldTimer--
	if g.shieldTimer <= 0 {
		g.setShieldRing(false)
		return
	}
	if g.shieldTimer <= g.cfg.Items.FlashTicks {
		g.setShieldRing((g.shieldTimer/ShieldFlashPeriod)%2 == 0)
	}
}

// clearStage tallies the stage bonus and enters the stage-clear
// screen.
func (g *Game) clearStage() {
	g.score += g.stage*g.cfg.Scoring.StageBonus + g.player.Lives*g.cfg.Scoring.LifeBonus
	g.events.Emit(core.EventStageCleared)
	g.state = StateStageClear
	g.stateTimer = StageClearDelay
}

// advanceStage moves to the next stage, or ends the campaign with the
// completion bonus after the last one.
func (g *Game) advanceStage() {
	g.stage++
	if g.stage > TotalStages {
		g.score += g.cfg.Scoring.CampaignBonus
		g.state = StateWin
		g.stateTimer = GameOverDelay
		return
	}
	g.initStage()
	g.state = StatePlaying
}

// loseBase ends the session because the base was destroyed.
func (g *Game) loseBase() {
	g.events.Emit(core.EventBaseLost)
	g.gameOver()
}

// gameOver enters the defeat state.
func (g *Game) gameOver() {
	g.events.Emit(core.EventGameOver)
	g.state = StateGameOver
	g.stateTimer = GameOverDelay
}

// Stage returns the current 1-based stage number, for persistence and
// display outside the core.
func (g *Game) Stage() int {
	return g.stage
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("tanks", func() registry.Game {
		return New()
	})
}
