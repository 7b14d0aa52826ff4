package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Telegraph animation: four fog phases of a fixed tick count each
// before the enemy actually materializes.
const (
	FogPhases     = 4
	FogPhaseTicks = 8
)

// SpawnConfig carries the spawn director tuning values.
type SpawnConfig struct {
	EnemiesPerStage int // total enemies a stage introduces
	MaxActive       int // population cap on screen
	SpawnInterval   int // ticks between spawn attempts
	CarryChance     int // percent of enemies carrying an item
}

// EnemyManager owns the live enemies and the spawn pipeline: a
// per-stage queue of archetypes, a stagger timer, and the fog
// telegraph that precedes each materialization.
type EnemyManager struct {
	cfg SpawnConfig
	ai  AIConfig
	rng *SimpleRNG

	enemies   []*Enemy
	queue     []TankKind
	destroyed int
	spawned   int

	spawnTimer int
	fogActive  bool
	fogTileX   int
	fogTileY   int
	fogTimer   int
	fogPhase   int
	pending    TankKind
}

// NewEnemyManager creates an empty manager sharing the game RNG.
func NewEnemyManager(cfg SpawnConfig, ai AIConfig, rng *SimpleRNG) *EnemyManager {
	return &EnemyManager{
		cfg:     cfg,
		ai:      ai,
		rng:     rng,
		enemies: make([]*Enemy, 0, cfg.MaxActive),
	}
}

// InitStage clears all live enemies and rebuilds the spawn queue for
// the given stage.
func (m *EnemyManager) InitStage(stage int) {
	m.enemies = m.enemies[:0]
	m.destroyed = 0
	m.spawned = 0
	m.spawnTimer = 0
	m.fogActive = false
	m.fogTimer = 0
	m.fogPhase = 0
	m.buildQueue(stage)
}

// buildQueue fills the stage's archetype queue. Proportions shift
// with the stage number (fewer light tanks, more of everything else),
// any rounding shortfall or excess is corrected against the light
// count, and the result is shuffled so the order varies per run.
func (m *EnemyManager) buildQueue(stage int) {
	scale := float64(m.cfg.EnemiesPerStage) / 20.0

	clamped := stage
	if clamped > 12 {
		clamped = 12
	}
	light := core.Max(1, int(float64(15-clamped)*scale))
	armored := core.Max(1, core.Min(int(3*scale), int(float64(stage)*scale)))
	fast := core.Max(1, core.Min(int(3*scale), core.Max(0, int(float64(stage-1)*scale))))
	heavy := core.Max(0, core.Min(int(2*scale), core.Max(0, int(float64(stage-3)*scale))))

	total := light + armored + fast + heavy
	if total < m.cfg.EnemiesPerStage {
		light += m.cfg.EnemiesPerStage - total
	} else if total > m.cfg.EnemiesPerStage {
		light = core.Max(0, light-(total-m.cfg.EnemiesPerStage))
	}

	m.queue = m.queue[:0]
	for i := 0; i < light; i++ {
		m.queue = append(m.queue, KindLight)
	}
	for i := 0; i < armored; i++ {
		m.queue = append(m.queue, KindArmored)
	}
	for i := 0; i < fast; i++ {
		m.queue = append(m.queue, KindFastShot)
	}
	for i := 0; i < heavy; i++ {
		m.queue = append(m.queue, KindHeavy)
	}

	// Fisher-Yates on the game RNG keeps the order seed-stable.
	for i := len(m.queue) - 1; i > 0; i-- {
		j := m.rng.Intn(i + 1)
		m.queue[i], m.queue[j] = m.queue[j], m.queue[i]
	}
}

// Update runs the spawn pipeline and every live enemy's AI for one
// tick. Returns the shells fired this tick.
func (m *EnemyManager) Update(g *Grid, shots *ProjectileSet, player *Player) []*Projectile {
	m.updateSpawning()

	var fired []*Projectile
	for _, e := range m.enemies {
		if p := e.Update(g, shots, player, m.rng, m.ai); p != nil {
			fired = append(fired, p)
		}
	}
	m.Compact()
	return fired
}

// updateSpawning advances the stagger timer or, if a telegraph is
// already playing, its fog animation.
func (m *EnemyManager) updateSpawning() {
	if m.fogActive {
		m.updateFog()
		return
	}
	if len(m.queue) == 0 || len(m.enemies) >= m.cfg.MaxActive {
		return
	}
	m.spawnTimer++
	if m.spawnTimer >= m.cfg.SpawnInterval {
		m.spawnTimer = 0
		m.startTelegraph()
	}
}

// startTelegraph picks a spawn cell and begins the fog animation for
// the next queued archetype. Cells already crowded by a live enemy
// are avoided; if every candidate is crowded one is used anyway
// rather than stalling the queue.
func (m *EnemyManager) startTelegraph() {
	if len(m.queue) == 0 {
		return
	}

	var open [][2]int
	for _, s := range spawnTiles {
		px, py := s[0]*TileSize, s[1]*TileSize
		clear := true
		for _, e := range m.enemies {
			dx := e.PixelX() - px
			dy := e.PixelY() - py
			if dx*dx+dy*dy < TileSize*TileSize {
				clear = false
				break
			}
		}
		if clear {
			open = append(open, s)
		}
	}
	if len(open) == 0 {
		open = spawnTiles
	}
	cell := open[m.rng.Intn(len(open))]

	m.pending = m.queue[0]
	m.queue = m.queue[1:]
	m.fogTileX = cell[0]
	m.fogTileY = cell[1]
	m.fogActive = true
	m.fogTimer = 0
	m.fogPhase = 0
}

// updateFog steps the telegraph; when the last phase completes the
// pending enemy materializes.
func (m *EnemyManager) updateFog() {
	m.fogTimer++
	if m.fogTimer < FogPhaseTicks {
		return
	}
	m.fogTimer = 0
	m.fogPhase++
	if m.fogPhase >= FogPhases {
		m.finishSpawn()
	}
}

// finishSpawn re-checks the population cap before materializing: the
// cap may have filled while the telegraph played, in which case the
// archetype goes back to the front of the queue and this attempt is
// abandoned.
func (m *EnemyManager) finishSpawn() {
	m.fogActive = false
	m.fogTimer = 0
	m.fogPhase = 0

	if len(m.enemies) >= m.cfg.MaxActive {
		m.queue = append([]TankKind{m.pending}, m.queue...)
		return
	}

	e := NewEnemy(m.pending, m.fogTileX, m.fogTileY, m.rng, m.cfg.CarryChance, m.ai)
	m.enemies = append(m.enemies, e)
	m.spawned++
}

// Compact removes deactivated enemies and counts them toward stage
// completion. Collision passes flip Active off but never splice the
// list themselves.
func (m *EnemyManager) Compact() {
	live := m.enemies[:0]
	for _, e := range m.enemies {
		if e.Active {
			live = append(live, e)
			continue
		}
		m.destroyed++
	}
	m.enemies = live
}

// Enemies exposes the live list for collision passes and rendering.
func (m *EnemyManager) Enemies() []*Enemy {
	return m.enemies
}

// Remaining returns how many of the stage's enemies are still
// undefeated (queued, telegraphed, or on screen).
func (m *EnemyManager) Remaining() int {
	return m.cfg.EnemiesPerStage - m.destroyed
}

// StageComplete reports whether the stage's full allotment has been
// destroyed.
func (m *EnemyManager) StageComplete() bool {
	return m.destroyed >= m.cfg.EnemiesPerStage
}

// FogState exposes the telegraph for rendering: whether one is
// playing, its tile, and the current phase.
func (m *EnemyManager) FogState() (active bool, tx, ty, phase int) {
	return m.fogActive, m.fogTileX, m.fogTileY, m.fogPhase
}
