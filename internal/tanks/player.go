package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Player life and damage rules.
const (
	PlayerLives    = 3
	MaxPlayerLives = 9
	InvulnDuration = 120 // ticks of immunity after taking a hit
)

// Player starting cell, two rows above the base.
const (
	PlayerStartTileX = 7
	PlayerStartTileY = 11
)

// Player is the player-controlled tank. MaxLives and InvulnTicks are
// settable so the config layer can tune them; the constants above are
// the defaults.
type Player struct {
	tankBody
	Tier        Tier
	Lives       int
	MaxLives    int
	InvulnTicks int
	InvulnTimer int
}

// NewPlayer creates a player tank at the starting cell with full lives.
func NewPlayer() *Player {
	p := &Player{
		Lives:       PlayerLives,
		MaxLives:    MaxPlayerLives,
		InvulnTicks: InvulnDuration,
	}
	p.Dir = DirUp
	p.placeAt(PlayerStartTileX, PlayerStartTileY)
	return p
}

// ResetForStage puts the player back on the starting cell facing the
// enemy side. Lives, tier, and any running invulnerability carry over;
// only position and movement state reset between stages.
func (p *Player) ResetForStage() {
	p.placeAt(PlayerStartTileX, PlayerStartTileY)
	p.Dir = DirUp
}

// Alive reports whether the player has lives left.
func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Update runs one tick of player movement. Firing is handled by the
// session, which owns the projectile set.
func (p *Player) Update(g *Grid, in core.InputFrame) {
	if p.InvulnTimer > 0 {
		p.InvulnTimer--
	}

	p.alignToGrid()

	if p.stepGlide() {
		return
	}

	p.handleInput(g, in)
}

// handleInput starts a new glide from directional input. Up wins over
// down, vertical over horizontal; the tank always turns to face the
// held direction even when the move itself is blocked, so the player
// can aim against a wall.
func (p *Player) handleInput(g *Grid, in core.InputFrame) {
	var dir Direction
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	default:
		return
	}

	p.Dir = dir
	dx, dy := dir.Vector()
	if p.canMove(g, dx*TileSize, dy*TileSize) {
		p.startMove(dx*TileSize, dy*TileSize, MoveTicks)
	}
}

// CanFire reports whether the player is under their simultaneous-shell
// limit: one shell for normal and fast tiers, two from double up.
func (p *Player) CanFire(shots *ProjectileSet) bool {
	return shots.CountOwned(KindPlayer) < p.Tier.ShotLimit()
}

// Fire spawns a shell at the muzzle with the player's current tier.
func (p *Player) Fire() *Projectile {
	x, y := p.muzzle()
	return NewProjectile(x, y, p.Dir, p.Tier.ShellSpeed(), KindPlayer, p.Tier)
}

// TakeHit applies one hit to the player. Hits during the
// invulnerability window are ignored. A real hit costs a life, resets
// the power tier, and grants a fresh immunity window. Returns whether
// the player is now defeated. Lives never go below zero: the decrement
// is guarded so repeated hits at zero stay at zero.
func (p *Player) TakeHit() bool {
	if p.InvulnTimer > 0 {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.InvulnTimer = p.InvulnTicks
	p.Tier = TierNormal
	return p.Lives <= 0
}

// PowerUp raises the player's tier one step, capped at super.
func (p *Player) PowerUp() {
	if p.Tier < TierSuper {
		p.Tier++
	}
}

// AddLife grants an extra life up to the cap.
func (p *Player) AddLife() {
	if p.Lives < p.MaxLives {
		p.Lives++
	}
}
