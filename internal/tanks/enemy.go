package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// AIConfig carries the enemy behavior tuning values. Chances are
// percentages, timers are ticks, the alignment range is in tiles. All
// of these come from the config layer so balance changes do not need a
// rebuild.
type AIConfig struct {
	FireChanceAligned int // fire roll when lined up with a target
	FireChanceBlind   int // speculative fire roll without alignment
	ChaseChance       int // bias toward moving at the player on redirect
	RedirectMin       int // randomized redirect timer range
	RedirectMax       int
	AlignmentRange    int // how far the alignment scan reaches
}

// Enemy is one AI-controlled tank. Its behavior is purely timer- and
// position-driven: every tick it independently decides whether to
// pick a new direction, start a move, and take a shot.
type Enemy struct {
	tankBody
	Kind        TankKind
	Health      int
	Active      bool
	Carrier     bool
	CarriedItem ItemKind

	fireTimer     int
	redirectTimer int
}

// NewEnemy creates an enemy of the given kind on a tile. The initial
// facing, redirect timer, and item-carrier roll are all drawn from the
// game RNG at construction.
func NewEnemy(kind TankKind, tx, ty int, rng *SimpleRNG, carryChance int, ai AIConfig) *Enemy {
	e := &Enemy{
		Kind:   kind,
		Health: kind.Health(),
		Active: true,
	}
	e.placeAt(tx, ty)
	e.Dir = Direction(rng.Intn(4))
	e.redirectTimer = rng.Rangen(ai.RedirectMin, ai.RedirectMax)
	if rng.Chance(carryChance) {
		e.Carrier = true
		e.CarriedItem = randomItemKind(rng)
	}
	return e
}

// Damaged reports whether a heavy tank has been worn down enough for
// the renderer to show its damaged state.
func (e *Enemy) Damaged() bool {
	return e.Kind == KindHeavy && e.Health <= 2
}

// Update runs one tick of this enemy's AI. Returns a shell if the
// enemy fired, nil otherwise; the caller owns adding it to the set.
func (e *Enemy) Update(g *Grid, shots *ProjectileSet, player *Player, rng *SimpleRNG, ai AIConfig) *Projectile {
	if !e.Active {
		return nil
	}

	e.fireTimer++
	if e.redirectTimer > 0 {
		e.redirectTimer--
	}

	// A tank that somehow escaped the playfield is removed rather than
	// left to confuse the collision passes.
	if e.PixelX() < -TileSize || e.PixelX() > PlayfieldW ||
		e.PixelY() < -TileSize || e.PixelY() > PlayfieldH {
		e.Active = false
		return nil
	}

	if !e.stepGlide() {
		e.alignToGrid()
		dx, dy := e.Dir.Vector()
		if e.redirectTimer <= 0 || !e.canMove(g, dx*TileSize, dy*TileSize) {
			e.chooseDirection(g, player, rng, ai)
			e.redirectTimer = rng.Rangen(ai.RedirectMin, ai.RedirectMax)
		}
		dx, dy = e.Dir.Vector()
		if e.canMove(g, dx*TileSize, dy*TileSize) {
			e.startMove(dx*TileSize, dy*TileSize, e.Kind.MoveDuration())
		}
	}

	return e.maybeFire(shots, player, rng, ai)
}

// chooseDirection picks a new facing from the immediately passable
// directions. With a configured chance the pick is biased toward the
// player's dominant axis; otherwise it is uniform among candidates. A
// fully boxed-in tank keeps its facing and waits.
func (e *Enemy) chooseDirection(g *Grid, player *Player, rng *SimpleRNG, ai AIConfig) {
	var candidates []Direction
	for d := DirUp; d <= DirRight; d++ {
		dx, dy := d.Vector()
		if e.canMove(g, dx*TileSize, dy*TileSize) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return
	}

	if player.Alive() && rng.Chance(ai.ChaseChance) {
		want := e.directionToward(player.PixelX(), player.PixelY())
		for _, d := range candidates {
			if d == want {
				e.Dir = want
				return
			}
		}
	}

	e.Dir = candidates[rng.Intn(len(candidates))]
}

// directionToward returns the cardinal direction whose axis dominates
// the displacement to the given pixel position.
func (e *Enemy) directionToward(px, py int) Direction {
	dx := px - e.PixelX()
	dy := py - e.PixelY()
	if core.Abs(dx) > core.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// maybeFire evaluates this tick's firing decision. The gate is the
// kind's cooldown plus a one-shell-in-flight budget shared by the
// archetype. An alignment with the player (checked first) or the base
// raises the fire chance and turns the tank to face its target;
// without alignment a low-chance speculative shot may still happen.
func (e *Enemy) maybeFire(shots *ProjectileSet, player *Player, rng *SimpleRNG, ai AIConfig) *Projectile {
	if e.fireTimer < e.Kind.FireInterval() {
		return nil
	}
	if shots.CountOwned(e.Kind) >= 1 {
		return nil
	}

	dir, aligned := e.bestAttackDirection(player, ai)
	chance := ai.FireChanceBlind
	if aligned {
		chance = ai.FireChanceAligned
	}
	if !rng.Chance(chance) {
		return nil
	}

	if aligned {
		e.Dir = dir
	}
	e.fireTimer = 0
	return e.fire()
}

// bestAttackDirection scans the four cardinals for direct row or
// column alignment with the player first, then the base. Alignment is
// a same-row/same-column check with the correct sign of approach
// within the configured range; there is no occlusion test, so walls
// between shooter and target do not stop the tank from trying.
func (e *Enemy) bestAttackDirection(player *Player, ai AIConfig) (Direction, bool) {
	type target struct{ tx, ty int }
	targets := make([]target, 0, 2)
	if player.Alive() {
		targets = append(targets, target{player.TileX(), player.TileY()})
	}
	targets = append(targets, target{BaseTileX, BaseTileY})

	for _, t := range targets {
		for d := DirUp; d <= DirRight; d++ {
			if e.alignedWith(t.tx, t.ty, d, ai.AlignmentRange) {
				return d, true
			}
		}
	}
	return e.Dir, false
}

// alignedWith reports whether firing in direction d from this tank's
// tile would travel toward the target tile within the given range.
func (e *Enemy) alignedWith(tx, ty int, d Direction, rangeTiles int) bool {
	ex, ey := e.TileX(), e.TileY()
	switch d {
	case DirUp:
		return tx == ex && ty < ey && ey-ty <= rangeTiles
	case DirDown:
		return tx == ex && ty > ey && ty-ey <= rangeTiles
	case DirLeft:
		return ty == ey && tx < ex && ex-tx <= rangeTiles
	case DirRight:
		return ty == ey && tx > ex && tx-ex <= rangeTiles
	}
	return false
}

// fire spawns this enemy's shell. Fast-shot tanks launch at double
// speed; enemy shells are always normal power, so steel shrugs them
// off.
func (e *Enemy) fire() *Projectile {
	x, y := e.muzzle()
	speed := BulletSpeed
	if e.Kind == KindFastShot {
		speed *= 2
	}
	return NewProjectile(x, y, e.Dir, speed, e.Kind, TierNormal)
}
