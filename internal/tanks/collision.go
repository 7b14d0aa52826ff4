package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// baseRect is the base tile's bounding box in world pixels.
func baseRect() core.Rect {
	return core.NewRect(BaseTileX*TileSize, BaseTileY*TileSize, TileSize, TileSize)
}

// resolveCollisions runs the tick's entity-vs-entity passes in a fixed
// order: player shells against enemies, enemy shells against the
// player and the base, tank separation, then item pickup. Returns
// whether an enemy shell reached the base, which the session treats as
// a defeat.
func (g *Game) resolveCollisions() bool {
	g.playerShotsVsEnemies()
	g.enemies.Compact()
	if g.enemyShotsVsPlayerAndBase() {
		return true
	}
	g.shots.Compact()
	g.separateTanks()
	g.collectItems()
	return false
}

// playerShotsVsEnemies applies each player shell to at most one enemy.
// A hit always spends the shell; only a kill scores. A killed carrier
// drops its item where it died.
func (g *Game) playerShotsVsEnemies() {
	for _, shot := range g.shots.Shells() {
		if !shot.Active || shot.Owner != KindPlayer {
			continue
		}
		for _, e := range g.enemies.Enemies() {
			if !e.Active {
				continue
			}
			if !shot.Rect().Intersects(e.Rect()) {
				continue
			}
			shot.Active = false
			e.Health--
			if e.Health <= 0 {
				cx, cy := e.Rect().Center()
				g.explosions.AddExplosion(cx, cy)
				g.events.Emit(core.EventExplosion)
				g.score += e.Kind.ScoreValue()
				g.events.Emit(core.EventEnemyDestroyed)
				if e.Carrier {
					g.dropItem(e)
				}
				e.Active = false
			} else {
				g.events.Emit(core.EventHit)
			}
			break
		}
	}
}

// dropItem places a killed carrier's item on the cell it died on,
// clamped inside the playfield.
func (g *Game) dropItem(e *Enemy) {
	tx := core.Clamp(e.TileX(), 0, GridWidth-1)
	ty := core.Clamp(e.TileY(), 0, GridHeight-1)
	g.items.Spawn(tx*TileSize, ty*TileSize, e.CarriedItem)
}

// enemyShotsVsPlayerAndBase applies enemy shells to the player and the
// base. A shell on the player is spent even when the invulnerability
// window swallows the hit. A shell on the base short-circuits the
// whole pass: the session is over, so nothing after it matters.
func (g *Game) enemyShotsVsPlayerAndBase() bool {
	base := baseRect()
	for _, shot := range g.shots.Shells() {
		if !shot.Active || shot.Owner == KindPlayer {
			continue
		}

		if g.player.Alive() && shot.Rect().Intersects(g.player.Rect()) {
			// The shell is spent and detonates on every overlap, even
			// when the invulnerability window swallows the damage.
			shot.Active = false
			cx, cy := g.player.Rect().Center()
			g.explosions.AddExplosion(cx, cy)
			g.events.Emit(core.EventExplosion)
			if g.player.InvulnTimer == 0 {
				if g.player.TakeHit() {
					g.events.Emit(core.EventPlayerDestroyed)
				} else {
					g.events.Emit(core.EventHit)
				}
			}
			continue
		}

		if shot.Rect().Intersects(base) {
			cx, cy := base.Center()
			g.explosions.AddExplosion(cx, cy)
			g.events.Emit(core.EventExplosion)
			shot.Active = false
			g.grid.SetTile(BaseTileX, BaseTileY, TileEmpty)
			return true
		}
	}
	return false
}

// separateTanks shoves the player off any enemy it overlaps. The push
// goes along whichever axis the two centers differ more on, one tile
// away from the enemy, clamped into the playfield. The player always
// yields; enemies never get displaced, so AI glides stay intact.
func (g *Game) separateTanks() {
	if !g.player.Alive() {
		return
	}
	for _, e := range g.enemies.Enemies() {
		if !e.Active || !g.player.Rect().Intersects(e.Rect()) {
			continue
		}

		pcx, pcy := g.player.Rect().Center()
		ecx, ecy := e.Rect().Center()
		dx := pcx - ecx
		dy := pcy - ecy

		px, py := g.player.PixelX(), g.player.PixelY()
		if core.Abs(dx) >= core.Abs(dy) {
			if dx >= 0 {
				px = e.PixelX() + TileSize
			} else {
				px = e.PixelX() - TileSize
			}
		} else {
			if dy >= 0 {
				py = e.PixelY() + TileSize
			} else {
				py = e.PixelY() - TileSize
			}
		}

		px = core.Clamp(px, 0, (GridWidth-1)*TileSize)
		py = core.Clamp(py, 0, (GridHeight-1)*TileSize)
		g.player.setPixel(px, py)
	}
}

// collectItems picks up any field item the player is touching and
// applies its effect.
func (g *Game) collectItems() {
	if !g.player.Alive() {
		return
	}
	for _, it := range g.items.Items() {
		if !it.Active || !g.player.Rect().Intersects(it.Rect()) {
			continue
		}
		it.Active = false
		g.events.Emit(core.EventPickup)
		g.applyItem(it.Kind)
	}
}
