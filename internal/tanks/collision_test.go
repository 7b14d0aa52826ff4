package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.startCampaign()
	return g
}

// addEnemy places a test enemy directly on the field, bypassing the
// spawn pipeline.
func (g *Game) addEnemy(kind TankKind, tx, ty int) *Enemy {
	e := NewEnemy(kind, tx, ty, g.rng, 0, g.aiConfig())
	g.enemies.enemies = append(g.enemies.enemies, e)
	return e
}

func TestPlayerShellKillsEnemy(t *testing.T) {
	g := newPlayingGame(t, 1)
	e := g.addEnemy(KindLight, 5, 5)

	g.shots.Add(NewProjectile(e.PixelX()+8, e.PixelY()+8, DirUp, BulletSpeed, KindPlayer, TierNormal))
	g.playerShotsVsEnemies()

	if e.Active {
		t.Error("light tank should die to one shell")
	}
	if g.score != KindLight.ScoreValue() {
		t.Errorf("score = %d, want %d", g.score, KindLight.ScoreValue())
	}
	g.enemies.Compact()
	if g.enemies.destroyed != 1 {
		t.Error("kill should count toward stage completion")
	}
}

func TestHeavyTankSoaksHits(t *testing.T) {
	g := newPlayingGame(t, 1)
	e := g.addEnemy(KindHeavy, 5, 5)

	for i := 1; i <= 3; i++ {
		g.shots.Add(NewProjectile(e.PixelX()+8, e.PixelY()+8, DirUp, BulletSpeed, KindPlayer, TierNormal))
		g.playerShotsVsEnemies()
		g.shots.Compact()
		if !e.Active {
			t.Fatalf("heavy tank died after %d hits", i)
		}
	}
	if g.score != 0 {
		t.Error("partial damage should not score")
	}

	g.shots.Add(NewProjectile(e.PixelX()+8, e.PixelY()+8, DirUp, BulletSpeed, KindPlayer, TierNormal))
	g.playerShotsVsEnemies()

	if e.Active {
		t.Error("fourth hit should destroy the heavy tank")
	}
	if g.score != KindHeavy.ScoreValue() {
		t.Errorf("score = %d, want %d", g.score, KindHeavy.ScoreValue())
	}
}

func TestShellSpentOnOneEnemy(t *testing.T) {
	g := newPlayingGame(t, 1)
	a := g.addEnemy(KindLight, 5, 5)
	b := g.addEnemy(KindLight, 5, 5)

	g.shots.Add(NewProjectile(a.PixelX()+8, a.PixelY()+8, DirUp, BulletSpeed, KindPlayer, TierNormal))
	g.playerShotsVsEnemies()

	killed := 0
	if !a.Active {
		killed++
	}
	if !b.Active {
		killed++
	}
	if killed != 1 {
		t.Errorf("one shell should kill exactly one enemy, killed %d", killed)
	}
}

func TestCarrierDropsItem(t *testing.T) {
	g := newPlayingGame(t, 1)
	e := g.addEnemy(KindLight, 5, 5)
	e.Carrier = true
	e.CarriedItem = ItemStar

	g.shots.Add(NewProjectile(e.PixelX()+8, e.PixelY()+8, DirUp, BulletSpeed, KindPlayer, TierNormal))
	g.playerShotsVsEnemies()

	items := g.items.Items()
	if len(items) != 1 {
		t.Fatalf("carrier death should drop one item, got %d", len(items))
	}
	if items[0].Kind != ItemStar {
		t.Errorf("dropped kind = %v, want star", items[0].Kind)
	}
	if PixelToTile(items[0].X) != 5 || PixelToTile(items[0].Y) != 5 {
		t.Error("item should drop where the carrier died")
	}
}

func TestEnemyShellCostsALife(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.player.setPixel(3*TileSize, 5*TileSize)
	px, py := g.player.Rect().Center()

	g.shots.Add(NewProjectile(px, py, DirDown, BulletSpeed, KindLight, TierNormal))
	if g.enemyShotsVsPlayerAndBase() {
		t.Fatal("hitting the player is not a base hit")
	}

	if g.player.Lives != g.cfg.Player.Lives-1 {
		t.Errorf("lives = %d, want %d", g.player.Lives, g.cfg.Player.Lives-1)
	}
	if g.player.InvulnTimer == 0 {
		t.Error("surviving a hit should grant an immunity window")
	}
	// Damage is taken in place: the tank keeps fighting from where it
	// was hit instead of warping back to the stage start.
	if g.player.PixelX() != 3*TileSize || g.player.PixelY() != 5*TileSize {
		t.Errorf("surviving player moved to (%d,%d), should hold position",
			g.player.PixelX(), g.player.PixelY())
	}

	// A second shell during the window is spent and still detonates,
	// but costs nothing.
	before := len(g.explosions.Explosions())
	shell := NewProjectile(px, py, DirDown, BulletSpeed, KindLight, TierNormal)
	g.shots.Add(shell)
	g.enemyShotsVsPlayerAndBase()

	if shell.Active {
		t.Error("shell should be spent even on an invulnerable player")
	}
	if len(g.explosions.Explosions()) != before+1 {
		t.Error("a swallowed hit still shows an explosion")
	}
	if g.player.Lives != g.cfg.Player.Lives-1 {
		t.Error("invulnerable player should not lose a life")
	}
}

func TestEnemyShellDestroysBase(t *testing.T) {
	g := newPlayingGame(t, 1)
	bx, by := baseRect().Center()

	g.shots.Add(NewProjectile(bx, by, DirDown, BulletSpeed, KindLight, TierNormal))
	if !g.enemyShotsVsPlayerAndBase() {
		t.Fatal("shell on the base should report a base hit")
	}
	if g.grid.BaseIntact() {
		t.Error("base tile should be gone")
	}
}

func TestTankSeparationPushesPlayer(t *testing.T) {
	g := newPlayingGame(t, 1)
	e := g.addEnemy(KindLight, 5, 5)

	// Overlap the player slightly right of the enemy's center.
	g.player.setPixel(e.PixelX()+4, e.PixelY())
	g.separateTanks()

	if g.player.Rect().Intersects(e.Rect()) {
		t.Error("separation should leave the tanks disjoint")
	}
	if g.player.PixelX() != e.PixelX()+TileSize {
		t.Errorf("player should sit one tile right of the enemy, at x=%d", g.player.PixelX())
	}
	if e.PixelX() != 5*TileSize || e.PixelY() != 5*TileSize {
		t.Error("the enemy never yields ground")
	}
}

func TestTankSeparationClampsAtFieldEdge(t *testing.T) {
	g := newPlayingGame(t, 1)

	// Enemy mid-glide near the left border: the one-tile push would
	// land the player outside the field, so it clamps to the edge and
	// the tanks may stay in contact for the tick.
	e := g.addEnemy(KindLight, 0, 5)
	e.setPixel(10, 5*TileSize)
	g.player.setPixel(2, 5*TileSize)

	g.separateTanks()

	if g.player.PixelX() != 0 {
		t.Errorf("player x = %d, want clamp to the field edge at 0", g.player.PixelX())
	}
	if !g.player.Rect().Intersects(e.Rect()) {
		t.Error("clamped push at the border leaves a residual overlap")
	}
}

func TestItemPickupEffects(t *testing.T) {
	g := newPlayingGame(t, 1)

	g.applyItem(ItemStar)
	if g.player.Tier != TierFast {
		t.Error("star should raise the power tier")
	}

	g.applyItem(ItemTank)
	if g.player.Lives != g.cfg.Player.Lives+1 {
		t.Error("tank item should grant a life")
	}

	g.applyItem(ItemClock)
	if g.freezeTimer != g.cfg.Items.FreezeTicks {
		t.Errorf("clock should freeze enemies for %d ticks", g.cfg.Items.FreezeTicks)
	}

	g.applyItem(ItemHelmet)
	if g.player.InvulnTimer != g.cfg.Items.HelmetTicks {
		t.Errorf("helmet should grant %d ticks of immunity", g.cfg.Items.HelmetTicks)
	}

	g.applyItem(ItemGrenade)
	if !g.grenade {
		t.Error("grenade arms for the next items phase")
	}
}

func TestPlayerCollectsFieldItem(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.items.Spawn(g.player.PixelX(), g.player.PixelY(), ItemStar)

	g.collectItems()

	if g.player.Tier != TierFast {
		t.Error("overlapping item should be collected and applied")
	}
	if g.items.Items()[0].Active {
		t.Error("collected item should deactivate")
	}
}

func TestGrenadeDetonation(t *testing.T) {
	g := newPlayingGame(t, 1)
	g.addEnemy(KindLight, 3, 3)
	g.addEnemy(KindHeavy, 9, 3)
	g.grenade = true

	g.updateItems()

	if len(g.enemies.Enemies()) != 0 {
		t.Error("grenade should clear every enemy on the field")
	}
	want := KindLight.ScoreValue() + KindHeavy.ScoreValue() + 2*g.cfg.Scoring.GrenadeBonus
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if g.grenade {
		t.Error("grenade is consumed on detonation")
	}
	if g.enemies.destroyed != 2 {
		t.Error("grenade kills count toward stage completion")
	}
}

func TestShieldRingLifecycle(t *testing.T) {
	g := newPlayingGame(t, 1)

	// The authored ring around the base is brick.
	ringX, ringY := BaseTileX-1, BaseTileY
	if g.grid.TileAt(ringX, ringY) != TileBrick {
		t.Fatal("expected a brick ring cell next to the base")
	}

	g.applyItem(ItemShovel)
	if g.grid.TileAt(ringX, ringY) != TileSteel {
		t.Error("shovel should turn the ring to steel")
	}
	if g.shieldTimer != g.cfg.Items.ShieldTicks {
		t.Errorf("shield timer = %d, want %d", g.shieldTimer, g.cfg.Items.ShieldTicks)
	}

	for g.shieldTimer > 0 {
		g.updateShield()
	}
	if g.grid.TileAt(ringX, ringY) != TileBrick {
		t.Error("expired shield should restore the original ring")
	}
}
