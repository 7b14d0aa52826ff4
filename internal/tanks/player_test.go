package tanks

import (
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestPlayerGlidesOneTilePerCommand(t *testing.T) {
	g := LoadStage(1)
	p := NewPlayer()

	startY := p.PixelY()
	up := frame(core.ActionUp)

	// First update starts the glide, the next MoveTicks complete it.
	for i := 0; i <= MoveTicks; i++ {
		p.Update(g, up)
	}

	if p.PixelY() != startY-TileSize {
		t.Errorf("player should end exactly one tile up: got %d, want %d", p.PixelY(), startY-TileSize)
	}
	if p.Moving {
		t.Error("glide should be finished")
	}
}

func TestPlayerTurnsEvenWhenBlocked(t *testing.T) {
	g := NewGrid()
	p := NewPlayer()
	p.placeAt(5, 5)
	g.SetTile(5, 4, TileSteel)

	p.Update(g, frame(core.ActionUp))

	if p.Dir != DirUp {
		t.Error("player should face up even though the move is blocked")
	}
	if p.Moving {
		t.Error("blocked move should not start a glide")
	}
}

func TestPlayerInputPriority(t *testing.T) {
	g := NewGrid()
	p := NewPlayer()
	p.placeAt(5, 5)

	p.Update(g, frame(core.ActionUp, core.ActionLeft))

	if p.Dir != DirUp {
		t.Errorf("up should win over left, got %v", p.Dir)
	}
}

func TestPlayerTakeHit(t *testing.T) {
	p := NewPlayer()
	p.Tier = TierSuper

	if p.TakeHit() {
		t.Error("first hit should not defeat a three-life player")
	}
	if p.Lives != PlayerLives-1 {
		t.Errorf("lives = %d, want %d", p.Lives, PlayerLives-1)
	}
	if p.InvulnTimer != InvulnDuration {
		t.Errorf("invulnerability window = %d, want %d", p.InvulnTimer, InvulnDuration)
	}
	if p.Tier != TierNormal {
		t.Error("hit should reset the power tier")
	}

	// Hits inside the window are swallowed.
	if p.TakeHit() {
		t.Error("hit during invulnerability should do nothing")
	}
	if p.Lives != PlayerLives-1 {
		t.Error("invulnerable hit should not cost a life")
	}

	p.InvulnTimer = 0
	p.TakeHit()
	p.InvulnTimer = 0
	if !p.TakeHit() {
		t.Error("losing the last life should report defeat")
	}
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}

	// Repeated hits at zero stay at zero.
	p.InvulnTimer = 0
	p.TakeHit()
	if p.Lives != 0 {
		t.Error("lives should never go negative")
	}
}

func TestPlayerPowerTierProgression(t *testing.T) {
	p := NewPlayer()
	want := []Tier{TierFast, TierDouble, TierSuper, TierSuper}
	for i, w := range want {
		p.PowerUp()
		if p.Tier != w {
			t.Errorf("power-up %d: tier = %v, want %v", i+1, p.Tier, w)
		}
	}
}

func TestPlayerLifeCap(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 20; i++ {
		p.AddLife()
	}
	if p.Lives != MaxPlayerLives {
		t.Errorf("lives = %d, want cap %d", p.Lives, MaxPlayerLives)
	}
}

func TestPlayerShotLimits(t *testing.T) {
	p := NewPlayer()
	shots := NewProjectileSet(nil)

	if !p.CanFire(shots) {
		t.Fatal("fresh player should be able to fire")
	}
	shots.Add(p.Fire())
	if p.CanFire(shots) {
		t.Error("normal tier allows only one shell in flight")
	}

	p.Tier = TierDouble
	if !p.CanFire(shots) {
		t.Error("double tier should allow a second shell")
	}
	shots.Add(p.Fire())
	if p.CanFire(shots) {
		t.Error("double tier should cap at two shells")
	}
}

func TestMuzzlePosition(t *testing.T) {
	p := NewPlayer()
	p.placeAt(5, 5)

	p.Dir = DirUp
	x, y := p.muzzle()
	if x != 5*TileSize+TileSize/2 || y != 5*TileSize {
		t.Errorf("up muzzle at (%d, %d)", x, y)
	}

	p.Dir = DirRight
	x, y = p.muzzle()
	if x != 6*TileSize || y != 5*TileSize+TileSize/2 {
		t.Errorf("right muzzle at (%d, %d)", x, y)
	}
}
