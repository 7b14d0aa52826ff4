package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Shell speed in pixels per tick. Fast-tier shells travel at double
// this.
const BulletSpeed = 2

// Tier is the power level of a tank and the shells it fires. It gates
// shell speed, what terrain a shell can remove, and how many shells the
// owner may have in flight at once.
type Tier int

const (
	TierNormal Tier = iota
	TierFast        // shells travel twice as fast
	TierDouble      // two shells in flight allowed
	TierSuper       // shells break steel
)

// ShotLimit returns how many simultaneous shells this tier allows.
func (t Tier) ShotLimit() int {
	if t >= TierDouble {
		return 2
	}
	return 1
}

// ShellSpeed returns the per-tick shell speed for this tier.
func (t Tier) ShellSpeed() int {
	if t >= TierFast {
		return BulletSpeed * 2
	}
	return BulletSpeed
}

// String returns the HUD name of the tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "NORMAL"
	case TierFast:
		return "FAST"
	case TierDouble:
		return "DOUBLE"
	case TierSuper:
		return "SUPER"
	}
	return "?"
}

// ExplosionSink receives impact positions so an effect can play there.
type ExplosionSink interface {
	AddExplosion(x, y int)
}

// nopExplosions is the stand-in sink used when none is attached, so
// projectile code never has to check for a missing collaborator.
type nopExplosions struct{}

func (nopExplosions) AddExplosion(x, y int) {}

// Projectile is one shell in flight. Position is the shell's center in
// whole pixels; velocity is constant for its lifetime.
type Projectile struct {
	X, Y   int
	Dir    Direction
	Speed  int
	Owner  TankKind
	Tier   Tier
	Active bool
}

// NewProjectile creates an active shell at the given muzzle position.
func NewProjectile(x, y int, dir Direction, speed int, owner TankKind, tier Tier) *Projectile {
	return &Projectile{X: x, Y: y, Dir: dir, Speed: speed, Owner: owner, Tier: tier, Active: true}
}

// Rect returns the 2x2 pixel bounding box centered on the shell.
func (p *Projectile) Rect() core.Rect {
	return core.NewRect(p.X-1, p.Y-1, 2, 2)
}

// advance moves the shell one tick and resolves terrain contact.
// Returns whether the shell struck the base this tick; the caller owns
// what that means (it is a defeat, but deciding so is not this layer's
// job).
func (p *Projectile) advance(g *Grid, sink ExplosionSink) bool {
	if !p.Active {
		return false
	}

	dx, dy := p.Dir.Vector()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed

	// Shells that leave the playfield just vanish; the border steel is
	// never consulted because the bounds check runs first.
	if p.X < 0 || p.X >= PlayfieldW || p.Y < 0 || p.Y >= PlayfieldH {
		p.Active = false
		return false
	}

	tx, ty := PixelToTile(p.X), PixelToTile(p.Y)

	if g.CanDestroy(tx, ty, p.Tier) {
		sink.AddExplosion(p.X, p.Y)
		g.ScheduleDestruction(tx, ty, DestructionDelay, p.Tier)
		p.Active = false
		return false
	}

	switch g.TileAt(tx, ty) {
	case TileBase:
		sink.AddExplosion(p.X, p.Y)
		p.Active = false
		return true
	case TileSteel:
		// Sub-super shells splash harmlessly off steel.
		sink.AddExplosion(p.X, p.Y)
		p.Active = false
	}
	return false
}

// ProjectileSet owns every shell in flight.
type ProjectileSet struct {
	shells     []*Projectile
	explosions ExplosionSink
}

// NewProjectileSet creates an empty set. A nil sink is replaced with a
// no-op stand-in.
func NewProjectileSet(sink ExplosionSink) *ProjectileSet {
	if sink == nil {
		sink = nopExplosions{}
	}
	return &ProjectileSet{
		shells:     make([]*Projectile, 0, 16),
		explosions: sink,
	}
}

// Add appends a shell to the set.
func (s *ProjectileSet) Add(p *Projectile) {
	s.shells = append(s.shells, p)
}

// AdvanceAll moves every active shell one tick and compacts out the
// ones that died. Returns whether any shell struck the base.
func (s *ProjectileSet) AdvanceAll(g *Grid) bool {
	baseHit := false
	for _, p := range s.shells {
		if p.advance(g, s.explosions) {
			baseHit = true
		}
	}
	s.Compact()
	return baseHit
}

// Compact removes inactive shells. Collision passes flip Active off but
// never splice the slice themselves, so iteration elsewhere stays safe.
func (s *ProjectileSet) Compact() {
	live := s.shells[:0]
	for _, p := range s.shells {
		if p.Active {
			live = append(live, p)
		}
	}
	s.shells = live
}

// CountOwned returns how many active shells the owner has in flight.
func (s *ProjectileSet) CountOwned(owner TankKind) int {
	n := 0
	for _, p := range s.shells {
		if p.Active && p.Owner == owner {
			n++
		}
	}
	return n
}

// Shells exposes the live list for collision passes.
func (s *ProjectileSet) Shells() []*Projectile {
	return s.shells
}

// Clear drops every shell, for stage transitions.
func (s *ProjectileSet) Clear() {
	s.shells = s.shells[:0]
}

// ResolveMutualCollisions cancels shells from differing owners that
// overlap, emitting one explosion at each colliding pair's midpoint.
// Same-owner shells never interact. Pairs are visited in list order and
// both members deactivate immediately, so a shell resolves at most one
// pairing per tick.
func (s *ProjectileSet) ResolveMutualCollisions() {
	for i, a := range s.shells {
		if !a.Active {
			continue
		}
		for _, b := range s.shells[i+1:] {
			if !b.Active || a.Owner == b.Owner {
				continue
			}
			if a.Rect().Intersects(b.Rect()) {
				s.explosions.AddExplosion((a.X+b.X)/2, (a.Y+b.Y)/2)
				a.Active = false
				b.Active = false
				break
			}
		}
	}
}
