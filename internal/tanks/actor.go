package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// Ticks a tank spends gliding from one cell to the next. Armored tanks
// cover the same distance in half the time.
const (
	MoveTicks     = 8
	MoveTicksFast = 4
)

// TankKind identifies who a tank (or the shell it fired) belongs to.
// Enemy kinds double as archetypes: each carries its own durability,
// score value, and firing cadence.
type TankKind int

const (
	KindPlayer TankKind = iota
	KindLight
	KindArmored
	KindFastShot
	KindHeavy
)

// enemyKinds is the archetype pool the spawn director draws from.
var enemyKinds = []TankKind{KindLight, KindArmored, KindFastShot, KindHeavy}

// Health returns the hit points an enemy of this kind spawns with.
func (k TankKind) Health() int {
	if k == KindHeavy {
		return 4
	}
	return 1
}

// ScoreValue returns the points awarded for destroying this kind.
func (k TankKind) ScoreValue() int {
	switch k {
	case KindLight:
		return 100
	case KindArmored:
		return 200
	case KindFastShot:
		return 300
	case KindHeavy:
		return 400
	}
	return 0
}

// FireInterval returns the minimum ticks between this kind's shots.
func (k TankKind) FireInterval() int {
	if k == KindFastShot {
		return 30
	}
	return 90
}

// MoveDuration returns how many ticks this kind takes to cross a cell.
func (k TankKind) MoveDuration() int {
	if k == KindArmored {
		return MoveTicksFast
	}
	return MoveTicks
}

// String returns a short name for debugging.
func (k TankKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLight:
		return "light"
	case KindArmored:
		return "armored"
	case KindFastShot:
		return "fastshot"
	case KindHeavy:
		return "heavy"
	}
	return "?"
}

// tankBody is the chassis shared by the player and enemies: a
// tile-sized actor that glides between grid-aligned cells. Position is
// fixed-point so the per-tick interpolation steps divide evenly.
type tankBody struct {
	X, Y      Fixed
	Dir       Direction
	TargetX   int // glide destination, whole pixels
	TargetY   int
	Moving    bool
	MoveTimer int
}

// PixelX returns the current X position in whole pixels.
func (b *tankBody) PixelX() int {
	return b.X.ToPixel()
}

// PixelY returns the current Y position in whole pixels.
func (b *tankBody) PixelY() int {
	return b.Y.ToPixel()
}

// TileX returns the tile column the tank's top-left corner is in.
func (b *tankBody) TileX() int {
	return PixelToTile(b.PixelX())
}

// TileY returns the tile row the tank's top-left corner is in.
func (b *tankBody) TileY() int {
	return PixelToTile(b.PixelY())
}

// Rect returns the tank's tile-sized bounding box.
func (b *tankBody) Rect() core.Rect {
	return core.NewRect(b.PixelX(), b.PixelY(), TileSize, TileSize)
}

// placeAt snaps the tank onto a tile and clears any glide in progress.
func (b *tankBody) placeAt(tx, ty int) {
	b.X = ToFixed(tx * TileSize)
	b.Y = ToFixed(ty * TileSize)
	b.TargetX = tx * TileSize
	b.TargetY = ty * TileSize
	b.Moving = false
	b.MoveTimer = 0
}

// canMove reports whether the tank could shift by (dx, dy) pixels:
// the destination must sit inside the playfield and all four corners of
// the tank's footprint must land on passable cells. Probing every
// corner (not just the center) keeps a tile-wide tank from clipping
// through a diagonal gap at tile boundaries.
func (b *tankBody) canMove(g *Grid, dx, dy int) bool {
	nx := b.PixelX() + dx
	ny := b.PixelY() + dy

	if nx < 0 || nx > (GridWidth-1)*TileSize {
		return false
	}
	if ny < 0 || ny > (GridHeight-1)*TileSize {
		return false
	}

	corners := [4][2]int{
		{nx, ny},
		{nx + TileSize - 1, ny},
		{nx, ny + TileSize - 1},
		{nx + TileSize - 1, ny + TileSize - 1},
	}
	for _, c := range corners {
		if !g.IsPassable(PixelToTile(c[0]), PixelToTile(c[1])) {
			return false
		}
	}
	return true
}

// startMove begins a glide of (dx, dy) pixels over the given number of
// ticks. The caller is expected to have checked canMove first.
func (b *tankBody) startMove(dx, dy, ticks int) {
	b.TargetX = b.PixelX() + dx
	b.TargetY = b.PixelY() + dy
	b.MoveTimer = ticks
	b.Moving = true
}

// stepGlide advances an in-progress glide by one tick. Returns false
// when the tank is idle and free to accept a new command; while it
// returns true, new movement input is ignored.
func (b *tankBody) stepGlide() bool {
	if b.MoveTimer <= 0 {
		return false
	}
	b.MoveTimer--
	b.glide()
	return true
}

// glide advances one tick of the current cell-to-cell interpolation,
// snapping exactly onto the destination when the countdown runs out so
// no sub-pixel drift survives into the next move.
func (b *tankBody) glide() {
	if b.MoveTimer <= 0 {
		b.X = ToFixed(b.TargetX)
		b.Y = ToFixed(b.TargetY)
		b.Moving = false
		return
	}
	b.X = b.X.Add(ToFixed(b.TargetX).Sub(b.X).Div(b.MoveTimer + 1))
	b.Y = b.Y.Add(ToFixed(b.TargetY).Sub(b.Y).Div(b.MoveTimer + 1))
}

// setPixel moves the tank to an exact pixel position and cancels any
// glide in progress. Used by collision separation, which shoves tanks
// to computed positions rather than letting an interpolation finish.
func (b *tankBody) setPixel(px, py int) {
	b.X = ToFixed(px)
	b.Y = ToFixed(py)
	b.TargetX = px
	b.TargetY = py
	b.Moving = false
	b.MoveTimer = 0
}

// alignToGrid snaps a stationary tank back onto the nearest cell.
// Collision separation can shove a tank to an off-grid position; left
// there, every future corner probe would straddle two cells and the
// tank would jam.
func (b *tankBody) alignToGrid() {
	if b.Moving || b.MoveTimer > 0 {
		return
	}
	nx := (b.PixelX() + TileSize/2) / TileSize * TileSize
	ny := (b.PixelY() + TileSize/2) / TileSize * TileSize
	if b.X != ToFixed(nx) || b.Y != ToFixed(ny) {
		b.X = ToFixed(nx)
		b.Y = ToFixed(ny)
	}
}

// muzzle returns the pixel position shells spawn at: centered on the
// facing edge of the tank, not its middle.
func (b *tankBody) muzzle() (x, y int) {
	px, py := b.PixelX(), b.PixelY()
	x = px + TileSize/2
	y = py + TileSize/2
	switch b.Dir {
	case DirUp:
		y = py
	case DirDown:
		y = py + TileSize
	case DirLeft:
		x = px
	case DirRight:
		x = px + TileSize
	}
	return x, y
}
