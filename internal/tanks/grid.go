// Package tanks implements a Battle City style tank combat game.
package tanks

// Playfield dimensions. The map is a 16x14 grid of 16-pixel tiles;
// all combat happens in the 256x224 pixel rectangle it spans.
const (
	TileSize   = 16
	GridWidth  = 16
	GridHeight = 14

	PlayfieldW = GridWidth * TileSize
	PlayfieldH = GridHeight * TileSize
)

// Base location in tile coordinates (bottom center).
const (
	BaseTileX = 7
	BaseTileY = 13
)

// DestructionDelay is how many ticks a hit tile stays up while its
// explosion plays before it is actually removed.
const DestructionDelay = 24

// Tile identifies the terrain kind of one grid cell.
type Tile uint8

const (
	TileEmpty  Tile = iota // passable, nothing there
	TileBrick              // blocks tanks, destroyed by any shell
	TileSteel              // blocks tanks, destroyed only by super shells
	TileWater              // blocks tanks, shells fly over
	TileForest             // passable, visual cover only
	TileIce                // passable
	TileBase               // the thing everyone is fighting over
)

// String returns a short name for debugging.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileBrick:
		return "brick"
	case TileSteel:
		return "steel"
	case TileWater:
		return "water"
	case TileForest:
		return "forest"
	case TileIce:
		return "ice"
	case TileBase:
		return "base"
	}
	return "?"
}

// PixelToTile converts a pixel coordinate to a tile coordinate using
// floor division, so probe pixels left of or above the playfield map to
// negative tiles (which read as steel) instead of wrapping to tile 0.
func PixelToTile(px int) int {
	t := px / TileSize
	if px < 0 && px%TileSize != 0 {
		t--
	}
	return t
}

// pendingTile is one scheduled delayed destruction.
type pendingTile struct {
	X, Y  int
	Timer int
}

// Grid holds the tile map for one stage plus the queue of tiles that
// have been shot but not yet removed.
type Grid struct {
	tiles   [GridHeight][GridWidth]Tile
	pending []pendingTile
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{pending: make([]pendingTile, 0, 8)}
}

// TileAt returns the tile at a grid coordinate. Out-of-bounds reads
// return steel, which gives the playfield an implicit indestructible
// border without storing one.
func (g *Grid) TileAt(tx, ty int) Tile {
	if tx < 0 || tx >= GridWidth || ty < 0 || ty >= GridHeight {
		return TileSteel
	}
	return g.tiles[ty][tx]
}

// SetTile sets the tile at a grid coordinate. Out-of-bounds writes are
// ignored.
func (g *Grid) SetTile(tx, ty int, t Tile) {
	if tx < 0 || tx >= GridWidth || ty < 0 || ty >= GridHeight {
		return
	}
	g.tiles[ty][tx] = t
}

// IsPassable reports whether a tank may occupy the cell. Cells that are
// mid-destruction still block movement until their timer fires, so a
// tank cannot ghost through a wall that is visibly still standing.
func (g *Grid) IsPassable(tx, ty int) bool {
	if g.PendingAt(tx, ty) {
		return false
	}
	switch g.TileAt(tx, ty) {
	case TileEmpty, TileForest, TileIce:
		return true
	}
	return false
}

// CanDestroy reports whether a shell of the given tier destroys the
// cell. Brick falls to anything, steel only to super shells, and the
// base is never removed through this path (losing it is handled as a
// defeat condition, not terrain damage).
func (g *Grid) CanDestroy(tx, ty int, tier Tier) bool {
	switch g.TileAt(tx, ty) {
	case TileBrick:
		return true
	case TileSteel:
		return tier >= TierSuper
	}
	return false
}

// ScheduleDestruction queues the cell for removal after delay ticks if
// a shell of the given tier can destroy it. Returns whether anything
// was scheduled.
func (g *Grid) ScheduleDestruction(tx, ty, delay int, tier Tier) bool {
	if !g.CanDestroy(tx, ty, tier) {
		return false
	}
	g.pending = append(g.pending, pendingTile{X: tx, Y: ty, Timer: delay})
	return true
}

// PendingAt reports whether the cell has a destruction scheduled.
func (g *Grid) PendingAt(tx, ty int) bool {
	for _, p := range g.pending {
		if p.X == tx && p.Y == ty {
			return true
		}
	}
	return false
}

// Tick advances all destruction timers, removing tiles whose countdown
// has run out.
func (g *Grid) Tick() {
	live := g.pending[:0]
	for _, p := range g.pending {
		p.Timer--
		if p.Timer <= 0 {
			g.SetTile(p.X, p.Y, TileEmpty)
			continue
		}
		live = append(live, p)
	}
	g.pending = live
}

// BaseIntact reports whether the base tile is still standing.
func (g *Grid) BaseIntact() bool {
	return g.TileAt(BaseTileX, BaseTileY) == TileBase
}
