package tanks

import "github.com/vovakirdan/tui-tanks/internal/core"

// TotalStages is how many stages the campaign runs before the
// completion bonus is awarded.
const TotalStages = 16

// Enemy entry points along the top edge, in tile coordinates.
var spawnTiles = [][2]int{{0, 0}, {6, 0}, {12, 0}}

// stage1Layout is the authored opening stage. Legend: '.' empty,
// 'B' brick, 'S' steel, '~' water, 'F' forest. The base and its
// protective ring are stamped on afterwards by placeBase.
var stage1Layout = []string{
	"................",
	".B.B.B.~~.B.B.B.",
	".B.B.B~~~~B.B.B.",
	".B.B.B.~~.B.B.B.",
	".B.B........B.B.",
	".....B.SS.B.....",
	"S.BB.S.SS.S.BB.S",
	".....B....B.....",
	".B.B...FF...B.B.",
	".BBB.BFFFFB.BBB.",
	".B.B...FF...B.B.",
	".B.B........B.B.",
	".B.B..BBB...B.B.",
	"......B.B.......",
}

// LoadStage builds the grid for a 1-based stage number. Stage 1 is the
// authored layout; later stages are generated from the stage number, so
// the same stage always produces the same terrain.
func LoadStage(stage int) *Grid {
	g := NewGrid()
	if stage == 1 {
		parseLayout(g, stage1Layout)
	} else {
		generateStage(g, stage)
	}
	placeBase(g)
	return g
}

// parseLayout fills the grid from an ASCII map.
func parseLayout(g *Grid, lines []string) {
	for ty, line := range lines {
		for tx := 0; tx < len(line) && tx < GridWidth; tx++ {
			var t Tile
			switch line[tx] {
			case 'B':
				t = TileBrick
			case 'S':
				t = TileSteel
			case '~':
				t = TileWater
			case 'F':
				t = TileForest
			case 'I':
				t = TileIce
			default:
				t = TileEmpty
			}
			g.SetTile(tx, ty, t)
		}
	}
}

// generateStage lays out a procedural stage. Obstacle counts scale with
// the stage number; placement rolls that land on protected ground (near
// spawns, near the base, or on an occupied cell) are simply discarded,
// which keeps every stage playable without any retry loop.
func generateStage(g *Grid, stage int) {
	rng := NewSimpleRNG(int64(stage))

	brickCount := 15 + stage*2
	for i := 0; i < brickCount; i++ {
		tx := rng.Rangen(0, GridWidth-1)
		ty := rng.Rangen(2, GridHeight-4)
		if validPlacement(g, tx, ty) {
			g.SetTile(tx, ty, TileBrick)
		}
	}

	steelCount := 3 + stage
	for i := 0; i < steelCount; i++ {
		tx := rng.Rangen(0, GridWidth-1)
		ty := rng.Rangen(2, GridHeight-4)
		if validPlacement(g, tx, ty) {
			g.SetTile(tx, ty, TileSteel)
		}
	}

	// Two 2x2 water patches regardless of stage.
	for i := 0; i < 2; i++ {
		sx := rng.Rangen(1, GridWidth-3)
		sy := rng.Rangen(3, GridHeight-5)
		for dx := 0; dx < 2; dx++ {
			for dy := 0; dy < 2; dy++ {
				if validPlacement(g, sx+dx, sy+dy) {
					g.SetTile(sx+dx, sy+dy, TileWater)
				}
			}
		}
	}

	// 3x3 forest patches for cover, more on later stages.
	forestPatches := 1 + stage/3
	for i := 0; i < forestPatches; i++ {
		sx := rng.Rangen(1, GridWidth-4)
		sy := rng.Rangen(3, GridHeight-5)
		for dx := 0; dx < 3; dx++ {
			for dy := 0; dy < 3; dy++ {
				if validPlacement(g, sx+dx, sy+dy) {
					g.SetTile(sx+dx, sy+dy, TileForest)
				}
			}
		}
	}
}

// validPlacement reports whether a generated obstacle may occupy the
// cell: it must stay clear of a 3x3 area around each spawn point, a 5x5
// area around the base, and any cell that already holds terrain.
func validPlacement(g *Grid, tx, ty int) bool {
	if tx < 0 || tx >= GridWidth || ty < 0 || ty >= GridHeight {
		return false
	}
	for _, s := range spawnTiles {
		if core.Abs(tx-s[0]) <= 1 && core.Abs(ty-s[1]) <= 1 {
			return false
		}
	}
	if core.Abs(tx-BaseTileX) <= 2 && core.Abs(ty-BaseTileY) <= 2 {
		return false
	}
	return g.TileAt(tx, ty) == TileEmpty
}

// placeBase stamps the base tile and rings it with brick on whatever
// neighboring cells are still empty.
func placeBase(g *Grid) {
	g.SetTile(BaseTileX, BaseTileY, TileBase)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			bx, by := BaseTileX+dx, BaseTileY+dy
			if bx < 0 || bx >= GridWidth || by < 0 || by >= GridHeight {
				continue
			}
			if g.TileAt(bx, by) == TileEmpty {
				g.SetTile(bx, by, TileBrick)
			}
		}
	}
}
