package tanks

import (
	"fmt"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// One map tile renders as two terminal columns by one row, so the
// square 256x224 playfield comes out roughly square in a cell grid.
const (
	cellsPerTileX = 2
	boardCols     = GridWidth * cellsPerTileX
	boardRows     = GridHeight
)

// dirGlyph returns the arrow a tank renders as.
func dirGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	case DirRight:
		return '▶'
	}
	return '?'
}

// kindColor returns the body color for a tank archetype.
func kindColor(k TankKind) core.Color {
	switch k {
	case KindLight:
		return core.ColorWhite
	case KindArmored:
		return core.ColorCyan
	case KindFastShot:
		return core.ColorMagenta
	case KindHeavy:
		return core.ColorBrightRed
	}
	return core.ColorYellow
}

// explosionGlyphs indexed by animation phase.
var explosionGlyphs = [ExplosionPhases]rune{'*', '✶', '✺'}

// fogGlyphs indexed by telegraph phase.
var fogGlyphs = [FogPhases]rune{'·', '✦', '✷', '✹'}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.screenTooSmall {
		screen.DrawTextCentered(screen.Height()/2-1, "Terminal too small")
		screen.DrawTextCentered(screen.Height()/2, fmt.Sprintf("Need at least %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	ox := (screen.Width() - (boardCols + 2)) / 2
	if ox < 0 {
		ox = 0
	}
	oy := 1

	g.drawHUD(screen, ox, 0)
	screen.DrawBox(core.NewRect(ox, oy, boardCols+2, boardRows+2))

	// Inside the border
	bx, by := ox+1, oy+1

	g.drawTiles(screen, bx, by, false)
	g.drawItems(screen, bx, by)
	g.drawFog(screen, bx, by)
	g.drawTanks(screen, bx, by)
	g.drawShells(screen, bx, by)
	g.drawExplosions(screen, bx, by)
	// Forest redraws over everything beneath it: tanks and shells
	// passing through stay hidden.
	g.drawTiles(screen, bx, by, true)

	g.drawStatusLine(screen, ox, oy+boardRows+2)
	g.drawOverlay(screen)
}

// drawHUD draws the score line above the playfield.
func (g *Game) drawHUD(screen *core.Screen, x, y int) {
	hud := fmt.Sprintf("SCORE %06d  HI %06d  STAGE %02d", g.score, core.Max(g.score, g.highScore), g.stage)
	screen.DrawTextColored(x, y, hud, core.ColorBrightWhite)
}

// drawStatusLine draws lives, power tier, and the enemy counter below
// the playfield.
func (g *Game) drawStatusLine(screen *core.Screen, x, y int) {
	status := fmt.Sprintf("LIVES %d  %s", g.player.Lives, g.player.Tier)
	screen.DrawTextColored(x, y, status, core.ColorYellow)

	// Remaining enemies as a strip of markers, capped so the strip
	// never collides with the left half of the line.
	remaining := core.Clamp(g.enemies.Remaining(), 0, 20)
	for i := 0; i < remaining; i++ {
		screen.SetCell(x+boardCols+1-remaining+i, y, '▾', core.ColorGray)
	}

	if g.freezeTimer > 0 {
		screen.DrawTextColored(x+len(status)+2, y, "FROZEN", core.ColorBrightCyan)
	}
}

// drawTiles draws the terrain layer. With forestOnly it draws only
// forest cells, for the cover pass after entities.
func (g *Game) drawTiles(screen *core.Screen, bx, by int, forestOnly bool) {
	for ty := 0; ty < GridHeight; ty++ {
		for tx := 0; tx < GridWidth; tx++ {
			tile := g.grid.TileAt(tx, ty)
			if forestOnly != (tile == TileForest) {
				continue
			}

			var r rune
			var c core.Color
			switch tile {
			case TileBrick:
				r, c = '▒', core.ColorOrange
			case TileSteel:
				r, c = '█', core.ColorGray
			case TileWater:
				r, c = '≈', core.ColorBrightBlue
			case TileForest:
				r, c = '♣', core.ColorGreen
			case TileIce:
				r, c = '░', core.ColorBrightCyan
			case TileBase:
				r, c = '◈', core.ColorBrightYellow
			default:
				continue
			}

			cx := bx + tx*cellsPerTileX
			cy := by + ty
			screen.SetCell(cx, cy, r, c)
			screen.SetCell(cx+1, cy, r, c)
			if tile == TileBase {
				screen.SetCell(cx+1, cy, '◉', c)
			}
		}
	}
}

// drawItems draws the field pickups. Expiring items blink.
func (g *Game) drawItems(screen *core.Screen, bx, by int) {
	flashTicks := g.cfg.Items.FlashTicks
	for _, it := range g.items.Items() {
		if !it.Active {
			continue
		}
		if it.Flashing(flashTicks) && (it.Timer/8)%2 == 0 {
			continue
		}
		cx := bx + PixelToTile(it.X)*cellsPerTileX
		cy := by + PixelToTile(it.Y)
		screen.SetCell(cx, cy, it.Kind.Glyph(), core.ColorBrightYellow)
		screen.SetCell(cx+1, cy, it.Kind.Glyph(), core.ColorBrightYellow)
	}
}

// drawFog draws the spawn telegraph, growing through its phases.
func (g *Game) drawFog(screen *core.Screen, bx, by int) {
	active, tx, ty, phase := g.enemies.FogState()
	if !active {
		return
	}
	if phase >= FogPhases {
		phase = FogPhases - 1
	}
	cx := bx + tx*cellsPerTileX
	cy := by + ty
	screen.SetCell(cx, cy, fogGlyphs[phase], core.ColorBrightWhite)
	screen.SetCell(cx+1, cy, fogGlyphs[phase], core.ColorBrightWhite)
}

// drawTanks draws the player and every live enemy as a direction arrow
// plus a body cell.
func (g *Game) drawTanks(screen *core.Screen, bx, by int) {
	for _, e := range g.enemies.Enemies() {
		if !e.Active {
			continue
		}
		c := kindColor(e.Kind)
		if e.Damaged() {
			c = core.ColorOrange
		}
		g.drawTank(screen, bx, by, &e.tankBody, c)
	}

	if g.player.Alive() {
		c := core.ColorYellow
		// Invulnerability flickers the hull.
		if g.player.InvulnTimer > 0 && (g.player.InvulnTimer/4)%2 == 0 {
			c = core.ColorBrightWhite
		}
		g.drawTank(screen, bx, by, &g.player.tankBody, c)
	}
}

// drawTank draws one tank at its pixel position.
func (g *Game) drawTank(screen *core.Screen, bx, by int, b *tankBody, c core.Color) {
	cx := bx + b.PixelX()*cellsPerTileX/TileSize
	cy := by + b.PixelY()/TileSize
	screen.SetCell(cx, cy, dirGlyph(b.Dir), c)
	screen.SetCell(cx+1, cy, '▣', c)
}

// drawShells draws every shell in flight.
func (g *Game) drawShells(screen *core.Screen, bx, by int) {
	for _, p := range g.shots.Shells() {
		if !p.Active {
			continue
		}
		c := core.ColorBrightWhite
		if p.Owner != KindPlayer {
			c = core.ColorRed
		}
		cx := bx + p.X*cellsPerTileX/TileSize
		cy := by + p.Y/TileSize
		screen.SetCell(cx, cy, '•', c)
	}
}

// drawExplosions draws the running impact effects.
func (g *Game) drawExplosions(screen *core.Screen, bx, by int) {
	for _, e := range g.explosions.Explosions() {
		cx := bx + e.X*cellsPerTileX/TileSize
		cy := by + e.Y/TileSize
		screen.SetCell(cx, cy, explosionGlyphs[e.Phase()], core.ColorBrightRed)
	}
}

// drawOverlay draws the state-dependent banner over the playfield.
func (g *Game) drawOverlay(screen *core.Screen) {
	switch g.state {
	case StateTitle:
		g.drawBanner(screen, []string{
			"BATTLE TANKS",
			"",
			fmt.Sprintf("HIGH SCORE %06d", g.highScore),
			"",
			"ENTER or SPACE to start",
			"Arrows/WASD move, SPACE fire",
		})
	case StatePaused:
		g.drawBanner(screen, []string{"PAUSED", "", "P to resume"})
	case StateStageClear:
		g.drawBanner(screen, []string{
			fmt.Sprintf("STAGE %d CLEAR", g.stage),
			"",
			fmt.Sprintf("SCORE %06d", g.score),
		})
	case StateGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("SCORE %06d", g.score)}
		if g.IsNewHighScore() {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R to restart")
		g.drawBanner(screen, lines)
	case StateWin:
		g.drawBanner(screen, []string{
			"CAMPAIGN COMPLETE",
			"",
			fmt.Sprintf("SCORE %06d", g.score),
			"",
			"R to play again",
		})
	}
}

// drawBanner draws a bordered message box centered on the screen.
func (g *Game) drawBanner(screen *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2

	x := (screen.Width() - w) / 2
	y := (screen.Height() - h) / 2
	box := core.NewRect(x, y, w, h)
	screen.DrawRect(box, ' ')
	screen.DrawBox(box)
	for i, l := range lines {
		screen.DrawTextCenteredColored(y+1+i, l, core.ColorBrightWhite)
	}
}
