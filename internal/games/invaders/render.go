package invaders

import (
	"fmt"

	"github.com/ametov/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShipChar        = '▲'
	ShipExplodeA    = '✸'
	ShipExplodeB    = '✶'
	AlienChar       = 'Ж'
	PlayerShotChar  = '|'
	AlienShotChar   = '¡'
	GroundChar      = '═'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// cellX maps a logical x coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / g.cfg.Playfield.Width)
}

// cellY maps a logical y coordinate to a screen row below the HUD.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return hudRows + int(y*float64(rows)/g.cfg.Playfield.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderGround(dst)
	g.renderAliens(dst)
	g.renderBullets(dst)
	g.renderShip(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score and lives line.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.sim.Score())
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.sim.Lives())
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)
}

// renderGround draws the invasion line the aliens must not cross.
func (g *Game) renderGround(dst *core.Screen) {
	y := g.cellY(dst, g.cfg.Playfield.GroundY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, y, GroundChar, core.ColorGray)
	}
}

func (g *Game) renderAliens(dst *core.Screen) {
	for _, a := range g.sim.Aliens() {
		x := g.cellX(dst, a.Pos.X)
		y := g.cellY(dst, a.Pos.Y)
		dst.SetCell(x, y, AlienChar, core.ColorBrightGreen)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.sim.PlayerBullets() {
		x := g.cellX(dst, b.Pos.X)
		y := g.cellY(dst, b.Pos.Y)
		dst.SetCell(x, y, PlayerShotChar, core.ColorBrightYellow)
	}
	for _, b := range g.sim.AlienBullets() {
		x := g.cellX(dst, b.Pos.X)
		y := g.cellY(dst, b.Pos.Y)
		dst.SetCell(x, y, AlienShotChar, core.ColorBrightRed)
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	p := g.sim.Player()
	x := g.cellX(dst, p.Pos.X)
	y := g.cellY(dst, p.Pos.Y)

	if p.Exploding {
		// Alternate glyphs per tick for a flash effect
		glyph := ShipExplodeA
		if p.ExplodeTicks%2 == 0 {
			glyph = ShipExplodeB
		}
		dst.SetCell(x, y, glyph, core.ColorBrightRed)
		return
	}
	dst.SetCell(x, y, ShipChar, core.ColorBrightWhite)
}

// renderOverlay draws pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}
	if g.sim.GameOver() {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score())
		g.drawCenteredBox(dst, g.sim.EndMessage(), subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
