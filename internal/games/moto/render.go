package moto

import (
	"fmt"

	"github.com/vkomarov/tui-moto/internal/core"
)

// World units per terminal cell. Cells are roughly twice as tall as wide,
// so the vertical scale is doubled to keep hills round on screen.
const (
	cellW = 8.0
	cellH = 16.0
)

// Visual characters for rendering
const (
	WheelChar   = 'O'
	ChassisChar = '='
	RiderChar   = '@'
	GroundFill  = '░'
	SurfaceFlat = '▀'
	SurfaceDown = '\\'
	SurfaceUp   = '/'
)

// camera returns the world coordinates of the top-left screen corner,
// keeping the bike midpoint centered.
func (g *Game) camera(w, h int) (float64, float64) {
	camX := g.snap.MidX - float64(w)/2*cellW
	camY := g.snap.MidY - float64(h)/2*cellH
	return camX, camY
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	camX, camY := g.camera(w, h)

	g.drawTerrain(dst, camX, camY)
	g.drawBike(dst, camX, camY)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "CRASHED",
			fmt.Sprintf("Distance: %dm  |  Press R to restart", g.DistanceMeters()))
	}
}

// drawTerrain fills every column from the surface down. The surface rune
// follows the local slope so hills read as hills even at terminal resolution.
func (g *Game) drawTerrain(dst *core.Screen, camX, camY float64) {
	w, h := dst.Width(), dst.Height()
	terrain := g.session.Terrain()

	for col := 0; col < w; col++ {
		wx := camX + (float64(col)+0.5)*cellW
		surfaceRow := int((terrain.HeightAt(wx) - camY) / cellH)
		if surfaceRow >= h {
			continue
		}

		slope := terrain.SlopeAt(wx)
		surface := SurfaceFlat
		if slope > 0.3 {
			surface = SurfaceDown
		} else if slope < -0.3 {
			surface = SurfaceUp
		}

		start := core.Max(surfaceRow, 0)
		for row := start; row < h; row++ {
			if row == surfaceRow {
				dst.SetColored(col, row, surface, core.ColorGreen)
			} else {
				dst.SetColored(col, row, GroundFill, core.ColorGray)
			}
		}
	}
}

// drawBike renders wheels, chassis, and rider from the frame snapshot.
func (g *Game) drawBike(dst *core.Screen, camX, camY float64) {
	toScreen := func(wx, wy float64) (int, int) {
		return int((wx - camX) / cellW), int((wy - camY) / cellH)
	}

	rearX, rearY := toScreen(g.snap.RearX, g.snap.RearY)
	frontX, frontY := toScreen(g.snap.FrontX, g.snap.FrontY)

	// Chassis: a few interpolated points between the wheels.
	const chassisPoints = 3
	for i := 1; i <= chassisPoints; i++ {
		t := float64(i) / (chassisPoints + 1)
		cx, cy := toScreen(
			g.snap.RearX+(g.snap.FrontX-g.snap.RearX)*t,
			g.snap.RearY+(g.snap.FrontY-g.snap.RearY)*t,
		)
		dst.SetColored(cx, cy, ChassisChar, core.ColorOrange)
	}

	dst.SetColored(rearX, rearY, WheelChar, core.ColorBrightWhite)
	dst.SetColored(frontX, frontY, WheelChar, core.ColorBrightWhite)

	// Rider sits one row above the midpoint.
	midX, midY := toScreen(g.snap.MidX, g.snap.MidY)
	dst.SetColored(midX, midY-1, RiderChar, core.ColorBrightYellow)
}

// drawHUD shows distance, speed, and the difficulty bonus.
func (g *Game) drawHUD(dst *core.Screen) {
	distText := fmt.Sprintf(" Dist: %dm  Spd: %.0f ", g.DistanceMeters(), g.snap.Speed/unitsPerMeter)
	dst.DrawText(2, 0, distText)

	if g.difficulty != nil && g.difficulty.IsEnabled() {
		bonus := fmt.Sprintf(" x%.1f ", g.difficulty.ScoreMultiplier(g.DistanceMeters()))
		dst.DrawText(dst.Width()-len(bonus)-2, 0, bonus)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
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
