package runner

import (
	"fmt"

	"github.com/tuigames/trex-runner/internal/core"
)

// Visual characters for rendering
const (
	TrexBody    = '█'
	TrexHead    = '◆'
	TrexLeg1    = '╱'
	TrexLeg2    = '╲'
	CactusChar  = '▓'
	PteroChar1  = 'w'
	PteroChar2  = 'v'
	CloudChar   = '~'
	StarChar    = '·'
	GroundChar  = '═'
	GroundBump  = '≡'
)

// moonGlyphs indexes moon phase to its rune.
var moonGlyphs = []rune{'●', '◐', '◑', '○', '◔', '◕', '◖'}

// Render draws the current simulation state into the screen buffer,
// scaling virtual viewport pixels to terminal cells. Rendering reads the
// simulation but never feeds back into it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	scaleX := float64(dst.Width()) / g.cfg.Viewport.Width
	scaleY := float64(dst.Height()) / g.cfg.Viewport.Height
	cellX := func(x float64) int { return int(x * scaleX) }
	cellY := func(y float64) int { return int(y * scaleY) }

	night := g.horizon.Night()
	skyColor := core.ColorGray
	if night.Active() {
		skyColor = core.ColorWhite
		g.drawNightSky(dst, cellX, cellY)
	}

	g.drawClouds(dst, cellX, cellY, skyColor)
	g.drawGround(dst, cellX, cellY)
	g.drawObstacles(dst, cellX, cellY)
	g.drawTrex(dst, cellX, cellY)
	g.drawScore(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state == StateWaiting:
		g.drawCenteredMessage(dst, "T-REX RUNNER", "Press SPACE to start")
	case g.state == StateGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore)
		if g.newHighScore {
			sub = fmt.Sprintf("NEW HIGH SCORE: %d  |  Press R to restart", g.finalScore)
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

func (g *Game) drawNightSky(dst *core.Screen, cellX, cellY func(float64) int) {
	night := g.horizon.Night()
	for _, s := range night.Stars() {
		dst.SetColored(cellX(s.X), cellY(s.Y), StarChar, core.ColorWhite)
	}
	glyph := moonGlyphs[0]
	if night.MoonPhase() < len(moonGlyphs) {
		glyph = moonGlyphs[night.MoonPhase()]
	}
	dst.SetColored(cellX(night.MoonX()), 1, glyph, core.ColorYellow)
}

func (g *Game) drawClouds(dst *core.Screen, cellX, cellY func(float64) int, color core.Color) {
	for _, c := range g.horizon.Clouds() {
		x := cellX(c.xPos)
		y := cellY(c.yPos)
		w := core.Max(cellX(g.cfg.Clouds.Width), 3)
		for i := 0; i < w; i++ {
			dst.SetColored(x+i, y, CloudChar, color)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, cellX, cellY func(float64) int) {
	groundY := cellY(g.cfg.Viewport.Height - g.cfg.Viewport.BottomPad)
	segs, bumpy := g.horizon.Ground().Segments()
	width := cellX(g.cfg.Viewport.Width)

	for i := range segs {
		ch := GroundChar
		if bumpy[i] {
			ch = GroundBump
		}
		start := cellX(segs[i])
		for x := core.Max(start, 0); x < core.Min(start+width, dst.Width()); x++ {
			dst.Set(x, groundY, ch)
		}
	}
}

func (g *Game) drawObstacles(dst *core.Screen, cellX, cellY func(float64) int) {
	for _, o := range g.horizon.Obstacles() {
		x := cellX(o.XPos())
		y := cellY(o.YPos())
		w := core.Max(cellX(o.Width()), 1)
		h := core.Max(cellY(o.Type.Height), 1)

		if o.Type.SpeedOffset != 0 {
			// Flying obstacle, wing flap keyed to the tick counter.
			ch := PteroChar1
			if g.tickCount/8%2 == 0 {
				ch = PteroChar2
			}
			for i := 0; i < w; i++ {
				dst.SetColored(x+i, y, ch, core.ColorOrange)
			}
			continue
		}

		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				dst.SetColored(x+dx, y+dy, CactusChar, core.ColorGreen)
			}
		}
	}
}

func (g *Game) drawTrex(dst *core.Screen, cellX, cellY func(float64) int) {
	x := cellX(g.trex.XPos())
	y := cellY(g.trex.YPos())

	if g.trex.Status() == StatusDucking {
		dst.Set(x, y+2, TrexBody)
		dst.Set(x+1, y+2, TrexBody)
		dst.Set(x+2, y+2, TrexHead)
		return
	}

	// 3x3 sprite: head, body, animated legs
	dst.Set(x+1, y, TrexHead)
	dst.Set(x+2, y, TrexBody)
	dst.Set(x, y+1, TrexBody)
	dst.Set(x+1, y+1, TrexBody)
	dst.Set(x+2, y+1, TrexBody)

	switch {
	case g.trex.Status() == StatusJumping:
		dst.Set(x, y+2, TrexLeg1)
		dst.Set(x+1, y+2, TrexLeg2)
	case g.trex.runFrame == 0:
		dst.Set(x, y+2, TrexLeg1)
		dst.Set(x+2, y+2, TrexLeg2)
	default:
		dst.Set(x+1, y+2, TrexLeg1)
		dst.Set(x+2, y+2, TrexLeg2)
	}
}

func (g *Game) drawScore(dst *core.Screen) {
	hi := fmt.Sprintf("HI %s", g.meter.Format(g.meter.HighScore()))
	score := g.meter.Format(g.Score())

	x := dst.Width() - len(hi) - len(score) - 4
	dst.DrawTextColored(x, 0, hi, core.ColorGray)
	if !g.meter.Flashing() {
		dst.DrawTextColored(x+len(hi)+2, 0, score, core.ColorDefault)
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

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
