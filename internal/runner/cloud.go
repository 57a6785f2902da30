package runner

import (
	"math"
	"math/rand"

	"github.com/tuigames/trex-runner/internal/config"
)

// Cloud is a decorative sprite drifting at a fraction of the world speed.
// Clouds never participate in collision.
type Cloud struct {
	xPos, yPos float64
	gap        float64 // clearance before the next cloud may spawn
	removed    bool
}

// NewCloud spawns a cloud just beyond the right edge at a random sky level.
func NewCloud(cfg config.CloudConfig, rng *rand.Rand, viewportW float64) *Cloud {
	return &Cloud{
		xPos: viewportW,
		yPos: cfg.MaxSkyLevel + rng.Float64()*(cfg.MinSkyLevel-cfg.MaxSkyLevel),
		gap:  cfg.MinGap + rng.Float64()*(cfg.MaxGap-cfg.MinGap),
	}
}

// Update drifts the cloud left by the given displacement.
func (c *Cloud) Update(dx float64, width float64) {
	if c.removed {
		return
	}
	c.xPos -= dx
	if c.xPos+width < 0 {
		c.removed = true
	}
}

// HorizonLine is the scrolling ground: two segments that wrap around the
// viewport, alternating a bumpy texture.
type HorizonLine struct {
	viewportW float64
	xPos      [2]float64
	bumpy     [2]bool
	rng       *rand.Rand
}

// NewHorizonLine creates the ground line covering the viewport.
func NewHorizonLine(viewportW float64, rng *rand.Rand) *HorizonLine {
	h := &HorizonLine{viewportW: viewportW, rng: rng}
	h.Reset()
	return h
}

// Reset restores the two segments to their starting positions.
func (h *HorizonLine) Reset() {
	h.xPos[0] = 0
	h.xPos[1] = h.viewportW
	h.bumpy[0] = false
	h.bumpy[1] = h.rng.Float64() > 0.5
}

// Update scrolls both segments left, wrapping a segment behind the other
// once it has fully left the viewport.
func (h *HorizonLine) Update(deltaMs, speed float64) {
	increment := math.Floor(speed * deltaMs / msPerFrame)

	for i := range h.xPos {
		h.xPos[i] -= increment
	}
	for i := range h.xPos {
		if h.xPos[i] <= -h.viewportW {
			other := 1 - i
			h.xPos[i] = h.xPos[other] + h.viewportW
			h.bumpy[i] = h.rng.Float64() > 0.5
		}
	}
}

// Segments returns the x offsets and bump flags of the two ground segments.
func (h *HorizonLine) Segments() ([2]float64, [2]bool) {
	return h.xPos, h.bumpy
}
