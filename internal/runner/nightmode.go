package runner

import (
	"math/rand"

	"github.com/tuigames/trex-runner/internal/config"
)

// Star is a background night-sky sprite.
type Star struct {
	X, Y float64
}

// NightMode is the distance-cycled day/night inversion: a moon that
// advances one phase per activation and a field of slowly drifting stars.
// It affects rendering only, never collision.
type NightMode struct {
	cfg       config.NightConfig
	rng       *rand.Rand
	viewportW float64

	active    bool
	timerMs   float64
	moonPhase int
	moonX     float64
	stars     []Star
}

// NewNightMode creates an inactive night cycle.
func NewNightMode(cfg config.NightConfig, rng *rand.Rand, viewportW float64) *NightMode {
	return &NightMode{
		cfg:       cfg,
		rng:       rng,
		viewportW: viewportW,
	}
}

// Update advances the cycle. activate fires when the score crosses an
// invert-distance multiple; an active night fades out after the configured
// duration.
func (n *NightMode) Update(deltaMs float64, activate bool) {
	if n.active {
		n.timerMs += deltaMs
		n.drift(deltaMs)
		if n.timerMs > n.cfg.FadeDurationMs {
			n.active = false
			n.timerMs = 0
		}
		return
	}

	if activate {
		n.active = true
		n.timerMs = 0
		if n.cfg.MoonPhases > 0 {
			n.moonPhase = (n.moonPhase + 1) % n.cfg.MoonPhases
		}
		n.moonX = n.viewportW - n.viewportW/8
		n.placeStars()
	}
}

// drift moves the moon and stars slowly leftward, wrapping at the edges.
func (n *NightMode) drift(deltaMs float64) {
	dx := n.cfg.StarSpeed * deltaMs / msPerFrame
	n.moonX -= dx / 2
	if n.moonX < 0 {
		n.moonX = n.viewportW
	}
	for i := range n.stars {
		n.stars[i].X -= dx
		if n.stars[i].X < 0 {
			n.stars[i].X = n.viewportW
		}
	}
}

func (n *NightMode) placeStars() {
	n.stars = make([]Star, n.cfg.StarCount)
	for i := range n.stars {
		n.stars[i] = Star{
			X: n.rng.Float64() * n.viewportW,
			Y: n.rng.Float64() * n.viewportW / 10,
		}
	}
}

// Active reports whether night is currently shown.
func (n *NightMode) Active() bool {
	return n.active
}

// MoonPhase returns the current phase index.
func (n *NightMode) MoonPhase() int {
	return n.moonPhase
}

// MoonX returns the moon's horizontal position.
func (n *NightMode) MoonX() float64 {
	return n.moonX
}

// Stars returns the current star field.
func (n *NightMode) Stars() []Star {
	return n.stars
}

// Reset deactivates the cycle but keeps the moon phase, matching a fresh
// run after a restart.
func (n *NightMode) Reset() {
	n.active = false
	n.timerMs = 0
	n.stars = nil
}
