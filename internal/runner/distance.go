package runner

import (
	"fmt"
	"math"

	"github.com/tuigames/trex-runner/internal/config"
)

// DistanceMeter converts elapsed horizontal travel into the displayed
// score, tracks the high score, and drives the achievement flash that
// fires every time the score crosses a round-number milestone.
type DistanceMeter struct {
	cfg config.MeterConfig

	highScore       int
	achievement     bool
	flashTimerMs    float64
	flashIterations int
	lastMilestone   int
}

// NewDistanceMeter creates a meter with the given (externally loaded)
// high score.
func NewDistanceMeter(cfg config.MeterConfig, highScore int) *DistanceMeter {
	return &DistanceMeter{cfg: cfg, highScore: highScore}
}

// Score converts accumulated world distance to the displayed score.
func (m *DistanceMeter) Score(distanceRan float64) int {
	return int(math.Round(distanceRan * m.cfg.Coefficient))
}

// Update advances the flash state for the given displayed score.
func (m *DistanceMeter) Update(deltaMs float64, score int) {
	if !m.achievement {
		if score > 0 && m.cfg.AchievementDistance > 0 &&
			score%m.cfg.AchievementDistance == 0 && score != m.lastMilestone {
			m.achievement = true
			m.lastMilestone = score
			m.flashTimerMs = 0
			m.flashIterations = 0
		}
		return
	}

	if m.flashIterations < m.cfg.FlashIterations {
		m.flashTimerMs += deltaMs
		if m.flashTimerMs > 2*m.cfg.FlashDurationMs {
			m.flashTimerMs = 0
			m.flashIterations++
		}
		return
	}

	m.achievement = false
	m.flashTimerMs = 0
	m.flashIterations = 0
}

// Flashing reports whether the score display is currently blanked by the
// achievement flash (the first half of each flash cycle).
func (m *DistanceMeter) Flashing() bool {
	return m.achievement && m.flashTimerMs < m.cfg.FlashDurationMs
}

// AchievementActive reports whether an achievement flash is in progress.
func (m *DistanceMeter) AchievementActive() bool {
	return m.achievement
}

// Format renders a score zero-padded to the configured digit width.
// Scores wider than the configured width are shown in full.
func (m *DistanceMeter) Format(score int) string {
	return fmt.Sprintf("%0*d", m.cfg.Digits, score)
}

// HighScore returns the best score seen so far.
func (m *DistanceMeter) HighScore() int {
	return m.highScore
}

// SetHighScore records a new best. Compared once, at game over.
func (m *DistanceMeter) SetHighScore(score int) {
	if score > m.highScore {
		m.highScore = score
	}
}

// Reset clears the flash state, keeping the high score.
func (m *DistanceMeter) Reset() {
	m.achievement = false
	m.flashTimerMs = 0
	m.flashIterations = 0
	m.lastMilestone = 0
}
