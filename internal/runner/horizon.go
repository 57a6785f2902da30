package runner

import (
	"math/rand"

	"github.com/tuigames/trex-runner/internal/config"
)

// Horizon owns and advances the scrolling world: the ground line, the
// obstacle queue, the cloud set, and the night cycle.
type Horizon struct {
	cfg *config.Config
	rng *rand.Rand

	obstacles []*Obstacle
	history   []string // most recent obstacle type ids, newest last
	clouds    []*Cloud
	ground    *HorizonLine
	night     *NightMode
}

// NewHorizon creates a horizon seeded for deterministic spawning.
func NewHorizon(cfg *config.Config, seed int64) *Horizon {
	rng := rand.New(rand.NewSource(seed))
	h := &Horizon{
		cfg:    cfg,
		rng:    rng,
		ground: NewHorizonLine(cfg.Viewport.Width, rng),
		night:  NewNightMode(cfg.Night, rng, cfg.Viewport.Width),
	}
	h.clouds = append(h.clouds, NewCloud(cfg.Clouds, rng, cfg.Viewport.Width))
	return h
}

// Reset clears the world for a new run, reseeding the RNG.
func (h *Horizon) Reset(seed int64) {
	h.rng = rand.New(rand.NewSource(seed))
	h.obstacles = h.obstacles[:0]
	h.history = h.history[:0]
	h.clouds = h.clouds[:0]
	h.ground = NewHorizonLine(h.cfg.Viewport.Width, h.rng)
	h.night.rng = h.rng
	h.night.Reset()
	h.clouds = append(h.clouds, NewCloud(h.cfg.Clouds, h.rng, h.cfg.Viewport.Width))
}

// Update advances the world by one tick at the given speed. Obstacles only
// move once the run has started; scenery always scrolls.
func (h *Horizon) Update(deltaMs, speed float64, updateObstacles bool) {
	if deltaMs <= 0 {
		return
	}

	h.ground.Update(deltaMs, speed)
	h.updateClouds(deltaMs, speed)
	if updateObstacles {
		h.updateObstacles(deltaMs, speed)
	}
}

// UpdateNight advances the day/night cycle; see NightMode.Update.
func (h *Horizon) UpdateNight(deltaMs float64, activate bool) {
	if deltaMs <= 0 {
		return
	}
	h.night.Update(deltaMs, activate)
}

// updateObstacles scrolls and culls the queue, then spawns once the
// trailing obstacle has cleared its gap.
func (h *Horizon) updateObstacles(deltaMs, speed float64) {
	kept := h.obstacles[:0]
	for _, o := range h.obstacles {
		o.Update(deltaMs, speed)
		if o.IsVisible() {
			kept = append(kept, o)
		}
	}
	h.obstacles = kept

	if len(h.obstacles) == 0 {
		h.addNewObstacle(speed)
		return
	}

	last := h.obstacles[len(h.obstacles)-1]
	if last.XPos()+last.Width()+last.Gap() < h.cfg.Viewport.Width {
		h.addNewObstacle(speed)
	}
}

// addNewObstacle picks a random type compatible with the current speed,
// avoiding more than maxDuplication consecutive spawns of the same type.
func (h *Horizon) addNewObstacle(speed float64) {
	eligible := make([]config.ObstacleType, 0, len(h.cfg.Obstacles.Types))
	for _, t := range h.cfg.Obstacles.Types {
		if t.MinSpeed <= speed {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return
	}

	preferred := eligible
	if len(eligible) > 1 {
		unblocked := make([]config.ObstacleType, 0, len(eligible))
		for _, t := range eligible {
			if !h.duplicateBlocked(t.ID) {
				unblocked = append(unblocked, t)
			}
		}
		if len(unblocked) > 0 {
			preferred = unblocked
		}
	}

	t := preferred[h.rng.Intn(len(preferred))]
	o := NewObstacle(t, h.rng, h.cfg.Obstacles, h.cfg.Viewport.Width, speed)
	h.obstacles = append(h.obstacles, o)

	h.history = append(h.history, t.ID)
	if max := h.cfg.Obstacles.MaxDuplication; max > 0 && len(h.history) > max {
		h.history = h.history[len(h.history)-max:]
	}
}

// duplicateBlocked reports whether the type has already filled the recent
// spawn history.
func (h *Horizon) duplicateBlocked(id string) bool {
	max := h.cfg.Obstacles.MaxDuplication
	if max <= 0 || len(h.history) < max {
		return false
	}
	for _, prev := range h.history[len(h.history)-max:] {
		if prev != id {
			return false
		}
	}
	return true
}

// updateClouds drifts the cloud set at a fraction of the world speed and
// spawns a new cloud once the youngest has cleared its gap.
func (h *Horizon) updateClouds(deltaMs, speed float64) {
	dx := h.cfg.Clouds.SpeedFactor * speed * deltaMs / msPerFrame

	kept := h.clouds[:0]
	for _, c := range h.clouds {
		c.Update(dx, h.cfg.Clouds.Width)
		if !c.removed {
			kept = append(kept, c)
		}
	}
	h.clouds = kept

	if len(h.clouds) == 0 {
		h.clouds = append(h.clouds, NewCloud(h.cfg.Clouds, h.rng, h.cfg.Viewport.Width))
		return
	}

	last := h.clouds[len(h.clouds)-1]
	if len(h.clouds) < h.cfg.Clouds.MaxCount &&
		h.cfg.Viewport.Width-last.xPos > last.gap &&
		h.cfg.Clouds.Frequency > h.rng.Float64() {
		h.clouds = append(h.clouds, NewCloud(h.cfg.Clouds, h.rng, h.cfg.Viewport.Width))
	}
}

// FrontObstacle returns the obstacle nearest the player, or nil.
// Obstacles behind it cannot overlap the player by the spawn-gap invariant.
func (h *Horizon) FrontObstacle() *Obstacle {
	if len(h.obstacles) == 0 {
		return nil
	}
	return h.obstacles[0]
}

// Obstacles returns the queue ordered front to back.
func (h *Horizon) Obstacles() []*Obstacle {
	return h.obstacles
}

// Clouds returns the current cloud set.
func (h *Horizon) Clouds() []*Cloud {
	return h.clouds
}

// Ground returns the scrolling ground line.
func (h *Horizon) Ground() *HorizonLine {
	return h.ground
}

// Night returns the night cycle.
func (h *Horizon) Night() *NightMode {
	return h.night
}
