package runner

import (
	"math"
	"math/rand"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
)

// Obstacle is a spawned instance of an obstacle type: a group of 1..n
// sprites sharing one position, one gap to the next spawn, and a widened
// set of collision sub-boxes.
type Obstacle struct {
	Type config.ObstacleType

	xPos, yPos  float64
	size        int     // duplicate count within the group
	width       float64 // Type.Width * size
	speedOffset float64 // per-obstacle speed variation (flying types)
	gap         float64 // required clearance before the next spawn

	collisionBoxes []core.Box
	removed        bool
}

// NewObstacle spawns an obstacle of the given type just beyond the right
// edge of the viewport.
func NewObstacle(t config.ObstacleType, rng *rand.Rand, oc config.ObstaclesConfig, viewportW, speed float64) *Obstacle {
	o := &Obstacle{
		Type: t,
		xPos: viewportW,
		size: 1 + rng.Intn(oc.MaxGroupSize),
	}

	// Groups only appear once the run is fast enough for the type.
	if o.size > 1 && t.MultipleSpeed > speed {
		o.size = 1
	}
	o.width = t.Width * float64(o.size)

	o.yPos = t.YPositions[0]
	if len(t.YPositions) > 1 {
		o.yPos = t.YPositions[rng.Intn(len(t.YPositions))]
	}

	o.collisionBoxes = groupBoxes(t.CollisionBoxes, o.width)

	// Flying types drift slightly faster or slower than the ground.
	if t.SpeedOffset != 0 {
		if rng.Float64() > 0.5 {
			o.speedOffset = t.SpeedOffset
		} else {
			o.speedOffset = -t.SpeedOffset
		}
	}

	o.gap = obstacleGap(o.width, t.MinGap, oc, speed, rng)
	return o
}

// groupBoxes duplicates a type's sub-boxes across a group by stretching the
// middle box to span the duplicated sprites.
func groupBoxes(src []config.BoxConfig, width float64) []core.Box {
	boxes := make([]core.Box, len(src))
	for i, b := range src {
		boxes[i] = core.NewBox(b.X, b.Y, b.W, b.H)
	}
	if width > 0 && len(boxes) == 3 {
		stretched := width - boxes[0].W - boxes[2].W
		if stretched > boxes[1].W {
			boxes[1].W = stretched
			boxes[2].X = width - boxes[2].W
		}
	}
	return boxes
}

// obstacleGap computes the randomized clearance to the next obstacle:
// wider at higher speeds and for wider obstacles, widened further by a
// random factor for variety.
func obstacleGap(width, minGap float64, oc config.ObstaclesConfig, speed float64, rng *rand.Rand) float64 {
	gap := math.Round(width*speed + minGap*oc.GapCoefficient)
	maxGap := math.Round(gap * oc.MaxGapCoefficient)
	if maxGap > gap {
		gap += rng.Float64() * (maxGap - gap)
	}
	return gap
}

// Update scrolls the obstacle left by the current speed. The displacement
// is rounded up so slow speeds cannot stall below one pixel per frame.
func (o *Obstacle) Update(deltaMs, speed float64) {
	if o.removed {
		return
	}
	o.xPos -= math.Ceil((speed + o.speedOffset) * deltaMs / msPerFrame)
	if !o.IsVisible() {
		o.removed = true
	}
}

// IsVisible reports whether any part of the obstacle is still on screen.
func (o *Obstacle) IsVisible() bool {
	return o.xPos+o.width > 0
}

// CollisionBoxes returns the ordered sub-boxes relative to the sprite origin.
func (o *Obstacle) CollisionBoxes() []core.Box {
	return o.collisionBoxes
}

// XPos returns the left edge in viewport coordinates.
func (o *Obstacle) XPos() float64 {
	return o.xPos
}

// YPos returns the top edge in viewport coordinates.
func (o *Obstacle) YPos() float64 {
	return o.yPos
}

// Width returns the total group width.
func (o *Obstacle) Width() float64 {
	return o.width
}

// Size returns the duplicate count within the group.
func (o *Obstacle) Size() int {
	return o.size
}

// Gap returns the clearance required before the next spawn.
func (o *Obstacle) Gap() float64 {
	return o.gap
}
