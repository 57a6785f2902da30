package runner

import (
	"github.com/tuigames/trex-runner/internal/core"
)

// CheckForCollision runs the two-phase collision test between the player
// and one obstacle. Phase one builds a coarse box per entity, inset by one
// pixel to compensate for sprite border padding, and rejects fast when the
// coarse boxes do not overlap. Phase two translates every sub-box by its
// parent's coarse-box origin and returns the first overlapping pair,
// player sub-boxes outer, obstacle sub-boxes inner.
//
// Detection is purely a function of positions; debug drawing of the boxes
// is the renderer's concern.
func CheckForCollision(o *Obstacle, t *Trex) (core.Box, core.Box, bool) {
	trexBox := core.NewBox(t.XPos(), t.YPos(), t.Width(), t.Height()).Inset(1)
	obstacleBox := core.NewBox(o.XPos(), o.YPos(), o.Width(), o.Type.Height).Inset(1)

	if !trexBox.Overlaps(obstacleBox) {
		return core.Box{}, core.Box{}, false
	}

	for _, tb := range t.CollisionBoxes() {
		adjTrex := tb.Translate(trexBox.X, trexBox.Y)
		for _, ob := range o.CollisionBoxes() {
			adjObstacle := ob.Translate(obstacleBox.X, obstacleBox.Y)
			if adjTrex.Overlaps(adjObstacle) {
				return adjTrex, adjObstacle, true
			}
		}
	}

	return core.Box{}, core.Box{}, false
}
