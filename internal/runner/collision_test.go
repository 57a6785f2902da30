package runner

import (
	"testing"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
)

// plantObstacle builds an obstacle of the given type at an exact position,
// bypassing the spawn randomness.
func plantObstacle(t config.ObstacleType, x, y float64, boxes []core.Box) *Obstacle {
	return &Obstacle{
		Type:           t,
		xPos:           x,
		yPos:           y,
		size:           1,
		width:          t.Width,
		collisionBoxes: boxes,
	}
}

func fullBox(t config.ObstacleType) []core.Box {
	return []core.Box{core.NewBox(0, 0, t.Width, t.Height)}
}

func TestCollisionObstacleOverlappingPlayer(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	cactus := cfg.Obstacles.Types[0]
	o := plantObstacle(cactus, trex.XPos(), cactus.YPositions[0], fullBox(cactus))

	tb, ob, hit := CheckForCollision(o, trex)
	if !hit {
		t.Fatal("obstacle on top of the player must collide")
	}
	if !tb.Overlaps(ob) {
		t.Error("returned pair must itself overlap")
	}
}

func TestCollisionFastRejectSkipsSubBoxes(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	// The sub-box is deliberately wide enough to reach the player even
	// after translation; only the coarse-phase reject keeps it out.
	cactus := cfg.Obstacles.Types[0]
	wild := []core.Box{core.NewBox(-600, 0, 1200, 150)}
	o := plantObstacle(cactus, 500, cactus.YPositions[0], wild)

	if _, _, hit := CheckForCollision(o, trex); hit {
		t.Error("distant obstacle must be rejected before sub-box checks")
	}
}

func TestCollisionCoarseOverlapDisjointSubBoxes(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	// Coarse boxes overlap, but the only sub-box sits in the obstacle's
	// far corner where the player has no sub-box.
	cactus := cfg.Obstacles.Types[0]
	corner := []core.Box{core.NewBox(cactus.Width - 1, cactus.Height - 1, 1, 1)}
	o := plantObstacle(cactus, trex.XPos(), cactus.YPositions[0], corner)

	trexBox := core.NewBox(trex.XPos(), trex.YPos(), trex.Width(), trex.Height()).Inset(1)
	obstacleBox := core.NewBox(o.XPos(), o.YPos(), o.Width(), o.Type.Height).Inset(1)
	if !trexBox.Overlaps(obstacleBox) {
		t.Fatal("test setup: coarse boxes should overlap")
	}

	if _, _, hit := CheckForCollision(o, trex); hit {
		t.Error("disjoint sub-boxes must not collide despite coarse overlap")
	}
}

func TestCollisionReturnedPairIsTranslated(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	cactus := cfg.Obstacles.Types[0]
	o := plantObstacle(cactus, trex.XPos(), cactus.YPositions[0], fullBox(cactus))

	_, ob, hit := CheckForCollision(o, trex)
	if !hit {
		t.Fatal("expected collision")
	}
	// The pair is reported in viewport coordinates, offset by the coarse
	// box origin, not in sprite-local coordinates.
	if ob.X != o.XPos()+1 || ob.Y != o.YPos()+1 {
		t.Errorf("obstacle sub-box at (%v,%v), expected translation to (%v,%v)",
			ob.X, ob.Y, o.XPos()+1, o.YPos()+1)
	}
}

func TestCollisionDuckingUnderPterodactyl(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	ptero := cfg.Obstacles.Types[2]
	boxes := toBoxes(ptero.CollisionBoxes)
	o := plantObstacle(ptero, trex.XPos(), 75, boxes) // mid-height flight line

	if _, _, hit := CheckForCollision(o, trex); !hit {
		t.Fatal("running upright into a mid-height pterodactyl must collide")
	}

	trex.SetDuck(true)
	if _, _, hit := CheckForCollision(o, trex); hit {
		t.Error("ducking under a mid-height pterodactyl must not collide")
	}
}

func TestCollisionAirborneClearsCactus(t *testing.T) {
	cfg := config.Default()
	trex := NewTrex(cfg.Trex, cfg.Viewport)
	trex.Start()

	cactus := cfg.Obstacles.Types[0]
	o := plantObstacle(cactus, trex.XPos(), cactus.YPositions[0], fullBox(cactus))

	// Lift the player well above the obstacle.
	trex.status = StatusJumping
	trex.yPos = 10

	if _, _, hit := CheckForCollision(o, trex); hit {
		t.Error("player above the obstacle must not collide")
	}
}
