package runner

import (
	"math"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
)

// Status is the player's state machine state.
type Status int

const (
	StatusWaiting Status = iota
	StatusRunning
	StatusJumping
	StatusDucking
	StatusCrashed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusRunning:
		return "running"
	case StatusJumping:
		return "jumping"
	case StatusDucking:
		return "ducking"
	case StatusCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Trex is the player character: a fixed horizontal position, jump physics
// with gravity and variable jump height, and a status-dependent set of
// collision sub-boxes.
type Trex struct {
	cfg config.TrexConfig

	xPos, yPos   float64
	groundYPos   float64
	minJumpY     float64 // y above which a jump may be cut short
	jumpVelocity float64

	status           Status
	ducking          bool
	speedDrop        bool
	reachedMinHeight bool

	runBoxes  []core.Box
	duckBoxes []core.Box

	animTimerMs float64
	runFrame    int
}

// NewTrex creates the player at ground level in the waiting state.
func NewTrex(cfg config.TrexConfig, viewport config.ViewportConfig) *Trex {
	t := &Trex{
		cfg:        cfg,
		groundYPos: viewport.Height - cfg.Height - viewport.BottomPad,
		runBoxes:   toBoxes(cfg.RunningBoxes),
		duckBoxes:  toBoxes(cfg.DuckingBoxes),
	}
	t.minJumpY = t.groundYPos - cfg.MinJumpHeight
	t.Reset()
	return t
}

func toBoxes(src []config.BoxConfig) []core.Box {
	boxes := make([]core.Box, len(src))
	for i, b := range src {
		boxes[i] = core.NewBox(b.X, b.Y, b.W, b.H)
	}
	return boxes
}

// Reset returns the player to the waiting state at ground level.
func (t *Trex) Reset() {
	t.xPos = t.cfg.StartX
	t.yPos = t.groundYPos
	t.jumpVelocity = 0
	t.status = StatusWaiting
	t.ducking = false
	t.speedDrop = false
	t.reachedMinHeight = false
	t.animTimerMs = 0
	t.runFrame = 0
}

// Start moves the player from waiting to running on first input.
func (t *Trex) Start() {
	if t.status == StatusWaiting {
		t.status = StatusRunning
	}
}

// Update advances jump physics and the run animation by deltaMs.
func (t *Trex) Update(deltaMs float64) {
	if t.status == StatusCrashed {
		return
	}

	t.animTimerMs += deltaMs
	if t.animTimerMs >= 6*msPerFrame {
		t.animTimerMs = 0
		t.runFrame = (t.runFrame + 1) % 2
	}

	if t.status == StatusJumping {
		t.updateJump(deltaMs)
	}
}

// updateJump applies gravity and lands the player when it returns to ground.
func (t *Trex) updateJump(deltaMs float64) {
	frames := deltaMs / msPerFrame

	if t.speedDrop {
		t.yPos += math.Round(t.jumpVelocity * frames * t.cfg.SpeedDropCoefficient)
	} else {
		t.yPos += math.Round(t.jumpVelocity * frames)
	}
	t.jumpVelocity += t.cfg.Gravity * frames

	// Minimum jump height reached, the jump may now be cut short.
	if t.yPos < t.minJumpY || t.speedDrop {
		t.reachedMinHeight = true
	}

	// Ceiling of the jump arc.
	if t.yPos < t.cfg.MaxJumpY || t.speedDrop {
		t.EndJump()
	}

	// Back on the ground.
	if t.yPos >= t.groundYPos && t.jumpVelocity > 0 {
		t.land()
	}
}

// land clamps the player to ground level and leaves the jump state.
func (t *Trex) land() {
	t.yPos = t.groundYPos
	t.jumpVelocity = 0
	t.speedDrop = false
	t.reachedMinHeight = false
	if t.ducking {
		t.status = StatusDucking
	} else {
		t.status = StatusRunning
	}
}

// StartJump begins a jump; faster runs jump slightly higher.
// Only valid while grounded.
func (t *Trex) StartJump(speed float64) {
	if t.status != StatusRunning && t.status != StatusDucking {
		return
	}
	t.status = StatusJumping
	t.ducking = false
	t.jumpVelocity = t.cfg.InitialJumpVelocity - speed/10
	t.reachedMinHeight = false
	t.speedDrop = false
}

// EndJump cuts the jump short once the minimum height has been reached,
// clamping the residual upward velocity to the drop velocity.
func (t *Trex) EndJump() {
	if t.reachedMinHeight && t.jumpVelocity < t.cfg.DropVelocity {
		t.jumpVelocity = t.cfg.DropVelocity
	}
}

// SetDuck toggles ducking. Only valid while grounded; while airborne the
// duck input triggers a speed drop instead (see SetSpeedDrop).
func (t *Trex) SetDuck(on bool) {
	switch {
	case on && t.status == StatusRunning:
		t.status = StatusDucking
		t.ducking = true
	case !on:
		t.ducking = false
		t.speedDrop = false
		if t.status == StatusDucking {
			t.status = StatusRunning
		}
	}
}

// SetSpeedDrop accelerates the fall of an in-progress jump.
func (t *Trex) SetSpeedDrop() {
	if t.status != StatusJumping {
		return
	}
	t.speedDrop = true
	t.jumpVelocity = 1
}

// Crash is terminal; only a reset leaves it.
func (t *Trex) Crash() {
	t.status = StatusCrashed
	if t.yPos > t.groundYPos {
		t.yPos = t.groundYPos
	}
}

// Status returns the current state machine state.
func (t *Trex) Status() Status {
	return t.status
}

// Jumping reports whether the player is airborne.
func (t *Trex) Jumping() bool {
	return t.status == StatusJumping
}

// XPos returns the fixed horizontal position.
func (t *Trex) XPos() float64 {
	return t.xPos
}

// YPos returns the vertical position (smaller is higher).
func (t *Trex) YPos() float64 {
	return t.yPos
}

// GroundY returns the resting vertical position.
func (t *Trex) GroundY() float64 {
	return t.groundYPos
}

// Width returns the sprite width for the current status.
func (t *Trex) Width() float64 {
	if t.status == StatusDucking {
		return t.cfg.WidthDuck
	}
	return t.cfg.Width
}

// Height returns the collision frame height. The duck sub-boxes are
// defined relative to the full frame, so the coarse box keeps the full
// height even while ducking.
func (t *Trex) Height() float64 {
	return t.cfg.Height
}

// CollisionBoxes returns the ordered collision sub-boxes for the current
// status, relative to the sprite origin.
func (t *Trex) CollisionBoxes() []core.Box {
	if t.status == StatusDucking {
		return t.duckBoxes
	}
	return t.runBoxes
}
