package runner

import (
	"testing"

	"github.com/tuigames/trex-runner/internal/config"
)

func newTestTrex() *Trex {
	cfg := config.Default()
	return NewTrex(cfg.Trex, cfg.Viewport)
}

func TestTrexStartsWaitingAtGround(t *testing.T) {
	trex := newTestTrex()

	if trex.Status() != StatusWaiting {
		t.Errorf("new trex status = %v, expected waiting", trex.Status())
	}
	if trex.YPos() != trex.GroundY() {
		t.Errorf("new trex yPos = %v, expected ground %v", trex.YPos(), trex.GroundY())
	}
}

func TestTrexJumpArcReturnsToGround(t *testing.T) {
	trex := newTestTrex()
	trex.Start()

	trex.StartJump(6)
	if trex.Status() != StatusJumping {
		t.Fatalf("status after StartJump = %v, expected jumping", trex.Status())
	}
	if trex.jumpVelocity >= 0 {
		t.Fatalf("jump velocity should be upward (negative), got %v", trex.jumpVelocity)
	}

	trex.Update(msPerFrame)
	if trex.YPos() >= trex.GroundY() {
		t.Fatalf("first jump tick should lift the player, yPos = %v", trex.YPos())
	}

	// With fixed gravity and velocity the arc lands after a deterministic
	// number of ticks.
	ticks := 0
	for trex.Status() == StatusJumping {
		trex.Update(msPerFrame)
		ticks++
		if ticks > 300 {
			t.Fatal("jump never landed")
		}
	}

	if trex.YPos() != trex.GroundY() {
		t.Errorf("after landing yPos = %v, expected exact ground %v", trex.YPos(), trex.GroundY())
	}
	if trex.jumpVelocity != 0 {
		t.Errorf("residual velocity after landing = %v, expected 0", trex.jumpVelocity)
	}
	if trex.Status() != StatusRunning {
		t.Errorf("status after landing = %v, expected running", trex.Status())
	}

	// Same constants, same arc.
	other := newTestTrex()
	other.Start()
	other.StartJump(6)
	other.Update(msPerFrame)
	otherTicks := 0
	for other.Status() == StatusJumping {
		other.Update(msPerFrame)
		otherTicks++
	}
	if otherTicks != ticks {
		t.Errorf("jump arc not deterministic: %d vs %d ticks", otherTicks, ticks)
	}
}

func TestTrexFasterRunsJumpHigher(t *testing.T) {
	slow := newTestTrex()
	slow.Start()
	slow.StartJump(6)

	fast := newTestTrex()
	fast.Start()
	fast.StartJump(13)

	if fast.jumpVelocity >= slow.jumpVelocity {
		t.Errorf("faster run should jump with more upward velocity: fast=%v slow=%v",
			fast.jumpVelocity, slow.jumpVelocity)
	}
}

func TestTrexEndJumpCutsArcShort(t *testing.T) {
	full := newTestTrex()
	full.Start()
	full.StartJump(6)

	short := newTestTrex()
	short.Start()
	short.StartJump(6)

	var fullPeak, shortPeak float64 = full.GroundY(), short.GroundY()
	released := false
	for i := 0; i < 300 && (full.Status() == StatusJumping || short.Status() == StatusJumping); i++ {
		full.Update(msPerFrame)
		short.Update(msPerFrame)
		// Release as soon as the minimum height has been cleared.
		if !released && short.reachedMinHeight {
			short.EndJump()
			released = true
		}
		if full.YPos() < fullPeak {
			fullPeak = full.YPos()
		}
		if short.YPos() < shortPeak {
			shortPeak = short.YPos()
		}
	}

	if !released {
		t.Fatal("minimum jump height never reached")
	}
	// Smaller y is higher: the released jump must peak lower.
	if shortPeak <= fullPeak {
		t.Errorf("released jump should peak lower: short=%v full=%v", shortPeak, fullPeak)
	}
}

func TestTrexJumpWhileAirborneIgnored(t *testing.T) {
	trex := newTestTrex()
	trex.Start()
	trex.StartJump(6)
	trex.Update(msPerFrame)

	vel := trex.jumpVelocity
	trex.StartJump(6) // mid-air press must not restart the jump
	if trex.jumpVelocity != vel {
		t.Errorf("mid-air StartJump changed velocity from %v to %v", vel, trex.jumpVelocity)
	}
}

func TestTrexDuckOnlyWhileGrounded(t *testing.T) {
	trex := newTestTrex()
	trex.Start()

	trex.SetDuck(true)
	if trex.Status() != StatusDucking {
		t.Fatalf("status = %v, expected ducking", trex.Status())
	}
	if trex.Width() != trex.cfg.WidthDuck {
		t.Errorf("duck width = %v, expected %v", trex.Width(), trex.cfg.WidthDuck)
	}
	if len(trex.CollisionBoxes()) != len(trex.duckBoxes) {
		t.Error("ducking should switch the active collision-box set")
	}

	trex.SetDuck(false)
	if trex.Status() != StatusRunning {
		t.Errorf("status after standing up = %v, expected running", trex.Status())
	}

	// Airborne duck is a speed drop, not a duck.
	trex.StartJump(6)
	trex.Update(msPerFrame)
	trex.SetDuck(true)
	if trex.Status() == StatusDucking {
		t.Error("ducking must not be possible while airborne")
	}
}

func TestTrexSpeedDropFallsFaster(t *testing.T) {
	normal := newTestTrex()
	normal.Start()
	normal.StartJump(6)

	dropping := newTestTrex()
	dropping.Start()
	dropping.StartJump(6)

	// A few ticks up, then trigger the drop on one of them.
	for i := 0; i < 5; i++ {
		normal.Update(msPerFrame)
		dropping.Update(msPerFrame)
	}
	dropping.SetSpeedDrop()

	dropTicks := 0
	for dropping.Status() == StatusJumping && dropTicks < 300 {
		dropping.Update(msPerFrame)
		dropTicks++
	}
	normalTicks := 0
	for normal.Status() == StatusJumping && normalTicks < 300 {
		normal.Update(msPerFrame)
		normalTicks++
	}

	if dropTicks >= normalTicks {
		t.Errorf("speed drop should land sooner: drop=%d normal=%d ticks", dropTicks, normalTicks)
	}
}

func TestTrexCrashIsTerminal(t *testing.T) {
	trex := newTestTrex()
	trex.Start()
	trex.Crash()

	if trex.Status() != StatusCrashed {
		t.Fatalf("status = %v, expected crashed", trex.Status())
	}

	y := trex.YPos()
	trex.Update(msPerFrame)
	trex.StartJump(6)
	trex.SetDuck(true)
	if trex.Status() != StatusCrashed || trex.YPos() != y {
		t.Error("crashed trex must ignore updates and input")
	}

	trex.Reset()
	if trex.Status() != StatusWaiting {
		t.Errorf("status after reset = %v, expected waiting", trex.Status())
	}
}

func TestTrexZeroDeltaIsNoop(t *testing.T) {
	trex := newTestTrex()
	trex.Start()
	trex.StartJump(6)
	trex.Update(msPerFrame)

	y, vel := trex.YPos(), trex.jumpVelocity
	trex.Update(0)
	if trex.YPos() != y || trex.jumpVelocity != vel {
		t.Errorf("zero delta changed state: y %v -> %v, vel %v -> %v", y, trex.YPos(), vel, trex.jumpVelocity)
	}
}
