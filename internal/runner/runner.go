// Package runner implements the endless-runner simulation: the per-tick
// update cycle, the player state machine, obstacle spawning and scrolling,
// and the collision detection that ends a run.
//
// The simulation is pure and deterministic for a given seed and input
// sequence; rendering, input capture, and persistence live behind small
// interfaces so tests can drive it with a manual clock.
package runner

import (
	"math/rand"
	"time"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
)

// msPerFrame is the reference frame duration the physics constants are
// tuned against. Actual ticks scale by deltaMs/msPerFrame.
const msPerFrame = 1000.0 / 60.0

// State is the orchestrator's state machine state.
type State int

const (
	StateWaiting State = iota // idle, awaiting first input
	StatePlaying
	StateCrashed // the collision tick; motion frozen
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateCrashed:
		return "crashed"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreStore persists run results. Implementations may fail or be nil;
// both are treated as "no previous high score", never as a fatal error.
type ScoreStore interface {
	HighScore() (int, error)
	SaveRun(score int, duration time.Duration, topSpeed float64) error
}

// Game is the runner orchestrator: it owns the player, the horizon, and
// the distance meter, and drives them from wall-clock ticks.
type Game struct {
	cfg   *config.Config
	curve config.SpeedCurve
	store ScoreStore

	trex    *Trex
	horizon *Horizon
	meter   *DistanceMeter

	state        State
	paused       bool
	currentSpeed float64
	distanceRan  float64
	topSpeed     float64
	runTimeMs    float64
	tickCount    uint64

	seed     int64
	seedRng  *rand.Rand // derives per-run seeds across restarts
	lastTick time.Time
	hasTick  bool

	newHighScore bool
	finalScore   int
}

// New creates a game in the waiting state. The previous high score is
// loaded from the store; a nil store or a store error means no high score.
func New(cfg *config.Config, store ScoreStore, seed int64) *Game {
	highScore := 0
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			highScore = hs
		}
	}

	g := &Game{
		cfg:     cfg,
		curve:   config.NewSpeedCurve(cfg.Speed),
		store:   store,
		seed:    seed,
		seedRng: rand.New(rand.NewSource(seed)),
		meter:   NewDistanceMeter(cfg.Meter, highScore),
	}
	g.startSession(g.seedRng.Int63())
	return g
}

// startSession builds fresh per-run state. Nothing outlives a session
// except the distance meter's high score and the night moon phase.
func (g *Game) startSession(seed int64) {
	if g.trex == nil {
		g.trex = NewTrex(g.cfg.Trex, g.cfg.Viewport)
	} else {
		g.trex.Reset()
	}
	if g.horizon == nil {
		g.horizon = NewHorizon(g.cfg, seed)
	} else {
		g.horizon.Reset(seed)
	}
	g.meter.Reset()

	g.state = StateWaiting
	g.paused = false
	g.currentSpeed = g.cfg.Speed.Initial
	g.distanceRan = 0
	g.topSpeed = g.cfg.Speed.Initial
	g.runTimeMs = 0
	g.newHighScore = false
	g.finalScore = 0
}

// Tick advances the simulation to the given wall-clock time, applying the
// input events delivered this frame. Oversized deltas (backgrounded
// terminal, resumed pause) are clamped to one reference frame; this is a
// local recovery, never an error.
func (g *Game) Tick(now time.Time, in core.InputFrame) {
	deltaMs := 0.0
	if g.hasTick {
		deltaMs = float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
	}
	g.lastTick = now
	g.hasTick = true

	if deltaMs < 0 {
		deltaMs = 0
	}
	if deltaMs > g.cfg.Loop.MaxFrameDeltaMs {
		deltaMs = msPerFrame
	}

	g.tickCount++

	if in.Has(core.ActionPause) && (g.state == StatePlaying || g.state == StateWaiting) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	switch g.state {
	case StateWaiting:
		if in.Has(core.ActionJumpPress) {
			g.trex.Start()
			g.trex.StartJump(g.currentSpeed)
			g.state = StatePlaying
		}
		g.horizon.Update(deltaMs, g.currentSpeed, false)

	case StatePlaying:
		g.update(deltaMs, in)

	case StateCrashed:
		// One frozen frame between the collision and the game-over panel.
		g.state = StateGameOver

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
	}
}

// update runs one playing tick: input, physics, world advance, distance,
// then collision against the front obstacle.
func (g *Game) update(deltaMs float64, in core.InputFrame) {
	g.applyInput(in)

	g.trex.Update(deltaMs)

	g.distanceRan += g.currentSpeed * deltaMs / msPerFrame
	g.currentSpeed = g.curve.At(g.distanceRan)
	if g.currentSpeed > g.topSpeed {
		g.topSpeed = g.currentSpeed
	}
	g.runTimeMs += deltaMs

	g.horizon.Update(deltaMs, g.currentSpeed, true)

	score := g.meter.Score(g.distanceRan)
	invertTrigger := g.cfg.Night.InvertDistance > 0 &&
		score > 0 && score%g.cfg.Night.InvertDistance == 0
	g.horizon.UpdateNight(deltaMs, invertTrigger)

	g.meter.Update(deltaMs, score)

	if front := g.horizon.FrontObstacle(); front != nil {
		if _, _, hit := CheckForCollision(front, g.trex); hit {
			g.crash(score)
		}
	}
}

// applyInput routes this frame's discrete input events to the player.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionJumpPress) && !g.trex.Jumping() {
		g.trex.StartJump(g.currentSpeed)
	}
	if in.Has(core.ActionJumpRelease) {
		g.trex.EndJump()
	}
	if in.Has(core.ActionDuckPress) {
		if g.trex.Jumping() {
			g.trex.SetSpeedDrop()
		} else {
			g.trex.SetDuck(true)
		}
	}
	if in.Has(core.ActionDuckRelease) {
		g.trex.SetDuck(false)
	}
}

// crash ends the run: the player and horizon freeze, the final score is
// recorded, and the high score is updated once.
func (g *Game) crash(score int) {
	g.state = StateCrashed
	g.trex.Crash()
	g.finalScore = score

	if score > g.meter.HighScore() {
		g.newHighScore = true
	}
	g.meter.SetHighScore(score)

	if g.store != nil && score > 0 {
		// Best-effort: persistence failures never affect the run.
		_ = g.store.SaveRun(score, time.Duration(g.runTimeMs)*time.Millisecond, g.topSpeed)
	}
}

// Restart begins a new session with a fresh spawn seed, returning to the
// waiting state.
func (g *Game) Restart() {
	g.startSession(g.seedRng.Int63())
}

// State returns the orchestrator state.
func (g *Game) State() State {
	return g.state
}

// Paused reports whether ticking is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Score returns the displayed score for the current run.
func (g *Game) Score() int {
	if g.state == StateCrashed || g.state == StateGameOver {
		return g.finalScore
	}
	return g.meter.Score(g.distanceRan)
}

// HighScore returns the best score across runs.
func (g *Game) HighScore() int {
	return g.meter.HighScore()
}

// NewHighScore reports whether the last crash set a new best.
func (g *Game) NewHighScore() bool {
	return g.newHighScore
}

// CurrentSpeed returns the scroll speed.
func (g *Game) CurrentSpeed() float64 {
	return g.currentSpeed
}

// Distance returns accumulated world distance.
func (g *Game) Distance() float64 {
	return g.distanceRan
}

// Trex returns the player.
func (g *Game) Trex() *Trex {
	return g.trex
}

// Horizon returns the scrolling world.
func (g *Game) Horizon() *Horizon {
	return g.horizon
}

// Meter returns the distance meter.
func (g *Game) Meter() *DistanceMeter {
	return g.meter
}
