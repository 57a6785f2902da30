package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/tuigames/trex-runner/internal/config"
	"github.com/tuigames/trex-runner/internal/core"
)

type savedRun struct {
	score    int
	duration time.Duration
	topSpeed float64
}

type fakeStore struct {
	high    int
	highErr error
	saves   []savedRun
	saveErr error
}

func (f *fakeStore) HighScore() (int, error) { return f.high, f.highErr }

func (f *fakeStore) SaveRun(score int, duration time.Duration, topSpeed float64) error {
	f.saves = append(f.saves, savedRun{score, duration, topSpeed})
	return f.saveErr
}

// sim drives a game with a manual clock at the reference frame rate.
type sim struct {
	g   *Game
	now time.Time
}

func newSim(store ScoreStore, seed int64) *sim {
	cfg := config.Default()
	s := &sim{g: New(&cfg, store, seed), now: time.Unix(0, 0)}
	s.g.Tick(s.now, core.NewInputFrame()) // prime the clock
	return s
}

func (s *sim) tick(actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	s.now = s.now.Add(time.Second / 60)
	s.g.Tick(s.now, in)
}

// play starts the run and waits out the initial jump.
func (s *sim) play(t *testing.T) {
	t.Helper()
	s.tick(core.ActionJumpPress)
	if s.g.State() != StatePlaying {
		t.Fatalf("state after jump press = %v, expected playing", s.g.State())
	}
	for i := 0; s.g.Trex().Status() != StatusRunning; i++ {
		s.tick()
		if i > 300 {
			t.Fatal("initial jump never landed")
		}
	}
}

// blockPath plants a full-height obstacle directly in front of the player.
func (s *sim) blockPath() *Obstacle {
	cactus := s.g.cfg.Obstacles.Types[0]
	o := plantObstacle(cactus, s.g.trex.XPos()+5, cactus.YPositions[0], fullBox(cactus))
	s.g.horizon.obstacles = append([]*Obstacle{o}, s.g.horizon.obstacles...)
	return o
}

func TestGameStartsWaiting(t *testing.T) {
	s := newSim(nil, 1)

	if s.g.State() != StateWaiting {
		t.Fatalf("initial state = %v, expected waiting", s.g.State())
	}

	// Non-jump input must not start the run.
	s.tick(core.ActionDuckPress)
	s.tick(core.ActionRestart)
	if s.g.State() != StateWaiting {
		t.Errorf("state = %v after non-jump input, expected waiting", s.g.State())
	}
	if len(s.g.Horizon().Obstacles()) != 0 {
		t.Error("obstacles spawned before the run started")
	}

	s.tick(core.ActionJumpPress)
	if s.g.State() != StatePlaying {
		t.Errorf("state after jump press = %v, expected playing", s.g.State())
	}
	if s.g.Trex().Status() != StatusJumping {
		t.Error("the starting press is also the first jump")
	}
}

func TestGameDeterministicForSeed(t *testing.T) {
	run := func() []Snapshot {
		s := newSim(nil, 42)
		var snaps []Snapshot
		for i := 0; i < 1200; i++ {
			if i%60 == 0 {
				s.tick(core.ActionJumpPress)
			} else {
				s.tick()
			}
			snaps = append(snaps, s.g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestGameSeedsDiverge(t *testing.T) {
	// The spawn gap carries a continuous random widening, so two seeds
	// agreeing on it would mean the seed is not reaching the world RNG.
	frontGap := func(seed int64) float64 {
		s := newSim(nil, seed)
		s.tick(core.ActionJumpPress)
		s.tick()
		front := s.g.Horizon().FrontObstacle()
		if front == nil {
			t.Fatal("no obstacle after the run started")
		}
		return front.Gap()
	}

	if frontGap(1) == frontGap(99) {
		t.Error("different seeds produced identical spawns")
	}
}

func TestGameZeroDeltaIsIdempotent(t *testing.T) {
	s := newSim(nil, 7)
	s.play(t)
	for i := 0; i < 30; i++ {
		s.tick()
	}
	if s.g.State() != StatePlaying {
		t.Fatal("run ended unexpectedly early")
	}

	before := s.g.Snapshot()
	s.g.Tick(s.now, core.NewInputFrame()) // same timestamp, zero delta
	after := s.g.Snapshot()

	before.Tick, after.Tick = 0, 0
	if before != after {
		t.Errorf("zero-delta tick changed state:\n%+v\n%+v", before, after)
	}
}

func TestGameClampsOversizedDelta(t *testing.T) {
	s := newSim(nil, 8)
	s.play(t)

	dist := s.g.Distance()
	s.now = s.now.Add(5 * time.Second) // resumed terminal
	s.g.Tick(s.now, core.NewInputFrame())

	advanced := s.g.Distance() - dist
	if advanced > s.g.CurrentSpeed()+0.01 {
		t.Errorf("oversized delta advanced %v, expected at most one frame", advanced)
	}
	if advanced <= 0 {
		t.Error("clamped tick must still advance one frame")
	}
}

func TestGameSpeedMonotonicUpToMax(t *testing.T) {
	s := newSim(nil, 9)
	s.play(t)

	prev := s.g.CurrentSpeed()
	for i := 0; i < 3000; i++ {
		s.tick()
		if s.g.State() != StatePlaying {
			// A blind run can legitimately crash; speed checks stop there.
			break
		}
		cur := s.g.CurrentSpeed()
		if cur < prev {
			t.Fatalf("tick %d: speed decreased %v -> %v", i, prev, cur)
		}
		if cur > s.g.cfg.Speed.Max {
			t.Fatalf("tick %d: speed %v above max %v", i, cur, s.g.cfg.Speed.Max)
		}
		prev = cur
	}
}

func TestGameCrashFreezesWorld(t *testing.T) {
	store := &fakeStore{}
	s := newSim(store, 10)
	s.play(t)
	blocked := s.blockPath()

	for i := 0; s.g.State() == StatePlaying; i++ {
		s.tick()
		if i > 60 {
			t.Fatal("planted obstacle never caused a crash")
		}
	}
	if s.g.State() != StateCrashed {
		t.Fatalf("state = %v, expected crashed", s.g.State())
	}
	if s.g.Trex().Status() != StatusCrashed {
		t.Error("player must be crashed with the game")
	}

	score := s.g.Score()
	if score <= 0 {
		t.Error("a crash mid-run must keep the earned score")
	}

	// The crashed frame is frozen; the next tick shows the game-over panel
	// and the world stays put from then on.
	frontX, trexY := blocked.XPos(), s.g.Trex().YPos()
	s.tick()
	if s.g.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", s.g.State())
	}
	for i := 0; i < 60; i++ {
		s.tick(core.ActionJumpPress, core.ActionDuckPress)
	}
	if blocked.XPos() != frontX || s.g.Trex().YPos() != trexY {
		t.Error("world moved after the crash")
	}
	if s.g.Score() != score {
		t.Errorf("score changed after the crash: %d -> %d", score, s.g.Score())
	}

	// Persistence fires exactly once per run.
	if len(store.saves) != 1 {
		t.Fatalf("SaveRun called %d times, expected once", len(store.saves))
	}
	if store.saves[0].score != score {
		t.Errorf("saved score = %d, want %d", store.saves[0].score, score)
	}
	if store.saves[0].topSpeed < s.g.cfg.Speed.Initial {
		t.Errorf("saved top speed = %v, below initial", store.saves[0].topSpeed)
	}
}

func TestGameHighScoreAcrossRestart(t *testing.T) {
	s := newSim(nil, 11)
	s.play(t)
	s.blockPath()

	for i := 0; s.g.State() != StateGameOver; i++ {
		s.tick()
		if i > 120 {
			t.Fatal("run never ended")
		}
	}

	score := s.g.Score()
	if !s.g.NewHighScore() {
		t.Error("first scoring run must set a new high score")
	}
	if s.g.HighScore() != score {
		t.Errorf("high score = %d, want %d", s.g.HighScore(), score)
	}

	s.tick(core.ActionRestart)
	if s.g.State() != StateWaiting {
		t.Fatalf("state after restart = %v, expected waiting", s.g.State())
	}
	if s.g.Score() != 0 {
		t.Error("restart must clear the run score")
	}
	if s.g.HighScore() != score {
		t.Error("restart must keep the high score")
	}
	if s.g.NewHighScore() {
		t.Error("restart must clear the new-high-score flag")
	}
	if len(s.g.Horizon().Obstacles()) != 0 {
		t.Error("restart must clear the obstacle queue")
	}
}

func TestGameLoadsHighScoreFromStore(t *testing.T) {
	s := newSim(&fakeStore{high: 321}, 12)
	if s.g.HighScore() != 321 {
		t.Errorf("high score = %d, want 321 from the store", s.g.HighScore())
	}

	// A failing store is treated as an empty one.
	s = newSim(&fakeStore{high: 321, highErr: errors.New("locked")}, 12)
	if s.g.HighScore() != 0 {
		t.Errorf("high score = %d, want 0 on store error", s.g.HighScore())
	}
}

func TestGameStoreSaveFailureIsIgnored(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	s := newSim(store, 13)
	s.play(t)
	s.blockPath()

	for i := 0; s.g.State() != StateGameOver; i++ {
		s.tick()
		if i > 120 {
			t.Fatal("run never ended")
		}
	}

	// The run ends normally and the in-memory high score survives.
	if s.g.HighScore() != s.g.Score() {
		t.Error("save failure must not lose the in-memory high score")
	}
}

func TestGamePauseSuspendsSimulation(t *testing.T) {
	s := newSim(nil, 14)
	s.play(t)

	s.tick(core.ActionPause)
	if !s.g.Paused() {
		t.Fatal("pause action must pause the game")
	}

	dist := s.g.Distance()
	for i := 0; i < 60; i++ {
		s.tick(core.ActionJumpPress)
	}
	if s.g.Distance() != dist {
		t.Error("distance advanced while paused")
	}
	if s.g.Trex().Status() == StatusJumping {
		t.Error("input applied while paused")
	}

	s.tick(core.ActionPause)
	if s.g.Paused() {
		t.Fatal("second pause action must resume")
	}
	s.tick()
	if s.g.Distance() == dist {
		t.Error("distance did not advance after resuming")
	}
}

func TestGameDuckInputRouting(t *testing.T) {
	s := newSim(nil, 15)
	s.play(t)

	s.tick(core.ActionDuckPress)
	if s.g.Trex().Status() != StatusDucking {
		t.Fatalf("status = %v, expected ducking", s.g.Trex().Status())
	}
	s.tick(core.ActionDuckRelease)
	if s.g.Trex().Status() != StatusRunning {
		t.Fatalf("status = %v, expected running after duck release", s.g.Trex().Status())
	}

	// Airborne, the same input is a speed drop.
	s.tick(core.ActionJumpPress)
	s.tick()
	if s.g.Trex().Status() != StatusJumping {
		t.Fatal("expected airborne player")
	}
	s.tick(core.ActionDuckPress)
	if !s.g.Trex().speedDrop && s.g.Trex().Status() == StatusJumping {
		t.Error("duck press while airborne must trigger a speed drop")
	}
}

func TestGameRestartProducesFreshWorld(t *testing.T) {
	s := newSim(nil, 16)
	s.play(t)
	s.blockPath()
	for s.g.State() != StateGameOver {
		s.tick()
	}
	s.tick(core.ActionRestart)

	// The new session plays from the start.
	s.play(t)
	if s.g.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing after restart", s.g.State())
	}
	for i := 0; i < 300 && s.g.State() == StatePlaying; i++ {
		s.tick()
	}
	if s.g.Distance() == 0 {
		t.Error("restarted run never advanced")
	}
}
