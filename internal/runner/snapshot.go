package runner

// Snapshot captures the observable simulation state for determinism
// verification and debugging.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	HighScore    int
	Distance     float64
	Speed        float64
	TrexStatus   Status
	TrexY        float64
	JumpVelocity float64
	Obstacles    int
	FrontX       float64 // front obstacle left edge, 0 when queue is empty
	FrontTypeID  string
	Clouds       int
	NightActive  bool
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tickCount,
		State:        g.state,
		Score:        g.Score(),
		HighScore:    g.meter.HighScore(),
		Distance:     g.distanceRan,
		Speed:        g.currentSpeed,
		TrexStatus:   g.trex.Status(),
		TrexY:        g.trex.YPos(),
		JumpVelocity: g.trex.jumpVelocity,
		Obstacles:    len(g.horizon.Obstacles()),
		Clouds:       len(g.horizon.Clouds()),
		NightActive:  g.horizon.Night().Active(),
	}
	if front := g.horizon.FrontObstacle(); front != nil {
		s.FrontX = front.XPos()
		s.FrontTypeID = front.Type.ID
	}
	return s
}
