package config

// SpeedCurve maps accumulated distance to scroll speed.
// The curve is non-decreasing and capped at the configured maximum,
// with an optional one-time boost past a distance threshold.
type SpeedCurve struct {
	cfg SpeedConfig
}

// NewSpeedCurve creates a speed curve from configuration.
func NewSpeedCurve(cfg SpeedConfig) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// At returns the speed for the given accumulated distance.
func (c SpeedCurve) At(distance float64) float64 {
	speed := c.cfg.Initial + distance*c.cfg.Acceleration
	if c.cfg.BoostAt > 0 && distance >= c.cfg.BoostAt {
		speed += c.cfg.Boost
	}
	if speed > c.cfg.Max {
		speed = c.cfg.Max
	}
	return speed
}

// Max returns the speed cap.
func (c SpeedCurve) Max() float64 {
	return c.cfg.Max
}
