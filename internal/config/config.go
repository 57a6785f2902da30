// Package config provides YAML-based configuration loading, validation,
// and the speed curve for the runner.
package config

// Config contains all tunable parameters for the runner simulation.
// The simulation reads it but never mutates it.
type Config struct {
	Viewport  ViewportConfig   `yaml:"viewport"`
	Loop      LoopConfig       `yaml:"loop"`
	Speed     SpeedConfig      `yaml:"speed"`
	Trex      TrexConfig       `yaml:"trex"`
	Obstacles ObstaclesConfig  `yaml:"obstacles"`
	Clouds    CloudConfig      `yaml:"clouds"`
	Night     NightConfig      `yaml:"night"`
	Meter     MeterConfig      `yaml:"meter"`
}

// ViewportConfig defines the virtual simulation viewport in
// device-independent pixels. The platform layer scales it to terminal cells.
type ViewportConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BottomPad float64 `yaml:"bottom_pad"`
}

// LoopConfig defines frame-loop timing parameters.
type LoopConfig struct {
	// MaxFrameDeltaMs is the sanity threshold for a single frame delta.
	// Larger deltas (backgrounded terminal, resumed pause) are clamped to
	// one reference frame instead of simulating a huge jump.
	MaxFrameDeltaMs float64 `yaml:"max_frame_delta_ms"`
}

// SpeedConfig defines the difficulty curve mapping accumulated distance
// to scroll speed.
type SpeedConfig struct {
	Initial      float64 `yaml:"initial"`
	Max          float64 `yaml:"max"`
	Acceleration float64 `yaml:"acceleration"` // speed gain per distance unit
	BoostAt      float64 `yaml:"boost_at"`     // distance of the one-time boost, 0 disables
	Boost        float64 `yaml:"boost"`
}

// TrexConfig defines the player character's physics and collision shape.
type TrexConfig struct {
	StartX               float64     `yaml:"start_x"`
	Width                float64     `yaml:"width"`
	Height               float64     `yaml:"height"`
	WidthDuck            float64     `yaml:"width_duck"`
	HeightDuck           float64     `yaml:"height_duck"`
	Gravity              float64     `yaml:"gravity"`
	InitialJumpVelocity  float64     `yaml:"initial_jump_velocity"`
	DropVelocity         float64     `yaml:"drop_velocity"`
	SpeedDropCoefficient float64     `yaml:"speed_drop_coefficient"`
	MinJumpHeight        float64     `yaml:"min_jump_height"`
	MaxJumpY             float64     `yaml:"max_jump_y"` // y ceiling for a jump
	RunningBoxes         []BoxConfig `yaml:"running_boxes"`
	DuckingBoxes         []BoxConfig `yaml:"ducking_boxes"`
}

// ObstaclesConfig defines spawn policy and the obstacle type table.
type ObstaclesConfig struct {
	GapCoefficient    float64        `yaml:"gap_coefficient"`
	MaxGapCoefficient float64        `yaml:"max_gap_coefficient"`
	MaxGroupSize      int            `yaml:"max_group_size"`
	MaxDuplication    int            `yaml:"max_duplication"`
	Types             []ObstacleType `yaml:"types"`
}

// ObstacleType is one entry of the obstacle type table: a tagged variant
// with its own size, speed and collision-shape rules.
type ObstacleType struct {
	ID            string      `yaml:"id"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	YPositions    []float64   `yaml:"y_positions"`
	MultipleSpeed float64     `yaml:"multiple_speed"` // speed above which groups may spawn
	MinGap        float64     `yaml:"min_gap"`
	MinSpeed      float64     `yaml:"min_speed"` // type excluded below this speed
	SpeedOffset   float64     `yaml:"speed_offset"`
	CollisionBoxes []BoxConfig `yaml:"collision_boxes"`
}

// CloudConfig defines decorative cloud spawning.
type CloudConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinGap      float64 `yaml:"min_gap"`
	MaxGap      float64 `yaml:"max_gap"`
	MinSkyLevel float64 `yaml:"min_sky_level"` // lowest cloud y
	MaxSkyLevel float64 `yaml:"max_sky_level"` // highest cloud y
	MaxCount    int     `yaml:"max_count"`
	Frequency   float64 `yaml:"frequency"`    // spawn probability once gap elapsed
	SpeedFactor float64 `yaml:"speed_factor"` // fraction of world speed
}

// NightConfig defines the day/night cycle. Rendering only, never collision.
type NightConfig struct {
	InvertDistance int     `yaml:"invert_distance"` // score interval between activations
	FadeDurationMs float64 `yaml:"fade_duration_ms"`
	StarCount      int     `yaml:"star_count"`
	StarSpeed      float64 `yaml:"star_speed"`
	MoonPhases     int     `yaml:"moon_phases"`
}

// MeterConfig defines score display and achievement flashing.
type MeterConfig struct {
	Coefficient         float64 `yaml:"coefficient"` // distance units to score points
	Digits              int     `yaml:"digits"`
	AchievementDistance int     `yaml:"achievement_distance"`
	FlashDurationMs     float64 `yaml:"flash_duration_ms"`
	FlashIterations     int     `yaml:"flash_iterations"`
}

// BoxConfig is a collision sub-box relative to its parent sprite origin.
type BoxConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the speed curve for a difficulty preset.
// The fixed preset disables progression entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Acceleration *= 0.5
		cfg.Speed.BoostAt = 0
	case DifficultyNormal:
		// config values as-is
	case DifficultyHard:
		cfg.Speed.Initial += 2
		cfg.Speed.Acceleration *= 1.5
	case DifficultyFixed:
		cfg.Speed.Acceleration = 0
		cfg.Speed.BoostAt = 0
	}
}
