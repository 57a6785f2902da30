package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Default returns the built-in runner configuration, used when no config
// file is found and as the fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{
			Width:     600,
			Height:    150,
			BottomPad: 10,
		},
		Loop: LoopConfig{
			MaxFrameDeltaMs: 1000,
		},
		Speed: SpeedConfig{
			Initial:      6,
			Max:          13,
			Acceleration: 0.0001,
			BoostAt:      20000,
			Boost:        0.5,
		},
		Trex: TrexConfig{
			StartX:               30,
			Width:                44,
			Height:               47,
			WidthDuck:            59,
			HeightDuck:           25,
			Gravity:              0.6,
			InitialJumpVelocity:  -10,
			DropVelocity:         -5,
			SpeedDropCoefficient: 3,
			MinJumpHeight:        30,
			MaxJumpY:             30,
			RunningBoxes: []BoxConfig{
				{X: 22, Y: 0, W: 17, H: 16},
				{X: 1, Y: 18, W: 30, H: 9},
				{X: 10, Y: 35, W: 14, H: 8},
				{X: 1, Y: 24, W: 29, H: 5},
				{X: 5, Y: 30, W: 22, H: 4},
				{X: 9, Y: 34, W: 15, H: 4},
			},
			DuckingBoxes: []BoxConfig{
				{X: 1, Y: 18, W: 55, H: 25},
			},
		},
		Obstacles: ObstaclesConfig{
			GapCoefficient:    0.6,
			MaxGapCoefficient: 1.5,
			MaxGroupSize:      3,
			MaxDuplication:    2,
			Types: []ObstacleType{
				{
					ID:            "cactus-small",
					Width:         17,
					Height:        35,
					YPositions:    []float64{105},
					MultipleSpeed: 4,
					MinGap:        120,
					CollisionBoxes: []BoxConfig{
						{X: 0, Y: 7, W: 5, H: 27},
						{X: 4, Y: 0, W: 6, H: 34},
						{X: 10, Y: 4, W: 7, H: 14},
					},
				},
				{
					ID:            "cactus-large",
					Width:         25,
					Height:        50,
					YPositions:    []float64{90},
					MultipleSpeed: 7,
					MinGap:        120,
					CollisionBoxes: []BoxConfig{
						{X: 0, Y: 12, W: 7, H: 38},
						{X: 8, Y: 0, W: 7, H: 49},
						{X: 13, Y: 10, W: 10, H: 38},
					},
				},
				{
					ID:            "pterodactyl",
					Width:         46,
					Height:        40,
					YPositions:    []float64{100, 75, 50},
					MultipleSpeed: 999,
					MinGap:        150,
					MinSpeed:      8.5,
					SpeedOffset:   0.8,
					CollisionBoxes: []BoxConfig{
						{X: 15, Y: 15, W: 16, H: 5},
						{X: 18, Y: 21, W: 24, H: 6},
						{X: 2, Y: 14, W: 4, H: 3},
						{X: 6, Y: 10, W: 4, H: 7},
						{X: 10, Y: 8, W: 6, H: 9},
					},
				},
			},
		},
		Clouds: CloudConfig{
			Width:       46,
			Height:      14,
			MinGap:      100,
			MaxGap:      400,
			MinSkyLevel: 71,
			MaxSkyLevel: 30,
			MaxCount:    6,
			Frequency:   0.5,
			SpeedFactor: 0.2,
		},
		Night: NightConfig{
			InvertDistance: 700,
			FadeDurationMs: 12000,
			StarCount:      8,
			StarSpeed:      0.3,
			MoonPhases:     7,
		},
		Meter: MeterConfig{
			Coefficient:         0.025,
			Digits:              5,
			AchievementDistance: 100,
			FlashDurationMs:     250,
			FlashIterations:     3,
		},
	}
}
