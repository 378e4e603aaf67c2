package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Arena: ArenaConfig{
			BoardSize: 10,
			UnitSize:  20,
		},
		Clock: ClockConfig{
			TimePeriod:   time.Second,
			MotionPeriod: 50 * time.Millisecond,
			SpawnPeriod:  250 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialEnemySpeed: 10,
			SpeedGrowth:       0.1,
			SpeedEvery:        5,
			InitialTarget:     0,
			TargetEvery:       10,
		},
		Scoring: ScoringConfig{
			ScorePerSec: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
