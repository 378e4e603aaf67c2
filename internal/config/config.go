// Package config provides YAML-based configuration loading and difficulty
// presets for the dodge game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Clock      ClockConfig      `yaml:"clock"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// ArenaConfig defines the board geometry.
type ArenaConfig struct {
	BoardSize int `yaml:"board_size"` // Grid units per side
	UnitSize  int `yaml:"unit_size"`  // Pixels per unit
}

// ClockConfig defines the periods of the three simulation triggers.
type ClockConfig struct {
	TimePeriod   time.Duration `yaml:"time_period"`
	MotionPeriod time.Duration `yaml:"motion_period"`
	SpawnPeriod  time.Duration `yaml:"spawn_period"`
}

// DifficultyConfig defines how the round escalates over elapsed seconds.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	InitialEnemySpeed float64 `yaml:"initial_enemy_speed"` // Pixels per motion tick
	SpeedGrowth       float64 `yaml:"speed_growth"`        // 0.1 = +10% compounding
	SpeedEvery        int     `yaml:"speed_every"`         // Seconds between speed increases
	InitialTarget     int     `yaml:"initial_target"`      // Target enemy count at round start
	TargetEvery       int     `yaml:"target_every"`        // Seconds between target increases
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	ScorePerSec int `yaml:"score_per_sec"`
}

// Dimension returns the arena side length in pixels.
func (c ArenaConfig) Dimension() int {
	return c.BoardSize * c.UnitSize
}

// Validate checks the configuration for values the simulation cannot run with.
func (c DodgeConfig) Validate() error {
	if c.Arena.BoardSize <= 0 || c.Arena.UnitSize <= 0 {
		return fmt.Errorf("%w: arena board_size and unit_size must be positive (got %d, %d)",
			ErrInvalid, c.Arena.BoardSize, c.Arena.UnitSize)
	}
	if c.Clock.TimePeriod <= 0 || c.Clock.MotionPeriod <= 0 || c.Clock.SpawnPeriod <= 0 {
		return fmt.Errorf("%w: clock periods must be positive", ErrInvalid)
	}
	if c.Clock.MotionPeriod >= c.Clock.SpawnPeriod || c.Clock.SpawnPeriod >= c.Clock.TimePeriod {
		return fmt.Errorf("%w: clock periods must satisfy motion < spawn < time (got %s, %s, %s)",
			ErrInvalid, c.Clock.MotionPeriod, c.Clock.SpawnPeriod, c.Clock.TimePeriod)
	}
	if c.Difficulty.InitialEnemySpeed < 0 || c.Difficulty.SpeedGrowth < 0 {
		return fmt.Errorf("%w: enemy speed and growth must not be negative", ErrInvalid)
	}
	if c.Difficulty.SpeedEvery < 0 || c.Difficulty.TargetEvery < 0 || c.Difficulty.InitialTarget < 0 {
		return fmt.Errorf("%w: difficulty intervals must not be negative", ErrInvalid)
	}
	if c.Scoring.ScorePerSec < 0 {
		return fmt.Errorf("%w: score_per_sec must not be negative", ErrInvalid)
	}
	return nil
}
