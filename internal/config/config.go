// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the well dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines gravity and line-clear animation timing.
type TetrisTiming struct {
	DropIntervalMS  int `yaml:"drop_interval_ms"`
	BlinkIntervalMS int `yaml:"blink_interval_ms"`
	ClearDurationMS int `yaml:"clear_duration_ms"`
}

// TetrisScoring defines line-clear scoring.
type TetrisScoring struct {
	LinePoints int `yaml:"line_points"` // Points for the first row; each further row doubles
}

// DropInterval returns the gravity period.
func (t TetrisTiming) DropInterval() time.Duration {
	return time.Duration(t.DropIntervalMS) * time.Millisecond
}

// BlinkInterval returns the clear flash half-period.
func (t TetrisTiming) BlinkInterval() time.Duration {
	return time.Duration(t.BlinkIntervalMS) * time.Millisecond
}

// ClearDuration returns how long full rows flash before removal.
func (t TetrisTiming) ClearDuration() time.Duration {
	return time.Duration(t.ClearDurationMS) * time.Millisecond
}

// Minimum well size: the largest piece is 4x4.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: board %dx%d smaller than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight)
	}
	if c.Timing.DropIntervalMS <= 0 {
		return fmt.Errorf("%w: drop_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Timing.BlinkIntervalMS <= 0 {
		return fmt.Errorf("%w: blink_interval_ms must be positive", ErrInvalidConfig)
	}
	if c.Timing.ClearDurationMS < 0 {
		return fmt.Errorf("%w: clear_duration_ms must not be negative", ErrInvalidConfig)
	}
	if c.Scoring.LinePoints < 0 {
		return fmt.Errorf("%w: line_points must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up factor at max difficulty
	MinIntervalMS   int     `yaml:"min_interval_ms"`  // Gravity never gets faster than this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "leave the config alone" and is returned unchanged.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
