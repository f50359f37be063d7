// Package config provides YAML-based generator configuration loading and
// difficulty preset management.
package config

import (
	"fmt"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
	"github.com/vovakirdan/hexslide/internal/hexslide/shapes"
)

// GeneratorConfig contains all configuration for level generation.
type GeneratorConfig struct {
	Generator   GeneratorSettings `yaml:"generator"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Progression ProgressionConfig `yaml:"progression"`
	Palette     []string          `yaml:"palette"`
	Shape       ShapeConfig       `yaml:"shape"`
}

// GeneratorSettings controls the retry loop.
type GeneratorSettings struct {
	MaxAttempts int  `yaml:"max_attempts"`
	Fallback    bool `yaml:"fallback"`
}

// DifficultyConfig mirrors core.Difficulty with YAML names.
type DifficultyConfig struct {
	TargetMoveCount     int     `yaml:"target_move_count"`
	PieceCount          int     `yaml:"piece_count"`
	DirectionChangeRate float64 `yaml:"direction_change_rate"`
	BottleneckCount     int     `yaml:"bottleneck_count"`
	SpecialPieceRate    float64 `yaml:"special_piece_rate"`
	DifficultyTolerance float64 `yaml:"difficulty_tolerance"`
	RemovalFraction     float64 `yaml:"removal_fraction"`
	MoveLimitMultiplier float64 `yaml:"move_limit_multiplier"`
}

// ShapeConfig selects a registered grid template, or inline rows.
type ShapeConfig struct {
	Preset string   `yaml:"preset"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Radius int      `yaml:"radius"`
	Rows   []string `yaml:"rows,omitempty"` // Overrides Preset when set
}

// Core converts the YAML difficulty into engine parameters.
func (d DifficultyConfig) Core() core.Difficulty {
	return core.Difficulty{
		TargetMoveCount:     d.TargetMoveCount,
		PieceCount:          d.PieceCount,
		DirectionChangeRate: d.DirectionChangeRate,
		BottleneckCount:     d.BottleneckCount,
		SpecialPieceRate:    d.SpecialPieceRate,
		DifficultyTolerance: d.DifficultyTolerance,
		RemovalFraction:     d.RemovalFraction,
		MoveLimitMultiplier: d.MoveLimitMultiplier,
	}
}

// BuildShape resolves the configured grid template.
func (c GeneratorConfig) BuildShape() (core.Shape, error) {
	if len(c.Shape.Rows) > 0 {
		return core.ShapeFromRows("custom", c.Shape.Rows)
	}
	preset := c.Shape.Preset
	if preset == "" {
		preset = "hexagon"
	}
	s, err := shapes.Build(preset, shapes.Params{
		Width:  c.Shape.Width,
		Height: c.Shape.Height,
		Radius: c.Shape.Radius,
	})
	if err != nil {
		return core.Shape{}, fmt.Errorf("config: shape: %w", err)
	}
	return s, nil
}

// Request builds a generation request for one level. When progression is
// enabled the difficulty is scaled by the level number.
func (c GeneratorConfig) Request(seed uint64, number int) (core.Request, error) {
	shape, err := c.BuildShape()
	if err != nil {
		return core.Request{}, err
	}
	return core.Request{
		Shape:      shape,
		Difficulty: NewProgression(c.Progression).Difficulty(c.Difficulty.Core(), number),
		Palette:    c.Palette,
		Seed:       seed,
		Number:     number,
	}, nil
}

// GeneratorOptions returns the core options matching the settings.
func (c GeneratorConfig) GeneratorOptions() []core.Option {
	return []core.Option{
		core.WithMaxAttempts(c.Generator.MaxAttempts),
		core.WithFallback(c.Generator.Fallback),
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", s)
	}
}
