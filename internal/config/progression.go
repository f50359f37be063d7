package config

import (
	"math"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

// ProgressionConfig defines how difficulty grows with the level number.
type ProgressionConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = base, 1.0 = fully scaled
	MaxAt        int           `yaml:"max_at"`        // Level number at which scaling is complete
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at full scale.
type ScalingConfig struct {
	ExtraMoves         int     `yaml:"extra_moves"`
	ExtraPieces        int     `yaml:"extra_pieces"`
	ExtraBottlenecks   int     `yaml:"extra_bottlenecks"`
	ToleranceReduction float64 `yaml:"tolerance_reduction"`
}

// Progression calculates per-level difficulty from a base difficulty.
type Progression struct {
	cfg          ProgressionConfig
	initialLevel float64
}

// NewProgression creates a new progression.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (p *Progression) SetInitialLevel(level float64) {
	p.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether progression is active.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) for a level number.
// With progression disabled it stays at the initial level.
func (p *Progression) Level(number int) float64 {
	if !p.cfg.Enabled {
		return p.initialLevel
	}

	maxAt := float64(p.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(number)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return p.initialLevel + progress*(1.0-p.initialLevel)
}

// Difficulty scales base for the given level number. The result always
// passes core.Difficulty.Validate when base does.
func (p *Progression) Difficulty(base core.Difficulty, number int) core.Difficulty {
	level := p.Level(number)
	s := p.cfg.Scaling

	d := base
	d.TargetMoveCount += int(math.Round(level * float64(s.ExtraMoves)))
	d.PieceCount += int(math.Round(level * float64(s.ExtraPieces)))
	d.BottleneckCount += int(math.Round(level * float64(s.ExtraBottlenecks)))
	d.DifficultyTolerance = clampF(d.DifficultyTolerance-level*s.ToleranceReduction, 0.0, 1.0)
	return d
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
