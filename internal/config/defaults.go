package config

import (
	_ "embed"

	"github.com/vovakirdan/hexslide/internal/hexslide/core"
)

//go:embed defaults/generator.yaml
var defaultGeneratorYAML []byte

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	d := core.DefaultDifficulty()
	return GeneratorConfig{
		Generator: GeneratorSettings{
			MaxAttempts: 12,
			Fallback:    true,
		},
		Difficulty: DifficultyConfig{
			TargetMoveCount:     d.TargetMoveCount,
			PieceCount:          d.PieceCount,
			DirectionChangeRate: d.DirectionChangeRate,
			BottleneckCount:     d.BottleneckCount,
			SpecialPieceRate:    d.SpecialPieceRate,
			DifficultyTolerance: d.DifficultyTolerance,
			RemovalFraction:     d.RemovalFraction,
			MoveLimitMultiplier: d.MoveLimitMultiplier,
		},
		Progression: ProgressionConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			MaxAt:        30,
			Scaling: ScalingConfig{
				ExtraMoves:         10,
				ExtraPieces:        8,
				ExtraBottlenecks:   3,
				ToleranceReduction: 0.2,
			},
		},
		Palette: []string{"#e06c75", "#61afef", "#98c379", "#e5c07b", "#c678dd"},
		Shape: ShapeConfig{
			Preset: "hexagon",
			Radius: 4,
		},
	}
}
