package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the generator config file name.
const FileName = "generator.yaml"

// Load loads the generator configuration.
// Search order: customPath -> ~/.hexslide/configs/generator.yaml -> ./configs/generator.yaml -> embedded default
func Load(customPath string) (GeneratorConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GeneratorConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GeneratorConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGeneratorYAML)
	if err != nil {
		return DefaultGeneratorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func parse(data []byte) (GeneratorConfig, error) {
	cfg := DefaultGeneratorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GeneratorConfig{}, err
	}
	if err := cfg.Difficulty.Core().Validate(); err != nil {
		return GeneratorConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexslide", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *GeneratorConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.TargetMoveCount = 8
		cfg.Difficulty.PieceCount = 8
		cfg.Difficulty.BottleneckCount = 0
		cfg.Difficulty.DirectionChangeRate = 0.1
		cfg.Difficulty.DifficultyTolerance = 0.5
		cfg.Difficulty.MoveLimitMultiplier = 2.0
		cfg.Progression.InitialLevel = 0.0
	case DifficultyNormal:
		base := DefaultGeneratorConfig().Difficulty
		cfg.Difficulty.TargetMoveCount = base.TargetMoveCount
		cfg.Difficulty.PieceCount = base.PieceCount
		cfg.Difficulty.BottleneckCount = base.BottleneckCount
		cfg.Difficulty.DirectionChangeRate = base.DirectionChangeRate
		cfg.Difficulty.DifficultyTolerance = base.DifficultyTolerance
		cfg.Difficulty.MoveLimitMultiplier = base.MoveLimitMultiplier
		cfg.Progression.InitialLevel = 0.3
	case DifficultyHard:
		cfg.Difficulty.TargetMoveCount = 22
		cfg.Difficulty.PieceCount = 18
		cfg.Difficulty.BottleneckCount = 5
		cfg.Difficulty.DirectionChangeRate = 0.6
		cfg.Difficulty.DifficultyTolerance = 0.25
		cfg.Difficulty.MoveLimitMultiplier = 1.2
		cfg.Progression.InitialLevel = 0.7
	}
}
