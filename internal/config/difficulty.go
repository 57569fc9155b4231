package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a flag value to a preset.
// An empty string selects DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpareForPreset returns the number of empty tubes for a preset.
// More spare tubes leave more room to maneuver.
func SpareForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 1
	default:
		return DefaultSpare
	}
}

// ApplyTubesPreset modifies the config based on a difficulty preset.
// An empty preset keeps the configured spare count.
func ApplyTubesPreset(cfg *TubesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Spare = SpareForPreset(preset)
}
