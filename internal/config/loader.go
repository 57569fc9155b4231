package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTubes loads the tube puzzle configuration.
// Search order: customPath -> ~/.tubes/configs/tubes.yaml -> ./configs/tubes.yaml -> embedded default
func LoadTubes(customPath string) (TubesConfig, error) {
	var cfg TubesConfig

	// Custom path errors are reported; the caller asked for that file.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("tubes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tubes.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	cfg = TubesConfig{}
	if err := yaml.Unmarshal(defaultTubesYAML, &cfg); err != nil {
		return DefaultTubesConfig(), nil
	}
	return normalize(cfg), nil
}

// normalize fills zero values left by a partial file.
func normalize(cfg TubesConfig) TubesConfig {
	if cfg.Spare <= 0 {
		cfg.Spare = DefaultSpare
	}
	if cfg.Variants == nil {
		cfg.Variants = make(map[string]TubesVariant)
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tubes", "configs", filename)
}
