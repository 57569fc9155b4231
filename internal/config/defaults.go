package config

import (
	_ "embed"
)

//go:embed defaults/tubes.yaml
var defaultTubesYAML []byte

// Variant identifiers registered by the tubes game.
const (
	VariantClassic = "tubes"
	VariantMini    = "tubes_mini"
	VariantDeep    = "tubes_deep"
)

// DefaultSpare is the number of empty tubes on the normal difficulty.
const DefaultSpare = 2

// DefaultTubesConfig returns the built-in configuration.
func DefaultTubesConfig() TubesConfig {
	return TubesConfig{
		Variants: map[string]TubesVariant{
			VariantClassic: {
				Title:       "Color Tubes",
				PaletteSize: 12,
				Capacity:    4,
			},
			VariantMini: {
				Title:       "Color Tubes Mini",
				PaletteSize: 6,
				Capacity:    4,
			},
			VariantDeep: {
				Title:       "Color Tubes Deep",
				PaletteSize: 8,
				Capacity:    6,
			},
		},
		Spare:    DefaultSpare,
		SeedBase: 0,
	}
}
