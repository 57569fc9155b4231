// Package config provides YAML-based variant configuration loading and
// difficulty presets for the tube puzzle.
package config

// TubesConfig contains the configuration for every tube puzzle variant.
type TubesConfig struct {
	Variants map[string]TubesVariant `yaml:"variants"`
	Spare    int                     `yaml:"spare"`     // Empty tubes appended to each level
	SeedBase int64                   `yaml:"seed_base"` // Level seed = seed_base + level index
}

// TubesVariant describes one registered puzzle variant.
type TubesVariant struct {
	Title       string   `yaml:"title"`
	Colors      []string `yaml:"colors"`       // Explicit palette, by name; overrides palette_size
	PaletteSize int      `yaml:"palette_size"` // First N palette colors when colors is empty
	Capacity    int      `yaml:"capacity"`     // Units per tube
}

// ColorCount returns the number of colors a level of this variant uses.
func (v TubesVariant) ColorCount() int {
	if len(v.Colors) > 0 {
		return len(v.Colors)
	}
	return v.PaletteSize
}

// Variant returns the named variant, falling back to the built-in defaults
// for fields the loaded file leaves unset.
func (c TubesConfig) Variant(id string) (TubesVariant, bool) {
	def, hasDef := DefaultTubesConfig().Variants[id]
	v, ok := c.Variants[id]
	if !ok {
		return def, hasDef
	}
	if hasDef {
		if v.Title == "" {
			v.Title = def.Title
		}
		if len(v.Colors) == 0 && v.PaletteSize == 0 {
			v.PaletteSize = def.PaletteSize
		}
		if v.Capacity == 0 {
			v.Capacity = def.Capacity
		}
	}
	return v, true
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
