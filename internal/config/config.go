// Package config provides YAML-based rule set loading for the simulation
// core, following the same embedded-defaults-plus-override pattern the
// arcade platform's per-game configuration packages use.
package config

import "github.com/example/boulderdash/internal/boulder"

// Parameters is the YAML-serializable rule set handed to the simulation
// core. It mirrors boulder.Config field-for-field but keeps its own type so
// the file format is decoupled from the core's in-memory layout.
//
// Gravity and DisableExplosions are *bool rather than bool so an override
// file can express an explicit false: a nil field means "keep the base
// value", a non-nil field means "use this value even if it's false".
type Parameters struct {
	Gravity                   *bool   `yaml:"gravity"`
	MagicWallSteps            int     `yaml:"magic_wall_steps"`
	BlobChance                uint8   `yaml:"blob_chance"`
	BlobMaxPercentage         float64 `yaml:"blob_max_percentage"`
	DisableExplosions         *bool   `yaml:"disable_explosions"`
	ButterflyExplosionVersion int     `yaml:"butterfly_explosion_version"`
	ButterflyMoveVersion      int     `yaml:"butterfly_move_version"`
}

// ToCoreConfig converts a loaded Parameters into the core's boulder.Config.
func (p Parameters) ToCoreConfig() boulder.Config {
	return boulder.Config{
		Gravity:               boolValue(p.Gravity),
		MagicWallSteps:        p.MagicWallSteps,
		BlobChance:            p.BlobChance,
		BlobMaxPercentage:     p.BlobMaxPercentage,
		DisableExplosions:     boolValue(p.DisableExplosions),
		ButterflyExplosionVer: boulder.ButterflyExplosionVersion(p.ButterflyExplosionVersion),
		ButterflyMoveVer:      boulder.ButterflyMoveVersion(p.ButterflyMoveVersion),
	}
}

// boolValue reports the value pointed to by b, or false if b is nil.
func boolValue(b *bool) bool {
	return b != nil && *b
}

// boolPtr returns a pointer to a new bool holding v.
func boolPtr(v bool) *bool {
	return &v
}

// Preset names a bundled rule set shipped as an embedded default YAML file.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFalling Preset = "falling"
	PresetChaos   Preset = "chaos"
)

// Presets lists every embedded preset name, for CLI flag validation and help text.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetFalling, PresetChaos}
}

// IsValidPreset reports whether name matches a bundled preset.
func IsValidPreset(name string) bool {
	for _, p := range Presets() {
		if string(p) == name {
			return true
		}
	}
	return false
}
