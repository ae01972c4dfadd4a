package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPreset resolves a named preset's rule set.
// Search order: ~/.boulderdash/configs/<preset>.yaml -> ./configs/<preset>.yaml -> embedded default.
func LoadPreset(preset Preset) (Parameters, error) {
	var cfg Parameters

	if userCfgPath := userConfigPath(string(preset) + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", string(preset)+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(embeddedYAML(preset), &cfg); err != nil {
		return DefaultParameters(preset), nil
	}
	return cfg, nil
}

// Load reads a YAML override file at path and merges its set fields onto
// base, returning the merged rule set. A blank magic_wall_steps,
// blob_chance, or blob_max_percentage in the override file means "keep the
// base value", since the zero value is never a meaningful rule setting for
// those fields. Gravity and DisableExplosions use nil rather than the zero
// value for "unset", so an override file can explicitly turn either flag
// off, not just on.
func Load(path string, base Parameters) (Parameters, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var override Parameters
	if err := yaml.Unmarshal(data, &override); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	merged := base
	if override.Gravity != nil {
		merged.Gravity = override.Gravity
	}
	if override.DisableExplosions != nil {
		merged.DisableExplosions = override.DisableExplosions
	}
	if override.MagicWallSteps != 0 {
		merged.MagicWallSteps = override.MagicWallSteps
	}
	if override.BlobChance != 0 {
		merged.BlobChance = override.BlobChance
	}
	if override.BlobMaxPercentage != 0 {
		merged.BlobMaxPercentage = override.BlobMaxPercentage
	}
	if override.ButterflyExplosionVersion != 0 {
		merged.ButterflyExplosionVersion = override.ButterflyExplosionVersion
	}
	if override.ButterflyMoveVersion != 0 {
		merged.ButterflyMoveVersion = override.ButterflyMoveVersion
	}
	return merged, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boulderdash", "configs", filename)
}
