package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var classicYAML []byte

//go:embed defaults/falling.yaml
var fallingYAML []byte

//go:embed defaults/chaos.yaml
var chaosYAML []byte

// DefaultParameters returns the hardcoded fallback rule set for a preset,
// used if the corresponding embedded YAML ever fails to parse.
func DefaultParameters(preset Preset) Parameters {
	switch preset {
	case PresetFalling:
		return Parameters{
			Gravity:                   boolPtr(true),
			MagicWallSteps:            140,
			BlobChance:                20,
			BlobMaxPercentage:         0.16,
			DisableExplosions:         boolPtr(false),
			ButterflyExplosionVersion: int(explosionVersionExplode),
			ButterflyMoveVersion:      int(moveVersionDelay),
		}
	case PresetChaos:
		return Parameters{
			Gravity:                   boolPtr(true),
			MagicWallSteps:            60,
			BlobChance:                60,
			BlobMaxPercentage:         0.30,
			DisableExplosions:         boolPtr(false),
			ButterflyExplosionVersion: int(explosionVersionExplode),
			ButterflyMoveVersion:      int(moveVersionInstant),
		}
	default: // PresetClassic
		return Parameters{
			Gravity:                   boolPtr(false),
			MagicWallSteps:            140,
			BlobChance:                20,
			BlobMaxPercentage:         0.16,
			DisableExplosions:         boolPtr(false),
			ButterflyExplosionVersion: int(explosionVersionExplode),
			ButterflyMoveVersion:      int(moveVersionDelay),
		}
	}
}

// embeddedYAML returns the embedded default YAML for a preset name.
func embeddedYAML(preset Preset) []byte {
	switch preset {
	case PresetFalling:
		return fallingYAML
	case PresetChaos:
		return chaosYAML
	default:
		return classicYAML
	}
}

// explosionVersion / moveVersion mirror boulder.ButterflyExplosionVersion and
// boulder.ButterflyMoveVersion's numbering without importing the core
// package's constant names directly into a YAML-facing default table.
const (
	explosionVersionExplode = 1
	moveVersionDelay        = 1
	moveVersionInstant      = 2
)
