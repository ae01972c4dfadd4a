package config

import (
	"os"
	"testing"
)

func TestLoadPresetReturnsEmbeddedDefaults(t *testing.T) {
	for _, preset := range Presets() {
		cfg, err := LoadPreset(preset)
		if err != nil {
			t.Fatalf("LoadPreset(%s): %v", preset, err)
		}
		if cfg.MagicWallSteps <= 0 {
			t.Errorf("%s: magic_wall_steps = %d, want > 0", preset, cfg.MagicWallSteps)
		}
		if cfg.ButterflyExplosionVersion == 0 || cfg.ButterflyMoveVersion == 0 {
			t.Errorf("%s: butterfly version fields left unset by embedded YAML", preset)
		}
		if cfg.Gravity == nil {
			t.Errorf("%s: gravity left unset by embedded YAML", preset)
		}
	}
}

func TestIsValidPreset(t *testing.T) {
	if !IsValidPreset("classic") {
		t.Errorf("classic should be a valid preset")
	}
	if IsValidPreset("nonexistent") {
		t.Errorf("nonexistent should not be a valid preset")
	}
}

func TestLoadMergesOverrideOntoBase(t *testing.T) {
	base := DefaultParameters(PresetClassic)
	base.Gravity = boolPtr(false)

	tmp := t.TempDir() + "/override.yaml"
	if err := os.WriteFile(tmp, []byte("magic_wall_steps: 5\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	merged, err := Load(tmp, base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if merged.MagicWallSteps != 5 {
		t.Errorf("merged magic_wall_steps = %d, want 5", merged.MagicWallSteps)
	}
	if merged.BlobChance != base.BlobChance {
		t.Errorf("merged blob_chance = %d, want unchanged base value %d", merged.BlobChance, base.BlobChance)
	}
	if merged.Gravity != base.Gravity {
		t.Errorf("merged gravity should be unchanged since the override omits it")
	}
}

func TestLoadOverrideCanDisableGravity(t *testing.T) {
	base := DefaultParameters(PresetFalling)

	tmp := t.TempDir() + "/override.yaml"
	if err := os.WriteFile(tmp, []byte("gravity: false\n"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	merged, err := Load(tmp, base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if boolValue(merged.Gravity) {
		t.Errorf("merged gravity = true, want false override to take effect")
	}
}

func TestLoadWithEmptyPathReturnsBaseUnchanged(t *testing.T) {
	base := DefaultParameters(PresetChaos)
	merged, err := Load("", base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if merged != base {
		t.Errorf("Load with empty path mutated the base config")
	}
}
