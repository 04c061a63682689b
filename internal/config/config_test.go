package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rocketsim/internal/env"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.MaxTime <= 0 {
		t.Error("max time should be positive")
	}
	if cfg.InitState.Fuel <= 0 {
		t.Error("default fuel load should be positive")
	}
	if _, err := cfg.EnvConfig(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvConfig_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = -1

	_, err := cfg.EnvConfig()
	if err == nil {
		t.Fatal("expected error for negative dt")
	}
	if !errors.Is(err, env.ErrInvalidConfiguration) {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Gravity = 1.62
	cfg.InitState.Altitude = 500

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Gravity != 1.62 {
		t.Errorf("expected gravity 1.62, got %f", loaded.Gravity)
	}
	if loaded.InitState.Altitude != 500 {
		t.Errorf("expected altitude 500, got %f", loaded.InitState.Altitude)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("gravity: 1.62\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gravity != 1.62 {
		t.Errorf("expected gravity 1.62, got %f", cfg.Gravity)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt %f, got %f", DefaultDt, cfg.Dt)
	}
	if cfg.InitState.Fuel <= 0 {
		t.Error("fuel default should survive a partial file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("moon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Gravity != 1.62 {
		t.Errorf("expected moon gravity 1.62, got %f", cfg.Gravity)
	}
	if _, err := cfg.EnvConfig(); err != nil {
		t.Errorf("moon preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if _, err := cfg.EnvConfig(); err != nil {
			t.Errorf("preset %s should validate: %v", name, err)
		}
	}
}
