package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "lotka_volterra" {
		t.Errorf("expected model lotka_volterra, got %s", cfg.Model)
	}
	if cfg.Dt != 0.25 {
		t.Errorf("expected dt 0.25, got %f", cfg.Dt)
	}
	if cfg.Duration != 365.0 {
		t.Errorf("expected duration 365, got %f", cfg.Duration)
	}
	if cfg.Experiment.Runs != 50 {
		t.Errorf("expected 50 experiment runs, got %d", cfg.Experiment.Runs)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	data := []byte("model: logistic_prey\nexperiment:\n  runs: 10\n  ranges:\n    prey_birth_rate: {min: 0.02, max: 0.03}\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Model != "logistic_prey" {
		t.Errorf("expected model override, got %s", cfg.Model)
	}
	if cfg.Experiment.Runs != 10 {
		t.Errorf("expected runs override, got %d", cfg.Experiment.Runs)
	}
	if cfg.Dt != 0.25 {
		t.Errorf("defaults should survive partial config, got dt=%f", cfg.Dt)
	}
	r, ok := cfg.Experiment.Ranges["prey_birth_rate"]
	if !ok || r.Min != 0.02 || r.Max != 0.03 {
		t.Errorf("range not parsed: %+v", cfg.Experiment.Ranges)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := DefaultConfig()
	cfg.InitState.Prey = 80

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.InitState.Prey != 80 {
		t.Errorf("expected prey 80 after round trip, got %f", loaded.InitState.Prey)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lotka_volterra", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitState.Prey != 50 {
		t.Errorf("expected prey 50, got %f", cfg.InitState.Prey)
	}

	if GetPreset("lotka_volterra", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "classic") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("lotka_volterra")) == 0 {
		t.Error("expected presets for lotka_volterra")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestGetInitState(t *testing.T) {
	cfg := DefaultConfig()
	state := cfg.GetInitState()
	if len(state) != 2 || state[0] != 50 || state[1] != 20 {
		t.Errorf("unexpected init state: %v", state)
	}
}
