package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Capacity != 4 {
		t.Errorf("expected capacity 4, got %d", cfg.Capacity)
	}
	if cfg.Plot.Height <= 0 || cfg.Plot.Width <= 0 {
		t.Error("plot size should be positive")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("name: mine\nops:\n  - add a\n  - last\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "mine" {
		t.Errorf("expected name mine, got %s", cfg.Name)
	}
	if cfg.Capacity != DefaultCapacity {
		t.Errorf("expected default capacity, got %d", cfg.Capacity)
	}
	if len(cfg.Ops) != 2 {
		t.Errorf("expected 2 ops, got %d", len(cfg.Ops))
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero capacity", "capacity: 0\nops: [add a]\n"},
		{"negative capacity", "capacity: -3\nops: [add a]\n"},
		{"no ops", "name: empty\n"},
		{"bad yaml", "ops: [add a\n"},
		{"parent dir name", "name: ../x\nops: [add a]\n"},
		{"nested name", "name: a/b\nops: [add a]\n"},
		{"backslash name", "name: 'a\\\\b'\nops: [add a]\n"},
		{"dot name", "name: ..\nops: [add a]\n"},
		{"empty name", "name: ''\nops: [add a]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := GetPreset("churn")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Capacity != cfg.Capacity || len(loaded.Ops) != len(cfg.Ops) {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("scenario")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Ops[0] != "add X" {
		t.Errorf("expected first op 'add X', got %q", cfg.Ops[0])
	}

	cfg.Ops[0] = "add Z"
	if Presets["scenario"].Ops[0] != "add X" {
		t.Error("GetPreset returned shared ops")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"growth", "my-run_2", "a.b"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q): %v", name, err)
		}
	}
	for _, name := range []string{"", ".", "..", "../x", "a/b", `a\b`, "/abs"} {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q): expected error", name)
		}
	}
}
