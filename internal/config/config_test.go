package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/salt-die/soap/internal/arena"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Centers != 50 {
		t.Errorf("expected 50 centers, got %d", cfg.Centers)
	}
	if cfg.Friction != 0.97 {
		t.Errorf("expected friction 0.97, got %g", cfg.Friction)
	}
	if !cfg.Fill || !cfg.Outline || !cfg.ShowHelp {
		t.Error("expected fill, outline and help on by default")
	}
	if cfg.Palette != "rainbow" {
		t.Errorf("expected rainbow palette, got %s", cfg.Palette)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero centers", func(c *Config) { c.Centers = 0 }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, true},
		{"friction one", func(c *Config) { c.Friction = 1.0 }, true},
		{"friction zero", func(c *Config) { c.Friction = 0 }, true},
		{"zero max_vel", func(c *Config) { c.MaxVel = 0 }, true},
		{"negative jitter", func(c *Config) { c.Jitter = -0.1 }, true},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
		{"heavy but legal", func(c *Config) { c.Centers = 500; c.Friction = 0.999 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soap.yaml")
	cfg := DefaultConfig()
	cfg.Centers = 77
	cfg.Dual = true
	cfg.Palette = "plum"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Centers != 77 || !loaded.Dual || loaded.Palette != "plum" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Friction != cfg.Friction {
		t.Errorf("expected friction %g, got %g", cfg.Friction, loaded.Friction)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("centers: 9\nfriction: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Centers != 9 || cfg.Friction != 0.5 {
		t.Errorf("file fields not applied: %+v", cfg)
	}
	if cfg.MaxVel != arena.DefaultMaxVel {
		t.Errorf("unset fields should keep defaults, got max_vel %g", cfg.MaxVel)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("friction: 2.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Centers != 30 {
		t.Errorf("expected 30 centers, got %d", cfg.Centers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate, got %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	GetPreset("calm").Centers = 9999
	if got := GetPreset("calm").Centers; got != 30 {
		t.Errorf("preset table was mutated: centers %d", got)
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for name := range Presets {
		if err := Presets[name].Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	found := false
	for _, n := range names {
		if n == "classic" {
			found = true
		}
	}
	if !found {
		t.Error("expected a classic preset")
	}
}

func TestParamsMapping(t *testing.T) {
	if got := DefaultConfig().Params(); got != arena.DefaultParams() {
		t.Errorf("default config params diverge from arena defaults: %+v", got)
	}
}

func TestTogglesMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = "mono"
	cfg.ShowCenters = true

	tg := cfg.Toggles()
	if tg.Palette != 4 {
		t.Errorf("expected palette index 4, got %d", tg.Palette)
	}
	if !tg.Centers || !tg.Fill || !tg.Outline || !tg.Help || tg.Dual {
		t.Errorf("toggles mapped wrong: %+v", tg)
	}
}
