package config

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Count != 10 {
		t.Errorf("expected 10 particles, got %d", cfg.Count)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if g := cfg.Params().G; math.Abs(g-40*0.00002) > 1e-15 {
		t.Errorf("scaled G = %v", g)
	}
	if cfg.Params().Box.Corner.Z != 2 {
		t.Errorf("box corner = %v", cfg.Params().Box.Corner)
	}
}

func TestScaledForce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Force = ForceConfig{X: 10, Z: -5}
	f := cfg.ScaledForce()
	if math.Abs(f.X-10*DefaultForceScalar) > 1e-15 || f.Y != 0 || math.Abs(f.Z+5*DefaultForceScalar) > 1e-15 {
		t.Errorf("scaled force = %v", f)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero count", func(c *Config) { c.Count = 0 }, dynamo.ErrInvalidCount},
		{"zero mass", func(c *Config) { c.MinMass = 0 }, dynamo.ErrInvalidMass},
		{"inverted masses", func(c *Config) { c.MinMass, c.MaxMass = 1, 0.5 }, dynamo.ErrInvalidMassRange},
		{"negative variance", func(c *Config) { c.Variance = -1 }, dynamo.ErrParameterBounds},
		{"negative fps", func(c *Config) { c.FPS = -1 }, dynamo.ErrParameterBounds},
		{"bad color", func(c *Config) { c.ColorBy = "mass" }, dynamo.ErrParameterBounds},
		{"zero box", func(c *Config) { c.BoxSize = 0 }, dynamo.ErrInvalidBox},
		{"count above slider", func(c *Config) { c.Count = MaxCount + 30 }, dynamo.ErrInvalidCount},
		{"gravity below slider", func(c *Config) { c.Gravity = 0.5 }, dynamo.ErrParameterBounds},
		{"gravity above slider", func(c *Config) { c.Gravity = MaxGravity + 1 }, dynamo.ErrParameterBounds},
		{"nan gravity", func(c *Config) { c.Gravity = math.NaN() }, dynamo.ErrParameterBounds},
		{"box above slider", func(c *Config) { c.BoxSize = MaxBoxSize + 0.25 }, dynamo.ErrInvalidBox},
		{"force above slider", func(c *Config) { c.Force.Y = -MaxForce - 1 }, dynamo.ErrParameterBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	cfg := DefaultConfig()
	cfg.Count = 25
	cfg.Force = ForceConfig{Y: 3}
	cfg.ColorBy = "acceleration"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
	if loaded.ColorSource() != physics.ByAcceleration {
		t.Errorf("color source = %v", loaded.ColorSource())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("count: 3\ngravity: 80\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Count != 3 || cfg.Gravity != 80 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BoxSize != DefaultBoxSize || cfg.GravityScalar != DefaultGravityScalar {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("count: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, dynamo.ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	set, err := cfg.Generate(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != cfg.Count {
		t.Errorf("expected %d particles, got %d", cfg.Count, len(set))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("windy")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Force.X != 50 {
		t.Errorf("expected force x 50, got %f", cfg.Force.X)
	}
	cfg.Count = 1
	if Presets["windy"].Count == 1 {
		t.Error("GetPreset returned the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestValidate_SliderEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = MaxCount
	cfg.Gravity = MinGravity
	cfg.BoxSize = MaxBoxSize
	cfg.Force = ForceConfig{X: MaxForce, Z: -MaxForce}
	if err := cfg.Validate(); err != nil {
		t.Errorf("slider edge values rejected: %v", err)
	}
}
