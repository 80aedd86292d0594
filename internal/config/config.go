package config

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/physics"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCount         = 10
	DefaultMass          = 0.1
	DefaultVariance      = 1.0
	DefaultGravity       = 40.0
	DefaultGravityScalar = 0.00002
	DefaultForceScalar   = 0.00002
	DefaultBoxSize       = 2.0
	DefaultTicks         = 1000
	DefaultFPS           = 120

	// Slider ranges exposed by the viewers.
	MinGravity = 1.0
	MaxGravity = 100.0
	MinCount   = 1
	MaxCount   = 50
	MinBoxSize = 0.5
	MaxBoxSize = 10.0
	MaxForce   = 100.0
)

type Config struct {
	Count         int         `yaml:"count"`
	MinMass       float64     `yaml:"min_mass"`
	MaxMass       float64     `yaml:"max_mass"`
	Variance      float64     `yaml:"variance"`
	Gravity       float64     `yaml:"gravity"`
	GravityScalar float64     `yaml:"gravity_scalar"`
	Force         ForceConfig `yaml:"force"`
	ForceScalar   float64     `yaml:"force_scalar"`
	BoxSize       float64     `yaml:"box_size"`
	Ticks         int         `yaml:"ticks"`
	RecordEvery   int         `yaml:"record_every"`
	Seed          int64       `yaml:"seed"`
	FPS           int         `yaml:"fps"`
	ColorBy       string      `yaml:"color_by"`
	ValidateState bool        `yaml:"validate_state"`
}

// ForceConfig is the user-facing external force before scaling.
type ForceConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:         DefaultCount,
		MinMass:       DefaultMass,
		MaxMass:       DefaultMass,
		Variance:      DefaultVariance,
		Gravity:       DefaultGravity,
		GravityScalar: DefaultGravityScalar,
		ForceScalar:   DefaultForceScalar,
		BoxSize:       DefaultBoxSize,
		Ticks:         DefaultTicks,
		RecordEvery:   1,
		FPS:           DefaultFPS,
		ColorBy:       string(physics.BySpeed),
		ValidateState: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Count < MinCount || c.Count > MaxCount {
		return fmt.Errorf("%w: count %d outside [%d, %d]", dynamo.ErrInvalidCount, c.Count, MinCount, MaxCount)
	}
	if !(c.Gravity >= MinGravity && c.Gravity <= MaxGravity) {
		return fmt.Errorf("%w: gravity %v outside [%v, %v]", dynamo.ErrParameterBounds, c.Gravity, MinGravity, MaxGravity)
	}
	if !(c.BoxSize >= MinBoxSize && c.BoxSize <= MaxBoxSize) {
		return fmt.Errorf("%w: box_size %v outside [%v, %v]", dynamo.ErrInvalidBox, c.BoxSize, MinBoxSize, MaxBoxSize)
	}
	for _, f := range [3]float64{c.Force.X, c.Force.Y, c.Force.Z} {
		if !(math.Abs(f) <= MaxForce) {
			return fmt.Errorf("%w: force component %v outside [%v, %v]", dynamo.ErrParameterBounds, f, -MaxForce, MaxForce)
		}
	}
	if !(c.MinMass > 0) {
		return fmt.Errorf("%w: min_mass %v", dynamo.ErrInvalidMass, c.MinMass)
	}
	if c.MinMass > c.MaxMass || math.IsInf(c.MaxMass, 0) {
		return fmt.Errorf("%w: [%v, %v]", dynamo.ErrInvalidMassRange, c.MinMass, c.MaxMass)
	}
	if c.Variance < 0 {
		return fmt.Errorf("%w: variance %v", dynamo.ErrParameterBounds, c.Variance)
	}
	if c.Ticks < 0 || c.RecordEvery < 0 || c.FPS < 0 {
		return fmt.Errorf("%w: ticks, record_every and fps must not be negative", dynamo.ErrParameterBounds)
	}
	if _, err := physics.ParseColorSource(c.ColorBy); err != nil {
		return err
	}
	return c.Params().Validate()
}

// Params applies the scalars to the user-facing values.
func (c *Config) Params() dynamo.Params {
	return dynamo.NewParams(c.Gravity*c.GravityScalar, c.BoxSize, c.ScaledForce())
}

func (c *Config) ScaledForce() r3.Vec {
	return r3.Scale(c.ForceScalar, r3.Vec{X: c.Force.X, Y: c.Force.Y, Z: c.Force.Z})
}

func (c *Config) ColorSource() physics.ColorSource {
	src, err := physics.ParseColorSource(c.ColorBy)
	if err != nil {
		return physics.BySpeed
	}
	return src
}

// Generate builds the initial particle set described by the config.
func (c *Config) Generate(rng *rand.Rand) ([]particle.State, error) {
	return particle.Generate(rng, c.Count, c.MinMass, c.MaxMass, c.Variance)
}
