package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"cluster": {
		Count: 30, MinMass: 0.1, MaxMass: 0.3, Variance: 0.5,
		Gravity: 60, GravityScalar: DefaultGravityScalar, ForceScalar: DefaultForceScalar,
		BoxSize: 2, Ticks: 2000, RecordEvery: 10, FPS: DefaultFPS, ColorBy: "speed", ValidateState: true,
	},
	"swarm": {
		Count: 50, MinMass: 0.05, MaxMass: 0.1, Variance: 1.8,
		Gravity: 20, GravityScalar: DefaultGravityScalar, ForceScalar: DefaultForceScalar,
		BoxSize: 2, Ticks: 3000, RecordEvery: 10, FPS: DefaultFPS, ColorBy: "acceleration", ValidateState: true,
	},
	"windy": {
		Count: 20, MinMass: 0.1, MaxMass: 0.1, Variance: 1,
		Gravity: 40, GravityScalar: DefaultGravityScalar,
		Force: ForceConfig{X: 50}, ForceScalar: DefaultForceScalar,
		BoxSize: 2, Ticks: 2000, RecordEvery: 10, FPS: DefaultFPS, ColorBy: "speed", ValidateState: true,
	},
	"heavy": {
		Count: 8, MinMass: 0.5, MaxMass: 2, Variance: 1.5,
		Gravity: 100, GravityScalar: DefaultGravityScalar, ForceScalar: DefaultForceScalar,
		BoxSize: 4, Ticks: 1000, RecordEvery: 5, FPS: DefaultFPS, ColorBy: "speed", ValidateState: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
