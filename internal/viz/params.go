package viz

import (
	"math"

	"github.com/san-kum/gravsim/internal/config"
)

// param is one tunable row in the side panel. get/set act on the config so
// the simulation can be re-synced from a single source.
type param struct {
	name     string
	min, max float64
	step     float64
	get      func(*config.Config) float64
	set      func(*config.Config, float64)
}

func (p param) adjust(cfg *config.Config, dir float64) bool {
	old := p.get(cfg)
	v := math.Max(p.min, math.Min(p.max, old+dir*p.step))
	if v == old {
		return false
	}
	p.set(cfg, v)
	return true
}

var tunables = []param{
	{
		name: "gravity", min: config.MinGravity, max: config.MaxGravity, step: 1,
		get: func(c *config.Config) float64 { return c.Gravity },
		set: func(c *config.Config, v float64) { c.Gravity = v },
	},
	{
		name: "particles", min: config.MinCount, max: config.MaxCount, step: 1,
		get: func(c *config.Config) float64 { return float64(c.Count) },
		set: func(c *config.Config, v float64) { c.Count = int(v) },
	},
	{
		name: "box", min: config.MinBoxSize, max: config.MaxBoxSize, step: 0.25,
		get: func(c *config.Config) float64 { return c.BoxSize },
		set: func(c *config.Config, v float64) { c.BoxSize = v },
	},
	{
		name: "force x", min: -config.MaxForce, max: config.MaxForce, step: 5,
		get: func(c *config.Config) float64 { return c.Force.X },
		set: func(c *config.Config, v float64) { c.Force.X = v },
	},
	{
		name: "force y", min: -config.MaxForce, max: config.MaxForce, step: 5,
		get: func(c *config.Config) float64 { return c.Force.Y },
		set: func(c *config.Config, v float64) { c.Force.Y = v },
	},
	{
		name: "force z", min: -config.MaxForce, max: config.MaxForce, step: 5,
		get: func(c *config.Config) float64 { return c.Force.Z },
		set: func(c *config.Config, v float64) { c.Force.Z = v },
	},
}
