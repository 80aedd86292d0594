package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/physics"
)

// controls is one frame's worth of raw slider and button state.
type controls struct {
	Gravity float32
	Count   float32
	BoxSize float32
	Force   [3]float32
	Stop    bool
}

// sliderValues is what each slider reports when left alone.
func sliderValues(cfg *config.Config) controls {
	return controls{
		Gravity: float32(cfg.Gravity),
		Count:   float32(cfg.Count),
		BoxSize: float32(cfg.BoxSize),
		Force:   [3]float32{float32(cfg.Force.X), float32(cfg.Force.Y), float32(cfg.Force.Z)},
	}
}

// SphereRadius sizes a particle by its mass.
func SphereRadius(mass float64) float32 {
	return float32(mass/10 + 0.1)
}

// ShadeColor maps a colour scalar to an opaque raylib colour.
func ShadeColor(s float64) rl.Color {
	r, g, b := physics.Color(s).Bytes()
	return rl.NewColor(r, g, b, 255)
}

// snap rounds v to the nearest multiple of step.
func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}

// normalize rescales values into [0,1]. A flat series maps to zero.
func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func pushTelemetry(buf []float64, v float64, capacity int) []float64 {
	buf = append(buf, v)
	if len(buf) > capacity {
		buf = buf[len(buf)-capacity:]
	}
	return buf
}
