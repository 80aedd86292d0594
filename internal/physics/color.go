package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/particle"
)

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Rest is used for stationary particles and for NaN shades.
var Rest = RGB{R: 1}

// Color maps a shade in [0, 1] from red (slow) to green (fast).
func Color(s float64) RGB {
	if s == 0 || math.IsNaN(s) {
		return Rest
	}
	s = math.Max(0, math.Min(1, s))
	return RGB{R: 1 - s, G: s}
}

// Bytes converts the colour to 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return uint8(math.Round(c.R * 255)), uint8(math.Round(c.G * 255)), uint8(math.Round(c.B * 255))
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ColorSource selects which scalar drives particle colour.
type ColorSource string

const (
	BySpeed        ColorSource = "speed"
	ByAcceleration ColorSource = "acceleration"
	Constant       ColorSource = "constant"
)

// ConstantShade is the shade used by the Constant source.
const ConstantShade = 1.0

func ParseColorSource(s string) (ColorSource, error) {
	switch src := ColorSource(s); src {
	case BySpeed, ByAcceleration, Constant:
		return src, nil
	default:
		return "", fmt.Errorf("%w: color source %q", dynamo.ErrParameterBounds, s)
	}
}

// Next cycles speed -> acceleration -> constant.
func (c ColorSource) Next() ColorSource {
	switch c {
	case BySpeed:
		return ByAcceleration
	case ByAcceleration:
		return Constant
	default:
		return BySpeed
	}
}

// Shades returns one shade per particle for the given source. An empty set
// yields an empty slice.
func Shades(set []particle.State, src ColorSource) []float64 {
	if len(set) == 0 {
		return []float64{}
	}
	switch src {
	case ByAcceleration:
		_, accels := RelativeStats(set)
		return accels
	case Constant:
		shades := make([]float64, len(set))
		for i := range shades {
			shades[i] = ConstantShade
		}
		return shades
	default:
		speeds, _ := RelativeStats(set)
		return speeds
	}
}
