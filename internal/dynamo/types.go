package dynamo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is the containment cube. Corner is the positive corner; Size is the
// half-extent used when a particle is relocated to the opposite wall.
type Box struct {
	Corner r3.Vec
	Size   float64
}

// NewBox returns a cube of half-size size centred on the origin.
func NewBox(size float64) Box {
	return Box{Corner: r3.Vec{X: size, Y: size, Z: size}, Size: size}
}

func (b Box) Validate() error {
	if !(b.Size > 0) || math.IsInf(b.Size, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidBox, b.Size)
	}
	if !(b.Corner.X > 0 && b.Corner.Y > 0 && b.Corner.Z > 0) {
		return fmt.Errorf("%w: corner %v", ErrInvalidBox, b.Corner)
	}
	return nil
}

// Params are the per-tick tunables. G and ExternalForce are already scaled;
// scaling from user-facing values happens in config.
type Params struct {
	G             float64
	Box           Box
	ExternalForce r3.Vec
}

func NewParams(g, boxSize float64, force r3.Vec) Params {
	return Params{G: g, Box: NewBox(boxSize), ExternalForce: force}
}

func (p Params) Validate() error {
	if math.IsNaN(p.G) || math.IsInf(p.G, 0) {
		return fmt.Errorf("%w: G=%v", ErrParameterBounds, p.G)
	}
	if !IsFinite(p.ExternalForce) {
		return fmt.Errorf("%w: force=%v", ErrParameterBounds, p.ExternalForce)
	}
	return p.Box.Validate()
}

// IsFinite reports whether every component of v is neither NaN nor Inf.
func IsFinite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
