package particle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/gravsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generate builds a fresh set of count bodies, uniformly spread in a cube of
// half-width variance with mass uniform in [minMass, maxMass].
func Generate(rng *rand.Rand, count int, minMass, maxMass, variance float64) ([]State, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", dynamo.ErrInvalidCount, count)
	}
	if minMass > maxMass {
		return nil, fmt.Errorf("%w: [%v, %v]", dynamo.ErrInvalidMassRange, minMass, maxMass)
	}
	if variance < 0 || math.IsNaN(variance) {
		return nil, fmt.Errorf("%w: variance %v", dynamo.ErrParameterBounds, variance)
	}

	set := make([]State, 0, count)
	for i := 0; i < count; i++ {
		pos := r3.Vec{
			X: rng.Float64()*(2*variance) - variance,
			Y: rng.Float64()*(2*variance) - variance,
			Z: rng.Float64()*(2*variance) - variance,
		}
		mass := rng.Float64()*(maxMass-minMass) + minMass
		p, err := New(i, pos, mass)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Clone copies a set so snapshots do not alias the live slice.
func Clone(set []State) []State {
	c := make([]State, len(set))
	copy(c, set)
	return c
}
