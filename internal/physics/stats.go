package physics

import (
	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/floats"
)

// RelativeStats returns, index-parallel to set, each particle's speed and
// acceleration magnitude divided by the maximum over the set.
//
// set must not be empty. When every particle shares a zero maximum the
// result is NaN (0/0) for each entry; Color treats that as the rest colour.
func RelativeStats(set []particle.State) (speeds, accels []float64) {
	speeds = make([]float64, len(set))
	accels = make([]float64, len(set))
	for i := range set {
		speeds[i] = set[i].Speed()
		accels[i] = set[i].AccelerationMagnitude()
	}

	maxSpeed := floats.Max(speeds)
	maxAccel := floats.Max(accels)
	for i := range set {
		speeds[i] /= maxSpeed
		accels[i] /= maxAccel
	}
	return speeds, accels
}
