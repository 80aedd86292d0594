package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/spatial/r3"
)

// PairwiseForce returns the gravitational pull on set[i] from every other
// particle. Pairs closer than particle.Radius are skipped.
func PairwiseForce(set []particle.State, i int, g float64) r3.Vec {
	subject := &set[i]
	var total r3.Vec
	for j := range set {
		if j == i {
			continue
		}
		d := r3.Sub(set[j].Position, subject.Position)
		dist := r3.Norm(d)
		if dist <= particle.Radius {
			continue
		}
		magnitude := subject.Mass * set[j].Mass * g / (dist * dist)
		total = r3.Add(total, r3.Scale(magnitude/dist, d))
	}
	return total
}

// Stepper advances a particle set by one tick. It owns the force buffer so
// repeated ticks over the same set do not allocate.
type Stepper struct {
	forces []r3.Vec
}

func NewStepper() *Stepper {
	return &Stepper{}
}

// Step computes every force from the pre-tick positions, then integrates.
// It returns the number of particles that wrapped around the box.
func (s *Stepper) Step(set []particle.State, params dynamo.Params) int {
	if cap(s.forces) < len(set) {
		s.forces = make([]r3.Vec, len(set))
	}
	s.forces = s.forces[:len(set)]

	for i := range set {
		s.forces[i] = r3.Add(PairwiseForce(set, i, params.G), params.ExternalForce)
	}

	wrapped := 0
	for i := range set {
		if set[i].Integrate(s.forces[i], params.Box) {
			wrapped++
		}
	}
	return wrapped
}

// Step is a one-shot tick with a throwaway buffer.
func Step(set []particle.State, params dynamo.Params) int {
	return NewStepper().Step(set, params)
}

// KineticEnergy sums ½mv² over the set.
func KineticEnergy(set []particle.State) float64 {
	ke := 0.0
	for i := range set {
		v := set[i].Speed()
		ke += 0.5 * set[i].Mass * v * v
	}
	return ke
}

// PotentialEnergy sums -G·m1·m2/r over every pair that exerts force.
func PotentialEnergy(set []particle.State, g float64) float64 {
	pe := 0.0
	for i := range set {
		for j := i + 1; j < len(set); j++ {
			r := r3.Norm(r3.Sub(set[j].Position, set[i].Position))
			if r <= particle.Radius {
				continue
			}
			pe -= g * set[i].Mass * set[j].Mass / r
		}
	}
	return pe
}

// CenterOfMass returns the mass-weighted mean position, or the origin for an
// empty set.
func CenterOfMass(set []particle.State) r3.Vec {
	var sum r3.Vec
	total := 0.0
	for i := range set {
		sum = r3.Add(sum, r3.Scale(set[i].Mass, set[i].Position))
		total += set[i].Mass
	}
	if total == 0 || math.IsNaN(total) {
		return r3.Vec{}
	}
	return r3.Scale(1/total, sum)
}
