package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/physics"
)

// Energy tracks the mean total (kinetic + potential) energy of the set.
type Energy struct {
	name        string
	g           func() float64
	samples     int
	totalEnergy float64
}

// NewEnergy takes a getter so the metric follows live changes to G.
func NewEnergy(g func() float64) *Energy {
	return &Energy{name: "energy", g: g}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(set []particle.State, tick int) {
	e.totalEnergy += physics.KineticEnergy(set) + physics.PotentialEnergy(set, e.g())
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift is the largest relative deviation from the first observed
// energy. Wrapping and speed clamping make this grow; it is a diagnostic,
// not a conservation check.
type EnergyDrift struct {
	name          string
	g             func() float64
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(g func() float64) *EnergyDrift {
	return &EnergyDrift{name: "energy_drift", g: g}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(set []particle.State, tick int) {
	energy := physics.KineticEnergy(set) + physics.PotentialEnergy(set, e.g())

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
