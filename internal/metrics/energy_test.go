package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/spatial/r3"
)

func pair() []particle.State {
	a, _ := particle.New(0, r3.Vec{X: -1}, 1)
	b, _ := particle.New(1, r3.Vec{X: 1}, 1)
	a.Velocity = r3.Vec{X: 2}
	return []particle.State{a, b}
}

func constG(g float64) func() float64 { return func() float64 { return g } }

func TestEnergy(t *testing.T) {
	m := NewEnergy(constG(1))
	set := pair()

	m.Observe(set, 1)

	// ke = 0.5*1*4 = 2, pe = -1*1*1/2 = -0.5
	if math.Abs(m.Value()-1.5) > 1e-12 {
		t.Errorf("expected energy 1.5, got %f", m.Value())
	}

	// An empty set contributes zero, so the value halves.
	m.Observe(nil, 2)
	if math.Abs(m.Value()-0.75) > 1e-12 {
		t.Errorf("expected mean energy 0.75, got %f", m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(constG(1))
	m.Observe(pair(), 1)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(constG(1))
	set := pair()

	m.Observe(set, 1)
	if m.Value() != 0 {
		t.Errorf("first sample drift = %v", m.Value())
	}

	set[0].Velocity = r3.Vec{}
	m.Observe(set, 2)

	// 1.5 -> -0.5
	if math.Abs(m.Value()-2.0/1.5) > 1e-12 {
		t.Errorf("drift = %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestSpeedMetrics(t *testing.T) {
	set := pair()
	peak := NewPeakSpeed()
	mean := NewMeanSpeed()

	peak.Observe(set, 1)
	mean.Observe(set, 1)
	set[1].Velocity = r3.Vec{Y: 6}
	peak.Observe(set, 2)
	mean.Observe(set, 2)

	if peak.Value() != 6 {
		t.Errorf("peak = %v", peak.Value())
	}
	// tick means: 1, 4
	if math.Abs(mean.Value()-2.5) > 1e-12 {
		t.Errorf("mean = %v", mean.Value())
	}

	mean.Observe(nil, 3)
	if math.Abs(mean.Value()-2.5) > 1e-12 {
		t.Error("empty set should not be sampled")
	}

	peak.Reset()
	mean.Reset()
	if peak.Value() != 0 || mean.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
