package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/particle"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRelativeStats(t *testing.T) {
	set := []particle.State{
		body(t, 0, r3.Vec{}, 1),
		body(t, 1, r3.Vec{X: 1}, 1),
		body(t, 2, r3.Vec{X: 2}, 1),
	}
	set[0].Velocity = r3.Vec{X: 1}
	set[1].Velocity = r3.Vec{Y: 2}
	set[2].Velocity = r3.Vec{Z: -4}
	set[0].Acceleration = r3.Vec{X: 2}
	set[2].Acceleration = r3.Vec{X: 8}

	speeds, accels := RelativeStats(set)

	wantSpeeds := []float64{0.25, 0.5, 1.0}
	wantAccels := []float64{0.25, 0, 1.0}
	for i := range set {
		if math.Abs(speeds[i]-wantSpeeds[i]) > 1e-12 {
			t.Errorf("speed[%d] = %v, want %v", i, speeds[i], wantSpeeds[i])
		}
		if math.Abs(accels[i]-wantAccels[i]) > 1e-12 {
			t.Errorf("accel[%d] = %v, want %v", i, accels[i], wantAccels[i])
		}
	}
}

func TestRelativeStats_AllStationary(t *testing.T) {
	set := []particle.State{
		body(t, 0, r3.Vec{}, 1),
		body(t, 1, r3.Vec{X: 1}, 1),
		body(t, 2, r3.Vec{X: 2}, 1),
	}

	speeds, accels := RelativeStats(set)

	for i := range set {
		if !math.IsNaN(speeds[i]) {
			t.Errorf("speed[%d] = %v, want NaN", i, speeds[i])
		}
		if !math.IsNaN(accels[i]) {
			t.Errorf("accel[%d] = %v, want NaN", i, accels[i])
		}
	}
}

func TestRelativeStats_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty set")
		}
	}()
	RelativeStats(nil)
}
