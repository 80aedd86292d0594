// Package particle holds the mutable physical state of a single body and
// its per-tick integration.
package particle

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Radius is the distance at or below which a pair exerts no force.
	Radius = 0.2
	// MaxSpeed is the velocity magnitude ceiling enforced after every integration.
	MaxSpeed = 1000.0
	// WrapMargin keeps a relocated particle just inside the opposite wall.
	WrapMargin = 0.1
	// WrapDamping scales velocity once per wrapping tick.
	WrapDamping = 0.5
)

// State is one body. Force and Acceleration are transient: both are
// overwritten by every Integrate call.
type State struct {
	ID           int
	Position     r3.Vec
	Velocity     r3.Vec
	Acceleration r3.Vec
	Force        r3.Vec
	Mass         float64
}

// New creates a body at rest. Mass must be positive and finite since every
// tick divides by it.
func New(id int, pos r3.Vec, mass float64) (State, error) {
	if !(mass > 0) || math.IsInf(mass, 1) {
		return State{}, fmt.Errorf("%w: got %v", dynamo.ErrInvalidMass, mass)
	}
	return State{ID: id, Position: pos, Mass: mass}, nil
}

func (p *State) Speed() float64 { return r3.Norm(p.Velocity) }

func (p *State) AccelerationMagnitude() float64 { return r3.Norm(p.Acceleration) }

// Stop halts the body in place. Position, force and mass are left untouched.
func (p *State) Stop() {
	p.Velocity = r3.Vec{}
	p.Acceleration = r3.Vec{}
}

// Integrate advances the body by one tick under the given net force and
// reports whether it wrapped around the box.
//
// The speed clamp runs after the acceleration has been added, so the
// velocity may exceed MaxSpeed transiently before being rescaled to it.
func (p *State) Integrate(force r3.Vec, box dynamo.Box) bool {
	p.Force = force
	p.Acceleration = r3.Scale(1/p.Mass, force)
	p.Velocity = r3.Add(p.Velocity, p.Acceleration)
	if r3.Norm(p.Velocity) >= MaxSpeed {
		p.Velocity = r3.Scale(MaxSpeed, r3.Unit(p.Velocity))
	}
	p.Position = r3.Add(p.Position, p.Velocity)
	return p.wrap(box)
}

// wrap teleports the body to the opposite wall. Each side fires for at most
// one axis (X, then Y, then Z); both sides test the pre-wrap coordinates.
func (p *State) wrap(box dynamo.Box) bool {
	pos := p.Position
	changed := false

	switch {
	case pos.X >= box.Corner.X:
		p.Position.X = -box.Size + WrapMargin
		changed = true
	case pos.Y >= box.Corner.Y:
		p.Position.Y = -box.Size + WrapMargin
		changed = true
	case pos.Z >= box.Corner.Z:
		p.Position.Z = -box.Size + WrapMargin
		changed = true
	}

	switch {
	case pos.X <= -box.Corner.X:
		p.Position.X = box.Size - WrapMargin
		changed = true
	case pos.Y <= -box.Corner.Y:
		p.Position.Y = box.Size - WrapMargin
		changed = true
	case pos.Z <= -box.Corner.Z:
		p.Position.Z = box.Size - WrapMargin
		changed = true
	}

	if changed {
		p.Velocity = r3.Scale(WrapDamping, p.Velocity)
	}
	return changed
}

// IsValid reports whether every vector of the state is finite.
func (p *State) IsValid() bool {
	return dynamo.IsFinite(p.Position) && dynamo.IsFinite(p.Velocity) && dynamo.IsFinite(p.Acceleration)
}
