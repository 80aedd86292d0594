// Package dynamo provides the primitives shared by the gravity simulation.
//
// The package defines the small vocabulary the physics core and its
// collaborators agree on:
//
//   - [Box]: the axis-aligned containment cube particles wrap around
//   - [Params]: the tunables read by every tick (G, box, external force)
//   - [SimError]: a tick that produced an invalid state
//
// # Example
//
//	params := dynamo.NewParams(40*0.00002, 2, r3.Vec{})
//	stepper := physics.NewStepper()
//	stepper.Step(particles, params)
//
// # Thread Safety
//
// Nothing here is safe for concurrent mutation. A tick is a synchronous,
// in-place transform owned by a single caller.
package dynamo
