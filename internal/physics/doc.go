// Package physics implements one discrete tick of the gravity simulation.
//
// A tick is computed in two phases so every pairwise force reads positions
// from the start of the tick:
//
//   - [PairwiseForce]: Newtonian attraction on one particle from all others
//   - [Stepper]: buffers every particle's force, then integrates each one
//   - [RelativeStats]: per-particle speed and acceleration over the set maximum
//   - [Color]: maps a relative stat to the display colour
//
// All functions operate in place on a caller-owned slice and never retain it.
package physics
