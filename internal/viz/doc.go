// Package viz provides the terminal viewer for the gravity simulation.
//
// The viewer is a Bubble Tea program that steps the simulation on every
// frame callback and redraws at a separately gated frame rate:
//
//   - [Model]: interactive program with tunable parameters
//   - [Canvas]: Braille pixel canvas with per-cell colour
//   - [Camera]: perspective projection of the containment cube
//
// # Key Bindings
//
//	Space - Pause/Resume
//	S     - Stop every particle
//	R     - Regenerate the particle set
//	C     - Cycle colour source (speed, acceleration, constant)
//	Tab   - Cycle parameters, Up/Down to tune
//	←/→ ↑ - Rotate (h/l, x/X), +/- zoom
//	?     - Show help overlay
package viz
