package sim

import "time"

// RenderGate limits redraws to a target frame rate while physics keeps
// stepping on every frame callback.
type RenderGate struct {
	interval time.Duration
	last     time.Time
}

// NewRenderGate returns a gate for fps frames per second. A non-positive
// fps never blocks.
func NewRenderGate(fps int) *RenderGate {
	g := &RenderGate{}
	if fps > 0 {
		g.interval = time.Second / time.Duration(fps)
	}
	return g
}

// Ready reports whether enough time has passed since the last redraw and,
// if so, records now as the redraw time.
func (g *RenderGate) Ready(now time.Time) bool {
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}
