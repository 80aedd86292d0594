package viz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera orbits the origin and projects world points to canvas sub-pixels.
type Camera struct {
	Distance   float64
	Extent     float64
	RotX, RotY float64
	Zoom       float64
}

// NewCamera frames a cube of half-size extent.
func NewCamera(extent float64) *Camera {
	return &Camera{Distance: extent * 6, Extent: extent, RotX: 0.35, RotY: -0.5, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Frame refits the camera to a new extent, keeping rotation and zoom.
func (c *Camera) Frame(extent float64) {
	c.Extent = extent
	c.Distance = extent * 6
}

// RotatePoint applies the X then Y rotation.
func (c *Camera) RotatePoint(p r3.Vec) r3.Vec {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project converts world coordinates to screen coordinates on an sw x sh
// surface. Returns x, y, depth (larger is nearer) and visibility.
func (c *Camera) Project(p r3.Vec, sw, sh int) (int, int, float64, bool) {
	sx, sy, depth, front := c.project(p, sw, sh)
	if !front {
		return 0, 0, 0, false
	}
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// ProjectEdge projects both ends of a segment. It fails only when an end is
// behind the camera; off-screen coordinates are left for the caller to clip.
func (c *Camera) ProjectEdge(e [2]r3.Vec, sw, sh int) (x1, y1, x2, y2 int, ok bool) {
	x1, y1, _, front1 := c.project(e[0], sw, sh)
	x2, y2, _, front2 := c.project(e[1], sw, sh)
	if !front1 || !front2 {
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, true
}

func (c *Camera) project(p r3.Vec, sw, sh int) (int, int, float64, bool) {
	rot := r3.Scale(c.Zoom, c.RotatePoint(p))
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	half := math.Min(float64(sw), float64(sh)) / 2 * 0.8
	k := half / c.Extent
	sx := int(math.Round(rot.X*persp*k)) + sw/2
	sy := int(math.Round(-rot.Y*persp*k)) + sh/2
	return sx, sy, rot.Z, true
}

// BoxEdges returns the 12 edges of a cube of half-size s.
func BoxEdges(s float64) [][2]r3.Vec {
	v := []r3.Vec{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	edges := make([][2]r3.Vec, len(ei))
	for i, e := range ei {
		edges[i] = [2]r3.Vec{v[e[0]], v[e[1]]}
	}
	return edges
}
