package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/viz"
)

// SnapshotToSVG renders one frame of particles as seen by cam, with the
// bounding box of half-size box drawn as a wireframe.
func SnapshotToSVG(set []particle.State, box float64, cam *viz.Camera, src physics.ColorSource, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#3a3a3a" stroke-width="1">
`, width, height, width, height))

	for _, e := range viz.BoxEdges(box) {
		if x1, y1, x2, y2, ok := cam.ProjectEdge(e, width, height); ok {
			sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, x1, y1, x2, y2))
		}
	}
	sb.WriteString("</g>\n<g>\n")

	if len(set) > 0 {
		shades := physics.Shades(set, src)
		type circle struct {
			x, y  int
			r     float64
			depth float64
			fill  string
		}
		circles := make([]circle, 0, len(set))
		for i := range set {
			x, y, d, ok := cam.Project(set[i].Position, width, height)
			if !ok {
				continue
			}
			circles = append(circles, circle{x, y, radius(set[i].Mass), d, physics.Color(shades[i]).Hex()})
		}
		// Far first so near particles overlap them.
		sort.Slice(circles, func(i, j int) bool { return circles[i].depth < circles[j].depth })
		for _, c := range circles {
			sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%.1f" fill="%s"/>
`, c.x, c.y, c.r, c.fill))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func radius(mass float64) float64 {
	return 3 + mass*10
}

// SeriesToSVG draws a scalar time series, e.g. kinetic energy per tick.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
