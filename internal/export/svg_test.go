package export

import (
	"strings"
	"testing"

	"github.com/san-kum/gravsim/internal/particle"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/viz"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSnapshotToSVG(t *testing.T) {
	a, err := particle.New(0, r3.Vec{X: -0.5}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := particle.New(1, r3.Vec{X: 0.5}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	svg := SnapshotToSVG([]particle.State{a, b}, 2, viz.NewCamera(2), physics.BySpeed, 400, 300)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("output is not a complete svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	// Resting particles use the rest colour.
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("expected red particles at rest")
	}
	if n := strings.Count(svg, "<line"); n == 0 {
		t.Error("expected box edges")
	}
}

func TestSnapshotToSVGEmpty(t *testing.T) {
	svg := SnapshotToSVG(nil, 2, viz.NewCamera(2), physics.BySpeed, 100, 100)
	if strings.Contains(svg, "<circle") {
		t.Error("empty set should draw no particles")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 100, "#fff") != "" {
		t.Error("single value should produce no output")
	}
	svg := SeriesToSVG([]float64{1, 2, 3, 2}, 200, 100, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke colour")
	}
	if n := strings.Count(svg, " L"); n != 3 {
		t.Errorf("segments = %d, want 3", n)
	}
}

func TestSnapshotToSVGZoomedBox(t *testing.T) {
	cam := viz.NewCamera(2)
	for i := 0; i < 5; i++ {
		cam.ZoomIn()
	}
	svg := SnapshotToSVG(nil, 2, cam, physics.BySpeed, 120, 96)
	if n := strings.Count(svg, "<line"); n != 12 {
		t.Errorf("box edges = %d, want 12 when zoomed past the frame", n)
	}
}
