package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("cell = %U, want %U", c.Grid[0][0], blank|0x1)
	}
	c.Set(1, 3)
	if c.Grid[0][0] != blank|0x1|0x80 {
		t.Errorf("cell = %U after second dot", c.Grid[0][0])
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				t.Fatalf("out of bounds write changed a cell: %U", r)
			}
		}
	}
}

func TestCanvasPlotColour(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Dot(2, 4, "#00ff00")
	if c.Colors[1][1] != "#00ff00" {
		t.Errorf("colour = %q, want #00ff00", c.Colors[1][1])
	}
	c.Clear()
	if c.Colors[1][1] != "" || c.Grid[1][1] != blank {
		t.Error("clear should reset glyphs and colours")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != blank|0x1|0x8 {
			t.Errorf("cell %d = %U, want top row filled", col, c.Grid[0][col])
		}
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Dot(0, 0, "#ff0000")
	lines := strings.Split(strings.TrimSuffix(c.Render(lipgloss.NewStyle()), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.ContainsRune(lines[0], blank|0x1|0x2|0x8|0x10) {
		t.Errorf("first row %q missing the plotted dot", lines[0])
	}
}
