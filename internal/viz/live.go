package viz

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	width           = 60
	height          = 24
	historyCapacity = 300
	physicsInterval = time.Second / 240
)

type TickMsg time.Time

// Model is the Bubble Tea program. The simulation is stepped once per
// TickMsg; the canvas is redrawn only when the render gate opens.
type Model struct {
	sim      *sim.Simulator
	cfg      *config.Config
	rng      *rand.Rand
	camera   *Camera
	canvas   *Canvas
	gate     *sim.RenderGate
	frame    string
	history  []float64
	colorBy  physics.ColorSource
	running  bool
	selected int
	showHelp bool
	err      error
}

// NewModel wraps a prepared simulator. cfg is the live source of tunables
// and is mutated as the user adjusts parameters.
func NewModel(s *sim.Simulator, cfg *config.Config, rng *rand.Rand) *Model {
	m := &Model{
		sim:     s,
		cfg:     cfg,
		rng:     rng,
		camera:  NewCamera(cfg.BoxSize),
		canvas:  NewCanvas(width, height),
		gate:    sim.NewRenderGate(cfg.FPS),
		history: make([]float64, 0, historyCapacity),
		colorBy: cfg.ColorSource(),
		running: true,
	}
	m.draw()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(physicsInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.sim.StopAll()
		case "r":
			m.regenerate()
		case "c":
			m.colorBy = m.colorBy.Next()
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "shift+tab":
			m.selected = (m.selected + len(tunables) - 1) % len(tunables)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "left", "h":
			m.camera.RotateY(-0.1)
		case "right", "l":
			m.camera.RotateY(0.1)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
		m.draw()
	case TickMsg:
		if m.running {
			m.step()
		}
		if m.gate.Ready(time.Time(msg)) {
			m.draw()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.sim.Step()
	m.history = append(m.history, physics.KineticEnergy(m.sim.Particles()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// adjust moves the selected parameter one step and pushes it into the
// simulation. A particle count change replaces the whole set.
func (m *Model) adjust(dir float64) {
	p := tunables[m.selected]
	if !p.adjust(m.cfg, dir) {
		return
	}
	switch p.name {
	case "particles":
		m.regenerate()
	case "box":
		m.err = m.sim.SetBoxSize(m.cfg.BoxSize)
		m.camera.Frame(m.cfg.BoxSize)
	case "gravity":
		m.err = m.sim.SetGravity(m.cfg.Params().G)
	default:
		m.err = m.sim.SetExternalForce(m.cfg.ScaledForce())
	}
}

func (m *Model) regenerate() {
	set, err := m.cfg.Generate(m.rng)
	if err != nil {
		m.err = err
		return
	}
	m.sim.Resize(set)
	m.history = m.history[:0]
}

// draw projects the box and particles, nearest particles last.
func (m *Model) draw() {
	m.canvas.Clear()
	pw, ph := m.canvas.Width*2, m.canvas.Height*4

	for _, e := range BoxEdges(m.sim.Params().Box.Size) {
		if x1, y1, x2, y2, ok := m.camera.ProjectEdge(e, pw, ph); ok {
			m.canvas.DrawLine(x1, y1, x2, y2)
		}
	}

	set := m.sim.Particles()
	shades := physics.Shades(set, m.colorBy)
	type dot struct {
		x, y  int
		depth float64
		color string
	}
	dots := make([]dot, 0, len(set))
	for i := range set {
		x, y, d, ok := m.camera.Project(set[i].Position, pw, ph)
		if !ok {
			continue
		}
		dots = append(dots, dot{x, y, d, physics.Color(shades[i]).Hex()})
	}
	sort.Slice(dots, func(i, j int) bool { return dots[i].depth < dots[j].depth })
	for _, d := range dots {
		m.canvas.Dot(d.x, d.y, d.color)
	}

	m.frame = m.canvas.Render(boxStyle)
}

func (m *Model) View() string {
	canvasView := canvasStyle.Render(m.frame)

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVSIM") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	set := m.sim.Particles()
	peak := 0.0
	for i := range set {
		if v := set[i].Speed(); v > peak {
			peak = v
		}
	}
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Tick())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(set))) + "\n")
	s.WriteString(labelStyle.Render("Peak speed") + valueStyle.Render(fmt.Sprintf("%.4f", peak)) + "\n")
	com := physics.CenterOfMass(set)
	s.WriteString(labelStyle.Render("Centre") + valueStyle.Render(fmt.Sprintf("%+.2f %+.2f %+.2f", com.X, com.Y, com.Z)) + "\n")
	s.WriteString(labelStyle.Render("Colour") + valueStyle.Render(string(m.colorBy)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	for i, p := range tunables {
		line := fmt.Sprintf("%-10s %8.2f", p.name, p.get(m.cfg))
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	if m.err != nil {
		s.WriteString("\n" + activeParamStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause S:Stop R:Reset Q:Quit\nTab:Param ↑↓:Tune C:Colour ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		help := strings.Join([]string{
			"Space      pause / resume",
			"S          stop every particle",
			"R          regenerate particles",
			"C          cycle colour source",
			"Tab        next parameter",
			"Up/Down    tune parameter",
			"Left/Right rotate around Y",
			"x / X      rotate around X",
			"+ / -      zoom",
			"Q          quit",
		}, "\n")
		return overlayStyle.Render(help) + "\n\n" + mainView
	}
	return mainView
}
