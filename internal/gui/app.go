package gui

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	screenWidth  = 1280
	screenHeight = 720
	maxTelemetry = 200
)

type App struct {
	Sim       *sim.Simulator
	Cfg       *config.Config
	Rng       *rand.Rand
	Camera    rl.Camera3D
	Running   bool
	Orbit     bool
	ColorBy   physics.ColorSource
	Telemetry []float64
	Err       error

	// sliders holds the raw slider output of the previous frame.
	sliders controls
}

// initWindow opens the window. Physics steps once per frame, so fps also
// sets the simulation rate.
func initWindow(fps int) {
	rl.InitWindow(screenWidth, screenHeight, "gravsim")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

func NewApp(s *sim.Simulator, cfg *config.Config, rng *rand.Rand) *App {
	return &App{
		Sim:       s,
		Cfg:       cfg,
		Rng:       rng,
		Camera:    newCamera(cfg.BoxSize),
		Running:   true,
		ColorBy:   cfg.ColorSource(),
		Telemetry: make([]float64, 0, maxTelemetry),
		sliders:   sliderValues(cfg),
	}
}

func newCamera(box float64) rl.Camera3D {
	d := float32(box * 3)
	return rl.NewCamera3D(
		rl.NewVector3(d, d*0.6, d),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulator, cfg *config.Config, rng *rand.Rand) {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()
	NewApp(s, cfg, rng).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyQ) {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.Sim.StopAll()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.regenerate()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.ColorBy = a.ColorBy.Next()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.Orbit = !a.Orbit
	}
	if a.Orbit {
		rl.UpdateCamera(&a.Camera, rl.CameraOrbital)
	}

	if !a.Running {
		return
	}
	a.Sim.Step()
	a.Telemetry = pushTelemetry(a.Telemetry, physics.KineticEnergy(a.Sim.Particles()), maxTelemetry)
}

func (a *App) regenerate() {
	set, err := a.Cfg.Generate(a.Rng)
	if err != nil {
		a.Err = err
		return
	}
	a.Sim.Resize(set)
	a.Telemetry = a.Telemetry[:0]
}

// applyControls pushes sliders the user moved since the previous frame into
// the config and the simulation. A count change replaces the whole set.
func (a *App) applyControls(cur controls) {
	prev := a.sliders
	a.sliders = cur

	if cur.Gravity != prev.Gravity {
		if g := snap(float64(cur.Gravity), 1); g != a.Cfg.Gravity {
			a.Cfg.Gravity = g
			a.Err = a.Sim.SetGravity(a.Cfg.Params().G)
		}
	}
	if cur.Force != prev.Force {
		f := config.ForceConfig{
			X: snap(float64(cur.Force[0]), 1),
			Y: snap(float64(cur.Force[1]), 1),
			Z: snap(float64(cur.Force[2]), 1),
		}
		if f != a.Cfg.Force {
			a.Cfg.Force = f
			a.Err = a.Sim.SetExternalForce(a.Cfg.ScaledForce())
		}
	}
	if cur.BoxSize != prev.BoxSize {
		if b := snap(float64(cur.BoxSize), 0.25); b != a.Cfg.BoxSize {
			a.Cfg.BoxSize = b
			a.Err = a.Sim.SetBoxSize(b)
		}
	}
	if cur.Count != prev.Count {
		if n := int(snap(float64(cur.Count), 1)); n != a.Cfg.Count {
			a.Cfg.Count = n
			a.regenerate()
		}
	}
	if cur.Stop {
		a.Sim.StopAll()
	}
}
