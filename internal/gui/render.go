package gui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/physics"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawSim()
	a.DrawHUD()
	a.applyControls(a.drawControls())

	rl.EndDrawing()
}

func (a *App) drawSim() {
	rl.BeginMode3D(a.Camera)

	box := float32(2 * a.Sim.Params().Box.Size)
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), box, box, box, rl.ColorAlpha(ColAccent, 0.5))

	set := a.Sim.Particles()
	shades := physics.Shades(set, a.ColorBy)
	for i := range set {
		p := set[i].Position
		rl.DrawSphere(
			rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)),
			SphereRadius(set[i].Mass),
			ShadeColor(shades[i]),
		)
	}

	rl.EndMode3D()
}

func (a *App) DrawHUD() {
	rl.DrawText("gravsim", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %d particles  tick %d", len(a.Sim.Particles()), a.Sim.Tick()), 140, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, 1150, 30, 16, col)
	rl.DrawText(fmt.Sprintf("colour: %s", a.ColorBy), 1150, 50, 14, ColText)
	com := physics.CenterOfMass(a.Sim.Particles())
	rl.DrawText(fmt.Sprintf("centre %+.2f %+.2f %+.2f", com.X, com.Y, com.Z), 30, 60, 14, ColTextDim)

	a.DrawTelemetry()

	if a.Err != nil {
		rl.DrawText(a.Err.Error(), 30, 640, 14, rl.Red)
	}
	rl.DrawText("[SPACE] PAUSE  [S] STOP  [R] RESET  [C] COLOUR  [O] ORBIT  [Q] QUIT", 640, 680, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}
	rectX, rectY := float32(30), float32(560)
	width, height := float32(400), float32(60)

	norm := normalize(a.Telemetry)
	points := make([]rl.Vector2, len(norm))
	for i, v := range norm {
		px := rectX + float32(i)/float32(len(norm))*width
		py := rectY + height - float32(v)*height
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("KE: %.2e", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}

// drawControls lays out the slider panel and returns the raw slider output.
// Sliders show the current config, so an untouched slider reports it back.
func (a *App) drawControls() controls {
	shown := sliderValues(a.Cfg)

	panelX := float32(screenWidth - 300)
	panelY := float32(90)
	slider := func(label string, value, min, max float32) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), 14, ColText)
		panelY += 18
		v := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: 200, Height: 20},
			"", fmt.Sprintf("%.2f", value),
			value, min, max,
		)
		panelY += 35
		return v
	}

	var c controls
	c.Gravity = slider("Gravity", shown.Gravity, config.MinGravity, config.MaxGravity)
	c.Count = slider("Particle amount", shown.Count, config.MinCount, config.MaxCount)
	c.BoxSize = slider("Box size", shown.BoxSize, config.MinBoxSize, config.MaxBoxSize)
	c.Force[0] = slider("Force X", shown.Force[0], -config.MaxForce, config.MaxForce)
	c.Force[1] = slider("Force Y", shown.Force[1], -config.MaxForce, config.MaxForce)
	c.Force[2] = slider("Force Z", shown.Force[2], -config.MaxForce, config.MaxForce)

	c.Stop = gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Stop")
	return c
}
