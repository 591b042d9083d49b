package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/config"
	"github.com/icedtinat/lumina/telemetry"
)

// camera3D builds the raylib camera for the current orbit state.
func (g *Game) camera3D() rl.Camera3D {
	x, y, z := g.cam.Position()
	return rl.Camera3D{
		Position:   rl.NewVector3(x, y, z),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(config.Cfg().Camera.FovY),
		Projection: rl.CameraPerspective,
	}
}

// Draw renders one frame and flushes periodic stats.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode3D(g.camera3D())
	s := g.anim.Scale
	transform := rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateY(g.anim.RotationY))
	g.sphere.Draw(g.anim.Time, transform)
	rl.EndMode3D()

	g.perf.StartPhase(telemetry.PhaseHUD)
	if g.showHUD {
		g.drawHUD()
	}
	rl.EndDrawing()

	g.perf.EndFrame()
	g.flushStats()
}

func (g *Game) drawHUD() {
	stats := g.perf.Stats()

	lines := []string{
		fmt.Sprintf("fps %d  frame %.2fms (p95 %.2fms)",
			int(stats.FPS),
			float64(stats.AvgFrame.Microseconds())/1000,
			float64(stats.P95Frame.Microseconds())/1000),
		fmt.Sprintf("particles %d  radius %.2f  glyphs %d", g.count, g.radius, len(g.glyphs)),
		fmt.Sprintf("accept rate %.2f  gen %dus", g.genRecord.AcceptanceRate, g.genRecord.DurationUS),
	}
	if g.paused {
		lines = append(lines, "paused")
	}

	y := int32(10)
	for _, line := range lines {
		rl.DrawText(line, 10, y, 18, rl.RayWhite)
		y += 22
	}

	rl.DrawText("[space] pause  [e] expand  [,/.] count  [-/=] radius  [home] reset cam  [h] hud",
		10, int32(rl.GetScreenHeight())-26, 16, rl.Gray)
}

// flushStats logs and records rolling perf stats once per stats window.
func (g *Game) flushStats() {
	now := rl.GetTime()
	if now-g.lastLog < config.Cfg().Telemetry.StatsWindow {
		return
	}
	g.lastLog = now

	stats := g.perf.Stats()
	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WriteFrameStats(stats, now); err != nil {
		slog.Warn("writing frame stats failed", "error", err)
	}
}
