// Field preview tool - interactive 2D scatter of the generated particle field.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/field"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := field.Params{
		Count:      4000,
		Radius:     2.5,
		Top:        field.RGB{R: 1, G: 0.49, B: 0.37},
		Bottom:     field.RGB{R: 0.34, G: 0.45, B: 1},
		GlyphCount: 32,
	}
	var seed int64 = 1

	f := mustGenerate(params, seed)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			f = mustGenerate(params, seed)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		drawScatter(f)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Particles: %d  Iterations: %d  Accept: %.2f",
			f.Count, f.Stats.Iterations, f.Stats.AcceptanceRate(f.Count)),
			15, statsY, 16, rl.Gray)
		rl.DrawText(fmt.Sprintf("Generation: %dus", f.Stats.Duration.Microseconds()),
			15, statsY+20, 16, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText("Count", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"500", "16383",
			float32(params.Count), 500, 16383,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Count), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if int(newCount) != params.Count {
			params.Count = int(newCount)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Radius", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRadius := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.5", "6.0",
			params.Radius, 0.5, 6.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Radius), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newRadius != params.Radius {
			params.Radius = newRadius
			needsRegen = true
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 28}, "Reseed") {
			seed++
			needsRegen = true
		}
		rl.DrawText(fmt.Sprintf("seed %d", seed), int32(panelX+130), int32(panelY+6), 16, rl.Gray)

		rl.EndDrawing()
	}
}

// drawScatter projects particle positions onto the XY plane inside the
// preview rectangle, brightest dots nearest the viewer.
func drawScatter(f *field.Field) {
	half := float32(previewSize) / 2
	center := rl.Vector2{X: 10 + half, Y: 10 + half}
	// World radius maps to 90% of the half-extent so the jittered shell fits.
	scale := half * 0.9 / f.Radius

	for i := 0; i < f.Count; i++ {
		x := f.Positions[i*3]
		y := f.Positions[i*3+1]
		z := f.Positions[i*3+2]

		depth := (z/f.Radius + 1) / 2
		c := color(f, i, 0.4+0.6*depth)
		rl.DrawCircleV(rl.Vector2{X: center.X + x*scale, Y: center.Y - y*scale}, 1.5, c)
	}
}

func color(f *field.Field, i int, brightness float32) rl.Color {
	return rl.Color{
		R: uint8(f.Colors[i*3] * brightness * 255),
		G: uint8(f.Colors[i*3+1] * brightness * 255),
		B: uint8(f.Colors[i*3+2] * brightness * 255),
		A: 255,
	}
}

func mustGenerate(params field.Params, seed int64) *field.Field {
	gen := field.NewGenerator(params, rand.New(rand.NewSource(seed)))
	f, err := gen.Generate()
	if err != nil {
		panic(err)
	}
	return f
}
