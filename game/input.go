package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/icedtinat/lumina/config"
)

// Generation parameter steps for keyboard adjustment.
const (
	countStep  = 500
	minCount   = 500
	radiusStep = 0.25
	minRadius  = 0.5
)

// doubleClickWindow is the maximum gap between clicks counting as a
// double-activation, in seconds.
const doubleClickWindow = 0.4

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyE) {
		g.expanded = !g.expanded
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}

	// Generation parameter control; changes take effect through the
	// regeneration cache on the next update.
	if rl.IsKeyPressed(rl.KeyComma) && g.count > minCount {
		g.count -= countStep
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.count += countStep
		if g.count > config.MaxParticles {
			g.count = config.MaxParticles
		}
	}
	if rl.IsKeyPressed(rl.KeyMinus) && g.radius > minRadius+radiusStep/2 {
		g.radius -= radiusStep
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		g.radius += radiusStep
	}

	g.handleCameraInput()
	g.handleInteract()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h
	g.sphere.Resize(w, h)
}

// handleCameraInput processes orbit/zoom controls.
func (g *Game) handleCameraInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		g.cam.Rotate(delta.X*0.005, delta.Y*0.005)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.Zoom(1 - wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset(float32(config.Cfg().Camera.Distance))
	}
}

// handleInteract fires the interaction callback on a double-click that lands
// on the sphere.
func (g *Game) handleInteract() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	now := rl.GetTime()
	isDouble := now-g.lastClick < doubleClickWindow
	g.lastClick = now
	if !isDouble {
		return
	}

	ray := rl.GetMouseRay(rl.GetMousePosition(), g.camera3D())
	hit := rl.GetRayCollisionSphere(ray, rl.Vector3{}, g.radius*g.anim.Scale*1.05)
	if hit.Hit {
		g.onInteract()
	}
}
