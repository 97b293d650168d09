// Package app owns the viewer's run loop: poll events, snapshot the scene,
// render, present, pace.
package app

import (
	"log"
	"time"

	"sceneview/internal/graphics/renderer"
	"sceneview/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window   *glfw.Window
	store    *scene.Store
	renderer *renderer.Renderer
	clock    *Clock
	stats    *Stats

	lastTime time.Time
}

func New(window *glfw.Window, store *scene.Store, r *renderer.Renderer) *App {
	return &App{
		window:   window,
		store:    store,
		renderer: r,
		clock:    NewClock(),
		stats:    NewStats(),
	}
}

// Stats exposes frame timing for hosts that want to display or log it.
func (a *App) Stats() *Stats {
	return a.stats
}

// Run drives the loop until the window closes. Must be called on the main
// thread, which owns the GL context.
func (a *App) Run() {
	a.lastTime = time.Now()
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	frameStart := time.Now()
	dt := frameStart.Sub(a.lastTime).Seconds()
	a.lastTime = frameStart

	glfw.PollEvents()

	frame := a.store.Snapshot()
	a.renderer.Render(frame, dt, a.stats.InstantFPS())

	a.window.SwapBuffers()

	a.stats.Record(time.Since(frameStart))
	if interval := a.clock.Interval(); interval > 0 && a.stats.LastFrame() > interval {
		log.Printf("slow frame: %v (target %v)", a.stats.LastFrame(), interval)
	}

	a.clock.Wait()
}
