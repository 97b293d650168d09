package renderer

import (
	"sceneview/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables.
type RenderContext struct {
	Frame scene.Frame
	View  mgl32.Mat4
	Proj  mgl32.Mat4
	DT    float64
	FPS   float64 // instantaneous FPS from the previous frame, for the HUD
}

// Renderable is the lifecycle for drawable features.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
