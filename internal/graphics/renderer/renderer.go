package renderer

import (
	"sceneview/internal/camera"
	"sceneview/internal/config"
	"sceneview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates drawing via renderable features. Draw order is the
// registration order; for this viewer that is axes, cubes, then point groups,
// each in caller-supplied order.
type Renderer struct {
	renderables []Renderable
	projection  *camera.Projection
	controller  *camera.Controller
}

// New configures the GL state shared by all features and initializes each
// renderable. A shader or buffer failure here is fatal to startup.
func New(proj *camera.Projection, ctrl *camera.Controller, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)

	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return &Renderer{
		renderables: rs,
		projection:  proj,
		controller:  ctrl,
	}, nil
}

// Render draws one frame of the given scene snapshot.
func (r *Renderer) Render(frame scene.Frame, dt, fps float64) {
	bg := config.GetBackground()
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Frame: frame,
		View:  r.controller.ViewMatrix(),
		Proj:  r.projection.Matrix(),
		DT:    dt,
		FPS:   fps,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport resizes the GL viewport, the projection, and every renderable.
func (r *Renderer) SetViewport(width, height int) {
	r.projection.SetViewport(width, height)
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
