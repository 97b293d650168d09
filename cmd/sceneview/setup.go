package main

import (
	"sceneview/internal/camera"
	"sceneview/internal/config"
	"sceneview/internal/graphics/renderables/axes"
	"sceneview/internal/graphics/renderables/cubes"
	"sceneview/internal/graphics/renderables/hud"
	"sceneview/internal/graphics/renderables/points"
	"sceneview/internal/graphics/renderer"
	"sceneview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; the frame clock owns pacing
	glfw.SwapInterval(0)

	return window, nil
}

// ViewerComponents holds everything the run loop and input glue need.
type ViewerComponents struct {
	Store      *scene.Store
	Controller *camera.Controller
	Renderer   *renderer.Renderer
}

func setupViewer(window *glfw.Window, settings config.Settings) (*ViewerComponents, error) {
	store := scene.NewStore()

	controller := camera.NewController()
	controller.Zoom = settings.Camera.Zoom

	fbWidth, fbHeight := window.GetFramebufferSize()
	projection := camera.NewProjection(fbWidth, fbHeight)
	projection.FOV = settings.Camera.FOV
	projection.NearPlane = settings.Camera.Near
	projection.FarPlane = settings.Camera.Far

	r, err := renderer.New(projection, controller,
		axes.New(),
		cubes.New(),
		points.New(),
		hud.New(),
	)
	if err != nil {
		return nil, err
	}
	r.SetViewport(fbWidth, fbHeight)

	return &ViewerComponents{
		Store:      store,
		Controller: controller,
		Renderer:   r,
	}, nil
}
