package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"sceneview/internal/app"
	"sceneview/internal/config"
	"sceneview/internal/generator"
	"sceneview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and the GL context must live on the main OS thread
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	configPath := flag.String("config", "sceneview.yaml", "path to the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	config.Apply(settings)

	if err := glfw.Init(); err != nil {
		log.Fatalf("init glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow(settings.Window)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	components, err := setupViewer(window, settings)
	if err != nil {
		log.Fatalf("init renderer: %v", err)
	}
	closer.Bind(components.Renderer.Dispose)

	gen := generator.New(components.Store, generator.Options{
		Interval:       time.Duration(settings.Demo.IntervalMS) * time.Millisecond,
		Cubes:          settings.Demo.Cubes,
		PointsPerGroup: settings.Demo.PointsPerGroup,
		Spread:         settings.Demo.Spread,
		Sphere:         settings.Demo.Scatter == "sphere",
	})
	components.Controller.SetMarkerHandler(gen.PlaceMarker)
	if settings.Demo.Enabled {
		gen.Start()
		closer.Bind(gen.Stop)
	}

	input.Bind(window, components.Controller, components.Renderer)

	app.New(window, components.Store, components.Renderer).Run()
}
