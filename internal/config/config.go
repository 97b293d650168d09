package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the viewer's YAML configuration file.
type Settings struct {
	FPS        int            `yaml:"fps"`
	Window     WindowSettings `yaml:"window"`
	Camera     CameraSettings `yaml:"camera"`
	Background [3]float32     `yaml:"background"`
	HUD        HUDSettings    `yaml:"hud"`
	Demo       DemoSettings   `yaml:"demo"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraSettings struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
	Zoom float32 `yaml:"zoom"` // initial view-axis translation
}

type HUDSettings struct {
	ShowFPS bool `yaml:"show_fps"`
}

// DemoSettings controls the built-in random scene generator.
type DemoSettings struct {
	Enabled        bool    `yaml:"enabled"`
	IntervalMS     int     `yaml:"interval_ms"`
	Cubes          int     `yaml:"cubes"`
	PointsPerGroup int     `yaml:"points_per_group"`
	Spread         float32 `yaml:"spread"`
	Scatter        string  `yaml:"scatter"` // "box" or "sphere"
}

func Default() Settings {
	return Settings{
		FPS: 60,
		Window: WindowSettings{
			Width:  900,
			Height: 600,
			Title:  "sceneview",
		},
		Camera: CameraSettings{
			FOV:  45.0,
			Near: 0.1,
			Far:  100.0,
			Zoom: -8.0,
		},
		Background: [3]float32{0.1, 0.1, 0.1},
		HUD:        HUDSettings{ShowFPS: true},
		Demo: DemoSettings{
			Enabled:        true,
			IntervalMS:     100,
			Cubes:          20,
			PointsPerGroup: 1000,
			Spread:         20.0,
			Scatter:        "box",
		},
	}
}

// Load reads the settings file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	s.clamp()
	return s, nil
}

func (s *Settings) clamp() {
	if s.FPS < 1 {
		s.FPS = 1
	}
	if s.FPS > 240 {
		s.FPS = 240
	}
	if s.Window.Width < 1 {
		s.Window.Width = 1
	}
	if s.Window.Height < 1 {
		s.Window.Height = 1
	}
	if s.Demo.IntervalMS < 10 {
		s.Demo.IntervalMS = 10
	}
	if s.Demo.Cubes < 0 {
		s.Demo.Cubes = 0
	}
	if s.Demo.PointsPerGroup < 0 {
		s.Demo.PointsPerGroup = 0
	}
	if s.Demo.Scatter != "sphere" {
		s.Demo.Scatter = "box"
	}
}

// Runtime-adjustable values, shared between the render loop and input
// handlers.
type runtimeSettings struct {
	mu         sync.RWMutex
	fpsLimit   int
	background [3]float32
	showFPS    bool
}

var global = &runtimeSettings{
	fpsLimit:   60,
	background: [3]float32{0.1, 0.1, 0.1},
	showFPS:    true,
}

// Apply seeds the runtime values from loaded settings.
func Apply(s Settings) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fpsLimit = s.FPS
	global.background = s.Background
	global.showFPS = s.HUD.ShowFPS
}

// GetFPSLimit returns the current frame-rate cap.
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the frame-rate cap, clamped to [1, 240].
func SetFPSLimit(fps int) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if fps < 1 {
		fps = 1
	}
	if fps > 240 {
		fps = 240
	}
	global.fpsLimit = fps
}

// GetBackground returns the clear color.
func GetBackground() [3]float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.background
}

// GetShowFPS reports whether the frame-time readout is visible.
func GetShowFPS() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.showFPS
}

// ToggleShowFPS flips the frame-time readout.
func ToggleShowFPS() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.showFPS = !global.showFPS
}
