// Package input wires GLFW callbacks to the toolkit-agnostic camera
// controller. It is the only package besides cmd that touches glfw types.
package input

import (
	"sceneview/internal/camera"
	"sceneview/internal/config"
	"sceneview/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// One scroll notch maps to 120 wheel units, matching the usual mouse wheel
// delta the controller's zoom factor is calibrated for.
const wheelNotch = 120.0

// Bind installs mouse, scroll, resize and key callbacks on the window.
func Bind(window *glfw.Window, ctrl *camera.Controller, r *renderer.Renderer) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := mapButton(button)
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			x, y := w.GetCursorPos()
			ctrl.HandlePress(b, float32(x), float32(y))
		case glfw.Release:
			ctrl.HandleRelease(b)
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		ctrl.HandleMove(float32(xpos), float32(ypos))
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		ctrl.HandleWheel(float32(yoff * wheelNotch))
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.SetViewport(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyH:
			config.ToggleShowFPS()
		case glfw.KeyMinus:
			config.SetFPSLimit(config.GetFPSLimit() - 10)
		case glfw.KeyEqual:
			config.SetFPSLimit(config.GetFPSLimit() + 10)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})
}

func mapButton(button glfw.MouseButton) (camera.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return camera.ButtonLeft, true
	case glfw.MouseButtonRight:
		return camera.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return camera.ButtonMiddle, true
	default:
		return 0, false
	}
}
