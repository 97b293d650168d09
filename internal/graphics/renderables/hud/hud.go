// Package hud draws the instantaneous frame-rate readout in the top-left
// corner using line-segment digits, so no font asset is needed.
package hud

import (
	"sceneview/internal/config"
	"sceneview/internal/graphics"
	"sceneview/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec2 position;
uniform float aspectRatio;
uniform float positionX;
uniform float positionY;
void main() {
	gl_Position = vec4(position.x / aspectRatio + positionX, position.y + positionY, 0.0, 1.0);
}`

const fragmentShader = `#version 410 core
uniform vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}`

const digitScale = 0.08

type HUD struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	aspectRatio float32

	lastFPS     int
	vertexCount int32
}

func New() *HUD {
	return &HUD{aspectRatio: 1.0, lastFPS: -1}
}

func (h *HUD) Init() error {
	var err error
	h.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	// Vertices are uploaded when the displayed value changes

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	return nil
}

func (h *HUD) Render(ctx renderer.RenderContext) {
	if !config.GetShowFPS() {
		return
	}

	fps := int(ctx.FPS + 0.5)
	if fps != h.lastFPS {
		verts := BuildNumber(fps, digitScale)
		gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		h.vertexCount = int32(len(verts) / 2)
		h.lastFPS = fps
	}
	if h.vertexCount == 0 {
		return
	}

	h.shader.Use()
	h.shader.SetFloat("aspectRatio", h.aspectRatio)
	h.shader.SetFloat("positionX", -0.97)
	h.shader.SetFloat("positionY", 0.88)
	h.shader.SetVector3("color", 1.0, 1.0, 1.0)

	// Overlay: always on top of the scene
	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(h.vao)
	gl.LineWidth(2.0)
	gl.DrawArrays(gl.LINES, 0, h.vertexCount)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *HUD) SetViewport(width, height int) {
	if height < 1 {
		height = 1
	}
	h.aspectRatio = float32(width) / float32(height)
}

func (h *HUD) Dispose() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}
