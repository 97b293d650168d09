// Package axes draws the world coordinate axes: three line segments of
// length 10 from the origin, X red, Y green, Z blue.
package axes

import (
	"sceneview/internal/graphics"
	"sceneview/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;
uniform mat4 proj;
uniform mat4 view;
out vec3 vColor;
void main() {
	gl_Position = proj * view * vec4(position, 1.0);
	vColor = color;
}`

const fragmentShader = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}`

// Interleaved position.xyz, color.rgb per vertex.
var axisVertices = []float32{
	0, 0, 0, 1, 0, 0,
	10, 0, 0, 1, 0, 0,

	0, 0, 0, 0, 1, 0,
	0, 10, 0, 0, 1, 0,

	0, 0, 0, 0, 0, 1,
	0, 0, 10, 0, 0, 1,
}

type Axes struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func New() *Axes {
	return &Axes{}
}

func (a *Axes) Init() error {
	var err error
	a.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(axisVertices)*4, gl.Ptr(axisVertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	return nil
}

func (a *Axes) Render(ctx renderer.RenderContext) {
	a.shader.Use()
	a.shader.SetMatrix4("proj", &ctx.Proj[0])
	a.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(a.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(axisVertices)/6))
}

func (a *Axes) SetViewport(width, height int) {}

func (a *Axes) Dispose() {
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}
