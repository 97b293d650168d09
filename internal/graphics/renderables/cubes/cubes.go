// Package cubes draws every cube in the frame as a wireframe box. All cubes
// share one unit wireframe VAO; each draw sets a per-cube model matrix and
// color.
package cubes

import (
	"sceneview/internal/graphics"
	"sceneview/internal/graphics/renderer"
	"sceneview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec3 position;
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;
void main() {
	gl_Position = proj * view * model * vec4(position, 1.0);
}`

const fragmentShader = `#version 410 core
uniform vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}`

// Unit box edges as GL_LINES pairs, 12 edges over 8 corners at ±0.5.
var unitWireframeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

const wireframeVertexCount = 24

type Cubes struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func New() *Cubes {
	return &Cubes{}
}

func (c *Cubes) Init() error {
	var err error
	c.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitWireframeVertices)*4, gl.Ptr(unitWireframeVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	return nil
}

func (c *Cubes) Render(ctx renderer.RenderContext) {
	if len(ctx.Frame.Cubes) == 0 {
		return
	}

	c.shader.Use()
	c.shader.SetMatrix4("proj", &ctx.Proj[0])
	c.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(c.vao)
	gl.LineWidth(1.0)

	for _, cube := range ctx.Frame.Cubes {
		model := ModelMatrix(cube)
		c.shader.SetMatrix4("model", &model[0])
		c.shader.SetVector3("color", cube.Color.X(), cube.Color.Y(), cube.Color.Z())
		gl.DrawArrays(gl.LINES, 0, wireframeVertexCount)
	}
}

func (c *Cubes) SetViewport(width, height int) {}

func (c *Cubes) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

// ModelMatrix places the unit wireframe box for a cube: translate to its
// center, rotate intrinsically around X, Y, then Z, and scale to the full
// extents so edges land at ±Size/2. Negative extents mirror the geometry.
func ModelMatrix(cube scene.Cube) mgl32.Mat4 {
	m := mgl32.Translate3D(cube.Position.X(), cube.Position.Y(), cube.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(cube.Rotation.X())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(cube.Rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(cube.Rotation.Z())))
	m = m.Mul4(mgl32.Scale3D(cube.Size.X(), cube.Size.Y(), cube.Size.Z()))
	return m
}
