// Package points draws each point group as one GL_POINTS batch with the
// group's shared color. Vertices are re-uploaded into a reusable dynamic VBO
// every frame since the caller replaces groups wholesale.
package points

import (
	"sceneview/internal/graphics"
	"sceneview/internal/graphics/renderer"
	"sceneview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const pointSize = 2.0

const vertexShader = `#version 410 core
layout(location = 0) in vec3 position;
uniform mat4 proj;
uniform mat4 view;
void main() {
	gl_Position = proj * view * vec4(position, 1.0);
}`

const fragmentShader = `#version 410 core
uniform vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}`

type Points struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func New() *Points {
	return &Points{}
}

func (p *Points) Init() error {
	var err error
	p.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	// Data is uploaded per group when drawing

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	return nil
}

func (p *Points) Render(ctx renderer.RenderContext) {
	if len(ctx.Frame.Points) == 0 {
		return
	}

	p.shader.Use()
	p.shader.SetMatrix4("proj", &ctx.Proj[0])
	p.shader.SetMatrix4("view", &ctx.View[0])

	gl.PointSize(pointSize)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	for _, group := range ctx.Frame.Points {
		verts := Pack(group)
		if verts == nil {
			continue
		}
		p.shader.SetVector3("color", group.Color.X(), group.Color.Y(), group.Color.Z())
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.POINTS, 0, int32(len(verts)/3))
	}
}

func (p *Points) SetViewport(width, height int) {}

func (p *Points) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}

// Pack flattens a group into interleaved xyz floats. Returns nil for an
// empty group, which draws nothing.
func Pack(group scene.PointGroup) []float32 {
	if len(group.Points) == 0 {
		return nil
	}
	out := make([]float32, 0, len(group.Points)*3)
	for _, pt := range group.Points {
		out = append(out, pt.X(), pt.Y(), pt.Z())
	}
	return out
}
