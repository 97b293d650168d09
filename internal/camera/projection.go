package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection holds the fixed perspective parameters and the viewport size.
type Projection struct {
	FOV       float32 // degrees
	NearPlane float32
	FarPlane  float32

	width  int
	height int
}

func NewProjection(width, height int) *Projection {
	p := &Projection{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  100.0,
	}
	p.SetViewport(width, height)
	return p
}

// SetViewport records the viewport size. Height is floored to 1 so a
// collapsed window cannot divide by zero in the aspect ratio.
func (p *Projection) SetViewport(width, height int) {
	if height < 1 {
		height = 1
	}
	p.width = width
	p.height = height
}

func (p *Projection) AspectRatio() float32 {
	return float32(p.width) / float32(p.height)
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.AspectRatio(), p.NearPlane, p.FarPlane)
}
