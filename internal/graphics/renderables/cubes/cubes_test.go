package cubes

import (
	"math"
	"testing"

	"sceneview/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func transform(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	r := m.Mul4x1(v.Vec4(1))
	return r.Vec3()
}

func TestModelMatrixUnitCubeAtOrigin(t *testing.T) {
	cube := scene.Cube{Size: mgl32.Vec3{2, 2, 2}, Color: mgl32.Vec3{1, 1, 0}}
	m := ModelMatrix(cube)

	// Wireframe corner (0.5, 0.5, 0.5) lands at half the extents
	got := transform(m, mgl32.Vec3{0.5, 0.5, 0.5})
	want := mgl32.Vec3{1, 1, 1}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("corner at %v, want %v", got, want)
	}
}

func TestModelMatrixTranslates(t *testing.T) {
	cube := scene.Cube{Position: mgl32.Vec3{3, -4, 5}, Size: mgl32.Vec3{1, 1, 1}}
	m := ModelMatrix(cube)

	got := transform(m, mgl32.Vec3{0, 0, 0})
	if !got.ApproxEqualThreshold(cube.Position, eps) {
		t.Errorf("center at %v, want %v", got, cube.Position)
	}
}

func TestModelMatrixRotationOrder(t *testing.T) {
	// 90° around Z maps local +X to world +Y
	cube := scene.Cube{Size: mgl32.Vec3{2, 2, 2}, Rotation: mgl32.Vec3{0, 0, 90}}
	m := ModelMatrix(cube)

	got := transform(m, mgl32.Vec3{0.5, 0, 0})
	want := mgl32.Vec3{0, 1, 0}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("rotated corner at %v, want %v", got, want)
	}

	// X before Y before Z: compare against explicit composition
	cube = scene.Cube{
		Position: mgl32.Vec3{1, 2, 3},
		Size:     mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.Vec3{30, 60, 90},
	}
	want4 := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90))).
		Mul4(mgl32.Scale3D(1, 2, 3))
	if !ModelMatrix(cube).ApproxEqualThreshold(want4, eps) {
		t.Errorf("composition mismatch")
	}
}

func TestModelMatrixNegativeSizeMirrors(t *testing.T) {
	cube := scene.Cube{Size: mgl32.Vec3{-2, 2, 2}}
	m := ModelMatrix(cube)

	got := transform(m, mgl32.Vec3{0.5, 0, 0})
	want := mgl32.Vec3{-1, 0, 0}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("mirrored corner at %v, want %v", got, want)
	}
}

func TestWireframeTopology(t *testing.T) {
	if len(unitWireframeVertices) != wireframeVertexCount*3 {
		t.Fatalf("wireframe has %d floats, want %d", len(unitWireframeVertices), wireframeVertexCount*3)
	}
	// 12 edges, each an endpoint pair
	if wireframeVertexCount != 24 {
		t.Errorf("vertex count = %d, want 24", wireframeVertexCount)
	}
	for i, v := range unitWireframeVertices {
		if math.Abs(float64(v)) != 0.5 {
			t.Fatalf("vertex component %d = %v, want ±0.5", i, v)
		}
	}
}

func BenchmarkModelMatrix(b *testing.B) {
	cube := scene.Cube{
		Position: mgl32.Vec3{1, 2, 3},
		Size:     mgl32.Vec3{2, 1, 3},
		Rotation: mgl32.Vec3{10, 20, 30},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ModelMatrix(cube)
	}
}
