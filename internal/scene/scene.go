package scene

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Cube is a wireframe box placed by the caller. Contents are trusted as-is;
// zero or negative extents render as collapsed or mirrored geometry.
type Cube struct {
	Position mgl32.Vec3 // world-space center
	Size     mgl32.Vec3 // full extents; drawn as ±Size/2 around Position
	Rotation mgl32.Vec3 // intrinsic X, Y, Z rotation in degrees
	Color    mgl32.Vec3 // normalized RGB
}

// PointGroup is an ordered set of points sharing one color.
type PointGroup struct {
	Points []mgl32.Vec3
	Color  mgl32.Vec3
}

// Frame is one renderable snapshot of the scene.
type Frame struct {
	Cubes  []Cube
	Points []PointGroup
}

// Store holds the current scene. Setters replace whole lists, so a producer
// on another goroutine can push frames while the render thread reads; the
// renderer never observes a half-written list.
type Store struct {
	mu    sync.RWMutex
	frame Frame
}

func NewStore() *Store {
	return &Store{}
}

// SetCubes replaces the entire cube set. No validation is performed.
func (s *Store) SetCubes(cubes []Cube) {
	s.mu.Lock()
	s.frame.Cubes = cubes
	s.mu.Unlock()
}

// SetPoints replaces the entire point-group set.
func (s *Store) SetPoints(groups []PointGroup) {
	s.mu.Lock()
	s.frame.Points = groups
	s.mu.Unlock()
}

// Snapshot returns the current frame. The slices are shared with the most
// recent setter calls; callers must not mutate them.
func (s *Store) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}
