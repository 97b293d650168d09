package scene

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := NewStore()
	frame := s.Snapshot()
	if len(frame.Cubes) != 0 || len(frame.Points) != 0 {
		t.Errorf("new store not empty: %+v", frame)
	}
}

func TestSetCubesReplacesWholesale(t *testing.T) {
	s := NewStore()
	s.SetCubes([]Cube{{Position: mgl32.Vec3{1, 2, 3}}, {}})
	s.SetCubes([]Cube{{Color: mgl32.Vec3{1, 1, 0}}})

	frame := s.Snapshot()
	if len(frame.Cubes) != 1 {
		t.Fatalf("got %d cubes, want 1", len(frame.Cubes))
	}
	if frame.Cubes[0].Color != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("cube color = %v", frame.Cubes[0].Color)
	}

	s.SetCubes(nil)
	if len(s.Snapshot().Cubes) != 0 {
		t.Error("clearing cubes left residue")
	}
}

func TestSetPointsIndependentOfCubes(t *testing.T) {
	s := NewStore()
	s.SetCubes([]Cube{{}})
	s.SetPoints([]PointGroup{{Color: mgl32.Vec3{1, 0, 0}}})

	frame := s.Snapshot()
	if len(frame.Cubes) != 1 || len(frame.Points) != 1 {
		t.Errorf("frame = %d cubes, %d groups", len(frame.Cubes), len(frame.Points))
	}
}

func TestConcurrentSettersAndSnapshots(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetCubes([]Cube{{Position: mgl32.Vec3{float32(i), 0, 0}}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetPoints([]PointGroup{{Points: []mgl32.Vec3{{float32(i), 0, 0}}}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			frame := s.Snapshot()
			if len(frame.Cubes) > 1 {
				t.Errorf("snapshot observed partial cube list: %d", len(frame.Cubes))
				return
			}
		}
	}()
	wg.Wait()
}
