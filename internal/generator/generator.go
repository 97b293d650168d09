// Package generator is the demo scene source: it periodically fills the
// store with random cubes and three fixed-color point clouds. The viewer
// core imposes no limits; everything about object counts and attributes is
// decided here.
package generator

import (
	"math/rand"
	"sync"
	"time"

	"sceneview/internal/scene"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Options come from the demo block of the settings file.
type Options struct {
	Interval       time.Duration
	Cubes          int
	PointsPerGroup int
	Spread         float32
	Sphere         bool // scatter points in a ball instead of a box
}

type Generator struct {
	store *scene.Store
	opts  Options
	rng   *rand.Rand

	mu      sync.Mutex
	markers []scene.Cube

	stop chan struct{}
	done chan struct{}
}

func New(store *scene.Store, opts Options) *Generator {
	return &Generator{
		store: store,
		opts:  opts,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start launches the generation loop on its own goroutine. The store's
// setters are the only cross-thread entry point into the viewer.
func (g *Generator) Start() {
	g.stop = make(chan struct{})
	g.done = make(chan struct{})
	go g.run()
}

// Stop ends the loop and waits for it to finish.
func (g *Generator) Stop() {
	if g.stop == nil {
		return
	}
	close(g.stop)
	<-g.done
	g.stop = nil
}

// PlaceMarker records a marker cube at the world origin. It shows up in
// every frame generated afterwards. Safe to call from the event thread.
func (g *Generator) PlaceMarker() {
	g.mu.Lock()
	g.markers = append(g.markers, scene.Cube{
		Size:  mgl32.Vec3{1, 1, 1},
		Color: mgl32.Vec3{1, 1, 0},
	})
	g.mu.Unlock()
}

func (g *Generator) run() {
	defer close(g.done)

	ticker := time.NewTicker(g.opts.Interval)
	defer ticker.Stop()

	g.Generate()
	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			g.Generate()
		}
	}
}

// Generate builds one random frame and pushes it into the store.
func (g *Generator) Generate() {
	cubes := make([]scene.Cube, 0, g.opts.Cubes)
	for i := 0; i < g.opts.Cubes; i++ {
		cubes = append(cubes, scene.Cube{
			Position: g.randVec(0, 10),
			Size:     g.randVec(0, 3),
			Rotation: g.randVec(0, 360),
			Color:    g.randVec(0, 1),
		})
	}
	g.mu.Lock()
	cubes = append(cubes, g.markers...)
	g.mu.Unlock()
	g.store.SetCubes(cubes)

	g.store.SetPoints([]scene.PointGroup{
		{Points: g.scatter(), Color: mgl32.Vec3{1, 0, 0}},
		{Points: g.scatter(), Color: mgl32.Vec3{0, 1, 0}},
		{Points: g.scatter(), Color: mgl32.Vec3{0, 0, 1}},
	})
}

func (g *Generator) randVec(min, max float32) mgl32.Vec3 {
	return mgl32.Vec3{
		min + g.rng.Float32()*(max-min),
		min + g.rng.Float32()*(max-min),
		min + g.rng.Float32()*(max-min),
	}
}

func (g *Generator) scatter() []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, 0, g.opts.PointsPerGroup)
	for i := 0; i < g.opts.PointsPerGroup; i++ {
		if g.opts.Sphere {
			pts = append(pts, g.spherePoint())
		} else {
			pts = append(pts, g.randVec(-g.opts.Spread, g.opts.Spread))
		}
	}
	return pts
}

// spherePoint samples uniformly inside a ball of radius Spread.
func (g *Generator) spherePoint() mgl32.Vec3 {
	radius := g.opts.Spread * math32.Cbrt(g.rng.Float32())
	theta := 2 * math32.Pi * g.rng.Float32()
	cosPhi := 2*g.rng.Float32() - 1
	sinPhi := math32.Sqrt(1 - cosPhi*cosPhi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return mgl32.Vec3{
		radius * sinPhi * cosTheta,
		radius * sinPhi * sinTheta,
		radius * cosPhi,
	}
}
