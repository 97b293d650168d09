package app

import "time"

// Stats tracks frame timing for the diagnostic readout. It is read and
// written only by the render loop.
type Stats struct {
	lastFrame   time.Duration
	frames      int
	windowStart time.Time
	averageFPS  float64
}

func NewStats() *Stats {
	return &Stats{windowStart: time.Now()}
}

// Record stores one frame's duration and folds it into the rolling average.
func (s *Stats) Record(d time.Duration) {
	s.lastFrame = d
	s.frames++

	if elapsed := time.Since(s.windowStart); elapsed >= time.Second {
		s.averageFPS = float64(s.frames) / elapsed.Seconds()
		s.frames = 0
		s.windowStart = time.Now()
	}
}

// LastFrame returns the most recent frame duration.
func (s *Stats) LastFrame() time.Duration {
	return s.lastFrame
}

// InstantFPS returns the reciprocal of the last frame duration.
func (s *Stats) InstantFPS() float64 {
	if s.lastFrame <= 0 {
		return 0
	}
	return 1.0 / s.lastFrame.Seconds()
}

// AverageFPS returns the frame rate over the last completed one-second
// window, or 0 before the first window closes.
func (s *Stats) AverageFPS() float64 {
	return s.averageFPS
}
