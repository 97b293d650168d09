package app

import (
	"testing"
	"time"
)

func TestStatsRecordsLastFrame(t *testing.T) {
	s := NewStats()
	s.Record(20 * time.Millisecond)

	if got := s.LastFrame(); got != 20*time.Millisecond {
		t.Errorf("last frame = %v, want 20ms", got)
	}
}

func TestInstantFPSIsReciprocal(t *testing.T) {
	s := NewStats()

	if got := s.InstantFPS(); got != 0 {
		t.Errorf("FPS before any frame = %v, want 0", got)
	}

	s.Record(10 * time.Millisecond)
	if got := s.InstantFPS(); got < 99.9 || got > 100.1 {
		t.Errorf("FPS = %v, want 100", got)
	}
}

func TestAverageFPSOverWindow(t *testing.T) {
	s := NewStats()
	if s.AverageFPS() != 0 {
		t.Errorf("average before first window = %v, want 0", s.AverageFPS())
	}

	// Backdate the window so the next Record closes it
	s.windowStart = time.Now().Add(-2 * time.Second)
	for i := 0; i < 120; i++ {
		s.frames++
	}
	s.Record(time.Millisecond)

	avg := s.AverageFPS()
	if avg < 50 || avg > 70 {
		t.Errorf("average FPS = %v, want ~60 over 2s window", avg)
	}
	if s.frames != 0 {
		t.Errorf("frame counter not reset: %d", s.frames)
	}
}
