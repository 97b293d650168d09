package app

import (
	"testing"
	"time"

	"sceneview/internal/config"
)

func TestClockInterval(t *testing.T) {
	defer config.Apply(config.Default())

	c := NewClock()
	config.SetFPSLimit(100)
	if got := c.Interval(); got != 10*time.Millisecond {
		t.Errorf("interval = %v, want 10ms", got)
	}

	config.SetFPSLimit(60)
	if got := c.Interval(); got != time.Second/60 {
		t.Errorf("interval = %v, want %v", got, time.Second/60)
	}
}

func TestClockWaitPacesFrames(t *testing.T) {
	defer config.Apply(config.Default())
	config.SetFPSLimit(200) // 5ms frames

	c := NewClock()
	start := time.Now()
	for i := 0; i < 4; i++ {
		c.Wait()
	}

	// Four waits at 5ms each; allow generous slack above, none below
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("4 frames took %v, want at least 15ms", elapsed)
	}
}

func TestClockRestartsScheduleOnRateChange(t *testing.T) {
	defer config.Apply(config.Default())

	c := NewClock()
	config.SetFPSLimit(240)
	c.Wait()

	// Dropping the rate restarts the deadline schedule from now instead of
	// carrying over the old short deadlines
	config.SetFPSLimit(100)
	start := time.Now()
	c.Wait()
	if elapsed := time.Since(start); elapsed < 9*time.Millisecond {
		t.Errorf("first frame after rate change took %v, want ~10ms", elapsed)
	}
}
