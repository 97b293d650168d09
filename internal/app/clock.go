package app

import (
	"time"

	"sceneview/internal/config"
)

// Clock paces the render loop at the configured frame rate. When the limit
// changes via config.SetFPSLimit, the current schedule is dropped and
// restarted at the new interval on the next Wait.
type Clock struct {
	fps  int
	next time.Time
}

func NewClock() *Clock {
	return &Clock{}
}

// Interval returns the target frame duration, or 0 when unlimited.
func (c *Clock) Interval() time.Duration {
	fps := config.GetFPSLimit()
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Wait blocks until the next frame deadline. Uses a hybrid sleep/spin
// approach for better precision on high FPS caps.
func (c *Clock) Wait() {
	fps := config.GetFPSLimit()
	if fps != c.fps {
		c.fps = fps
		c.next = time.Time{}
	}
	if fps <= 0 {
		return
	}

	target := time.Second / time.Duration(fps)

	if c.next.IsZero() {
		c.next = time.Now().Add(target)
	} else {
		c.next = c.next.Add(target)
	}

	for {
		remaining := time.Until(c.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(c.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(c.next); late > target {
		c.next = time.Now().Add(target)
	}
}
