package game

import "time"

// FrameClock caps the loop rate against the wall clock.
type FrameClock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now, sleep: time.Sleep}
}

// Tick sleeps for whatever is left of the current frame.
func (c *FrameClock) Tick(rate int) {
	c.tick(rate)
}

// tick returns the time actually spent since the previous call.
func (c *FrameClock) tick(rate int) time.Duration {
	now := c.now()
	if c.last.IsZero() || rate <= 0 {
		c.last = now
		return 0
	}
	frame := time.Second / time.Duration(rate)
	if elapsed := now.Sub(c.last); elapsed < frame {
		c.sleep(frame - elapsed)
		now = c.now()
	}
	spent := now.Sub(c.last)
	c.last = now
	return spent
}
