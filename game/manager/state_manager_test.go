package manager

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestStateManagerRounds(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	sm := newStateManager(clock.now)

	if sm.Rounds() != 0 || sm.AverageLength() != 0 || sm.MedianLength() != 0 || sm.AverageDuration() != 0 {
		t.Fatal("empty manager reports statistics")
	}

	lengths := []int{5, 1, 9, 3}
	for i, l := range lengths {
		clock.advance(time.Duration(i+1) * time.Second)
		r := sm.EndRound(l)
		if r.ID == "" {
			t.Errorf("round %d has no id", i)
		}
		if r.Duration() != time.Duration(i+1)*time.Second {
			t.Errorf("round %d lasted %s, want %ds", i, r.Duration(), i+1)
		}
	}

	if sm.Rounds() != 4 {
		t.Errorf("Rounds() = %d, want 4", sm.Rounds())
	}
	if sm.Best() != 9 {
		t.Errorf("Best() = %d, want 9", sm.Best())
	}
	if got := sm.AverageLength(); got != 4.5 {
		t.Errorf("AverageLength() = %v, want 4.5", got)
	}
	if got := sm.MedianLength(); got != 4 {
		t.Errorf("MedianLength() = %v, want 4", got)
	}
	if got := sm.AverageDuration(); got != 2500*time.Millisecond {
		t.Errorf("AverageDuration() = %s, want 2.5s", got)
	}
}

func TestUpdateLengthOnlyRaises(t *testing.T) {
	sm := NewStateManager()
	sm.UpdateLength(4)
	sm.UpdateLength(2)
	if sm.Best() != 4 {
		t.Errorf("Best() = %d, want 4", sm.Best())
	}
	records := sm.Records()
	if len(records) != 0 {
		t.Errorf("Records() has %d entries, want 0", len(records))
	}
}
