package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoundRecord describes one life of the snake, from (re)spawn to reset.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Length    int
}

// Duration returns how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the session's round history in memory.
type StateManager struct {
	rounds     []RoundRecord
	best       int
	roundStart time.Time
	now        func() time.Time
}

func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		rounds:     make([]RoundRecord, 0),
		roundStart: now(),
		now:        now,
	}
}

// UpdateLength raises the best length if length beats it.
func (sm *StateManager) UpdateLength(length int) {
	if length > sm.best {
		sm.best = length
	}
}

// EndRound closes the running round with its final length and starts the
// next one.
func (sm *StateManager) EndRound(length int) RoundRecord {
	end := sm.now()
	record := RoundRecord{
		ID:        uuid.New().String(),
		StartTime: sm.roundStart,
		EndTime:   end,
		Length:    length,
	}
	sm.rounds = append(sm.rounds, record)
	sm.UpdateLength(length)
	sm.roundStart = end
	return record
}

func (sm *StateManager) Best() int {
	return sm.best
}

// Rounds returns the number of finished rounds.
func (sm *StateManager) Rounds() int {
	return len(sm.rounds)
}

func (sm *StateManager) Records() []RoundRecord {
	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	return out
}

// AverageLength returns the mean final length over finished rounds.
func (sm *StateManager) AverageLength() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Length
	}
	return float64(total) / float64(len(sm.rounds))
}

// MedianLength returns the median final length over finished rounds.
func (sm *StateManager) MedianLength() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	lengths := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		lengths[i] = r.Length
	}
	sort.Ints(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		return float64(lengths[mid-1]+lengths[mid]) / 2
	}
	return float64(lengths[mid])
}

// AverageDuration returns the mean round duration.
func (sm *StateManager) AverageDuration() time.Duration {
	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.rounds))
}
