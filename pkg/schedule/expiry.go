package schedule

import (
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
)

type SlotState string

const (
	SlotOpen   SlotState = "Open"
	SlotLocked SlotState = "Locked"
)

type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed time zone.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Policy decides whether a slot can still be edited.
type Policy struct {
	clock   Clock
	cutoffs map[string]int
}

func NewPolicy(clock Clock) *Policy {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Policy{clock: clock, cutoffs: domain.MealCutoffHours}
}

func (p *Policy) Now() time.Time {
	return p.clock.Now()
}

// IsSlotExpired reports whether the slot's day is before today, or is today
// and the meal's cutoff hour has been reached. Snacks never expire on their
// own day. The week start is read as a calendar date in the clock's zone.
func (p *Policy) IsSlotExpired(weekStart time.Time, dayIndex int, mealType string) bool {
	now := p.clock.Now()
	wy, wm, wd := weekStart.Date()
	slot := time.Date(wy, wm, wd+dayIndex, 0, 0, 0, 0, now.Location())
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	if slot.Before(today) {
		return true
	}
	if slot.Equal(today) {
		if cutoff, ok := p.cutoffs[mealType]; ok && now.Hour() >= cutoff {
			return true
		}
	}
	return false
}

func (p *Policy) State(weekStart time.Time, dayIndex int, mealType string) SlotState {
	if p.IsSlotExpired(weekStart, dayIndex, mealType) {
		return SlotLocked
	}
	return SlotOpen
}
