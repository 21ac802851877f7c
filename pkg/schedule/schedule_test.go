package schedule

import (
	"testing"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singapore(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		loc = time.FixedZone("SGT", 8*60*60)
	}
	return loc
}

func TestWeekStart(t *testing.T) {
	loc := singapore(t)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{name: "monday", at: time.Date(2026, 2, 23, 9, 0, 0, 0, loc), expected: "2026-02-23"},
		{name: "wednesday", at: time.Date(2026, 2, 25, 23, 59, 0, 0, loc), expected: "2026-02-23"},
		{name: "sunday goes back six days", at: time.Date(2026, 3, 1, 12, 0, 0, 0, loc), expected: "2026-02-23"},
		{name: "across month", at: time.Date(2026, 3, 3, 0, 0, 0, 0, loc), expected: "2026-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.at)
			assert.Equal(t, tt.expected, FormatDate(got))
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestSlotDate(t *testing.T) {
	loc := singapore(t)
	monday, err := ParseDate("2026-02-23", loc)
	require.NoError(t, err)

	assert.Equal(t, "2026-02-23", FormatDate(SlotDate(monday, 0)))
	assert.Equal(t, "2026-03-01", FormatDate(SlotDate(monday, 6)))
}

func TestParseWeekStart(t *testing.T) {
	loc := singapore(t)
	clock := FixedClock(time.Date(2026, 2, 26, 8, 0, 0, 0, loc))

	current, err := ParseWeekStart("", clock)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-23", FormatDate(current))

	normalised, err := ParseWeekStart("2026-03-04", clock)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", FormatDate(normalised))

	_, err = ParseWeekStart("23/02/2026", clock)
	assert.ErrorIs(t, err, domain.ErrInvalidWeekStart)
}

func TestPolicy_IsSlotExpired(t *testing.T) {
	loc := singapore(t)
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, loc)
	at := func(day, hour, minute int) Clock {
		return FixedClock(time.Date(2026, 2, day, hour, minute, 0, 0, loc))
	}

	tests := []struct {
		name     string
		clock    Clock
		dayIndex int
		mealType string
		expected bool
	}{
		{name: "lunch after cutoff", clock: at(23, 15, 0), dayIndex: 0, mealType: domain.MealLunch, expected: true},
		{name: "lunch before cutoff", clock: at(23, 13, 0), dayIndex: 0, mealType: domain.MealLunch, expected: false},
		{name: "cutoff hour is inclusive", clock: at(23, 14, 0), dayIndex: 0, mealType: domain.MealLunch, expected: true},
		{name: "breakfast at ten", clock: at(23, 10, 0), dayIndex: 0, mealType: domain.MealBreakfast, expected: true},
		{name: "dinner before eight", clock: at(23, 19, 59), dayIndex: 0, mealType: domain.MealDinner, expected: false},
		{name: "snack late on same day", clock: at(23, 23, 59), dayIndex: 0, mealType: domain.MealSnack, expected: false},
		{name: "past day snack", clock: at(24, 0, 1), dayIndex: 0, mealType: domain.MealSnack, expected: true},
		{name: "past day breakfast", clock: at(25, 6, 0), dayIndex: 1, mealType: domain.MealBreakfast, expected: true},
		{name: "future day", clock: at(23, 23, 0), dayIndex: 1, mealType: domain.MealBreakfast, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewPolicy(tt.clock)
			assert.Equal(t, tt.expected, policy.IsSlotExpired(monday, tt.dayIndex, tt.mealType))
		})
	}
}

func TestPolicy_State(t *testing.T) {
	loc := singapore(t)
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, loc)
	policy := NewPolicy(FixedClock(time.Date(2026, 2, 23, 15, 0, 0, 0, loc)))

	assert.Equal(t, SlotLocked, policy.State(monday, 0, domain.MealLunch))
	assert.Equal(t, SlotOpen, policy.State(monday, 0, domain.MealDinner))
	assert.Equal(t, SlotOpen, policy.State(monday, 2, domain.MealBreakfast))
}

func TestPolicy_ExpiryIsMonotonic(t *testing.T) {
	loc := singapore(t)
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, loc)
	start := time.Date(2026, 2, 22, 0, 0, 0, 0, loc)

	for _, mealType := range domain.MealTypes {
		for day := 0; day < domain.DaysPerWeek; day++ {
			expired := false
			for h := 0; h < 24*9; h++ {
				policy := NewPolicy(FixedClock(start.Add(time.Duration(h) * time.Hour)))
				now := policy.IsSlotExpired(monday, day, mealType)
				if expired {
					assert.True(t, now, "%s day %d hour %d", mealType, day, h)
				}
				expired = now
			}
			assert.True(t, expired, "%s day %d", mealType, day)
		}
	}
}
