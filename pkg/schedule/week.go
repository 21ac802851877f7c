package schedule

import (
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
)

// WeekStart returns local midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += domain.DaysPerWeek
	}
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// SlotDate returns midnight of the given day of the week. Calendar arithmetic
// keeps the result correct across daylight saving shifts.
func SlotDate(weekStart time.Time, dayIndex int) time.Time {
	y, m, d := weekStart.Date()
	return time.Date(y, m, d+dayIndex, 0, 0, 0, 0, weekStart.Location())
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.DateLayout, value, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// ParseWeekStart parses a week start date and normalises it to that week's
// Monday. A blank value means the current week.
func ParseWeekStart(value string, clock Clock) (time.Time, error) {
	now := clock.Now()
	if value == "" {
		return WeekStart(now), nil
	}
	t, err := ParseDate(value, now.Location())
	if err != nil {
		return time.Time{}, domain.ErrInvalidWeekStart
	}
	return WeekStart(t), nil
}

// StorageDate keeps only the calendar date of t, as UTC midnight, which is
// how date columns round-trip through the database driver.
func StorageDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
