package model

import "time"

// Derived event status values.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

var Statuses = []string{StatusUpcoming, StatusOngoing, StatusCompleted}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// DeriveStatus computes the lifecycle stage of an event from wall-clock time.
// Comparison is on calendar-day boundaries, not exact timestamps: an event is
// ongoing for the whole of its start day regardless of the hour.
func DeriveStatus(now, start, end time.Time) string {
	day := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	today := day(now)
	switch {
	case today.Before(day(start)):
		return StatusUpcoming
	case today.After(day(end)):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// Status is the convenience form used when rendering an event.
func (e *EventModel) Status(now time.Time) string {
	return DeriveStatus(now, e.EventStartDate, e.EventEndDate)
}
