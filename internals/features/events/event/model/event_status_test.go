package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	start := date(2026, 3, 10, 9)
	end := date(2026, 3, 12, 17)

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"day before start", date(2026, 3, 9, 23), StatusUpcoming},
		{"start day before start hour", date(2026, 3, 10, 0), StatusOngoing},
		{"start day after start hour", date(2026, 3, 10, 12), StatusOngoing},
		{"middle day", date(2026, 3, 11, 3), StatusOngoing},
		{"end day after end hour", date(2026, 3, 12, 23), StatusOngoing},
		{"day after end", date(2026, 3, 13, 0), StatusCompleted},
		{"long after end", date(2026, 6, 1, 0), StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.now, start, end); got != tc.want {
				t.Errorf("DeriveStatus(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestDeriveStatusSingleDayEvent(t *testing.T) {
	start := date(2026, 5, 1, 10)
	end := date(2026, 5, 1, 12)

	if got := DeriveStatus(date(2026, 4, 30, 12), start, end); got != StatusUpcoming {
		t.Errorf("before = %q, want upcoming", got)
	}
	// Whole calendar day counts as ongoing, even after the closing hour.
	if got := DeriveStatus(date(2026, 5, 1, 23), start, end); got != StatusOngoing {
		t.Errorf("event day = %q, want ongoing", got)
	}
	if got := DeriveStatus(date(2026, 5, 2, 0), start, end); got != StatusCompleted {
		t.Errorf("after = %q, want completed", got)
	}
}

func TestIsValidStatusAndCategory(t *testing.T) {
	for _, s := range Statuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	if IsValidStatus("cancelled") {
		t.Error("IsValidStatus(cancelled) = true, want false")
	}
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("IsValidCategory(%q) = false", c)
		}
	}
	if IsValidCategory("party") {
		t.Error("IsValidCategory(party) = true, want false")
	}
}
