package domain

import (
	"fmt"
	"time"
)

// Frequency is the cadence of a recurring invoice template.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnually    Frequency = "annually"
)

// ParseFrequency validates a stored frequency string.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return f, nil
	default:
		return "", Errorf(EINVALID, "recurring.frequency", "unknown recurring frequency: %q", s)
	}
}

// Advance returns the next run date after from.
//
// Calendar-month steps land on anchorDay, clamped to the last day of the
// target month, so a template dated the 31st produces an invoice on the
// 28th/29th/30th of shorter months and returns to the 31st afterwards.
// anchorDay <= 0 uses from's own day.
func (f Frequency) Advance(from time.Time, anchorDay int) (time.Time, error) {
	if anchorDay <= 0 {
		anchorDay = from.Day()
	}
	switch f {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case FrequencyFortnightly:
		return from.AddDate(0, 0, 14), nil
	case FrequencyMonthly:
		return AddMonthsClamped(from, 1, anchorDay), nil
	case FrequencyQuarterly:
		return AddMonthsClamped(from, 3, anchorDay), nil
	case FrequencyAnnually:
		return AddMonthsClamped(from, 12, anchorDay), nil
	default:
		return time.Time{}, fmt.Errorf("advance: unknown frequency %q", string(f))
	}
}

// AddMonthsClamped moves t forward by months and sets the day to day,
// clamped to the end of the resulting month.
func AddMonthsClamped(t time.Time, months, day int) time.Time {
	y, m, _ := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDay(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// CycleAnchorDay picks the day of month a template's calendar-month cycle
// is pinned to. The template date's day wins when next is that day or a
// month-end clamp of it; otherwise next's own day is the anchor.
func CycleAnchorDay(templateDate, next time.Time) int {
	if templateDate.IsZero() {
		return next.Day()
	}
	anchor := templateDate.Day()
	if next.Day() == anchor || (next.Day() < anchor && next.Day() == lastDay(next)) {
		return anchor
	}
	return next.Day()
}

func lastDay(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DaysBetween counts whole calendar days from a to b (negative if b is before a).
// Both times are truncated to their date in their own location.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
