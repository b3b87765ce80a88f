package domain

import "time"

// NormalizeDate strips the time-of-day component, returning midnight UTC
// of the same calendar date. All date comparisons in the booking core
// operate on normalized dates, so two requests for the same calendar day
// are treated identically regardless of wall-clock submission time.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap reports whether the half-open date ranges [start, end) and
// [otherStart, otherEnd) intersect. Back-to-back ranges do not overlap:
// a checkout date equal to the next guest's check-in date is not a conflict.
func RangesOverlap(start, end, otherStart, otherEnd time.Time) bool {
	return start.Before(otherEnd) && end.After(otherStart)
}

// Nights returns the number of nights in [start, end).
// Expects normalized dates; partial days are rounded up.
func Nights(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	return nights
}
