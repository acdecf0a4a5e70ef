package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// AddMonthsEndOfMonth advances by the given number of calendar months
// and normalizes to the last day of the resulting month. Using day 0 of
// the following month sidesteps the usual AddDate day-overflow problem
// (e.g. Jan 31 + 1 month must land on Feb 28/29, not Mar 2/3).
func AddMonthsEndOfMonth(start time.Time, months int) time.Time {
	return time.Date(start.Year(), start.Month()+time.Month(months)+1, 0, 0, 0, 0, 0, start.Location())
}
