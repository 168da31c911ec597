// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ComputeEndDate advances a start date by a whole number of calendar
// months. When the start day does not exist in the target month the
// result clamps to the month's last day (Jan 31 + 1 month = Feb 29 in
// a leap year, Feb 28 otherwise). Go's AddDate would roll over into
// the following month instead, so the clamp is done by hand.
func ComputeEndDate(start time.Time, months int) time.Time {
	year, month, day := start.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, start.Location())

	if last := lastDayOfMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, start.Location())
}

func lastDayOfMonth(t time.Time) int {
	// Day zero of the next month is the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
