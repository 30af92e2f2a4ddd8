package util

import "time"

// BaseDate is day 0 of the pipeline's day-number calendar. All dataset
// timestamps derive from it; it never changes, so the same day parameter
// always maps to the same calendar date.
var BaseDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DayDate returns the UTC midnight corresponding to the given day number.
func DayDate(day int) time.Time {
	return BaseDate.AddDate(0, 0, day)
}

// DateDay returns the day number for the given time, truncated to whole
// days since BaseDate. Times before BaseDate yield negative values.
func DateDay(t time.Time) int {
	return int(t.UTC().Sub(BaseDate) / (24 * time.Hour))
}
