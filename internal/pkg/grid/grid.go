// Package grid maps calendar days onto an infinite week/weekday grid
// anchored at a Sunday-aligned origin. Columns are weeks, rows are
// weekdays with Sunday at row 0. All arithmetic is done in whole UTC
// days so UTC offsets and daylight-saving transitions can never move a
// point between rows.
package grid

import "time"

const (
	// DaysPerWeek is the fixed row count of a grid column.
	DaysPerWeek = 7

	secondsPerDay = 86400
)

// Day is an absolute calendar day, counted in whole days since the Unix
// epoch (1970-01-01, a Thursday). No time of day, no timezone.
type Day int

// Position is a point on a grid: week column and weekday row.
type Position struct {
	Col int
	Row int
}

// DayOf truncates t to the UTC calendar date it falls on.
func DayOf(t time.Time) Day {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	return Day(midnight.Unix() / secondsPerDay)
}

// Date builds a Day from a calendar date.
func Date(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the midnight UTC instant of d.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Weekday returns the weekday index of d, 0 = Sunday.
func (d Day) Weekday() int {
	return int(d.Time().Weekday())
}

// Origin returns the grid origin for a year: the Sunday on or before
// January 1.
func Origin(year int) Day {
	jan1 := Date(year, time.January, 1)

	return jan1 - Day(jan1.Weekday())
}

// WindowOrigin returns the origin of a trailing window of width columns
// whose rightmost column is the week containing today.
func WindowOrigin(today Day, width int) Day {
	sunday := today - Day(today.Weekday())

	return sunday - Day((width-1)*DaysPerWeek)
}

// ToGrid converts a day to its position on the grid anchored at origin.
// Exact inverse of FromGrid for every day on or after the origin.
func ToGrid(day, origin Day) Position {
	idx := int(day - origin)

	col := idx / DaysPerWeek
	row := idx % DaysPerWeek
	if row < 0 {
		col--
		row += DaysPerWeek
	}

	return Position{Col: col, Row: row}
}

// FromGrid converts a grid position back to the absolute day.
func FromGrid(pos Position, origin Day) Day {
	return origin + Day(pos.Col*DaysPerWeek+pos.Row)
}
