package types

import "fmt"

// Week is the Monday-Sunday calendar span containing a date.
type Week struct {
	Start Date
	End   Date
}

// WeekOf returns the Week containing the reference date.
func WeekOf(d Date) Week {
	// time.Weekday numbers Sunday as 0, the week here starts on Monday.
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDays(-offset)
	return Week{Start: start, End: start.AddDays(6)}
}

// Contains reports whether the date falls within the week, bounds included.
func (w Week) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// String returns the week formatted as "YYYY-MM-DD to YYYY-MM-DD".
func (w Week) String() string {
	return fmt.Sprintf("%s to %s", w.Start, w.End)
}
