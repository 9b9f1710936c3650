// Package sasdate converts calendar values to the IEEE-754 doubles SAS
// stores them as, relative to the SAS epoch (1960-01-01T00:00:00 local).
package sasdate

import "time"

// Epoch is 1960-01-01T00:00:00 in the UTC location; callers needing a
// zoned epoch re-attach its wall-clock fields to their own *time.Location
// (as SecondsSinceEpoch does) rather than constructing a new literal, so
// there is one authoritative origin in the package. Epoch.In(loc) is not
// that: it names the same UTC instant, not midnight in loc.
var Epoch = time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)

// DaysSinceEpoch returns the whole number of days between the SAS epoch
// and d's calendar date, as a float64 (SAS date values have no fractional
// day component but are stored as doubles).
func DaysSinceEpoch(d time.Time) float64 {
	y, m, day := d.Date()
	calendarDay := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return calendarDay.Sub(Epoch).Hours() / 24
}

// SecondsSinceMidnight returns the number of seconds elapsed since the
// start of t's calendar day, as a float64.
func SecondsSinceMidnight(t time.Time) float64 {
	h, m, s := t.Clock()
	return float64(h*3600+m*60+s) + float64(t.Nanosecond())/1e9
}

// SecondsSinceEpoch returns the number of seconds between the SAS epoch and
// dt, computed in loc. The computation is DST-aware: both dt and Epoch are
// first attached to loc, and the difference is taken between the resulting
// zoned instants (time.Time.Sub), rather than by subtracting naive calendar
// fields and then adding/removing a DST offset by hand. That naive
// alternative overcounts or undercounts by exactly one DST transition's
// offset whenever dt and Epoch fall on opposite sides of one.
func SecondsSinceEpoch(dt time.Time, loc *time.Location) float64 {
	if loc == nil {
		loc = time.UTC
	}
	ey, em, ed := Epoch.Date()
	zonedEpoch := time.Date(ey, em, ed, 0, 0, 0, 0, loc)
	y, m, d := dt.Date()
	h, min, s := dt.Clock()
	zonedDT := time.Date(y, m, d, h, min, s, dt.Nanosecond(), loc)
	return zonedDT.Sub(zonedEpoch).Seconds()
}
