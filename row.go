package sas7bdat

import (
	"time"

	"github.com/hailam/sas7bdat/internal/sasvalue"
)

// Row is one observation: an ordered list of values, one per schema
// variable. Each value's accepted type depends on its variable's kind —
// see internal/rowenc for the full dispatch spec.md §4.D describes.
type Row []any

// Date marks a value as a calendar date (no time-of-day component), encoded
// as the number of days between 1960-01-01 and the date.
type Date = sasvalue.Date

// NewDate wraps t as a Date value for a row.
func NewDate(t time.Time) Date { return Date{Time: t} }

// Time marks a value as a time-of-day, encoded as seconds since midnight.
type Time = sasvalue.Time

// NewTime wraps t as a Time value for a row.
func NewTime(t time.Time) Time { return Time{Time: t} }

// Datetime marks a value as a calendar date and time, encoded as seconds
// between 1960-01-01T00:00:00 and the datetime (DST-aware, see
// internal/sasdate).
type Datetime = sasvalue.Datetime

// NewDatetime wraps t as a Datetime value for a row, converted in loc (UTC
// if loc is nil).
func NewDatetime(t time.Time, loc *time.Location) Datetime {
	return Datetime{Time: t, Loc: loc}
}
