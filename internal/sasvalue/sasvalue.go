// Package sasvalue holds the row-value types shared between the public
// sas7bdat package (which re-exports them via type aliases so callers never
// see this import path) and internal/rowenc (which must type-switch on them
// without importing the root package and creating an import cycle).
package sasvalue

import (
	"math"
	"time"
)

// MissingValue is one of the 28 SAS numeric missing-value sentinels.
type MissingValue uint8

const (
	MissingStandard MissingValue = iota
	MissingUnderscore
	MissingA
	MissingB
	MissingC
	MissingD
	MissingE
	MissingF
	MissingG
	MissingH
	MissingI
	MissingJ
	MissingK
	MissingL
	MissingM
	MissingN
	MissingO
	MissingP
	MissingQ
	MissingR
	MissingS
	MissingT
	MissingU
	MissingV
	MissingW
	MissingX
	MissingY
	MissingZ
)

// String returns the SAS literal for the sentinel, e.g. "." or ".A".
func (m MissingValue) String() string {
	switch {
	case m == MissingStandard:
		return "."
	case m == MissingUnderscore:
		return "._"
	case m >= MissingA && m <= MissingZ:
		return "." + string(rune('A'+int(m-MissingA)))
	default:
		return "?"
	}
}

// missingBits holds the raw IEEE-754 bit pattern SAS uses for each of the 28
// sentinels. These are reverse-engineered constants: bytes 6-7 (the two
// most-significant bytes of the double) are always 0xFF, byte 5 is a
// per-sentinel selector, and bytes 0-4 are zero. The Standard sentinel's
// selector (0xFE) is the one fixed point observed directly; the other 27
// selectors descend from it in enumeration order.
var missingBits = buildMissingBits()

func buildMissingBits() [29]uint64 {
	var table [29]uint64
	withSelector := func(sel byte) uint64 {
		return (uint64(0xFF) << 56) | (uint64(0xFF) << 48) | (uint64(sel) << 40)
	}
	table[MissingStandard] = withSelector(0xFE)
	table[MissingUnderscore] = withSelector(0xFD)
	for m := MissingA; m <= MissingZ; m++ {
		table[m] = withSelector(0xFC - byte(m-MissingA))
	}
	return table
}

// Bits returns the raw IEEE-754 bit pattern SAS writes for this sentinel.
func (m MissingValue) Bits() uint64 {
	return missingBits[m]
}

// AsFloat64 reinterprets Bits as a float64.
func (m MissingValue) AsFloat64() float64 {
	return math.Float64frombits(m.Bits())
}

// IsMissingValue reports whether bits matches one of the 28 sentinel
// patterns, returning the matching MissingValue and true if so.
func IsMissingValue(bits uint64) (MissingValue, bool) {
	for m := MissingStandard; m <= MissingZ; m++ {
		if missingBits[m] == bits {
			return m, true
		}
	}
	return 0, false
}

// Date marks a value as a calendar date (no time-of-day component).
type Date struct{ time.Time }

// Time marks a value as a time-of-day.
type Time struct{ time.Time }

// Datetime marks a value as a calendar date and time in a specific zone.
type Datetime struct {
	time.Time
	Loc *time.Location
}
