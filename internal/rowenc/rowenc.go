// Package rowenc encodes one row's values into a row-sized byte buffer
// using a precomputed variable layout, per spec.md §4.D.
package rowenc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hailam/sas7bdat/internal/bwriter"
	"github.com/hailam/sas7bdat/internal/rowlayout"
	"github.com/hailam/sas7bdat/internal/sasdate"
	"github.com/hailam/sas7bdat/internal/sasvalue"
)

// Variable is the minimal view of a variable the encoder needs: its
// physical layout kind/length (already known to rowlayout.Layout) plus its
// name, used only in error messages.
type Variable struct {
	Name   string
	Kind   rowlayout.VarKind
	Length int
}

// ErrArity is returned when a row's value count does not match the
// variable count.
var ErrArity = errors.New("rowenc: row value count does not match variable count")

// ErrType is returned when a row value's runtime type does not match its
// variable's kind.
var ErrType = errors.New("rowenc: row value type does not match variable kind")

// ErrTruncation is returned when a character value's UTF-8 byte length
// exceeds its variable's length.
var ErrTruncation = errors.New("rowenc: character value exceeds variable length")

// Encoder encodes rows against a fixed variable list and layout.
type Encoder struct {
	vars   []Variable
	layout *rowlayout.Layout
}

// New builds an Encoder for vars (in schema order) against layout, which
// must have been built from the same vars slice (same order and kinds).
func New(vars []Variable, layout *rowlayout.Layout) *Encoder {
	return &Encoder{vars: vars, layout: layout}
}

// EncodeRow writes row into buf starting at offset, using e's layout.
// buf[offset:offset+layout.RowLength()] is fully overwritten; bytes not
// covered by any variable (alignment padding) are ASCII spaces.
func (e *Encoder) EncodeRow(buf []byte, offset int, row []any) error {
	if len(row) != len(e.vars) {
		return fmt.Errorf("%w: got %d values, want %d", ErrArity, len(row), len(e.vars))
	}

	rowBytes := buf[offset : offset+e.layout.RowLength()]
	for i := range rowBytes {
		rowBytes[i] = ' '
	}

	for i, v := range e.vars {
		pos := offset + e.layout.PhysicalOffset(i)
		val := row[i]

		var err error
		switch v.Kind {
		case rowlayout.Character:
			err = encodeCharacter(buf, pos, v, val)
		case rowlayout.Numeric:
			err = encodeNumeric(buf, pos, v, val)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeCharacter(buf []byte, pos int, v Variable, val any) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("%w: variable %q wants a string, got %T", ErrType, v.Name, val)
	}
	if len(s) > v.Length {
		return fmt.Errorf("%w: variable %q value is %d UTF-8 bytes, exceeds length %d", ErrTruncation, v.Name, len(s), v.Length)
	}
	bwriter.WriteUTF8(buf, pos, s, v.Length, ' ')
	return nil
}

// encodeNumeric writes the value's little-endian double representation
// into the v.Length bytes at pos. Numeric variables may be stored in
// fewer than 8 bytes; a shortened numeric keeps the double's high-order
// bytes — sign, exponent, and leading mantissa bits, which carry the
// magnitude and precision that matters, and (for a missing-value
// sentinel) the bits that make it recognizable as missing — not the
// low-order ones. In a little-endian 8-byte layout those are the tail
// bytes of the array.
func encodeNumeric(buf []byte, pos int, v Variable, val any) error {
	bits, err := numericBits(v, val)
	if err != nil {
		return err
	}
	var tmp [8]byte
	bwriter.PutUint64LE(tmp[:], 0, bits)
	copy(buf[pos:pos+v.Length], tmp[8-v.Length:])
	return nil
}

func numericBits(v Variable, val any) (uint64, error) {
	switch x := val.(type) {
	case nil:
		return sasvalue.MissingStandard.Bits(), nil
	case sasvalue.MissingValue:
		return x.Bits(), nil
	case float64:
		return math.Float64bits(x), nil
	case float32:
		return math.Float64bits(float64(x)), nil
	case int:
		return math.Float64bits(float64(x)), nil
	case int64:
		return math.Float64bits(float64(x)), nil
	case sasvalue.Date:
		return math.Float64bits(sasdate.DaysSinceEpoch(x.Time)), nil
	case sasvalue.Time:
		return math.Float64bits(sasdate.SecondsSinceMidnight(x.Time)), nil
	case sasvalue.Datetime:
		loc := x.Loc
		if loc == nil {
			loc = time.UTC
		}
		return math.Float64bits(sasdate.SecondsSinceEpoch(x.Time, loc)), nil
	default:
		return 0, fmt.Errorf("%w: variable %q got unsupported numeric value type %T", ErrType, v.Name, val)
	}
}
