// Package rowlayout computes the physical byte layout of a row: each
// variable's offset within the row, and the row's total byte length.
package rowlayout

import "github.com/hailam/sas7bdat/internal/bwriter"

// VarKind mirrors sas7bdat.VariableKind without importing the root package
// (which itself depends on rowlayout at construction time).
type VarKind int

const (
	Numeric VarKind = iota
	Character
)

// Var is the minimal view of a variable rowlayout needs.
type Var struct {
	Kind   VarKind
	Length int
}

// Layout assigns each variable a physical offset: all numeric variables
// first (in schema order), then all character variables (in schema order).
// RowLength is the end-of-last-variable offset, 8-aligned if any numeric
// variable exists.
type Layout struct {
	offsets   []int
	rowLength int
}

// New builds a Layout for vars, given in schema order.
func New(vars []Var) *Layout {
	offsets := make([]int, len(vars))
	hasNumeric := false

	cursor := 0
	for i, v := range vars {
		if v.Kind != Numeric {
			continue
		}
		hasNumeric = true
		offsets[i] = cursor
		cursor += v.Length
	}
	for i, v := range vars {
		if v.Kind != Character {
			continue
		}
		offsets[i] = cursor
		cursor += v.Length
	}

	rowLength := cursor
	if hasNumeric {
		rowLength = bwriter.Align(cursor, 8)
	}

	return &Layout{offsets: offsets, rowLength: rowLength}
}

// RowLength returns the total byte length of one encoded row.
func (l *Layout) RowLength() int {
	return l.rowLength
}

// PhysicalOffset returns the byte offset, within a row, of variable i.
func (l *Layout) PhysicalOffset(i int) int {
	return l.offsets[i]
}
