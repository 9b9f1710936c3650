// Package sastest builds small, deterministic schemas and rows for use
// from _test.go files across the module. It is not a producer of
// realistic test data for external callers — sas7bdat itself takes no
// position on how rows are generated — only a fixture helper for this
// module's own test suite.
package sastest

import (
	"testing"
	"time"

	"github.com/hailam/sas7bdat"
)

// NumericSchema builds a schema named name with n numeric variables
// "N0".."N{n-1}", each 8 bytes wide.
func NumericSchema(t *testing.T, name string, n int) *sas7bdat.Schema {
	t.Helper()
	vars := make([]sas7bdat.Variable, n)
	for i := range vars {
		v, err := sas7bdat.NewVariable(numberedName("N", i), sas7bdat.Numeric, 8, "", sas7bdat.UnspecifiedFormat, sas7bdat.UnspecifiedFormat, sas7bdat.Any)
		if err != nil {
			t.Fatalf("sastest: building variable %d: %v", i, err)
		}
		vars[i] = v
	}
	return mustSchema(t, name, vars)
}

// CharacterSchema builds a schema named name with n character variables
// "C0".."C{n-1}", each width bytes wide.
func CharacterSchema(t *testing.T, name string, n, width int) *sas7bdat.Schema {
	t.Helper()
	vars := make([]sas7bdat.Variable, n)
	for i := range vars {
		v, err := sas7bdat.NewVariable(numberedName("C", i), sas7bdat.Character, width, "", sas7bdat.UnspecifiedFormat, sas7bdat.UnspecifiedFormat, sas7bdat.Any)
		if err != nil {
			t.Fatalf("sastest: building variable %d: %v", i, err)
		}
		vars[i] = v
	}
	return mustSchema(t, name, vars)
}

func mustSchema(t *testing.T, name string, vars []sas7bdat.Variable) *sas7bdat.Schema {
	t.Helper()
	s, err := sas7bdat.NewSchema(sas7bdat.SchemaOptions{
		Name:    name,
		Created: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}, vars)
	if err != nil {
		t.Fatalf("sastest: building schema %q: %v", name, err)
	}
	return s
}

// NumericRows returns n rows against a schema of width numeric variables,
// each cell set to a distinct float64 so individual cells are easy to
// assert on in a round trip.
func NumericRows(n, width int) []sas7bdat.Row {
	rows := make([]sas7bdat.Row, n)
	for r := range rows {
		row := make(sas7bdat.Row, width)
		for c := range row {
			row[c] = float64(r*width + c)
		}
		rows[r] = row
	}
	return rows
}

func numberedName(prefix string, i int) string {
	digits := [20]byte{}
	pos := len(digits)
	if i == 0 {
		pos--
		digits[pos] = '0'
	}
	for i > 0 {
		pos--
		digits[pos] = byte('0' + i%10)
		i /= 10
	}
	return prefix + string(digits[pos:])
}
