package rowlayout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericFirstThenCharacter(t *testing.T) {
	vars := []Var{
		{Kind: Character, Length: 4},
		{Kind: Numeric, Length: 8},
	}
	l := New(vars)
	// Numeric (index 1) must be placed before character (index 0).
	require.Less(t, l.PhysicalOffset(1), l.PhysicalOffset(0))
	require.Equal(t, 0, l.PhysicalOffset(1))
	require.Equal(t, 8, l.PhysicalOffset(0))
	// 8 (numeric) + 4 (character) = 12, aligned up to 16 since a numeric exists.
	require.Equal(t, 16, l.RowLength())
}

func TestAllCharacterNoAlignment(t *testing.T) {
	vars := []Var{
		{Kind: Character, Length: 3},
		{Kind: Character, Length: 4},
	}
	l := New(vars)
	require.Equal(t, 0, l.PhysicalOffset(0))
	require.Equal(t, 3, l.PhysicalOffset(1))
	require.Equal(t, 7, l.RowLength())
}

func TestTwoNumerics(t *testing.T) {
	vars := []Var{
		{Kind: Numeric, Length: 8},
		{Kind: Numeric, Length: 8},
	}
	l := New(vars)
	require.Equal(t, 0, l.PhysicalOffset(0))
	require.Equal(t, 8, l.PhysicalOffset(1))
	require.Equal(t, 16, l.RowLength())
}
