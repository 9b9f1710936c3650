package pagelayout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/sas7bdat/internal/subheader"
)

func TestAddSubheaderRollsToNewPageWhenFull(t *testing.T) {
	l := New(200, 8)
	for i := 0; i < 20; i++ {
		err := l.AddSubheader(&subheader.ColumnSize{VariableCount: i})
		require.NoError(t, err)
	}
	require.Greater(t, len(l.MetaPages()), 1)
}

func TestInternStringIsResolvableViaWriteTextRef(t *testing.T) {
	l := New(4096, 8)
	_, err := l.InternString("age")
	require.NoError(t, err)
	require.NoError(t, l.FinalizeTextPool())

	buf := make([]byte, 6)
	require.NoError(t, l.WriteTextRef(buf, 0, "age"))
	require.NotEqual(t, []byte{0, 0, 0, 0, 0, 0}, buf)
}

func TestWriteTextRefOfEmptyStringIsZero(t *testing.T) {
	l := New(4096, 8)
	require.NoError(t, l.FinalizeTextPool())

	buf := []byte{1, 1, 1, 1, 1, 1}
	require.NoError(t, l.WriteTextRef(buf, 0, ""))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buf)
}

func TestDeriveTotalsRowCounts(t *testing.T) {
	l := New(65536, 100)
	require.NoError(t, l.AddSubheader(&subheader.ColumnSize{VariableCount: 1}))
	require.NoError(t, l.FinalizeTextPool())
	l.ConvertToMixedPage()

	l.DeriveTotals(500, 0x12345678, "", "DATA", 10, 5, 0)
	totals := l.Totals()

	require.Equal(t, 500, totals.TotalObservations)
	require.Greater(t, totals.MaxObsMixed, 0)
	require.Greater(t, totals.MaxObsData, 0)
	require.Equal(t, "DATA", totals.DatasetType)
}

func TestAddColumnNamesSplitsAcrossSubheadersWhenNeeded(t *testing.T) {
	l := New(256, 8)
	names := make([]string, 200)
	for i := range names {
		names[i] = "v"
	}
	require.NoError(t, l.AddColumnNames(names))
	require.Greater(t, len(l.MetaPages()), 1)
}

func TestAddColumnListSplitsAcrossSubheadersWhenNeeded(t *testing.T) {
	l := New(256, 8)
	require.NoError(t, l.AddColumnList(500))
	require.Greater(t, len(l.MetaPages()), 1)
}
