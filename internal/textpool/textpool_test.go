package textpool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/sas7bdat/internal/subheader"
)

func newTestPool(t *testing.T, pageSpace int) (*Pool, *[]subheader.Subheader) {
	t.Helper()
	committed := &[]subheader.Subheader{}
	p, err := New(func() int { return pageSpace }, func(s subheader.Subheader) error {
		*committed = append(*committed, s)
		return nil
	}, true)
	require.NoError(t, err)
	return p, committed
}

func TestAddInternsAndDedupes(t *testing.T) {
	p, _ := newTestPool(t, 1024)

	ref1, err := p.Add("hello")
	require.NoError(t, err)
	ref2, err := p.Add("hello")
	require.NoError(t, err)
	require.Equal(t, ref1, ref2)

	ref3, err := p.Add("world")
	require.NoError(t, err)
	require.NotEqual(t, ref1, ref3)
}

func TestWriteReferenceEmptyStringIsAllZero(t *testing.T) {
	p, _ := newTestPool(t, 1024)
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = 0xFF
	}
	require.NoError(t, p.WriteReference(buf, 0, ""))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0}, buf)
}

func TestWriteReferenceUnknownStringErrors(t *testing.T) {
	p, _ := newTestPool(t, 1024)
	buf := make([]byte, 6)
	err := p.WriteReference(buf, 0, "never added")
	require.Error(t, err)
}

func TestAddSplitsAcrossSubheadersWhenPageIsTight(t *testing.T) {
	p, committed := newTestPool(t, 40) // barely room for the control block

	_, err := p.Add("this string cannot fit in the first subheader")
	require.NoError(t, err)

	require.NoError(t, p.Finalize())
	require.GreaterOrEqual(t, len(*committed), 1)
	require.Equal(t, len(*committed), p.Count())
}

func TestFinalizeCommitsOpenSubheader(t *testing.T) {
	p, committed := newTestPool(t, 1024)
	_, err := p.Add("abc")
	require.NoError(t, err)
	require.Empty(t, *committed)

	require.NoError(t, p.Finalize())
	require.Len(t, *committed, 1)
}
