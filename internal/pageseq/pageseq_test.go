package pageseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialMatchesIndexZero(t *testing.T) {
	s := New()
	require.Equal(t, valueAt(0), s.Initial())
	require.Equal(t, s.Initial(), s.Current())
}

func TestAdvanceProducesConsecutiveValues(t *testing.T) {
	s := New()
	for i := 1; i <= 64; i++ {
		require.NoError(t, s.Advance())
		require.Equal(t, valueAt(i), s.Current())
	}
}

func TestLowNibblePatternRepeatsEvery16Pages(t *testing.T) {
	for i := 0; i < 16; i++ {
		require.Equal(t, valueAt(i)&0x0F, valueAt(i+16)&0x0F)
	}
}

func TestAdvanceExhausts(t *testing.T) {
	s := &Sequencer{index: maxIndex}
	err := s.Advance()
	require.True(t, errors.Is(err, ErrSequenceExhausted))
}
