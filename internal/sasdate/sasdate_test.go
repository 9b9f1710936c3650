package sasdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysSinceEpoch(t *testing.T) {
	require.Equal(t, 0.0, DaysSinceEpoch(Epoch))
	oneDayLater := time.Date(1960, time.January, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 1.0, DaysSinceEpoch(oneDayLater))
	// A well-known reference point: 2020-01-01 is 21915 days after 1960-01-01.
	ref := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 21915.0, DaysSinceEpoch(ref))
}

func TestSecondsSinceMidnight(t *testing.T) {
	noon := time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 12.0*3600, SecondsSinceMidnight(noon))
}

func TestSecondsSinceEpochUTC(t *testing.T) {
	dt := time.Date(1960, time.January, 2, 0, 0, 1, 0, time.UTC)
	require.Equal(t, 86401.0, SecondsSinceEpoch(dt, time.UTC))
}

func TestSecondsSinceEpochIsDSTAware(t *testing.T) {
	// America/New_York observes DST; 1960-01-01 is EST (UTC-5), while a date
	// in the following July is EDT (UTC-4). The zoned-Sub approach must
	// absorb that 1-hour shift automatically rather than needing a manual
	// correction.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available in this environment")
	}
	winterEpoch := time.Date(1960, time.January, 1, 0, 0, 0, 0, loc)
	summerInstant := time.Date(1960, time.July, 1, 0, 0, 0, 0, loc)

	got := SecondsSinceEpoch(time.Date(1960, time.July, 1, 0, 0, 0, 0, time.UTC), loc)
	want := summerInstant.Sub(winterEpoch).Seconds()
	require.Equal(t, want, got)
}
