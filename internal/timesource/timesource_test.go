package timesource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultClockUsesRealTime(t *testing.T) {
	clock := DefaultClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	require.False(t, now.Before(before), "clock time should not be before the call")
	require.False(t, now.After(after), "clock time should not be after the call")
}

func TestSnapshotMilliseconds(t *testing.T) {
	src := &Source{Clock: FixedClock{Time: time.UnixMilli(1234567890123)}, Unit: Milliseconds}

	snap, err := src.Snapshot()
	require.NoError(t, err)
	require.Equal(t, Snapshot("1234567890123"), snap)
	require.Equal(t, 13, snap.Len())
}

func TestSnapshotSeconds(t *testing.T) {
	src := &Source{Clock: FixedClock{Time: time.UnixMilli(1234567890123)}, Unit: Seconds}

	snap, err := src.Snapshot()
	require.NoError(t, err)
	require.Equal(t, Snapshot("1234567890"), snap)
}

func TestSnapshotBeforeEpoch(t *testing.T) {
	src := &Source{Clock: FixedClock{Time: time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC)}}

	_, err := src.Snapshot()
	require.ErrorIs(t, err, ErrClockUnavailable)
}

func TestSnapshotNilClockFallsBackToRealTime(t *testing.T) {
	snap, err := (&Source{Unit: Seconds}).Snapshot()
	require.NoError(t, err)
	require.GreaterOrEqual(t, snap.Len(), 10)
}

func TestSnapshotDigit(t *testing.T) {
	snap := Snapshot("1234567890")

	d, ok := snap.Digit(0)
	require.True(t, ok)
	require.Equal(t, 1, d)

	d, ok = snap.Digit(9)
	require.True(t, ok)
	require.Equal(t, 0, d)

	_, ok = snap.Digit(10)
	require.False(t, ok)

	_, ok = snap.Digit(-1)
	require.False(t, ok)

	_, ok = Snapshot("12a").Digit(2)
	require.False(t, ok)
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"ms":           Milliseconds,
		"":             Milliseconds,
		"Milliseconds": Milliseconds,
		"s":            Seconds,
		" seconds ":    Seconds,
	} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseUnit("hours")
	require.Error(t, err)
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "ms", Milliseconds.String())
	require.Equal(t, "s", Seconds.String())
	require.Equal(t, "Unit(7)", Unit(7).String())
}
