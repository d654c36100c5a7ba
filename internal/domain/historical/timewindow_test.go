package historical_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tc2services/attivita/internal/domain/historical"
)

func TestNormalizeStart(t *testing.T) {
	bare := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, bare, historical.NormalizeStart(bare))

	withClock := time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)
	require.Equal(t, withClock, historical.NormalizeStart(withClock))
}

func TestNormalizeStop(t *testing.T) {
	bare := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 3, 1, 23, 59, 59, 999999000, time.UTC)
	require.Equal(t, want, historical.NormalizeStop(bare))

	withClock := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	require.Equal(t, withClock, historical.NormalizeStop(withClock))
}

func TestClip(t *testing.T) {
	winStart := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	winStop := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)

	t.Run("fully inside", func(t *testing.T) {
		log := historical.ActivityLog{
			StartTime: winStart.Add(time.Hour),
			StopTime:  timePtr(winStart.Add(2 * time.Hour)),
		}
		start, stop, ok := historical.Clip(log, winStart, winStop)
		require.True(t, ok)
		require.Equal(t, log.StartTime, start)
		require.Equal(t, *log.StopTime, stop)
	})

	t.Run("overlapping both edges", func(t *testing.T) {
		log := historical.ActivityLog{
			StartTime: winStart.Add(-time.Hour),
			StopTime:  timePtr(winStop.Add(time.Hour)),
		}
		start, stop, ok := historical.Clip(log, winStart, winStop)
		require.True(t, ok)
		require.Equal(t, winStart, start)
		require.Equal(t, winStop, stop)
	})

	t.Run("open log bounded by window end", func(t *testing.T) {
		log := historical.ActivityLog{StartTime: winStart.Add(time.Hour)}
		start, stop, ok := historical.Clip(log, winStart, winStop)
		require.True(t, ok)
		require.Equal(t, log.StartTime, start)
		require.Equal(t, winStop, stop)
	})

	t.Run("before window", func(t *testing.T) {
		log := historical.ActivityLog{
			StartTime: winStart.Add(-2 * time.Hour),
			StopTime:  timePtr(winStart.Add(-time.Hour)),
		}
		_, _, ok := historical.Clip(log, winStart, winStop)
		require.False(t, ok)
	})

	t.Run("after window", func(t *testing.T) {
		log := historical.ActivityLog{
			StartTime: winStop.Add(time.Hour),
			StopTime:  timePtr(winStop.Add(2 * time.Hour)),
		}
		_, _, ok := historical.Clip(log, winStart, winStop)
		require.False(t, ok)
	})

	t.Run("zero width", func(t *testing.T) {
		log := historical.ActivityLog{
			StartTime: winStart,
			StopTime:  timePtr(winStart),
		}
		_, _, ok := historical.Clip(log, winStart, winStop)
		require.False(t, ok)
	})
}

func TestDurationSeconds(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.Equal(t, 1800.0, historical.DurationSeconds(start, start.Add(30*time.Minute)))
	// Sub-second remainders round to the nearest whole second.
	require.Equal(t, 2.0, historical.DurationSeconds(start, start.Add(1700*time.Millisecond)))
	require.Equal(t, 1.0, historical.DurationSeconds(start, start.Add(1400*time.Millisecond)))
}
