package historical

import (
	"math"
	"time"
)

// NormalizeStart expands a bare date (zero time-of-day) to 00:00:00 UTC of
// that date. Timestamps with a time component are converted to UTC as-is.
func NormalizeStart(t time.Time) time.Time {
	if hasZeroClock(t) {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return t.UTC()
}

// NormalizeStop expands a bare date (zero time-of-day) to the last instant
// of that date, 23:59:59.999999 UTC, so callers can pass bare dates and get
// whole-day coverage.
func NormalizeStop(t time.Time) time.Time {
	if hasZeroClock(t) {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, time.UTC)
	}
	return t.UTC()
}

func hasZeroClock(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// Clip intersects a log's own interval with the query window. A log with no
// stop time is bounded by the window's end. Returns ok=false when the
// clipped interval is empty, meaning the log contributes nothing.
func Clip(log ActivityLog, startTime, stopTime time.Time) (start, stop time.Time, ok bool) {
	start = log.StartTime
	if start.Before(startTime) {
		start = startTime
	}

	stop = stopTime
	if log.StopTime != nil && log.StopTime.Before(stopTime) {
		stop = *log.StopTime
	}

	if !stop.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, stop, true
}

// DurationSeconds returns the interval length rounded to whole seconds.
func DurationSeconds(start, stop time.Time) float64 {
	return math.Round(stop.Sub(start).Seconds())
}
