package historical

import "time"

// ListLogsOptions provides pagination and window filtering for log listings.
type ListLogsOptions struct {
	Skip      int
	Limit     int
	StartTime *time.Time
	StopTime  *time.Time
}
