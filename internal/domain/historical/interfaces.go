package historical

import "context"

// LogRepository supplies raw activity logs and score tables from storage.
type LogRepository interface {
	// ListByDevice returns the device's bounded logs matching the options,
	// ordered by start time.
	ListByDevice(ctx context.Context, deviceID string, opts ListLogsOptions) ([]ActivityLog, error)
	// ListByUser returns bounded logs across all of the user's devices,
	// ordered by start time.
	ListByUser(ctx context.Context, userID string, opts ListLogsOptions) ([]ActivityLog, error)
	// ScoreTableByUser returns the ordered score rules per device for all
	// of the user's devices. Order is significant: last match wins.
	ScoreTableByUser(ctx context.Context, userID string) (map[string][]ProcessWindowLevel, error)
}
