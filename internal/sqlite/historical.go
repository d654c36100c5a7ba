package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tc2services/attivita/internal/domain/historical"
)

// Markers the tracker writes around capture pauses. They are excluded from
// listings; the classifier handles the lower-cased forms that slip through.
var trackerMarkers = []string{"[PAUSE]", "[RESUME]"}

// HistoricalRepository implements historical.LogRepository for SQLite
type HistoricalRepository struct {
	db *DB
}

// NewHistoricalRepository creates a new HistoricalRepository
func NewHistoricalRepository(db *DB) *HistoricalRepository {
	return &HistoricalRepository{db: db}
}

// ListByDevice returns the device's bounded logs ordered by start time.
// Open entries (NULL stop_time) and tracker pause markers are excluded.
func (r *HistoricalRepository) ListByDevice(ctx context.Context, deviceID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error) {
	return r.listLogs(ctx, []string{deviceID}, opts)
}

// ListByUser returns bounded logs across all devices assigned to the user,
// ordered by start time.
func (r *HistoricalRepository) ListByUser(ctx context.Context, userID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error) {
	deviceIDs, err := r.deviceIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(deviceIDs) == 0 {
		return []historical.ActivityLog{}, nil
	}
	return r.listLogs(ctx, deviceIDs, opts)
}

// ScoreTableByUser returns the ordered score rules per device for all of
// the user's devices. Rows come back in position order so last-match-wins
// semantics survive the round trip.
func (r *HistoricalRepository) ScoreTableByUser(ctx context.Context, userID string) (map[string][]historical.ProcessWindowLevel, error) {
	deviceIDs, err := r.deviceIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	table := make(map[string][]historical.ProcessWindowLevel, len(deviceIDs))
	if len(deviceIDs) == 0 {
		return table, nil
	}

	query := `
		SELECT device_id, process, window_title, level
		FROM process_window_levels
		WHERE device_id IN (` + placeholders(len(deviceIDs)) + `)
		ORDER BY device_id, position
	`
	rows, err := r.db.QueryContext(ctx, query, toAnySlice(deviceIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query score table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceID string
		var level historical.ProcessWindowLevel
		if err := rows.Scan(&deviceID, &level.Process, &level.WindowTitle, &level.Level); err != nil {
			return nil, fmt.Errorf("failed to scan score rule: %w", err)
		}
		table[deviceID] = append(table[deviceID], level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating score rows: %w", err)
	}

	return table, nil
}

func (r *HistoricalRepository) listLogs(ctx context.Context, deviceIDs []string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error) {
	query := `
		SELECT device_id, start_time, stop_time, process, window_title
		FROM activity_logs
		WHERE device_id IN (` + placeholders(len(deviceIDs)) + `)
		AND stop_time IS NOT NULL
	`
	args := toAnySlice(deviceIDs)

	for _, marker := range trackerMarkers {
		query += " AND process != ?"
		args = append(args, marker)
	}

	if opts.StartTime != nil {
		query += " AND start_time >= ?"
		args = append(args, opts.StartTime.UTC())
	}
	if opts.StopTime != nil {
		query += " AND stop_time <= ?"
		args = append(args, opts.StopTime.UTC())
	}

	query += " ORDER BY start_time"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Skip > 0 {
		// SQLite requires a LIMIT clause before OFFSET.
		query += " LIMIT -1"
	}
	if opts.Skip > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Skip)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	logs := []historical.ActivityLog{}
	for rows.Next() {
		var log historical.ActivityLog
		var stopTime sql.NullTime
		if err := rows.Scan(&log.DeviceID, &log.StartTime, &stopTime, &log.Process, &log.WindowTitle); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		if stopTime.Valid {
			stop := stopTime.Time
			log.StopTime = &stop
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return logs, nil
}

func (r *HistoricalRepository) deviceIDsForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT device_id FROM devices WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user devices: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan device id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device rows: %w", err)
	}
	return ids, nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	s := "?"
	for i := 1; i < n; i++ {
		s += ", ?"
	}
	return s
}

func toAnySlice(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
