package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tc2services/attivita/internal/domain/historical"
)

func insertLog(t *testing.T, db *DB, deviceID string, start time.Time, stop *time.Time, process, title string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO activity_logs (device_id, start_time, stop_time, process, window_title) VALUES (?, ?, ?, ?, ?)`,
		deviceID, start, stop, process, title)
	require.NoError(t, err)
}

func assignDevice(t *testing.T, db *DB, userID, deviceID string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users (id, fullname) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`, userID, "Test User")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO devices (device_id, user_id) VALUES (?, ?)`, deviceID, userID)
	require.NoError(t, err)
}

func stopAt(t time.Time) *time.Time {
	return &t
}

func TestHistoricalRepository_ListByDevice(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	insertLog(t, db, "dev1", day.Add(10*time.Hour), stopAt(day.Add(11*time.Hour)), "chrome", "https://github.com/x")
	insertLog(t, db, "dev1", day.Add(9*time.Hour), stopAt(day.Add(10*time.Hour)), "vscode", "main.go")
	// Open entry and tracker markers never surface in listings.
	insertLog(t, db, "dev1", day.Add(12*time.Hour), nil, "vscode", "main.go")
	insertLog(t, db, "dev1", day.Add(13*time.Hour), stopAt(day.Add(13*time.Hour+time.Minute)), "[PAUSE]", "")
	insertLog(t, db, "dev1", day.Add(14*time.Hour), stopAt(day.Add(14*time.Hour+time.Minute)), "[RESUME]", "")
	// Other devices are invisible.
	insertLog(t, db, "dev2", day.Add(9*time.Hour), stopAt(day.Add(10*time.Hour)), "vscode", "main.go")

	logs, err := repo.ListByDevice(ctx, "dev1", historical.ListLogsOptions{})
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Ordered by start time.
	require.Equal(t, "vscode", logs[0].Process)
	require.Equal(t, "chrome", logs[1].Process)
	require.Equal(t, "dev1", logs[0].DeviceID)
	require.True(t, logs[0].StartTime.Equal(day.Add(9*time.Hour)))
	require.NotNil(t, logs[0].StopTime)
	require.True(t, logs[0].StopTime.Equal(day.Add(10*time.Hour)))
}

func TestHistoricalRepository_ListByDeviceWindowFilter(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for hour := 8; hour < 12; hour++ {
		insertLog(t, db, "dev1", day.Add(time.Duration(hour)*time.Hour), stopAt(day.Add(time.Duration(hour)*time.Hour+30*time.Minute)), "vscode", "main.go")
	}

	start := day.Add(9 * time.Hour)
	stop := day.Add(11 * time.Hour)
	logs, err := repo.ListByDevice(ctx, "dev1", historical.ListLogsOptions{StartTime: &start, StopTime: &stop})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.True(t, logs[0].StartTime.Equal(day.Add(9*time.Hour)))
	require.True(t, logs[1].StartTime.Equal(day.Add(10*time.Hour)))
}

func TestHistoricalRepository_ListByDevicePagination(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		insertLog(t, db, "dev1", day.Add(time.Duration(i)*time.Hour), stopAt(day.Add(time.Duration(i)*time.Hour+time.Minute)), "vscode", "main.go")
	}

	logs, err := repo.ListByDevice(ctx, "dev1", historical.ListLogsOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.True(t, logs[0].StartTime.Equal(day))

	logs, err = repo.ListByDevice(ctx, "dev1", historical.ListLogsOptions{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.True(t, logs[0].StartTime.Equal(day.Add(2*time.Hour)))

	// Skip without limit still works.
	logs, err = repo.ListByDevice(ctx, "dev1", historical.ListLogsOptions{Skip: 4})
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestHistoricalRepository_ListByUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assignDevice(t, db, "u1", "dev1")
	assignDevice(t, db, "u1", "dev2")

	insertLog(t, db, "dev2", day.Add(10*time.Hour), stopAt(day.Add(11*time.Hour)), "chrome", "https://github.com/x")
	insertLog(t, db, "dev1", day.Add(9*time.Hour), stopAt(day.Add(10*time.Hour)), "vscode", "main.go")
	insertLog(t, db, "dev3", day.Add(9*time.Hour), stopAt(day.Add(10*time.Hour)), "vscode", "main.go")

	logs, err := repo.ListByUser(ctx, "u1", historical.ListLogsOptions{})
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Merged across devices, ordered by start time.
	require.Equal(t, "dev1", logs[0].DeviceID)
	require.Equal(t, "dev2", logs[1].DeviceID)
}

func TestHistoricalRepository_ListByUserNoDevices(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	logs, err := repo.ListByUser(ctx, "nobody", historical.ListLogsOptions{})
	require.NoError(t, err)
	require.Empty(t, logs)
}

func TestHistoricalRepository_ScoreTableByUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoricalRepository(db)
	ctx := context.Background()

	assignDevice(t, db, "u1", "dev1")
	assignDevice(t, db, "u1", "dev2")

	// Inserted out of position order: position must drive the result order.
	_, err := db.Exec(`INSERT INTO process_window_levels (device_id, process, window_title, level, position) VALUES
		('dev1', 'vscode', 'main.go', 8, 1),
		('dev1', 'vscode', 'main.go', 3, 0),
		('dev2', 'slack', 'general', 2, 0),
		('dev9', 'vscode', 'main.go', 9, 0)`)
	require.NoError(t, err)

	table, err := repo.ScoreTableByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, table, 2)

	require.Equal(t, []historical.ProcessWindowLevel{
		{Process: "vscode", WindowTitle: "main.go", Level: 3},
		{Process: "vscode", WindowTitle: "main.go", Level: 8},
	}, table["dev1"])
	require.Equal(t, []historical.ProcessWindowLevel{
		{Process: "slack", WindowTitle: "general", Level: 2},
	}, table["dev2"])
	require.NotContains(t, table, "dev9")
}
