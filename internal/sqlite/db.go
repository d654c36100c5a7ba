package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Users table
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    fullname TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Devices table; user_id stays NULL until a device is assigned
CREATE TABLE IF NOT EXISTS devices (
    device_id TEXT PRIMARY KEY,
    user_id TEXT,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_devices_user ON devices(user_id);

-- Raw activity logs as written by the trackers. stop_time is NULL while an
-- interval is still open. No foreign key on device_id: trackers report
-- devices before anyone assigns them to a user.
CREATE TABLE IF NOT EXISTS activity_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id TEXT NOT NULL,
    start_time TIMESTAMP NOT NULL,
    stop_time TIMESTAMP,
    process TEXT NOT NULL,
    window_title TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_logs_device_start ON activity_logs(device_id, start_time);

-- Attention score rules per device. position preserves table order, which
-- is load-bearing: the last matching rule wins.
CREATE TABLE IF NOT EXISTS process_window_levels (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id TEXT NOT NULL,
    process TEXT NOT NULL,
    window_title TEXT NOT NULL,
    level INTEGER NOT NULL CHECK(level BETWEEN 0 AND 10),
    position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_levels_device ON process_window_levels(device_id, position);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
