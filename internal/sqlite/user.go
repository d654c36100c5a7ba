package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tc2services/attivita/internal/domain/user"
	"github.com/tc2services/attivita/internal/repository"
)

// UserRepository implements user.Repository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get returns a user with its assigned device ids.
func (r *UserRepository) Get(ctx context.Context, userID string) (*user.User, error) {
	u := &user.User{ID: userID}
	err := r.db.QueryRowContext(ctx, `SELECT fullname FROM users WHERE id = ?`, userID).Scan(&u.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	devices, err := r.devicesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Devices = devices
	return u, nil
}

// GetByDevice returns the user a device is assigned to.
func (r *UserRepository) GetByDevice(ctx context.Context, deviceID string) (*user.User, error) {
	var userID sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM devices WHERE device_id = ?`, deviceID).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if !userID.Valid {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, userID.String)
}

// List returns users ordered by creation time with pagination.
func (r *UserRepository) List(ctx context.Context, opts user.ListOptions) ([]user.User, error) {
	query := `SELECT id, fullname FROM users ORDER BY created_at, id`
	args := []any{}

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Skip > 0 {
		query += " LIMIT -1"
	}
	if opts.Skip > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Skip)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Fullname); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	for i := range users {
		devices, err := r.devicesForUser(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].Devices = devices
	}

	return users, nil
}

// Add inserts a new user.
func (r *UserRepository) Add(ctx context.Context, u *user.User) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, fullname) VALUES (?, ?)`, u.ID, u.Fullname)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Delete removes a user and releases its devices.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE devices SET user_id = NULL WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to release devices: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AssignDevice attaches a device to a user, creating the device row if the
// tracker has not reported it yet.
func (r *UserRepository) AssignDevice(ctx context.Context, userID, deviceID string) error {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO devices (device_id, user_id) VALUES (?, ?)
		ON CONFLICT(device_id) DO UPDATE SET user_id = excluded.user_id
	`, deviceID, userID)
	if err != nil {
		return fmt.Errorf("failed to assign device: %w", err)
	}
	return nil
}

func (r *UserRepository) devicesForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT device_id FROM devices WHERE user_id = ? ORDER BY device_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	devices := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device rows: %w", err)
	}
	return devices, nil
}
