package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/user"
)

// LogRepository is a mock for historical.LogRepository.
type LogRepository struct {
	mock.Mock
}

func (m *LogRepository) ListByDevice(ctx context.Context, deviceID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error) {
	args := m.Called(ctx, deviceID, opts)
	if logs, ok := args.Get(0).([]historical.ActivityLog); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LogRepository) ListByUser(ctx context.Context, userID string, opts historical.ListLogsOptions) ([]historical.ActivityLog, error) {
	args := m.Called(ctx, userID, opts)
	if logs, ok := args.Get(0).([]historical.ActivityLog); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LogRepository) ScoreTableByUser(ctx context.Context, userID string) (map[string][]historical.ProcessWindowLevel, error) {
	args := m.Called(ctx, userID)
	if table, ok := args.Get(0).(map[string][]historical.ProcessWindowLevel); ok {
		return table, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Get(ctx context.Context, userID string) (*user.User, error) {
	args := m.Called(ctx, userID)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByDevice(ctx context.Context, deviceID string) (*user.User, error) {
	args := m.Called(ctx, deviceID)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, opts user.ListOptions) ([]user.User, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepository) AssignDevice(ctx context.Context, userID, deviceID string) error {
	args := m.Called(ctx, userID, deviceID)
	return args.Error(0)
}
