package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tc2services/attivita/internal/repository"
)

// Service handles user and device assignment logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return u, nil
}

// List returns users with pagination.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]User, error) {
	return s.repo.List(ctx, opts)
}

// Create adds a new user with a generated id.
func (s *Service) Create(ctx context.Context, fullname string) (*User, error) {
	if strings.TrimSpace(fullname) == "" {
		return nil, ErrInvalidInput
	}

	u := &User{
		ID:       uuid.NewString(),
		Fullname: fullname,
		Devices:  []string{},
	}
	if err := s.repo.Add(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// Delete removes a user by id. Deleting a missing user is not an error.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// AssignDevice attaches a device to a user. A device already assigned to a
// user is rejected.
func (s *Service) AssignDevice(ctx context.Context, userID, deviceID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(deviceID) == "" {
		return ErrInvalidInput
	}

	owner, err := s.repo.GetByDevice(ctx, deviceID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("checking device owner: %w", err)
	}
	if owner != nil {
		s.logger.Info("device already assigned", "device_id", deviceID, "user_id", owner.ID)
		return ErrDeviceAssigned
	}

	if err := s.repo.AssignDevice(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("assigning device: %w", err)
	}
	return nil
}
