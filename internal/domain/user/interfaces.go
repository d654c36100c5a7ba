package user

import "context"

// Repository provides persistence for users and their devices.
type Repository interface {
	Get(ctx context.Context, userID string) (*User, error)
	GetByDevice(ctx context.Context, deviceID string) (*User, error)
	List(ctx context.Context, opts ListOptions) ([]User, error)
	Add(ctx context.Context, u *User) error
	Delete(ctx context.Context, userID string) error
	AssignDevice(ctx context.Context, userID, deviceID string) error
}

// ListOptions provides pagination for user listings.
type ListOptions struct {
	Skip  int
	Limit int
}
