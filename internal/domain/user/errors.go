package user

import "errors"

var (
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDeviceAssigned indicates the device already belongs to a user.
	ErrDeviceAssigned = errors.New("device already assigned to a user")
	// ErrInvalidInput indicates invalid input for user operations.
	ErrInvalidInput = errors.New("invalid user input")
)
