package user

// User owns a set of tracked devices.
type User struct {
	ID       string   `json:"id"`
	Fullname string   `json:"fullname"`
	Devices  []string `json:"devices"`
}

// Device is a tracked machine, optionally assigned to a user.
type Device struct {
	DeviceID string  `json:"device_id"`
	UserID   *string `json:"user_id,omitempty"`
}
