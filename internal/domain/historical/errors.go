package historical

import "errors"

var (
	// ErrInvalidTimeRange indicates the stop time is not after the start time.
	ErrInvalidTimeRange = errors.New("stop time must be after start time")
	// ErrInvalidGroupBy indicates an unknown grouping token.
	ErrInvalidGroupBy = errors.New("invalid group_by value")
	// ErrInvalidInput indicates invalid input for historical operations.
	ErrInvalidInput = errors.New("invalid historical input")
)

// ParseGroupBy validates a grouping token from the query boundary.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case GroupByDay:
		return GroupByDay, nil
	case GroupByHour:
		return GroupByHour, nil
	default:
		return "", ErrInvalidGroupBy
	}
}
