package utils

import (
	"errors"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// ParseMonth parses a YYYY-MM value into the first of that month in UTC.
// An empty value means the current month.
func ParseMonth(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	month, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return month.UTC(), nil
}
