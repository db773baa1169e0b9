package errorvalues

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid progress entry")
	ErrStatsNotFound = errors.New("user stats not found")
	ErrInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
)
