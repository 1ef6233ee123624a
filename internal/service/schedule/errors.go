package schedule

import "errors"

var (
	ErrInvalidDay     = errors.New("day of week must be between 0 and 6")
	ErrInvalidTime    = errors.New("invalid time, expected HH:MM")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrOpenAfterClose = errors.New("opening time must be before closing time")
)
