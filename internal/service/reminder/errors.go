package reminder

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
)
