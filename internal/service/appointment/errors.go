package appointment

import "errors"

var (
	ErrNotFound             = errors.New("appointment not found")
	ErrClientNotFound       = errors.New("client not found for this provider")
	ErrServiceNotFound      = errors.New("service not found or inactive")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime          = errors.New("invalid time, expected HH:MM")
	ErrOutsideBusinessHours = errors.New("time is outside business hours")
	ErrAlreadyCanceled      = errors.New("appointment is already canceled")
	ErrAlreadyCompleted     = errors.New("appointment is already completed")
	ErrNotReschedulable     = errors.New("appointment can no longer be rescheduled")
	ErrInvalidTransition    = errors.New("appointment status does not allow this transition")
)
