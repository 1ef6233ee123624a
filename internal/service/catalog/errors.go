package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found")
	ErrNameRequired    = errors.New("service name is required")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
