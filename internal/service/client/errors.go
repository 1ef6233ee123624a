package client

import "errors"

var (
	ErrNotFound     = errors.New("client not found")
	ErrNameRequired = errors.New("client name is required")
	ErrInvalidPhone = errors.New("invalid phone number")
)
