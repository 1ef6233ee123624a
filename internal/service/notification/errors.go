package notification

import "errors"

var (
	ErrNotFound     = errors.New("notification not found")
	ErrUnknownEvent = errors.New("unknown notification event")
	ErrNoRecipient  = errors.New("event has no recipient email")
)
