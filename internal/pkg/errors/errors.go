package errors

import "errors"

// Custom application errors
var (
	ErrMissingAuth       = errors.New("authorization header is required")
	ErrMalformedAuth     = errors.New("bearer token is required")
	ErrInvalidToken      = errors.New("invalid token")
	ErrStartTimeRequired = errors.New("start_time required")
	ErrInvalidStartTime  = errors.New("start_time must be a valid timestamp")
	ErrBlockNotFound     = errors.New("block not found")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrTriggerStore      = errors.New("trigger store unavailable")
	ErrInternalServer    = errors.New("internal server error")
)
