package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrNotHydrated    = errors.New("store not hydrated")
	ErrMalformedState = errors.New("malformed persisted state")
)
