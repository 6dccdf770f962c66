package api

import "errors"

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized covers every 401: missing, invalid, or expired token,
	// and rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited is returned when the server throttles login attempts.
	ErrRateLimited = errors.New("too many attempts")
)
