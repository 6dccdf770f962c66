// Package common defines sentinel errors shared by the client and server
// layers of the Cantina POS system. Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("email already registered")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Token errors. ErrInvalidToken covers malformed payloads and bad
	// signatures; ErrTokenExpired is only returned for otherwise valid
	// tokens past their expiry.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Sale-specific errors.
	ErrorInsufficientStock = errors.New("insufficient stock")

	// Login rate-limiter errors.
	ErrorTooManyAttempts = errors.New("too many attempts")
)
