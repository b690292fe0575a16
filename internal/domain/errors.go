package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking
// infrastructure details.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so the response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, forged and expired session tokens
	// alike; VerifySession does not distinguish between them.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidResetToken covers unknown, consumed and expired reset tokens.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrNotification marks an outbound mail/SMS dispatch failure. It does not
	// roll back state written before the dispatch (the stored reset token
	// stays valid).
	ErrNotification = errors.New("notification dispatch failed")
)
