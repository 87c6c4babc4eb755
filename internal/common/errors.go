// Package common defines shared constants and sentinel errors used across
// the portal's packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors, rejected at the request boundary.
	ErrInvalidPhoneFormat = errors.New("invalid phone format")
	ErrInvalidCodeFormat  = errors.New("invalid code format")
	ErrTitleRequired      = errors.New("title is required")

	// Verification-code lifecycle errors.
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeMismatch = errors.New("verification code mismatch")

	// Token errors (invalid or malformed vs. naturally expired).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoAuthHeader = errors.New("no authorization header")

	// Resource errors.
	ErrActivityNotFound = errors.New("activity not found")

	// Residual service failures.
	ErrInternal = errors.New("internal error")
)
