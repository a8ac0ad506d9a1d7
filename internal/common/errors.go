package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Token inspection errors (malformed, not a JWT).
	ErrInvalidToken = errors.New("invalid token")
)
