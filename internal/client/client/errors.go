package client

import "errors"

var (
	// ErrUnauthorized signals a missing or rejected session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable signals that the server cannot be reached.
	ErrUnavailable = errors.New("server unavailable")
)
