// Package common defines shared constants and sentinel errors used across
// client and server layers of biovault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors for null/empty/malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// Crypto errors: bad key, short envelope, failed integrity check.
	ErrCrypto = errors.New("crypto failure")

	// Matcher errors for modalities without an implementation.
	ErrUnsupportedModality = errors.New("unsupported modality")

	// Uniqueness violation on enrollment (identifier or template).
	ErrConflict = errors.New("conflict")

	// Upstream capture device fault.
	ErrCaptureFailure = errors.New("capture failure")

	// Session token errors (unknown or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
