// Package audit records every security-relevant event as one append-only,
// timestamped line. The line format is an external contract consumed by
// downstream tooling and must not change:
//
//	[2006-01-02 15:04:05.000] KIND | Key: value | Key: value
//
// Entries never contain raw template bytes or key material; only modality
// tags, quality scores, identifiers and levels.
package audit

import (
	"context"

	"github.com/dmitrijs2005/biovault/internal/models"
)

// Log receives one call per security-relevant event. Implementations must
// be safe for concurrent callers and must never propagate sink failures:
// a failed write is surfaced on an operator-visible fallback channel and
// the call returns normally.
type Log interface {
	// FailedAttempt records a denied authentication with its reason.
	FailedAttempt(ctx context.Context, reason string, capture *models.Capture)

	// SuccessfulAuthentication records a fully granted authentication.
	SuccessfulAuthentication(ctx context.Context, user *models.User, grantedLevel models.AccessLevel)

	// EnrollmentFailure records a rejected enrollment with its reason.
	EnrollmentFailure(ctx context.Context, reason string)

	// SuccessfulEnrollment records a completed enrollment.
	SuccessfulEnrollment(ctx context.Context, userID string, level models.AccessLevel)

	// AccessCheck records an authorization decision, granted or denied.
	// A zero requestedLevel marks an administrative revocation.
	AccessCheck(ctx context.Context, userID string, requestedLevel models.AccessLevel, granted bool)

	// Exception records an internal fault with full detail. The detail
	// stays in the audit trail and is never returned to callers.
	Exception(ctx context.Context, message string, err error)
}
