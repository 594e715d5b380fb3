// Package services contains the server-side business logic. This file
// implements AuthService, the authentication engine orchestrating the
// capture quality gate, identification, verification, authorization,
// session issuance and audit recording.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/cryptox"
	"github.com/dmitrijs2005/biovault/internal/logging"
	"github.com/dmitrijs2005/biovault/internal/matcher"
	"github.com/dmitrijs2005/biovault/internal/models"
	"github.com/dmitrijs2005/biovault/internal/server/audit"
	"github.com/dmitrijs2005/biovault/internal/server/sessions"
	"github.com/dmitrijs2005/biovault/internal/server/store"
)

const (
	// MinimumQualityThreshold gates authentication captures.
	MinimumQualityThreshold = 0.7
	// EnrollmentQualityThreshold gates enrollment captures. Stricter than
	// authentication: the enrolled template seeds every future match.
	EnrollmentQualityThreshold = 0.8
)

// Failure messages returned to callers. Deliberately free of template
// bytes, key material and threshold values.
const (
	msgInternalError       = "internal authentication error"
	msgInsufficientQuality = "insufficient biometric capture quality"
	msgNotRecognized       = "biometric not recognized"
	msgUserInactive        = "access denied: user inactive"
	msgVerificationFailed  = "biometric verification failed"
	msgInsufficientLevel   = "access denied: insufficient access level"
)

// AuthService is the authentication engine. All collaborators are injected
// once at construction; the engine holds no other state.
type AuthService struct {
	store    store.Repository
	sessions *sessions.Manager
	audit    audit.Log
	cipher   *cryptox.TemplateCipher
	logger   logging.Logger
}

func NewAuthService(repo store.Repository, sm *sessions.Manager, al audit.Log,
	cipher *cryptox.TemplateCipher, logger logging.Logger) *AuthService {
	return &AuthService{
		store:    repo,
		sessions: sm,
		audit:    al,
		cipher:   cipher,
		logger:   logger.With("module", "auth_service"),
	}
}

// Authenticate runs the full decision pipeline for one capture. It always
// returns a result, never an error: every internal fault is audited in
// full and collapsed into a sanitized failure for the caller.
//
// Gate order: input validation, quality, identification, account liveness,
// biometric verification, access level, token issuance.
func (s *AuthService) Authenticate(ctx context.Context, capture *models.Capture, requestedLevel models.AccessLevel) *models.AuthenticationResult {
	if capture == nil {
		s.audit.Exception(ctx, "authenticate called without capture", fmt.Errorf("%w: capture is nil", common.ErrInvalidArgument))
		return models.FailureResult(msgInternalError)
	}
	if !requestedLevel.Valid() {
		s.audit.Exception(ctx, "authenticate called without requested level", fmt.Errorf("%w: invalid access level", common.ErrInvalidArgument))
		return models.FailureResult(msgInternalError)
	}

	if capture.Quality < MinimumQualityThreshold {
		s.audit.FailedAttempt(ctx, "insufficient biometric quality", capture)
		return models.FailureResult(msgInsufficientQuality)
	}

	user, err := s.store.FindByTemplate(ctx, capture.Template, capture.Modality)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.audit.FailedAttempt(ctx, "user not found", capture)
			return models.FailureResult(msgNotRecognized)
		}
		s.audit.Exception(ctx, "identification failed", err)
		return models.FailureResult(msgInternalError)
	}

	if !user.Active {
		s.audit.FailedAttempt(ctx, "inactive user: "+user.ID, capture)
		return models.FailureResult(msgUserInactive)
	}

	if !s.verifyBiometric(ctx, capture.Template, user) {
		s.audit.FailedAttempt(ctx, "biometric verification failed", capture)
		return models.FailureResult(msgVerificationFailed)
	}

	if !s.checkAccessLevel(ctx, user, requestedLevel) {
		s.audit.FailedAttempt(ctx,
			fmt.Sprintf("insufficient access level: %s requested %s", user.ID, requestedLevel), capture)
		return models.FailureResult(msgInsufficientLevel)
	}

	token, err := s.sessions.Create(ctx, user, requestedLevel)
	if err != nil {
		s.audit.Exception(ctx, "session creation failed", err)
		return models.FailureResult(msgInternalError)
	}

	s.audit.SuccessfulAuthentication(ctx, user, requestedLevel)
	return models.SuccessResult(user, requestedLevel, token)
}

// Enroll registers a new user from a capture. Returns false on any
// failure; reasons go to the audit log, never to the caller.
func (s *AuthService) Enroll(ctx context.Context, user *models.User, capture *models.Capture) bool {
	if user == nil || capture == nil {
		s.audit.EnrollmentFailure(ctx, "invalid enrollment input")
		return false
	}
	if user.ID == "" {
		s.audit.EnrollmentFailure(ctx, "invalid user id")
		return false
	}

	if capture.Quality < EnrollmentQualityThreshold {
		s.audit.EnrollmentFailure(ctx,
			fmt.Sprintf("insufficient biometric quality for enrollment: %.2f", capture.Quality))
		return false
	}

	if _, err := s.store.FindByID(ctx, user.ID); err == nil {
		s.audit.EnrollmentFailure(ctx, "user already exists: "+user.ID)
		return false
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.audit.Exception(ctx, "enrollment lookup failed", err)
		return false
	}

	// The same biometric must never be registered under two identities.
	if _, err := s.store.FindByTemplate(ctx, capture.Template, capture.Modality); err == nil {
		s.audit.EnrollmentFailure(ctx, "biometric already enrolled")
		return false
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.audit.Exception(ctx, "enrollment template check failed", err)
		return false
	}

	encrypted, err := s.cipher.Encrypt(capture.Template)
	if err != nil {
		s.audit.Exception(ctx, "template encryption failed", err)
		return false
	}

	record := &models.User{
		ID:                user.ID,
		Name:              user.Name,
		Role:              user.Role,
		MaxAccessLevel:    user.MaxAccessLevel,
		EncryptedTemplate: encrypted,
		Modality:          capture.Modality,
		Active:            true,
	}

	// The prior checks do not close the race window; Save is the atomic
	// authority on uniqueness.
	if !s.store.Save(ctx, record) {
		s.audit.EnrollmentFailure(ctx, "failed to persist user: "+user.ID)
		return false
	}

	s.audit.SuccessfulEnrollment(ctx, record.ID, record.MaxAccessLevel)
	return true
}

// RevokeAccess deactivates a user by replacing the stored record with an
// inactive copy. Sessions already issued to the user stay valid; only
// future authentications are refused.
func (s *AuthService) RevokeAccess(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.audit.Exception(ctx, "revocation lookup failed", err)
		}
		return false
	}

	updated := s.store.Update(ctx, user.Deactivated())
	if updated {
		s.audit.AccessCheck(ctx, userID, models.AccessLevelNone, false)
	}
	return updated
}

// verifyBiometric re-checks the captured template against the identified
// user's stored one. Identification already matched once; this explicit
// verification against the same threshold table is kept as a second,
// independent decision point.
func (s *AuthService) verifyBiometric(ctx context.Context, captured []byte, user *models.User) bool {
	stored, err := s.cipher.Decrypt(user.EncryptedTemplate)
	if err != nil {
		s.audit.Exception(ctx, "stored template decryption failed", err)
		return false
	}

	// Fail closed on length mismatch, never attempt the comparison.
	if len(captured) != len(stored) {
		return false
	}

	m, err := matcher.ForModality(user.Modality)
	if err != nil {
		s.audit.Exception(ctx, "matcher selection failed", err)
		return false
	}
	threshold, err := matcher.Threshold(user.Modality)
	if err != nil {
		s.audit.Exception(ctx, "threshold lookup failed", err)
		return false
	}

	score, err := m.Similarity(captured, stored)
	if err != nil {
		s.audit.Exception(ctx, "similarity computation failed", err)
		return false
	}

	return score >= threshold
}

// checkAccessLevel compares the hierarchy and always records the decision,
// granted or denied, independent of the overall outcome.
func (s *AuthService) checkAccessLevel(ctx context.Context, user *models.User, requestedLevel models.AccessLevel) bool {
	granted := user.MaxAccessLevel.Allows(requestedLevel)
	s.audit.AccessCheck(ctx, user.ID, requestedLevel, granted)
	return granted
}
