package audit

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/biovault/internal/models"
)

// MemoryLog collects entries in memory. It backs tests and ephemeral
// deployments that do not mount an audit volume.
type MemoryLog struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is one recorded event with its classification kept structured so
// tests can assert on kinds without parsing lines.
type Entry struct {
	Kind   string
	Detail string
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Entries returns a copy of everything recorded so far, in append order.
func (l *MemoryLog) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// CountKind returns how many entries of the given kind were recorded.
func (l *MemoryLog) CountKind(kind string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (l *MemoryLog) append(kind, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Kind: kind, Detail: detail})
}

func (l *MemoryLog) FailedAttempt(ctx context.Context, reason string, capture *models.Capture) {
	modality := "UNKNOWN"
	quality := 0.0
	if capture != nil {
		modality = capture.Modality.String()
		quality = capture.Quality
	}
	l.append("FAILED_AUTHENTICATION", fmt.Sprintf("Reason: %s | BiometricType: %s | Quality: %.2f",
		reason, modality, quality))
}

func (l *MemoryLog) SuccessfulAuthentication(ctx context.Context, user *models.User, grantedLevel models.AccessLevel) {
	l.append("SUCCESSFUL_AUTHENTICATION", fmt.Sprintf("UserId: %s | UserName: %s | GrantedLevel: %s (%d)",
		user.ID, user.Name, grantedLevel, grantedLevel))
}

func (l *MemoryLog) EnrollmentFailure(ctx context.Context, reason string) {
	l.append("ENROLLMENT_FAILURE", fmt.Sprintf("Reason: %s", reason))
}

func (l *MemoryLog) SuccessfulEnrollment(ctx context.Context, userID string, level models.AccessLevel) {
	l.append("SUCCESSFUL_ENROLLMENT", fmt.Sprintf("UserId: %s | AccessLevel: %s (%d)", userID, level, level))
}

func (l *MemoryLog) AccessCheck(ctx context.Context, userID string, requestedLevel models.AccessLevel, granted bool) {
	decision := "DENIED"
	if granted {
		decision = "GRANTED"
	}
	l.append("ACCESS_CHECK", fmt.Sprintf("UserId: %s | RequestedLevel: %s (%d) | Decision: %s",
		userID, requestedLevel, requestedLevel, decision))
}

func (l *MemoryLog) Exception(ctx context.Context, message string, err error) {
	l.append("EXCEPTION", fmt.Sprintf("Message: %s | Exception: %T | ExceptionMessage: %v", message, err, err))
}
