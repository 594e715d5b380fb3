package audit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/biovault/internal/logging"
	"github.com/dmitrijs2005/biovault/internal/models"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// FileLog appends entries to a local file. Writes are serialized so lines
// are never interleaved; ordering is append order. When the sink fails the
// entry is reported through the structured logger and the caller proceeds,
// audit writes are best-effort by contract.
type FileLog struct {
	mu     sync.Mutex
	f      *os.File
	logger logging.Logger

	// now is a test seam for deterministic timestamps.
	now func() time.Time
}

// NewFileLog opens (or creates) the audit file in append-only mode.
func NewFileLog(path string, logger logging.Logger) (*FileLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &FileLog{
		f:      f,
		logger: logger.With("module", "audit"),
		now:    time.Now,
	}, nil
}

// Close releases the underlying file.
func (l *FileLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

func (l *FileLog) FailedAttempt(ctx context.Context, reason string, capture *models.Capture) {
	modality := "UNKNOWN"
	quality := 0.0
	if capture != nil {
		modality = capture.Modality.String()
		quality = capture.Quality
	}
	l.write(ctx, fmt.Sprintf("FAILED_AUTHENTICATION | Reason: %s | BiometricType: %s | Quality: %.2f",
		reason, modality, quality))
}

func (l *FileLog) SuccessfulAuthentication(ctx context.Context, user *models.User, grantedLevel models.AccessLevel) {
	l.write(ctx, fmt.Sprintf("SUCCESSFUL_AUTHENTICATION | UserId: %s | UserName: %s | GrantedLevel: %s (%d)",
		user.ID, user.Name, grantedLevel, grantedLevel))
}

func (l *FileLog) EnrollmentFailure(ctx context.Context, reason string) {
	l.write(ctx, fmt.Sprintf("ENROLLMENT_FAILURE | Reason: %s", reason))
}

func (l *FileLog) SuccessfulEnrollment(ctx context.Context, userID string, level models.AccessLevel) {
	l.write(ctx, fmt.Sprintf("SUCCESSFUL_ENROLLMENT | UserId: %s | AccessLevel: %s (%d)",
		userID, level, level))
}

func (l *FileLog) AccessCheck(ctx context.Context, userID string, requestedLevel models.AccessLevel, granted bool) {
	decision := "DENIED"
	if granted {
		decision = "GRANTED"
	}
	l.write(ctx, fmt.Sprintf("ACCESS_CHECK | UserId: %s | RequestedLevel: %s (%d) | Decision: %s",
		userID, requestedLevel, requestedLevel, decision))
}

func (l *FileLog) Exception(ctx context.Context, message string, err error) {
	l.write(ctx, fmt.Sprintf("EXCEPTION | Message: %s | Exception: %T | ExceptionMessage: %v",
		message, err, err))
}

func (l *FileLog) write(ctx context.Context, entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s\n", l.now().Format(timestampFormat), entry)
	if _, err := l.f.WriteString(line); err != nil {
		// Never fail the caller; the operator channel keeps the entry.
		l.logger.Error(ctx, "audit log write failed", "error", err.Error(), "entry", entry)
	}
}
