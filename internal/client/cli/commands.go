package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/biovault/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// parseLevel maps operator input to an access level. Accepts the numeric
// form (1..3) and the level names, case-insensitive.
func parseLevel(s string) (models.AccessLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", "PUBLIC":
		return models.AccessLevelPublic, nil
	case "2", "RESTRICTED":
		return models.AccessLevelRestricted, nil
	case "3", "CONFIDENTIAL":
		return models.AccessLevelConfidential, nil
	default:
		return models.AccessLevelNone, fmt.Errorf("unknown access level: %q", s)
	}
}

// Scan performs a fresh biometric capture and keeps it for the next
// enroll or auth command.
func (a *App) Scan(ctx context.Context) error {
	capture, err := a.scanner.Capture(ctx)
	if err != nil {
		printlnFn("Capture failed:", err)
		return err
	}
	a.lastCapture = capture
	printlnFn(fmt.Sprintf("Captured %s | %s | quality %.2f", capture.ID, capture.Modality, capture.Quality))
	return nil
}

// capture reuses the last scan if present, otherwise scans now.
func (a *App) capture(ctx context.Context) (*models.Capture, error) {
	if a.lastCapture != nil {
		return a.lastCapture, nil
	}
	if err := a.Scan(ctx); err != nil {
		return nil, err
	}
	return a.lastCapture, nil
}

func (a *App) Enroll(ctx context.Context) error {

	userID, err := GetTextWithDefault(a.reader, "User ID", uuid.NewString(), os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role", os.Stdout)
	if err != nil {
		return err
	}
	levelText, err := GetTextWithDefault(a.reader, "Max access level (1=PUBLIC, 2=RESTRICTED, 3=CONFIDENTIAL)", "1", os.Stdout)
	if err != nil {
		return err
	}
	level, err := parseLevel(levelText)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	capture, err := a.capture(ctx)
	if err != nil {
		return err
	}

	user := &models.User{ID: userID, Name: name, Role: role, MaxAccessLevel: level}

	ok, err := a.api.Enroll(ctx, user, capture)
	if err != nil {
		printlnFn("Enrollment error:", err)
		return err
	}
	if !ok {
		printlnFn("Enrollment rejected (see server audit log for the reason)")
		return nil
	}

	// each enrollment uses its own capture
	a.lastCapture = nil
	printlnFn("Enrolled", userID, "with max level", level.String())
	return nil
}

func (a *App) Authenticate(ctx context.Context) error {

	levelText, err := GetTextWithDefault(a.reader, "Requested access level (1=PUBLIC, 2=RESTRICTED, 3=CONFIDENTIAL)", "1", os.Stdout)
	if err != nil {
		return err
	}
	level, err := parseLevel(levelText)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	capture, err := a.capture(ctx)
	if err != nil {
		return err
	}

	result, err := a.api.Authenticate(ctx, capture, level)
	if err != nil {
		printlnFn("Authentication error:", err)
		return err
	}

	if !result.Success {
		printlnFn("Denied:", result.Message)
		return nil
	}

	a.operator = result.UserName
	a.sessions = append(a.sessions, issuedSession{
		Token:  result.SessionToken,
		UserID: result.UserID,
		Level:  result.GrantedLevel,
	})
	printlnFn(fmt.Sprintf("Granted %s to %s (%s)", result.GrantedLevel, result.UserName, result.UserID))
	printlnFn("Session token:", result.SessionToken)
	return nil
}

func (a *App) Revoke(ctx context.Context) error {

	userID, err := GetSimpleText(a.reader, "User ID to revoke", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.api.RevokeAccess(ctx, userID)
	if err != nil {
		printlnFn("Revocation error:", err)
		return err
	}
	if ok {
		printlnFn("Access revoked for", userID)
	} else {
		printlnFn("Revocation failed for", userID)
	}
	return nil
}

func (a *App) Validate(ctx context.Context) error {

	def := ""
	if n := len(a.sessions); n > 0 {
		def = a.sessions[n-1].Token
	}

	var token string
	var err error
	if def != "" {
		token, err = GetTextWithDefault(a.reader, "Session token", def, os.Stdout)
	} else {
		token, err = GetSimpleText(a.reader, "Session token", os.Stdout)
	}
	if err != nil {
		return err
	}

	info, err := a.api.ValidateSession(ctx, token)
	if err != nil {
		printlnFn("Validation error:", err)
		return err
	}

	if info.Valid {
		printlnFn(fmt.Sprintf("Valid session: user %s, level %s", info.UserID, info.GrantedLevel))
	} else {
		printlnFn("Invalid session")
	}
	return nil
}

// Sessions lists tokens obtained during this CLI run with their current
// server-side validity.
func (a *App) Sessions(ctx context.Context) error {
	if len(a.sessions) == 0 {
		printlnFn("No sessions obtained in this run")
		return nil
	}
	for _, s := range a.sessions {
		state := "invalid"
		if info, err := a.api.ValidateSession(ctx, s.Token); err == nil && info.Valid {
			state = "valid"
		}
		printlnFn(fmt.Sprintf("%s | user %s | level %s | %s", s.Token, s.UserID, s.Level, state))
	}
	return nil
}
