package models

import "time"

// AuthenticationResult is the immutable outcome of one authentication
// attempt. Either Success is true and User/GrantedLevel/SessionToken are
// set, or Success is false and Message explains why in operator-safe terms.
type AuthenticationResult struct {
	Success      bool
	User         *User
	GrantedLevel AccessLevel
	Message      string
	SessionToken string
	Timestamp    time.Time
}

// SuccessResult builds the outcome of a fully granted authentication.
func SuccessResult(user *User, grantedLevel AccessLevel, token string) *AuthenticationResult {
	return &AuthenticationResult{
		Success:      true,
		User:         user,
		GrantedLevel: grantedLevel,
		Message:      "authentication successful",
		SessionToken: token,
		Timestamp:    time.Now(),
	}
}

// FailureResult builds a failed outcome carrying only a sanitized message.
func FailureResult(message string) *AuthenticationResult {
	return &AuthenticationResult{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
}
