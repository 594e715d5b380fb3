// Package sessions issues and tracks opaque session tokens for
// authenticated users. Tokens never expire; they live until explicitly
// invalidated or the process ends.
package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
)

// tokenByteSize gives 256 bits of entropy per token.
const tokenByteSize = 32

// Context is the state bound to one issued token.
type Context struct {
	User         *models.User
	GrantedLevel models.AccessLevel
	CreatedAt    time.Time
}

// Manager owns the in-memory token table. Safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Context

	// generate is a test seam for token generation.
	generate func(size int) (string, error)
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Context),
		generate: common.MakeRandTokenString,
	}
}

// Create issues a fresh unique token bound to (user, grantedLevel).
// Generation retries under the lock until the token is absent from the table.
func (m *Manager) Create(ctx context.Context, user *models.User, grantedLevel models.AccessLevel) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: user is nil", common.ErrInvalidArgument)
	}
	if !grantedLevel.Valid() {
		return "", fmt.Errorf("%w: invalid access level", common.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		token, err := m.generate(tokenByteSize)
		if err != nil {
			return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
		}
		if _, taken := m.sessions[token]; taken {
			continue
		}
		m.sessions[token] = &Context{
			User:         user,
			GrantedLevel: grantedLevel,
			CreatedAt:    time.Now(),
		}
		return token, nil
	}
}

// Validate reports whether the token identifies a live session.
func (m *Manager) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[token]
	return ok
}

// Lookup returns the session context for a token, or ErrInvalidToken.
func (m *Manager) Lookup(ctx context.Context, token string) (*Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.sessions[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return sc, nil
}

// Invalidate removes the session; it reports whether the token was live.
func (m *Manager) Invalidate(ctx context.Context, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	delete(m.sessions, token)
	return ok
}

// Count returns the number of live sessions.
func (m *Manager) Count(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
