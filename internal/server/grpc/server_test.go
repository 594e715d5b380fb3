package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/biovault/internal/cryptox"
	"github.com/dmitrijs2005/biovault/internal/logging"
	"github.com/dmitrijs2005/biovault/internal/server/audit"
	"github.com/dmitrijs2005/biovault/internal/server/services"
	"github.com/dmitrijs2005/biovault/internal/server/sessions"
	"github.com/dmitrijs2005/biovault/internal/server/store"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// newTestBackend wires a real engine with in-memory collaborators.
func newTestBackend(t *testing.T) (*services.AuthService, *sessions.Manager, *cryptox.TemplateCipher) {
	t.Helper()
	cipher, err := cryptox.NewRandomTemplateCipher()
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	sm := sessions.NewManager()
	svc := services.NewAuthService(store.NewMemoryStore(cipher), sm, audit.NewMemoryLog(), cipher, nopLogger{})
	return svc, sm, cipher
}

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()
	svc, sm, _ := newTestBackend(t)
	return &GRPCServer{
		logger:   nopLogger{},
		auth:     svc,
		sessions: sm,
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	svc, sm, _ := newTestBackend(t)
	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, svc, sm)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	svc, sm, _ := newTestBackend(t)
	srv, err := NewGRPCServer("127.0.0.1:99999", nopLogger{}, svc, sm)
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error for invalid port")
	}
}
