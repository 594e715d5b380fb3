// Package server initializes and runs the biometric authentication server.
// It derives the template encryption key, wires the store, session manager,
// audit log and engine together, handles graceful shutdown, and starts the
// gRPC endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/dmitrijs2005/biovault/internal/cryptox"
	"github.com/dmitrijs2005/biovault/internal/logging"
	"github.com/dmitrijs2005/biovault/internal/server/audit"
	"github.com/dmitrijs2005/biovault/internal/server/config"
	"github.com/dmitrijs2005/biovault/internal/server/services"
	"github.com/dmitrijs2005/biovault/internal/server/sessions"
	"github.com/dmitrijs2005/biovault/internal/server/store"

	gs "github.com/dmitrijs2005/biovault/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
	sessions    *sessions.Manager
	auditLog    *audit.FileLog
}

// readPassphrase is a test seam for term.ReadPassword.
var readPassphrase = func() ([]byte, error) {
	fmt.Print("Template key passphrase: ")
	defer fmt.Println()
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	passphrase := []byte(c.KeyPassphrase)
	if len(passphrase) == 0 {
		p, err := readPassphrase()
		if err != nil {
			return nil, fmt.Errorf("passphrase prompt error: %w", err)
		}
		passphrase = p
	}
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("template key passphrase must not be empty")
	}

	key := cryptox.DeriveKey(passphrase, []byte(c.KeySalt))
	cipher, err := cryptox.NewTemplateCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher init error: %w", err)
	}

	auditLog, err := audit.NewFileLog(c.AuditLogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("audit log init error: %w", err)
	}

	sm := sessions.NewManager()
	repo := store.NewMemoryStore(cipher)
	as := services.NewAuthService(repo, sm, auditLog, cipher, logger)

	return &App{config: c, logger: logger, authService: as, sessions: sm, auditLog: auditLog}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.sessions)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.auditLog.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
