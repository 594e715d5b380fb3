// Package cli implements the interactive operator console for BioVault.
// It drives the simulated scanner and talks to the server over gRPC.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/biovault/internal/client/client"
	"github.com/dmitrijs2005/biovault/internal/client/config"
	"github.com/dmitrijs2005/biovault/internal/models"
	"github.com/dmitrijs2005/biovault/internal/scanner"
)

// apiClient is the minimal server surface the CLI needs. The real
// client.GRPCClient satisfies it; tests provide a stub.
type apiClient interface {
	Enroll(ctx context.Context, user *models.User, capture *models.Capture) (bool, error)
	Authenticate(ctx context.Context, capture *models.Capture, requestedLevel models.AccessLevel) (*client.AuthResult, error)
	RevokeAccess(ctx context.Context, userID string) (bool, error)
	ValidateSession(ctx context.Context, token string) (*client.SessionInfo, error)
	Close() error
}

// issuedSession records a token obtained during this CLI run so the
// operator can inspect it later with the sessions command.
type issuedSession struct {
	Token  string
	UserID string
	Level  models.AccessLevel
}

type App struct {
	config      *config.Config
	api         apiClient
	scanner     scanner.Scanner
	reader      *bufio.Reader
	lastCapture *models.Capture
	sessions    []issuedSession
	operator    string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewBiometricAuthClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	var sc scanner.Scanner
	if c.ScannerSeed != 0 {
		sc = scanner.NewSeededFacialScanner(c.ScannerSeed)
	} else {
		sc = scanner.NewFacialScanner()
	}

	return &App{
		config:  c,
		api:     apiClient,
		scanner: sc,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}
