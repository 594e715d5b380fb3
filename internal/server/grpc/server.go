// Package grpc exposes the authentication engine over the BiometricAuth
// gRPC service.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/biovault/internal/logging"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
	"github.com/dmitrijs2005/biovault/internal/server/services"
	"github.com/dmitrijs2005/biovault/internal/server/sessions"
)

type GRPCServer struct {
	pb.UnimplementedBiometricAuthServer
	address  string
	auth     *services.AuthService
	sessions *sessions.Manager
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService, sm *sessions.Manager) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		auth:     as,
		sessions: sm,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor))

	// registers service
	pb.RegisterBiometricAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
