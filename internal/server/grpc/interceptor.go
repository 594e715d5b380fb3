package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/biovault/internal/common"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
)

// sessionTokenInterceptor guards the revocation endpoint: only a caller
// holding a live session token issued by a prior authentication may
// deactivate users. All other methods pass through untouched.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.BiometricAuth_RevokeAccess_FullMethodName {

		var token string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.SessionTokenHeaderName)
			if len(values) > 0 {
				token = values[0]
			}
		}
		if len(token) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing session token")
		}

		if !s.sessions.Validate(ctx, token) {
			return nil, status.Error(codes.Unauthenticated, "invalid session token")
		}
	}

	return handler(ctx, req)
}
