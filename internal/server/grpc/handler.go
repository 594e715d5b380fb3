package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
)

func (s *GRPCServer) Enroll(ctx context.Context, req *pb.EnrollRequest) (*pb.EnrollResponse, error) {

	s.logger.Info(ctx, "Enrollment request", "user_id", req.UserId)

	if req.Capture == nil {
		return nil, status.Error(codes.InvalidArgument, "capture is required")
	}

	user := &models.User{
		ID:             req.UserId,
		Name:           req.UserName,
		Role:           req.Role,
		MaxAccessLevel: levelFromProto(req.MaxAccessLevel),
	}

	ok := s.auth.Enroll(ctx, user, captureFromProto(req.Capture))

	if ok {
		s.logger.Info(ctx, "Enrolled", "user_id", req.UserId)
	}
	return &pb.EnrollResponse{Success: ok}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	s.logger.Info(ctx, "Authentication request")

	result := s.auth.Authenticate(ctx, captureFromProto(req.Capture), levelFromProto(req.RequestedLevel))

	resp := &pb.AuthenticateResponse{
		Success: result.Success,
		Message: result.Message,
	}
	if result.Success {
		resp.UserId = result.User.ID
		resp.UserName = result.User.Name
		resp.GrantedLevel = levelToProto(result.GrantedLevel)
		resp.SessionToken = result.SessionToken
	}
	return resp, nil
}

func (s *GRPCServer) RevokeAccess(ctx context.Context, req *pb.RevokeAccessRequest) (*pb.RevokeAccessResponse, error) {

	s.logger.Info(ctx, "Revocation request", "user_id", req.UserId)

	if req.UserId == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	ok := s.auth.RevokeAccess(ctx, req.UserId)
	return &pb.RevokeAccessResponse{Success: ok}, nil
}

func (s *GRPCServer) ValidateSession(ctx context.Context, req *pb.ValidateSessionRequest) (*pb.ValidateSessionResponse, error) {

	sc, err := s.sessions.Lookup(ctx, req.SessionToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return &pb.ValidateSessionResponse{Valid: false}, nil
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ValidateSessionResponse{
		Valid:        true,
		UserId:       sc.User.ID,
		GrantedLevel: levelToProto(sc.GrantedLevel),
	}, nil
}
