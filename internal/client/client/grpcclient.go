// Package client wraps the BiometricAuth gRPC API for the operator CLI.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
)

// AuthResult is the client-side view of one authentication outcome.
type AuthResult struct {
	Success      bool
	Message      string
	UserID       string
	UserName     string
	GrantedLevel models.AccessLevel
	SessionToken string
}

// SessionInfo is the client-side view of a token validation.
type SessionInfo struct {
	Valid        bool
	UserID       string
	GrantedLevel models.AccessLevel
}

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.BiometricAuthClient
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionTokenInterceptor attaches the last issued session token to every
// outgoing call. The server only enforces it on the revocation endpoint.
func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.sessionToken != "" {
		ctx = withSessionToken(ctx, s.sessionToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewBiometricAuthClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.sessionTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBiometricAuthClient(conn)
	return nil
}

func modalityToProto(m models.Modality) pb.Modality {
	switch m {
	case models.ModalityFingerprint:
		return pb.Modality_FINGERPRINT
	case models.ModalityFacial:
		return pb.Modality_FACIAL_RECOGNITION
	case models.ModalityIris:
		return pb.Modality_IRIS_SCAN
	default:
		return pb.Modality_MODALITY_UNSPECIFIED
	}
}

func levelToProto(l models.AccessLevel) pb.AccessLevel {
	switch l {
	case models.AccessLevelPublic:
		return pb.AccessLevel_PUBLIC
	case models.AccessLevelRestricted:
		return pb.AccessLevel_RESTRICTED
	case models.AccessLevelConfidential:
		return pb.AccessLevel_CONFIDENTIAL
	default:
		return pb.AccessLevel_ACCESS_LEVEL_UNSPECIFIED
	}
}

func levelFromProto(l pb.AccessLevel) models.AccessLevel {
	switch l {
	case pb.AccessLevel_PUBLIC:
		return models.AccessLevelPublic
	case pb.AccessLevel_RESTRICTED:
		return models.AccessLevelRestricted
	case pb.AccessLevel_CONFIDENTIAL:
		return models.AccessLevelConfidential
	default:
		return models.AccessLevelNone
	}
}

func captureToProto(c *models.Capture) *pb.Capture {
	if c == nil {
		return nil
	}
	return &pb.Capture{
		Id:              c.ID,
		Template:        c.Template,
		Modality:        modalityToProto(c.Modality),
		Quality:         c.Quality,
		CaptureTimeUnix: c.CaptureTime.Unix(),
	}
}

func (s *GRPCClient) Enroll(ctx context.Context, user *models.User, capture *models.Capture) (bool, error) {

	req := &pb.EnrollRequest{
		UserId:         user.ID,
		UserName:       user.Name,
		Role:           user.Role,
		MaxAccessLevel: levelToProto(user.MaxAccessLevel),
		Capture:        captureToProto(capture),
	}

	resp, err := s.client.Enroll(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}

	return resp.Success, nil
}

func (s *GRPCClient) Authenticate(ctx context.Context, capture *models.Capture, requestedLevel models.AccessLevel) (*AuthResult, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.AuthenticateRequest{
		Capture:        captureToProto(capture),
		RequestedLevel: levelToProto(requestedLevel),
	}

	resp, err := s.client.Authenticate(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if resp.Success {
		s.sessionToken = resp.SessionToken
	}

	return &AuthResult{
		Success:      resp.Success,
		Message:      resp.Message,
		UserID:       resp.UserId,
		UserName:     resp.UserName,
		GrantedLevel: levelFromProto(resp.GrantedLevel),
		SessionToken: resp.SessionToken,
	}, nil
}

func (s *GRPCClient) RevokeAccess(ctx context.Context, userID string) (bool, error) {

	req := &pb.RevokeAccessRequest{UserId: userID}

	resp, err := s.client.RevokeAccess(ctx, req)
	if err != nil {
		return false, s.mapError(err)
	}

	return resp.Success, nil
}

func (s *GRPCClient) ValidateSession(ctx context.Context, token string) (*SessionInfo, error) {

	req := &pb.ValidateSessionRequest{SessionToken: token}

	resp, err := s.client.ValidateSession(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &SessionInfo{
		Valid:        resp.Valid,
		UserID:       resp.UserId,
		GrantedLevel: levelFromProto(resp.GrantedLevel),
	}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
