package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
)

func TestInterceptor_OtherMethods_AllowWithoutToken(t *testing.T) {
	s := newTestServer(t)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.BiometricAuth_Authenticate_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.sessionTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_RevokeAccess_MissingToken(t *testing.T) {
	s := newTestServer(t)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.BiometricAuth_RevokeAccess_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.sessionTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing session token" {
		t.Fatalf("expected 'missing session token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_RevokeAccess_InvalidToken(t *testing.T) {
	s := newTestServer(t)

	md := metadata.New(map[string]string{
		common.SessionTokenHeaderName: "no-such-token",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.BiometricAuth_RevokeAccess_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called with invalid token")
		return nil, nil
	}

	_, err := s.sessionTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_RevokeAccess_ValidToken(t *testing.T) {
	s := newTestServer(t)

	user := &models.User{ID: "USER-001", Name: "Test", MaxAccessLevel: models.AccessLevelConfidential}
	token, err := s.sessions.Create(context.Background(), user, models.AccessLevelConfidential)
	if err != nil {
		t.Fatalf("session create: %v", err)
	}

	md := metadata.New(map[string]string{
		common.SessionTokenHeaderName: token,
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.BiometricAuth_RevokeAccess_FullMethodName}

	handlerCalled := false
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	if _, err := s.sessionTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called with valid token")
	}
}
