package grpc

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/biovault/internal/proto"
	"github.com/dmitrijs2005/biovault/internal/scanner"
)

func pbCapture(seed int64, quality float64) *pb.Capture {
	rnd := rand.New(rand.NewSource(seed))
	tpl := make([]byte, scanner.FacialTemplateSize)
	rnd.Read(tpl)
	return &pb.Capture{
		Id:              "CAP-TEST",
		Template:        tpl,
		Modality:        pb.Modality_FACIAL_RECOGNITION,
		Quality:         quality,
		CaptureTimeUnix: time.Now().Unix(),
	}
}

func enrollTestUser(t *testing.T, s *GRPCServer, userID string, level pb.AccessLevel) {
	t.Helper()
	resp, err := s.Enroll(context.Background(), &pb.EnrollRequest{
		UserId:         userID,
		UserName:       "Test User",
		Role:           "operator",
		MaxAccessLevel: level,
		Capture:        pbCapture(1, 0.95),
	})
	if err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	if !resp.Success {
		t.Fatal("Enroll was not successful")
	}
}

func TestEnroll_MissingCapture(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Enroll(context.Background(), &pb.EnrollRequest{UserId: "USER-001"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestEnroll_DuplicateReportsFailure(t *testing.T) {
	s := newTestServer(t)
	enrollTestUser(t, s, "USER-001", pb.AccessLevel_PUBLIC)

	resp, err := s.Enroll(context.Background(), &pb.EnrollRequest{
		UserId:         "USER-001",
		UserName:       "Test User",
		MaxAccessLevel: pb.AccessLevel_PUBLIC,
		Capture:        pbCapture(2, 0.95),
	})
	if err != nil {
		t.Fatalf("Enroll error: %v", err)
	}
	if resp.Success {
		t.Fatal("duplicate enrollment must not succeed")
	}
}

func TestAuthenticate_Success(t *testing.T) {
	s := newTestServer(t)
	enrollTestUser(t, s, "USER-001", pb.AccessLevel_CONFIDENTIAL)

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{
		Capture:        pbCapture(1, 0.9),
		RequestedLevel: pb.AccessLevel_RESTRICTED,
	})
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got message %q", resp.Message)
	}
	if resp.UserId != "USER-001" {
		t.Fatalf("unexpected user id: %q", resp.UserId)
	}
	if resp.GrantedLevel != pb.AccessLevel_RESTRICTED {
		t.Fatalf("unexpected granted level: %v", resp.GrantedLevel)
	}
	if resp.SessionToken == "" {
		t.Fatal("expected a session token")
	}
	if !s.sessions.Validate(context.Background(), resp.SessionToken) {
		t.Fatal("issued token must be valid")
	}
}

func TestAuthenticate_FailureCarriesNoIdentity(t *testing.T) {
	s := newTestServer(t)
	enrollTestUser(t, s, "USER-001", pb.AccessLevel_PUBLIC)

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{
		Capture:        pbCapture(99, 0.9),
		RequestedLevel: pb.AccessLevel_PUBLIC,
	})
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if resp.Success {
		t.Fatal("unknown template must not authenticate")
	}
	if resp.Message == "" {
		t.Fatal("failure must carry a message")
	}
	if resp.UserId != "" || resp.UserName != "" || resp.SessionToken != "" {
		t.Fatal("failed response must not leak identity or token fields")
	}
}

func TestRevokeAccess_Handler(t *testing.T) {
	s := newTestServer(t)
	enrollTestUser(t, s, "USER-001", pb.AccessLevel_PUBLIC)

	if _, err := s.RevokeAccess(context.Background(), &pb.RevokeAccessRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for empty user_id, got %v", err)
	}

	resp, err := s.RevokeAccess(context.Background(), &pb.RevokeAccessRequest{UserId: "USER-001"})
	if err != nil {
		t.Fatalf("RevokeAccess error: %v", err)
	}
	if !resp.Success {
		t.Fatal("revocation of an existing user must succeed")
	}

	resp, err = s.RevokeAccess(context.Background(), &pb.RevokeAccessRequest{UserId: "USER-404"})
	if err != nil {
		t.Fatalf("RevokeAccess error: %v", err)
	}
	if resp.Success {
		t.Fatal("revocation of an unknown user must report failure")
	}
}

func TestValidateSession_Handler(t *testing.T) {
	s := newTestServer(t)
	enrollTestUser(t, s, "USER-001", pb.AccessLevel_RESTRICTED)

	auth, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{
		Capture:        pbCapture(1, 0.9),
		RequestedLevel: pb.AccessLevel_RESTRICTED,
	})
	if err != nil || !auth.Success {
		t.Fatalf("authentication failed: %v %v", err, auth.GetMessage())
	}

	resp, err := s.ValidateSession(context.Background(), &pb.ValidateSessionRequest{SessionToken: auth.SessionToken})
	if err != nil {
		t.Fatalf("ValidateSession error: %v", err)
	}
	if !resp.Valid {
		t.Fatal("issued token must validate")
	}
	if resp.UserId != "USER-001" {
		t.Fatalf("unexpected user id: %q", resp.UserId)
	}
	if resp.GrantedLevel != pb.AccessLevel_RESTRICTED {
		t.Fatalf("unexpected granted level: %v", resp.GrantedLevel)
	}

	resp, err = s.ValidateSession(context.Background(), &pb.ValidateSessionRequest{SessionToken: "bogus"})
	if err != nil {
		t.Fatalf("ValidateSession error: %v", err)
	}
	if resp.Valid {
		t.Fatal("unknown token must not validate")
	}
}
