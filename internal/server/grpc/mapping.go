package grpc

import (
	"time"

	"github.com/dmitrijs2005/biovault/internal/models"
	pb "github.com/dmitrijs2005/biovault/internal/proto"
)

func modalityFromProto(m pb.Modality) models.Modality {
	switch m {
	case pb.Modality_FINGERPRINT:
		return models.ModalityFingerprint
	case pb.Modality_FACIAL_RECOGNITION:
		return models.ModalityFacial
	case pb.Modality_IRIS_SCAN:
		return models.ModalityIris
	default:
		return models.ModalityUnknown
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

func captureFromProto(c *pb.Capture) *models.Capture {
	if c == nil {
		return nil
	}
	return &models.Capture{
		ID:          c.Id,
		Template:    c.Template,
		Modality:    modalityFromProto(c.Modality),
		Quality:     c.Quality,
		CaptureTime: time.Unix(c.CaptureTimeUnix, 0),
	}
}
