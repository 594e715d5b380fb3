// Package matcher computes similarity scores between biometric templates.
// One implementation exists per modality, selected through Factory, and a
// single threshold table decides when a score counts as a match.
package matcher

import (
	"fmt"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
)

// Matcher scores how similar two equal-length templates are, in [0,1].
type Matcher interface {
	// Similarity returns 0.0 for totally different templates and 1.0 for
	// identical ones. Both templates must be non-empty and the same length.
	Similarity(captured, stored []byte) (float64, error)
}

// Threshold returns the minimum similarity score required to declare two
// templates of the given modality a match. This table is the single
// authority for both identification and verification.
func Threshold(m models.Modality) (float64, error) {
	switch m {
	case models.ModalityFingerprint:
		return 0.85, nil
	case models.ModalityFacial:
		return 0.88, nil
	case models.ModalityIris:
		return 0.92, nil
	default:
		return 0, fmt.Errorf("%w: %s", common.ErrUnsupportedModality, m)
	}
}

// ForModality returns the matcher implementation bound to the modality.
// Fingerprint and iris are declared in the model but have no matcher yet.
func ForModality(m models.Modality) (Matcher, error) {
	switch m {
	case models.ModalityFacial:
		return &FacialMatcher{}, nil
	case models.ModalityFingerprint, models.ModalityIris:
		return nil, fmt.Errorf("%w: %s not implemented", common.ErrUnsupportedModality, m)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedModality, m)
	}
}
