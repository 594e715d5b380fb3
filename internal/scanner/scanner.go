// Package scanner simulates the biometric capture device. The engine treats
// the produced template and quality score as opaque inputs; a production
// deployment would replace this package with real sensor integration.
package scanner

import (
	"context"

	"github.com/dmitrijs2005/biovault/internal/models"
)

// Scanner produces biometric captures.
type Scanner interface {
	// Capture acquires one sample: a template, its modality and a quality
	// score in [0,1]. Returns ErrCaptureFailure on device faults.
	Capture(ctx context.Context) (*models.Capture, error)

	// Quality assesses how usable a template is, in [0,1].
	Quality(template []byte) float64
}
