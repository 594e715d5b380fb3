package scanner

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/models"
	"github.com/google/uuid"
)

const (
	// FacialTemplateSize is the fixed template length for the facial modality.
	FacialTemplateSize = 512

	minQuality = 0.5
	maxQuality = 1.0
)

// FacialScanner generates random facial templates and scores their quality
// with a deterministic heuristic. Seedable for reproducible tests.
type FacialScanner struct {
	rnd *rand.Rand
	// captureDelay simulates sensor latency; zero in tests.
	captureDelay time.Duration
}

// NewFacialScanner builds a scanner with a time-based seed and a small
// simulated capture latency.
func NewFacialScanner() *FacialScanner {
	return &FacialScanner{
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		captureDelay: 100 * time.Millisecond,
	}
}

// NewSeededFacialScanner builds a scanner producing a reproducible template
// sequence with no capture latency.
func NewSeededFacialScanner(seed int64) *FacialScanner {
	return &FacialScanner{rnd: rand.New(rand.NewSource(seed))}
}

func (s *FacialScanner) Capture(ctx context.Context) (*models.Capture, error) {
	if s.captureDelay > 0 {
		select {
		case <-time.After(s.captureDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", common.ErrCaptureFailure, ctx.Err())
		}
	}

	template := make([]byte, FacialTemplateSize)
	s.rnd.Read(template)

	return &models.Capture{
		ID:          uuid.NewString(),
		Template:    template,
		Modality:    models.ModalityFacial,
		Quality:     s.Quality(template),
		CaptureTime: time.Now(),
	}, nil
}

// Quality combines three heuristics: byte variance (0.3), histogram entropy
// (0.5) and absence of repeated adjacent bytes (0.2), scaled into
// [minQuality, maxQuality]. Empty templates score 0.
func (s *FacialScanner) Quality(template []byte) float64 {
	if len(template) == 0 {
		return 0.0
	}

	var mean float64
	for _, b := range template {
		mean += float64(b)
	}
	mean /= float64(len(template))

	var variance float64
	for _, b := range template {
		diff := float64(b) - mean
		variance += diff * diff
	}
	variance /= float64(len(template))

	// Theoretical variance ceiling for uniform bytes is ~5461.
	varianceFactor := math.Min(variance/5461.0, 1.0)

	var histogram [256]int
	for _, b := range template {
		histogram[b]++
	}
	var entropy float64
	for _, count := range histogram {
		if count > 0 {
			p := float64(count) / float64(len(template))
			entropy -= p * math.Log2(p)
		}
	}
	entropyFactor := math.Min(entropy/8.0, 1.0)

	repetitions := 0
	for i := 1; i < len(template); i++ {
		if template[i] == template[i-1] {
			repetitions++
		}
	}
	repetitionFactor := 1.0 - float64(repetitions)/float64(len(template))

	raw := varianceFactor*0.3 + entropyFactor*0.5 + repetitionFactor*0.2
	quality := minQuality + raw*(maxQuality-minQuality)

	return math.Max(minQuality, math.Min(maxQuality, quality))
}
