package matcher

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/biovault/internal/common"
)

// FacialMatcher scores facial templates with a deliberately simple,
// deterministic composite of three sub-metrics:
//
//   - normalized Pearson correlation, weight 0.5, rescaled from [-1,1] to [0,1]
//   - inverted normalized Euclidean distance, weight 0.3
//   - region agreement over 8 contiguous regions, weight 0.2
//
// The result is clamped to [0,1]. This is a reproducible numeric metric,
// not a production facial-recognition algorithm.
type FacialMatcher struct{}

const (
	facialRegions         = 8
	regionMatchThreshold  = 0.85
	weightCorrelation     = 0.5
	weightEuclidean       = 0.3
	weightRegionAgreement = 0.2
)

func (m *FacialMatcher) Similarity(captured, stored []byte) (float64, error) {
	if len(captured) == 0 || len(stored) == 0 {
		return 0, fmt.Errorf("%w: template is empty", common.ErrInvalidArgument)
	}
	if len(captured) != len(stored) {
		return 0, fmt.Errorf("%w: template lengths differ (%d vs %d)",
			common.ErrInvalidArgument, len(captured), len(stored))
	}

	score := weightCorrelation*normalizedCorrelation(captured, stored) +
		weightEuclidean*euclideanSimilarity(captured, stored) +
		weightRegionAgreement*regionAgreement(captured, stored)

	return math.Max(0.0, math.Min(1.0, score)), nil
}

// normalizedCorrelation computes the Pearson correlation of the two byte
// sequences and rescales it from [-1,1] to [0,1]. Zero variance on either
// side yields 0.
func normalizedCorrelation(a, b []byte) float64 {
	meanA := mean(a)
	meanB := mean(b)

	var numerator, sumSqA, sumSqB float64
	for i := range a {
		da := float64(a[i]) - meanA
		db := float64(b[i]) - meanB
		numerator += da * db
		sumSqA += da * da
		sumSqB += db * db
	}

	denominator := math.Sqrt(sumSqA * sumSqB)
	if denominator == 0.0 {
		return 0.0
	}

	return (numerator/denominator + 1.0) / 2.0
}

// euclideanSimilarity inverts the Euclidean distance normalized by the
// theoretical maximum 255·√len.
func euclideanSimilarity(a, b []byte) float64 {
	var sumSquaredDiff float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sumSquaredDiff += diff * diff
	}

	distance := math.Sqrt(sumSquaredDiff)
	maxDistance := 255.0 * math.Sqrt(float64(len(a)))

	return 1.0 - distance/maxDistance
}

// regionAgreement splits the templates into 8 contiguous regions, scores
// each region by 1−RMSE/255, counts a region as matching when its score is
// at least 0.85, and returns the fraction of matching regions. The last
// region absorbs any remainder.
func regionAgreement(a, b []byte) float64 {
	regionSize := len(a) / facialRegions

	matching := 0
	for region := 0; region < facialRegions; region++ {
		start := region * regionSize
		end := start + regionSize
		if region == facialRegions-1 {
			end = len(a)
		}

		if regionScore(a, b, start, end) >= regionMatchThreshold {
			matching++
		}
	}

	return float64(matching) / float64(facialRegions)
}

func regionScore(a, b []byte, start, end int) float64 {
	var sumSquaredDiff float64
	for i := start; i < end; i++ {
		diff := float64(a[i]) - float64(b[i])
		sumSquaredDiff += diff * diff
	}

	rmse := math.Sqrt(sumSquaredDiff / float64(end-start))
	return 1.0 - rmse/255.0
}

func mean(template []byte) float64 {
	var sum float64
	for _, v := range template {
		sum += float64(v)
	}
	return sum / float64(len(template))
}
