package usecases

import (
	"math"
	"sort"

	"github.com/voxdrive/voxdrive-backend/models"
)

// ResponseTimeValidator scores assistant response latencies against a
// threshold. All methods are pure.
type ResponseTimeValidator struct{}

func NewResponseTimeValidator() ResponseTimeValidator {
	return ResponseTimeValidator{}
}

// CalculateP95 computes the 95th percentile by the nearest-rank method (no
// interpolation): sort ascending and take the value at floor(0.95*n), clamped
// to the last index.
func (v ResponseTimeValidator) CalculateP95(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, models.ErrEmptySampleSet
	}
	if len(samples) == 1 {
		return samples[0], nil
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	index := int(math.Floor(0.95 * float64(len(sorted))))
	if index > len(sorted)-1 {
		index = len(sorted) - 1
	}
	return sorted[index], nil
}

func (v ResponseTimeValidator) CheckThreshold(actualMs, thresholdMs float64) bool {
	return actualMs <= thresholdMs
}

// Validate scores a single latency on [0,1]. Within threshold scores 1.0; a
// zero threshold only accepts a zero latency. Above threshold the score
// degrades linearly with the overshoot ratio r = actual/threshold:
// 0.5 down to 0.25 for r in (1,1.5], 0.25 down to 0 for r in (1.5,2), and 0
// from twice the threshold on.
func (v ResponseTimeValidator) Validate(actualMs, thresholdMs float64) float64 {
	if thresholdMs == 0 {
		if actualMs == 0 {
			return 1.0
		}
		return 0.0
	}
	if actualMs <= thresholdMs {
		return 1.0
	}

	ratio := actualMs / thresholdMs
	var score float64
	switch {
	case ratio <= 1.5:
		score = 0.5 - 0.5*(ratio-1.0)
	case ratio < 2.0:
		score = 0.25 - 0.5*(ratio-1.5)
	default:
		score = 0.0
	}
	return clampScore(score)
}

// ValidateSamples scores a latency distribution by its P95. An empty sample
// set yields the neutral score 0.5.
func (v ResponseTimeValidator) ValidateSamples(samples []float64, thresholdMs float64) float64 {
	if len(samples) == 0 {
		return 0.5
	}
	p95, err := v.CalculateP95(samples)
	if err != nil {
		return 0.5
	}
	return v.Validate(p95, thresholdMs)
}

func clampScore(score float64) float64 {
	return math.Max(0.0, math.Min(1.0, score))
}
