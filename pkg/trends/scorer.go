package trends

import (
	"fmt"
	"time"
)

const (
	// DefaultSearchVolume is used when the caller does not declare a volume
	DefaultSearchVolume = 100

	risingFactor  = 1.15
	fallingFactor = 0.85

	veryPopularScore = 75
	popularScore     = 50
	moderateScore    = 25
)

// Score turns a raw series into a ScoredResult. It fails with
// ErrInsufficientData when the series is empty.
func Score(keyword string, series InterestSeries, searchVolume int, at time.Time) (ScoredResult, error) {
	values := series.Values()
	if len(values) == 0 {
		return ScoredResult{}, fmt.Errorf("score %q: %w", keyword, ErrInsufficientData)
	}

	score := Mean(values)
	return ScoredResult{
		keyword:       keyword,
		searchVolume:  searchVolume,
		interestScore: score,
		maxInterest:   int(Max(values)),
		direction:     Direction(values),
		tier:          Tier(score),
		series:        series,
		timestamp:     at,
	}, nil
}

// Direction compares the mean of the first half of values to the mean of the
// second half. For odd lengths the middle element belongs to the second half.
func Direction(values []float64) TrendDirection {
	if len(values) < 2 {
		return InsufficientData
	}

	mid := len(values) / 2
	first := Mean(values[:mid])
	second := Mean(values[mid:])

	switch {
	case second > first*risingFactor:
		return Rising
	case second < first*fallingFactor:
		return Falling
	default:
		return Stable
	}
}

// Tier classifies a score. Lower bounds are inclusive.
func Tier(score float64) PopularityTier {
	switch {
	case score >= veryPopularScore:
		return VeryPopular
	case score >= popularScore:
		return Popular
	case score >= moderateScore:
		return Moderate
	default:
		return Low
	}
}

// Mean returns the arithmetic mean, 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Max returns the largest value, 0 for an empty slice
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
