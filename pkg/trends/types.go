package trends

import (
	"errors"
	"time"
)

// ErrInsufficientData is returned when a keyword has no samples to score
var ErrInsufficientData = errors.New("insufficient data")

// Sample is a single interest reading on the provider's 0-100 scale
type Sample struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// InterestSeries is the time-indexed interest of one keyword
type InterestSeries struct {
	keyword string
	samples []Sample
}

// NewSeries builds a series from samples. The slice is copied so the series
// cannot be changed by the caller afterwards.
func NewSeries(keyword string, samples []Sample) InterestSeries {
	cp := make([]Sample, len(samples))
	copy(cp, samples)
	return InterestSeries{keyword: keyword, samples: cp}
}

// SeriesFromValues builds a series without timestamps, mostly useful in tests
func SeriesFromValues(keyword string, values ...float64) InterestSeries {
	samples := make([]Sample, len(values))
	for i, v := range values {
		samples[i] = Sample{Value: v}
	}
	return InterestSeries{keyword: keyword, samples: samples}
}

func (s InterestSeries) Keyword() string { return s.keyword }

func (s InterestSeries) Len() int { return len(s.samples) }

// Samples returns a copy of the samples
func (s InterestSeries) Samples() []Sample {
	cp := make([]Sample, len(s.samples))
	copy(cp, s.samples)
	return cp
}

// Values returns a copy of the sample values in time order
func (s InterestSeries) Values() []float64 {
	values := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		values[i] = sample.Value
	}
	return values
}

// TrendDirection is the coarse two-halves trend label
type TrendDirection int

const (
	InsufficientData TrendDirection = iota
	Rising
	Falling
	Stable
)

func (d TrendDirection) String() string {
	switch d {
	case Rising:
		return "RISING"
	case Falling:
		return "FALLING"
	case Stable:
		return "STABLE"
	default:
		return "INSUFFICIENT_DATA"
	}
}

// Label is the pt-BR text shown in reports and CSV files
func (d TrendDirection) Label() string {
	switch d {
	case Rising:
		return "em alta 📈"
	case Falling:
		return "em queda 📉"
	case Stable:
		return "estável ➡️"
	default:
		return "dados insuficientes"
	}
}

func (d TrendDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PopularityTier buckets an interest score
type PopularityTier int

const (
	Low PopularityTier = iota
	Moderate
	Popular
	VeryPopular
)

func (p PopularityTier) String() string {
	switch p {
	case VeryPopular:
		return "VERY_POPULAR"
	case Popular:
		return "POPULAR"
	case Moderate:
		return "MODERATE"
	default:
		return "LOW"
	}
}

// Label is the pt-BR text shown in reports and CSV files
func (p PopularityTier) Label() string {
	switch p {
	case VeryPopular:
		return "Muito popular ⭐⭐⭐⭐⭐"
	case Popular:
		return "Popular ⭐⭐⭐⭐"
	case Moderate:
		return "Moderado ⭐⭐⭐"
	default:
		return "Baixo ⭐"
	}
}

func (p PopularityTier) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ScoredResult is the analysis of one keyword. Fields are unexported so that
// score and max can never drift from the series they were computed from.
type ScoredResult struct {
	keyword       string
	searchVolume  int
	interestScore float64
	maxInterest   int
	direction     TrendDirection
	tier          PopularityTier
	series        InterestSeries
	regions       map[string]int
	timestamp     time.Time
}

func (r ScoredResult) Keyword() string { return r.keyword }
func (r ScoredResult) SearchVolume() int { return r.searchVolume }
func (r ScoredResult) InterestScore() float64 { return r.interestScore }
func (r ScoredResult) MaxInterest() int { return r.maxInterest }
func (r ScoredResult) TrendDirection() TrendDirection { return r.direction }
func (r ScoredResult) PopularityTier() PopularityTier { return r.tier }
func (r ScoredResult) Series() InterestSeries { return r.series }
func (r ScoredResult) Timestamp() time.Time { return r.timestamp }

// Regions returns a copy of the region breakdown, nil when none was attached
func (r ScoredResult) Regions() map[string]int {
	if r.regions == nil {
		return nil
	}
	cp := make(map[string]int, len(r.regions))
	for k, v := range r.regions {
		cp[k] = v
	}
	return cp
}

// WithRegions returns a copy of the result carrying the provider's region breakdown
func (r ScoredResult) WithRegions(regions map[string]int) ScoredResult {
	if len(regions) == 0 {
		r.regions = nil
		return r
	}
	cp := make(map[string]int, len(regions))
	for k, v := range regions {
		cp[k] = v
	}
	r.regions = cp
	return r
}
