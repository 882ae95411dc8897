package export

import (
	"encoding/json"
	"io"

	"beauty-trends/pkg/trends"
)

// Record is the JSON shape of one result
type Record struct {
	Keyword        string  `json:"keyword"`
	SearchVolume   int     `json:"search_volume"`
	InterestScore  float64 `json:"interest_score"`
	MaxInterest    int     `json:"max_interest"`
	TrendDirection string  `json:"trend_direction"`
	Popularity     string  `json:"popularity"`
	Timestamp      string  `json:"timestamp"`
}

// NewRecord converts a result into its JSON shape
func NewRecord(r trends.ScoredResult) Record {
	return Record{
		Keyword:        r.Keyword(),
		SearchVolume:   r.SearchVolume(),
		InterestScore:  r.InterestScore(),
		MaxInterest:    r.MaxInterest(),
		TrendDirection: r.TrendDirection().String(),
		Popularity:     r.PopularityTier().String(),
		Timestamp:      formatTimestamp(r.Timestamp()),
	}
}

// Records converts results keeping their order
func Records(results []trends.ScoredResult) []Record {
	out := make([]Record, len(results))
	for i, r := range results {
		out[i] = NewRecord(r)
	}
	return out
}

// WriteJSON writes an indented array in the order results are given
func WriteJSON(w io.Writer, results []trends.ScoredResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(results))
}
