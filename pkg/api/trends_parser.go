package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"beauty-trends/pkg/trends"
)

// trendsResponse is the JSON document served by the trends proxy
type trendsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Keyword  string `json:"keyword"`
		Timeline []struct {
			Time  string  `json:"time"`
			Value float64 `json:"value"`
		} `json:"timeline"`
		Regions map[string]int `json:"regions"`
	} `json:"data"`
}

// ParseResponse decodes a proxy response body into TrendData. A body that is
// not valid JSON yields a KindParse error; a non-success status or an empty
// timeline yields a KindEmpty error.
func ParseResponse(keyword string, body []byte, fetchedAt time.Time) (*TrendData, error) {
	if len(body) == 0 {
		return nil, newProviderError(keyword, KindEmpty, ErrEmptyResult)
	}

	var resp trendsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, newProviderError(keyword, KindParse,
			fmt.Errorf("decode response: %w (response: %s)", err, string(body[:min(len(body), 200)])))
	}

	if resp.Status != "success" {
		msg := resp.Message
		if msg == "" {
			msg = "status " + resp.Status
		}
		return nil, newProviderError(keyword, KindEmpty, fmt.Errorf("%w: %s", ErrEmptyResult, msg))
	}

	if len(resp.Data.Timeline) == 0 {
		return nil, newProviderError(keyword, KindEmpty, ErrEmptyResult)
	}

	samples := make([]trends.Sample, 0, len(resp.Data.Timeline))
	for i, point := range resp.Data.Timeline {
		ts, err := parseTime(point.Time)
		if err != nil {
			return nil, newProviderError(keyword, KindParse, fmt.Errorf("timeline[%d]: %w", i, err))
		}
		samples = append(samples, trends.Sample{Time: ts, Value: clamp(point.Value)})
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Time.Before(samples[j].Time)
	})

	var regions map[string]int
	if len(resp.Data.Regions) > 0 {
		regions = make(map[string]int, len(resp.Data.Regions))
		for name, v := range resp.Data.Regions {
			regions[name] = int(clamp(float64(v)))
		}
	}

	return &TrendData{
		Keyword:   keyword,
		Series:    trends.NewSeries(keyword, samples),
		Regions:   regions,
		FetchedAt: fetchedAt,
	}, nil
}

func parseTime(raw string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", raw)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
