package api

import (
	"context"
	"time"

	"beauty-trends/pkg/trends"
)

const (
	DefaultTimeframe = "today 3m"
	DefaultGeo       = "BR"
	DefaultLanguage  = "pt-BR"
	DefaultTZ        = 360
)

// Query carries the provider parameters shared by every keyword of a run
type Query struct {
	Timeframe string
	Geo       string
	Language  string
	TZ        int
}

// DefaultQuery is the trailing three months over the whole country
func DefaultQuery() Query {
	return Query{
		Timeframe: DefaultTimeframe,
		Geo:       DefaultGeo,
		Language:  DefaultLanguage,
		TZ:        DefaultTZ,
	}
}

func (q Query) withDefaults() Query {
	d := DefaultQuery()
	if q.Timeframe == "" {
		q.Timeframe = d.Timeframe
	}
	if q.Geo == "" {
		q.Geo = d.Geo
	}
	if q.Language == "" {
		q.Language = d.Language
	}
	return q
}

// TrendData is what the provider returns for one keyword
type TrendData struct {
	Keyword   string
	Series    trends.InterestSeries
	Regions   map[string]int
	FetchedAt time.Time
}

// Provider fetches the interest series of a keyword
type Provider interface {
	Fetch(ctx context.Context, keyword string, query Query) (*TrendData, error)
}
