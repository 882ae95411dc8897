package service

import (
	"context"

	"beauty-trends/pkg/trends"
)

// ResultService is the read side of a finished analysis run
type ResultService interface {
	RunID() string
	Results() []trends.ScoredResult
	Ranked() []trends.ScoredResult
	TopN(n int) []trends.ScoredResult
}

// AnalysisService runs one keyword batch
type AnalysisService interface {
	ResultService
	Run(ctx context.Context, keywords []string) []trends.ScoredResult
	Close()
}
