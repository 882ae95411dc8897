package service

import (
	"beauty-trends/pkg/analysis"
	"beauty-trends/pkg/trends"
)

// Snapshot is a frozen copy of a run's results. It is safe for concurrent reads.
type Snapshot struct {
	runID   string
	results []trends.ScoredResult
}

func NewSnapshot(src ResultService) *Snapshot {
	return &Snapshot{
		runID:   src.RunID(),
		results: src.Results(),
	}
}

func (s *Snapshot) RunID() string { return s.runID }

func (s *Snapshot) Results() []trends.ScoredResult {
	return append([]trends.ScoredResult(nil), s.results...)
}

func (s *Snapshot) Ranked() []trends.ScoredResult {
	return analysis.Rank(s.results)
}

func (s *Snapshot) TopN(n int) []trends.ScoredResult {
	return analysis.Top(s.results, n)
}
