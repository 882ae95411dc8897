package service

import (
	"context"
	"fmt"

	"beauty-trends/internal/config"
	"beauty-trends/pkg/analysis"
	"beauty-trends/pkg/api"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/trends"
	"beauty-trends/pkg/vocabulary"
)

type analysisService struct {
	*analysis.Runner
	provider *api.HTTPProvider
	keywords []string
	log      *logger.Logger
}

// NewAnalysisService wires the trends provider and a runner from cfg.
// Extra options are applied after the ones derived from cfg.
func NewAnalysisService(cfg *config.Config, opts ...analysis.Option) (AnalysisService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	connConfig := api.DefaultConnectionConfig()
	connConfig.RequestTimeout = cfg.Provider.Timeout
	provider := api.NewHTTPProviderWithConfig(cfg.Provider.Endpoint, cfg.Provider.APIKey, connConfig)

	query := api.Query{
		Timeframe: cfg.Provider.Timeframe,
		Geo:       cfg.Provider.Geo,
		Language:  cfg.Provider.Language,
		TZ:        cfg.Provider.TZ,
	}

	base := []analysis.Option{
		analysis.WithQuery(query),
		analysis.WithPacer(analysis.FixedPacer(cfg.Provider.Pause)),
		analysis.WithSearchVolume(cfg.Analysis.SearchVolume),
	}
	runner := analysis.NewRunner(provider, append(base, opts...)...)

	log := logger.GetLogger().WithFields(map[string]interface{}{
		"component": "analysis_service",
		"run_id":    runner.RunID(),
	})
	log.WithFields(map[string]interface{}{
		"endpoint":  logger.MaskEndpoint(cfg.Provider.Endpoint),
		"timeframe": query.Timeframe,
		"geo":       query.Geo,
		"pause":     cfg.Provider.Pause.String(),
	}).Info("Analysis service configured")

	return &analysisService{
		Runner:   runner,
		provider: provider,
		keywords: normalizeAll(cfg.Analysis.Keywords),
		log:      log,
	}, nil
}

// Run analyses keywords, falling back to the configured list and then to
// the runner's default batch.
func (s *analysisService) Run(ctx context.Context, keywords []string) []trends.ScoredResult {
	if len(keywords) == 0 {
		keywords = s.keywords
	}

	results := s.AnalyzeMany(ctx, keywords)

	stats := s.provider.Stats()
	s.log.WithFields(map[string]interface{}{
		"analyzed":        len(results),
		"total_requests":  stats.TotalRequests,
		"failed_requests": stats.FailedRequests,
	}).Info("Analysis batch finished")
	return results
}

func (s *analysisService) Close() {
	s.provider.Close()
}

func normalizeAll(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if n := vocabulary.Normalize(kw); n != "" {
			out = append(out, n)
		}
	}
	return out
}
