package analysis

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"beauty-trends/pkg/api"
	"beauty-trends/pkg/logger"
	"beauty-trends/pkg/trends"
	"beauty-trends/pkg/vocabulary"
)

// Runner fetches, scores and accumulates keyword results for one run.
// It is not safe for concurrent use.
type Runner struct {
	provider api.Provider
	query    api.Query
	pacer    Pacer
	now      func() time.Time
	defaults []string
	volume   int
	runID    string
	log      *logger.Logger

	results []trends.ScoredResult
}

type Option func(*Runner)

// WithPacer replaces the default one second pause
func WithPacer(p Pacer) Option {
	return func(r *Runner) {
		if p != nil {
			r.pacer = p
		}
	}
}

// WithQuery sets the provider query used for every keyword
func WithQuery(q api.Query) Option {
	return func(r *Runner) { r.query = q }
}

// WithClock sets the time source used when a provider does not report fetch times
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithDefaultKeywords replaces the batch used by AnalyzeMany on empty input
func WithDefaultKeywords(keywords []string) Option {
	return func(r *Runner) {
		if len(keywords) > 0 {
			r.defaults = append([]string(nil), keywords...)
		}
	}
}

// WithSearchVolume sets the volume AnalyzeMany declares for every keyword
func WithSearchVolume(volume int) Option {
	return func(r *Runner) {
		if volume > 0 {
			r.volume = volume
		}
	}
}

// WithLogger sets the parent logger
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRunner(provider api.Provider, opts ...Option) *Runner {
	r := &Runner{
		provider: provider,
		query:    api.DefaultQuery(),
		pacer:    FixedPacer(DefaultPause),
		now:      time.Now,
		defaults: vocabulary.Default(),
		volume:   trends.DefaultSearchVolume,
		runID:    uuid.NewString(),
		log:      logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithFields(map[string]interface{}{
		"component": "analysis_runner",
		"run_id":    r.runID,
	})
	return r
}

// RunID identifies this runner in logs
func (r *Runner) RunID() string { return r.runID }

// AnalyzeOne fetches and scores one keyword. The second return value is false
// when the keyword was skipped because the provider failed or had no data;
// skipped keywords never enter the result set.
func (r *Runner) AnalyzeOne(ctx context.Context, keyword string, searchVolume int) (trends.ScoredResult, bool) {
	if searchVolume <= 0 {
		searchVolume = trends.DefaultSearchVolume
	}
	log := r.log.WithField("keyword", keyword)
	log.Debug("Analysing keyword")

	data, err := r.provider.Fetch(ctx, keyword, r.query)
	r.pacer.Pause()
	if err != nil {
		if api.KindOf(err) == api.KindEmpty {
			log.WithError(err).Info("No trend data for keyword, skipping")
		} else {
			log.WithError(err).Error("Failed to fetch trends, skipping keyword")
		}
		return trends.ScoredResult{}, false
	}
	if data == nil {
		log.Info("Provider returned nothing, skipping")
		return trends.ScoredResult{}, false
	}

	at := data.FetchedAt
	if at.IsZero() {
		at = r.now()
	}

	res, err := trends.Score(keyword, data.Series, searchVolume, at)
	if err != nil {
		if errors.Is(err, trends.ErrInsufficientData) {
			log.Info("Empty interest series, skipping")
		} else {
			log.WithError(err).Error("Scoring failed, skipping keyword")
		}
		return trends.ScoredResult{}, false
	}
	res = res.WithRegions(data.Regions)

	r.results = append(r.results, res)
	return res, true
}

// AnalyzeMany analyses keywords in order with the runner's search volume and
// returns the successful results in input order. An empty list analyses the
// default batch.
func (r *Runner) AnalyzeMany(ctx context.Context, keywords []string) []trends.ScoredResult {
	if len(keywords) == 0 {
		keywords = r.defaults
	}

	progress := logger.NewBatchProgress(r.log, len(keywords), "Buscando")
	out := make([]trends.ScoredResult, 0, len(keywords))
	for _, kw := range keywords {
		progress.Start(kw)
		res, ok := r.AnalyzeOne(ctx, kw, r.volume)
		if !ok {
			continue
		}
		out = append(out, res)
		progress.Done(kw, res.TrendDirection().Label())
	}
	progress.Finish()
	return out
}

// Results returns the accumulated results in insertion order
func (r *Runner) Results() []trends.ScoredResult {
	return append([]trends.ScoredResult(nil), r.results...)
}

// Len is the number of accumulated results
func (r *Runner) Len() int { return len(r.results) }

// Ranked returns every result ordered by interest score, highest first.
// Equal scores keep insertion order.
func (r *Runner) Ranked() []trends.ScoredResult {
	return Rank(r.results)
}

// TopN returns up to n results by descending interest score
func (r *Runner) TopN(n int) []trends.ScoredResult {
	if len(r.results) == 0 {
		r.log.Warn("No results available")
		return []trends.ScoredResult{}
	}
	return Top(r.results, n)
}

// Rank returns a stably sorted copy of results, highest score first
func Rank(results []trends.ScoredResult) []trends.ScoredResult {
	ranked := append([]trends.ScoredResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].InterestScore() > ranked[j].InterestScore()
	})
	return ranked
}

// Top returns the first n entries of Rank(results)
func Top(results []trends.ScoredResult, n int) []trends.ScoredResult {
	if n <= 0 || len(results) == 0 {
		return []trends.ScoredResult{}
	}
	ranked := Rank(results)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
