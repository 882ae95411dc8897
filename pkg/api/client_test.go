package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const okBody = `{
	"status": "success",
	"data": {
		"keyword": "botox",
		"timeline": [
			{"time": "2024-05-12T00:00:00Z", "value": 30},
			{"time": "2024-05-05T00:00:00Z", "value": 10},
			{"time": "2024-05-19T00:00:00Z", "value": 140}
		],
		"regions": {"São Paulo": 100, "Rio de Janeiro": 64}
	}
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*HTTPProvider, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConnectionConfig()
	cfg.RequestTimeout = 5 * time.Second
	p := NewHTTPProviderWithConfig(srv.URL+"/interest", "secret-key", cfg)
	p.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return p, srv
}

func TestFetchSuccess(t *testing.T) {
	var got url.Values
	var auth string
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	})

	data, err := p.Fetch(context.Background(), "preenchimento labial", Query{})
	require.NoError(t, err)

	require.Equal(t, "preenchimento labial", got.Get("keyword"))
	require.Equal(t, "today 3m", got.Get("timeframe"))
	require.Equal(t, "BR", got.Get("geo"))
	require.Equal(t, "pt-BR", got.Get("hl"))
	require.Equal(t, "0", got.Get("tz"))
	require.Equal(t, "Bearer secret-key", auth)

	require.Equal(t, "preenchimento labial", data.Keyword)
	require.Equal(t, []float64{10, 30, 100}, data.Series.Values())
	require.Equal(t, map[string]int{"São Paulo": 100, "Rio de Janeiro": 64}, data.Regions)
	require.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), data.FetchedAt)

	stats := p.Stats()
	require.Equal(t, uint64(1), stats.TotalRequests)
	require.Zero(t, stats.FailedRequests)
}

func TestFetchPassesExplicitQuery(t *testing.T) {
	var got url.Values
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(okBody))
	})

	_, err := p.Fetch(context.Background(), "botox", DefaultQuery())
	require.NoError(t, err)
	require.Equal(t, "360", got.Get("tz"))
}

func TestFetchClassifiesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   ErrorKind
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad key"}`, kind: KindAuth},
		{name: "forbidden", status: http.StatusForbidden, kind: KindAuth},
		{name: "rate limited", status: http.StatusTooManyRequests, kind: KindRateLimit},
		{name: "server error", status: http.StatusBadGateway, kind: KindUpstream},
		{name: "not found", status: http.StatusNotFound, kind: KindEmpty},
		{name: "malformed json", status: http.StatusOK, body: `{"status":`, kind: KindParse},
		{name: "error status", status: http.StatusOK, body: `{"status":"error","message":"unknown keyword"}`, kind: KindEmpty},
		{name: "empty timeline", status: http.StatusOK, body: `{"status":"success","data":{"keyword":"x","timeline":[]}}`, kind: KindEmpty},
		{name: "empty body", status: http.StatusOK, body: ``, kind: KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			data, err := p.Fetch(context.Background(), "botox", Query{})
			require.Nil(t, data)
			require.Error(t, err)

			var pe *ProviderError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tt.kind, pe.Kind)
			require.Equal(t, "botox", pe.Keyword)
			require.Equal(t, uint64(1), p.Stats().FailedRequests)
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	p := NewHTTPProvider(endpoint, "")
	_, err := p.Fetch(context.Background(), "lifting", Query{})
	require.Error(t, err)
	require.True(t, IsProviderError(err))
	require.Equal(t, KindNetwork, KindOf(err))
}

func TestFetchCanceledContext(t *testing.T) {
	called := false
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Fetch(ctx, "botox", Query{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, KindNetwork, KindOf(err))
	require.False(t, called)
}

func TestFetchWithoutEndpoint(t *testing.T) {
	p := NewHTTPProvider("", "")
	_, err := p.Fetch(context.Background(), "botox", Query{})
	require.Equal(t, KindNetwork, KindOf(err))
}

func TestParseResponseClampsAndSorts(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	data, err := ParseResponse("botox", []byte(`{"status":"success","data":{"timeline":[
		{"time":"2024-05-02","value":-5},
		{"time":"2024-05-01","value":50}
	]}}`), at)
	require.NoError(t, err)
	require.Equal(t, []float64{50, 0}, data.Series.Values())
	require.Nil(t, data.Regions)
	require.Equal(t, at, data.FetchedAt)
}

func TestParseResponseBadTime(t *testing.T) {
	_, err := ParseResponse("botox", []byte(`{"status":"success","data":{"timeline":[{"time":"yesterday","value":1}]}}`), time.Now())
	require.Equal(t, KindParse, KindOf(err))
}

func TestProviderErrorUnwraps(t *testing.T) {
	err := newProviderError("botox", KindEmpty, ErrEmptyResult)
	require.ErrorIs(t, err, ErrEmptyResult)
	require.Contains(t, err.Error(), `empty error for "botox"`)
	require.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
