package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
)

// ErrorKind classifies why the provider could not deliver a series
type ErrorKind string

const (
	KindNetwork   ErrorKind = "network"
	KindAuth      ErrorKind = "auth"
	KindRateLimit ErrorKind = "rate_limit"
	KindParse     ErrorKind = "parse"
	KindUpstream  ErrorKind = "upstream"
	KindEmpty     ErrorKind = "empty"
)

// ErrEmptyResult means the provider answered but had no data for the keyword
var ErrEmptyResult = errors.New("provider returned no data")

// ProviderError wraps every failure coming out of Provider.Fetch
type ProviderError struct {
	Keyword string
	Kind    ErrorKind
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("trends provider %s error for %q: %v", e.Kind, e.Keyword, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err carries a ProviderError
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// KindOf returns the kind of a ProviderError in err's chain, empty otherwise
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// classifyStatus maps a non-200 HTTP status to an error kind
func classifyStatus(status int) ErrorKind {
	switch {
	case status == fasthttp.StatusUnauthorized, status == fasthttp.StatusForbidden:
		return KindAuth
	case status == fasthttp.StatusTooManyRequests:
		return KindRateLimit
	case status == fasthttp.StatusNotFound, status == fasthttp.StatusNoContent:
		return KindEmpty
	default:
		return KindUpstream
	}
}

// classifyTransport maps a transport failure to an error kind
func classifyTransport(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, fasthttp.ErrTimeout) || errors.Is(err, fasthttp.ErrDialTimeout) {
		return KindNetwork
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "rate limit"), strings.Contains(errStr, "429"):
		return KindRateLimit
	case strings.Contains(errStr, "unauthorized"), strings.Contains(errStr, "forbidden"):
		return KindAuth
	default:
		return KindNetwork
	}
}

func newProviderError(keyword string, kind ErrorKind, err error) *ProviderError {
	return &ProviderError{Keyword: keyword, Kind: kind, Err: err}
}
