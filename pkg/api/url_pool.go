package api

import (
	"strings"
	"sync/atomic"
)

// EndpointPool rotates over one or more trends proxy endpoints
type EndpointPool struct {
	endpoints []string
	next      atomic.Uint64
}

// NewEndpointPool parses a comma-separated endpoint list; blanks are dropped
func NewEndpointPool(raw string) *EndpointPool {
	parts := strings.Split(raw, ",")
	endpoints := make([]string, 0, len(parts))
	for _, p := range parts {
		if cleaned := strings.TrimSpace(p); cleaned != "" {
			endpoints = append(endpoints, cleaned)
		}
	}
	return &EndpointPool{endpoints: endpoints}
}

// Next returns the next endpoint in round-robin order, "" when the pool is empty
func (p *EndpointPool) Next() string {
	switch len(p.endpoints) {
	case 0:
		return ""
	case 1:
		return p.endpoints[0]
	}
	n := p.next.Add(1) - 1
	return p.endpoints[n%uint64(len(p.endpoints))]
}

// Endpoints returns a copy of the configured endpoints
func (p *EndpointPool) Endpoints() []string {
	out := make([]string, len(p.endpoints))
	copy(out, p.endpoints)
	return out
}

func (p *EndpointPool) Size() int { return len(p.endpoints) }
