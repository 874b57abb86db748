// Package model holds the optional, process-wide historical model
// parameters the advisor can fold into its bluff heuristics. Parameters are
// loaded at most once per process through a caller-provided fetcher; a
// failed or missing fetch silently leaves the baseline heuristics in place.
package model

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// SuccessRate aggregates observed bluff outcomes for one street.
type SuccessRate struct {
	Successes int `json:"succ"`
	Attempts  int `json:"total"`
}

// Parameters is the learned parameter blob. The zero value means "no data";
// every lookup on it reports not-ok.
type Parameters struct {
	BluffSuccessRates map[string]SuccessRate `json:"bluff_success_rates"`
}

// minSamples is the evidence floor below which a learned rate is ignored in
// favor of the street baseline.
const minSamples = 20

// BluffRate returns the learned bluff success percentage for a street, and
// whether enough samples exist to trust it.
func (p Parameters) BluffRate(street string) (float64, bool) {
	rate, ok := p.BluffSuccessRates[street]
	if !ok || rate.Attempts < minSamples {
		return 0, false
	}
	return float64(rate.Successes) / float64(rate.Attempts) * 100, true
}

// Fetcher retrieves parameters from wherever the integration layer keeps
// them. The store calls it at most once.
type Fetcher interface {
	Fetch(ctx context.Context) (Parameters, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) (Parameters, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (Parameters, error) {
	return f(ctx)
}

// Store is a lazily-populated, write-once cache of Parameters. Concurrent
// first loads collapse into a single fetch; after the first attempt the
// cached value is returned without locking. A racing early read may see the
// zero Parameters, which merely means those calls use the baselines.
type Store struct {
	fetcher   Fetcher
	group     singleflight.Group
	attempted atomic.Bool
	mu        sync.Mutex
	params    Parameters
}

// NewStore creates a store backed by the given fetcher. A nil fetcher is
// valid and yields empty parameters forever.
func NewStore(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Load returns the cached parameters, fetching them on first use. The fetch
// happens at most once per store lifetime: a fetch error is swallowed and
// the zero Parameters are cached so the engine keeps its baselines. Load
// never returns an error because a parameter failure must never block a
// recommendation.
func (s *Store) Load(ctx context.Context) Parameters {
	if s.attempted.Load() {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.params
	}

	result, _, _ := s.group.Do("load", func() (any, error) {
		var params Parameters
		if s.fetcher != nil {
			if fetched, err := s.fetcher.Fetch(ctx); err == nil {
				params = fetched
			}
		}
		s.mu.Lock()
		s.params = params
		s.mu.Unlock()
		s.attempted.Store(true)
		return params, nil
	})

	return result.(Parameters)
}
