package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"refinance-agent/client"
	"refinance-agent/domain"
	"refinance-agent/logger"
)

const productCacheKey = "refinance:loan-products"

// BankAPI is the authenticated part of the upstream bank.
type BankAPI interface {
	ProductAgreements(ctx context.Context, authorization string) ([]domain.Record, error)
	LoanProducts(ctx context.Context, authorization string) ([]domain.Record, error)
}

type ExternalLoansProvider interface {
	ExternalLoans(ctx context.Context) ([]domain.Record, error)
}

type Recorder interface {
	ExternalLoansFailed()
	CacheLookup(hit bool)
}

// UpstreamSource assembles a live snapshot from the bank API and the external
// loans provider.
type UpstreamSource struct {
	bank     BankAPI
	external ExternalLoansProvider
	cache    CacheRepository
	cacheTTL time.Duration
	recorder Recorder
}

type Option func(*UpstreamSource)

// WithProductCache caches the raw loan catalog for ttl. A ttl of 0 disables caching.
func WithProductCache(cache CacheRepository, ttl time.Duration) Option {
	return func(s *UpstreamSource) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *UpstreamSource) { s.recorder = r }
}

func NewUpstreamSource(bank BankAPI, external ExternalLoansProvider, opts ...Option) *UpstreamSource {
	s := &UpstreamSource{bank: bank, external: external}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot fetches agreements, products and external loans concurrently.
// Agreement and product failures abort; an external loans failure is logged
// and treated as an empty list.
func (s *UpstreamSource) Snapshot(ctx context.Context, authorization string) (Snapshot, error) {
	if strings.TrimSpace(authorization) == "" {
		return Snapshot{}, client.ErrMissingAuthorization
	}

	var agreements, products, external []domain.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		agreements, err = s.bank.ProductAgreements(gctx, authorization)
		if err != nil {
			return fmt.Errorf("fetch product agreements: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.loanProducts(gctx, authorization)
		if err != nil {
			return fmt.Errorf("fetch loan products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		external = s.externalLoans(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Agreements:    agreements,
		ExternalLoans: external,
		Products:      products,
	}, nil
}

func (s *UpstreamSource) externalLoans(ctx context.Context) []domain.Record {
	if s.external == nil {
		return []domain.Record{}
	}

	loans, err := s.external.ExternalLoans(ctx)
	if err != nil {
		// cancelled along with the request, not an external loans failure
		if ctx.Err() != nil {
			return []domain.Record{}
		}
		logger.FromContext(ctx).Warn("failed to fetch external loans", "error", err)
		if s.recorder != nil {
			s.recorder.ExternalLoansFailed()
		}
		return []domain.Record{}
	}
	return loans
}

func (s *UpstreamSource) loanProducts(ctx context.Context, authorization string) ([]domain.Record, error) {
	caching := s.cache != nil && s.cacheTTL > 0

	if caching {
		if cached, ok := s.cachedProducts(ctx); ok {
			return cached, nil
		}
	}

	products, err := s.bank.LoanProducts(ctx, authorization)
	if err != nil {
		return nil, err
	}

	if caching {
		payload, err := json.Marshal(products)
		if err == nil {
			err = s.cache.Set(ctx, productCacheKey, string(payload), s.cacheTTL)
		}
		if err != nil {
			logger.FromContext(ctx).Warn("failed to cache loan products", "error", err)
		}
	}
	return products, nil
}

func (s *UpstreamSource) cachedProducts(ctx context.Context) ([]domain.Record, bool) {
	raw, ok := s.cache.Get(ctx, productCacheKey)
	if ok {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		var products []domain.Record
		if err := dec.Decode(&products); err == nil {
			s.recordCacheLookup(true)
			return products, true
		}
	}
	s.recordCacheLookup(false)
	return nil, false
}

func (s *UpstreamSource) recordCacheLookup(hit bool) {
	if s.recorder != nil {
		s.recorder.CacheLookup(hit)
	}
}
