package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refinance-agent/client"
	"refinance-agent/domain"
)

type fakeBank struct {
	agreements    []domain.Record
	products      []domain.Record
	agreementsErr error
	productsErr   error
	productCalls  atomic.Int32
}

func (f *fakeBank) ProductAgreements(_ context.Context, _ string) ([]domain.Record, error) {
	return f.agreements, f.agreementsErr
}

func (f *fakeBank) LoanProducts(_ context.Context, _ string) ([]domain.Record, error) {
	f.productCalls.Add(1)
	return f.products, f.productsErr
}

type fakeExternal struct {
	loans []domain.Record
	err   error

	// waitForCancel blocks until ctx is done and returns its error.
	waitForCancel bool
}

func (f *fakeExternal) ExternalLoans(ctx context.Context) ([]domain.Record, error) {
	if f.waitForCancel {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.loans, f.err
}

type fakeRecorder struct {
	externalFailures atomic.Int32
	hits, misses     atomic.Int32
}

func (f *fakeRecorder) ExternalLoansFailed() { f.externalFailures.Add(1) }

func (f *fakeRecorder) CacheLookup(hit bool) {
	if hit {
		f.hits.Add(1)
		return
	}
	f.misses.Add(1)
}

func TestUpstreamSource_Snapshot(t *testing.T) {
	bank := &fakeBank{
		agreements: []domain.Record{{"agreement_id": "own"}},
		products:   []domain.Record{{"productId": "p1"}},
	}
	external := &fakeExternal{loans: []domain.Record{{"agreement_id": "ext"}}}

	snapshot, err := NewUpstreamSource(bank, external).Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)

	assert.False(t, snapshot.Demo)
	assert.Equal(t, bank.agreements, snapshot.Agreements)
	assert.Equal(t, bank.products, snapshot.Products)
	assert.Equal(t, external.loans, snapshot.ExternalLoans)
	assert.Empty(t, snapshot.Loans)
}

func TestUpstreamSource_MissingAuthorization(t *testing.T) {
	bank := &fakeBank{}

	_, err := NewUpstreamSource(bank, nil).Snapshot(context.Background(), "   ")
	assert.ErrorIs(t, err, client.ErrMissingAuthorization)
	assert.Zero(t, bank.productCalls.Load())
}

func TestUpstreamSource_ExternalFailureIsTolerated(t *testing.T) {
	bank := &fakeBank{agreements: []domain.Record{{"agreement_id": "own"}}}
	recorder := &fakeRecorder{}

	source := NewUpstreamSource(bank, &fakeExternal{err: errors.New("connection refused")}, WithRecorder(recorder))
	snapshot, err := source.Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)

	assert.NotNil(t, snapshot.ExternalLoans)
	assert.Empty(t, snapshot.ExternalLoans)
	assert.Len(t, snapshot.Agreements, 1)
	assert.Equal(t, int32(1), recorder.externalFailures.Load())
}

func TestUpstreamSource_NoExternalProvider(t *testing.T) {
	snapshot, err := NewUpstreamSource(&fakeBank{}, nil).Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)
	assert.NotNil(t, snapshot.ExternalLoans)
	assert.Empty(t, snapshot.ExternalLoans)
}

func TestUpstreamSource_BankFailuresAbort(t *testing.T) {
	apiErr := &client.APIError{StatusCode: 401, Message: "unauthorized"}

	_, err := NewUpstreamSource(&fakeBank{agreementsErr: apiErr}, nil).Snapshot(context.Background(), "Bearer t")
	var target *client.APIError
	require.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), "fetch product agreements")

	_, err = NewUpstreamSource(&fakeBank{productsErr: client.ErrUpstream}, nil).Snapshot(context.Background(), "Bearer t")
	assert.ErrorIs(t, err, client.ErrUpstream)
	assert.Contains(t, err.Error(), "fetch loan products")
}

func TestUpstreamSource_ProductCache(t *testing.T) {
	bank := &fakeBank{products: []domain.Record{{"productId": "p1", "interestRate": 5.9}}}
	recorder := &fakeRecorder{}
	cache := NewMemoryCache()
	source := NewUpstreamSource(bank, nil, WithProductCache(cache, time.Minute), WithRecorder(recorder))

	first, err := source.Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)
	second, err := source.Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)

	assert.Equal(t, int32(1), bank.productCalls.Load())
	assert.Equal(t, int32(1), recorder.misses.Load())
	assert.Equal(t, int32(1), recorder.hits.Load())

	assert.Equal(t, 5.9, first.Products[0]["interestRate"])
	require.Len(t, second.Products, 1)
	assert.Equal(t, "p1", second.Products[0]["productId"])
	assert.Equal(t, json.Number("5.9"), second.Products[0]["interestRate"])
}

func TestUpstreamSource_CorruptCacheEntryRefetches(t *testing.T) {
	bank := &fakeBank{products: []domain.Record{{"productId": "p1"}}}
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(context.Background(), productCacheKey, "{not json", 0))

	source := NewUpstreamSource(bank, nil, WithProductCache(cache, time.Minute))
	snapshot, err := source.Snapshot(context.Background(), "Bearer t")
	require.NoError(t, err)

	assert.Len(t, snapshot.Products, 1)
	assert.Equal(t, int32(1), bank.productCalls.Load())

	raw, ok := cache.Get(context.Background(), productCacheKey)
	require.True(t, ok)
	assert.JSONEq(t, `[{"productId":"p1"}]`, raw)
}

func TestUpstreamSource_ZeroTTLDisablesCache(t *testing.T) {
	bank := &fakeBank{products: []domain.Record{}}
	source := NewUpstreamSource(bank, nil, WithProductCache(NewMemoryCache(), 0))

	for range 3 {
		_, err := source.Snapshot(context.Background(), "Bearer t")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), bank.productCalls.Load())
}

func TestUpstreamSource_CancelledExternalFetchIsNotCounted(t *testing.T) {
	recorder := &fakeRecorder{}
	bank := &fakeBank{agreementsErr: &client.APIError{StatusCode: 401, Message: "unauthorized"}}

	source := NewUpstreamSource(bank, &fakeExternal{waitForCancel: true}, WithRecorder(recorder))
	_, err := source.Snapshot(context.Background(), "Bearer t")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, recorder.externalFailures.Load())
}
