package market

import (
	"context"
	"sync"
	"testing"
	"time"

	"networth/core/feed"
	"networth/core/feed/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testFeed = feed.Config{BaseURL: "http://feed.test", BazaarMaxAge: 15 * time.Minute, AuctionMaxAge: time.Hour, AuctionPageConcurrency: 2}

const bazaarURL = "http://feed.test/v2/skyblock/bazaar"

func TestBazaar_Lookups(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, bazaarURL).Return(bazaarBody(map[string][2]float64{
		"ENCHANTED_DIAMOND": {1200, 1000},
	}), nil).Once()

	b := newBazaar(context.Background(), fetcher, testFeed, zap.NewNop(), newTestClock().Now)
	ctx := context.Background()

	assert.True(t, b.HasProduct(ctx, "ENCHANTED_DIAMOND"))
	assert.False(t, b.HasProduct(ctx, "DIRT"))

	price, err := b.MedianPrice(ctx, "ENCHANTED_DIAMOND")
	require.NoError(t, err)
	assert.Equal(t, 1100.0, price)

	_, err = b.MedianPrice(ctx, "DIRT")
	assert.ErrorIs(t, err, ErrNoSuchProduct)
	assert.Equal(t, 0.0, b.MedianPriceUnsafe(ctx, "DIRT"))

	q, ok := b.Quote(ctx, "ENCHANTED_DIAMOND")
	assert.True(t, ok)
	assert.Equal(t, ProductQuote{BuyPrice: 1200, SellPrice: 1000}, q)

	assert.Equal(t, 1, b.Products())
	fetcher.AssertNumberOfCalls(t, "Get", 1)
}

func TestBazaar_InitialFailureLeavesEmpty(t *testing.T) {
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, bazaarURL).Return(nil, assert.AnError)

	b := newBazaar(context.Background(), fetcher, testFeed, zap.NewNop(), newTestClock().Now)

	assert.Zero(t, b.Products())
	assert.True(t, b.LastRefresh().IsZero())
	assert.False(t, b.HasProduct(context.Background(), "ENCHANTED_DIAMOND"))
}

func TestBazaar_StaleRefreshesSynchronously(t *testing.T) {
	clock := newTestClock()
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, bazaarURL).Return(bazaarBody(map[string][2]float64{"X": {10, 10}}), nil).Once()
	fetcher.On("Get", mock.Anything, bazaarURL).Return(bazaarBody(map[string][2]float64{"X": {30, 30}}), nil).Once()

	b := newBazaar(context.Background(), fetcher, testFeed, zap.NewNop(), clock.Now)
	ctx := context.Background()

	clock.Advance(14 * time.Minute)
	price, _ := b.MedianPrice(ctx, "X")
	assert.Equal(t, 10.0, price, "fresh snapshot is served as is")

	clock.Advance(2 * time.Minute)
	price, _ = b.MedianPrice(ctx, "X")
	assert.Equal(t, 30.0, price, "stale snapshot is replaced before answering")
	assert.Equal(t, clock.Now(), b.LastRefresh())
	fetcher.AssertNumberOfCalls(t, "Get", 2)
}

func TestBazaar_FailedRefreshKeepsSnapshot(t *testing.T) {
	clock := newTestClock()
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, bazaarURL).Return(bazaarBody(map[string][2]float64{"X": {10, 10}}), nil).Once()
	fetcher.On("Get", mock.Anything, bazaarURL).Return([]byte(`{"success":false}`), nil).Once()
	fetcher.On("Get", mock.Anything, bazaarURL).Return(nil, assert.AnError).Once()

	b := newBazaar(context.Background(), fetcher, testFeed, zap.NewNop(), clock.Now)
	ctx := context.Background()

	clock.Advance(time.Hour)
	price, err := b.MedianPrice(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, 10.0, price)

	// Retries are throttled right after a failure.
	_, _ = b.MedianPrice(ctx, "X")
	fetcher.AssertNumberOfCalls(t, "Get", 2)

	clock.Advance(time.Minute)
	price, _ = b.MedianPrice(ctx, "X")
	assert.Equal(t, 10.0, price)
	fetcher.AssertNumberOfCalls(t, "Get", 3)
}

func TestBazaar_ConcurrentStaleLookupsShareRefresh(t *testing.T) {
	clock := newTestClock()
	fetcher := new(mocks.Fetcher)
	fetcher.On("Get", mock.Anything, bazaarURL).Return(bazaarBody(map[string][2]float64{"X": {10, 10}}), nil).Once()
	fetcher.On("Get", mock.Anything, bazaarURL).
		After(50*time.Millisecond).
		Return(bazaarBody(map[string][2]float64{"X": {20, 20}}), nil).Once()

	b := newBazaar(context.Background(), fetcher, testFeed, zap.NewNop(), clock.Now)
	clock.Advance(16 * time.Minute)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			price, err := b.MedianPrice(context.Background(), "X")
			assert.NoError(t, err)
			assert.Equal(t, 20.0, price)
		}()
	}
	wg.Wait()

	fetcher.AssertNumberOfCalls(t, "Get", 2)
}

func TestProductQuote_Median(t *testing.T) {
	assert.Equal(t, 7.5, ProductQuote{BuyPrice: 10, SellPrice: 5}.Median())
}
