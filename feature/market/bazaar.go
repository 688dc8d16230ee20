package market

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"networth/core/feed"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoSuchProduct is returned by strict lookups for unknown product ids.
var ErrNoSuchProduct = errors.New("no such product")

// retryInterval throttles refresh attempts after a failure so that a dead
// feed does not turn every lookup into a network call.
const retryInterval = 30 * time.Second

// ProductQuote is the posted buy and sell price of a bazaar product.
type ProductQuote struct {
	BuyPrice  float64 `json:"buyPrice"`
	SellPrice float64 `json:"sellPrice"`
}

// Median returns the midpoint of the buy and sell price.
func (q ProductQuote) Median() float64 {
	return (q.BuyPrice + q.SellPrice) / 2
}

type bazaarResponse struct {
	Success  bool `json:"success"`
	Products map[string]struct {
		QuickStatus ProductQuote `json:"quick_status"`
	} `json:"products"`
}

type bazaarSnapshot struct {
	products  map[string]ProductQuote
	refreshed time.Time
}

// Bazaar caches the continuous market feed.
type Bazaar struct {
	fetcher feed.Fetcher
	url     string
	maxAge  time.Duration
	logger  *zap.Logger
	now     func() time.Time

	snap        atomic.Pointer[bazaarSnapshot]
	lastFailure atomic.Int64
	sf          singleflight.Group
}

// NewBazaar creates the cache and blocks until the first fetch completes.
// A failed first fetch is logged and leaves the cache empty.
func NewBazaar(ctx context.Context, fetcher feed.Fetcher, cfg feed.Config, logger *zap.Logger) *Bazaar {
	return newBazaar(ctx, fetcher, cfg, logger, time.Now)
}

func newBazaar(ctx context.Context, fetcher feed.Fetcher, cfg feed.Config, logger *zap.Logger, now func() time.Time) *Bazaar {
	maxAge := cfg.BazaarMaxAge
	if maxAge <= 0 {
		maxAge = 15 * time.Minute
	}

	b := &Bazaar{
		fetcher: fetcher,
		url:     cfg.BazaarURL(),
		maxAge:  maxAge,
		logger:  logger.With(zap.String("component", "bazaar")),
		now:     now,
	}
	b.snap.Store(&bazaarSnapshot{products: map[string]ProductQuote{}})

	if err := b.Refresh(ctx); err != nil {
		b.logger.Error("Initial bazaar fetch failed", zap.Error(err))
	}
	return b
}

// Refresh fetches the feed and replaces the snapshot. Concurrent calls share
// one fetch. On failure the previous snapshot is kept.
func (b *Bazaar) Refresh(ctx context.Context) error {
	_, err, _ := b.sf.Do("bazaar", func() (interface{}, error) {
		err := b.refresh(ctx)
		if err != nil {
			b.lastFailure.Store(b.now().UnixNano())
		}
		return nil, err
	})
	return err
}

func (b *Bazaar) refresh(ctx context.Context) error {
	body, err := b.fetcher.Get(ctx, b.url)
	if err != nil {
		return fmt.Errorf("failed to fetch bazaar: %w", err)
	}

	var resp bazaarResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse bazaar: %w", err)
	}
	if !resp.Success {
		return errors.New("bazaar feed reported success=false")
	}

	products := make(map[string]ProductQuote, len(resp.Products))
	for id, p := range resp.Products {
		products[id] = p.QuickStatus
	}

	b.snap.Store(&bazaarSnapshot{products: products, refreshed: b.now()})
	b.logger.Debug("Bazaar refreshed", zap.Int("products", len(products)))
	return nil
}

// current returns the snapshot, refreshing it first when it is too old.
// Within retryInterval of a failed refresh, stale lookups serve the previous
// snapshot without retrying.
func (b *Bazaar) current(ctx context.Context) *bazaarSnapshot {
	snap := b.snap.Load()
	now := b.now()
	if now.Sub(snap.refreshed) <= b.maxAge {
		return snap
	}
	if now.Sub(time.Unix(0, b.lastFailure.Load())) < retryInterval {
		return snap
	}

	if err := b.Refresh(ctx); err != nil {
		b.logger.Warn("Bazaar refresh failed, serving previous snapshot",
			zap.Error(err),
			zap.Time("last_refresh", snap.refreshed),
		)
	}
	return b.snap.Load()
}

// HasProduct reports whether id is traded on the bazaar.
func (b *Bazaar) HasProduct(ctx context.Context, id string) bool {
	_, ok := b.current(ctx).products[id]
	return ok
}

// Quote returns the buy and sell price of id.
func (b *Bazaar) Quote(ctx context.Context, id string) (ProductQuote, bool) {
	q, ok := b.current(ctx).products[id]
	return q, ok
}

// MedianPrice returns the median price of id, or an error wrapping
// ErrNoSuchProduct.
func (b *Bazaar) MedianPrice(ctx context.Context, id string) (float64, error) {
	q, ok := b.current(ctx).products[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoSuchProduct, id)
	}
	return q.Median(), nil
}

// MedianPriceUnsafe is MedianPrice that logs a miss and returns 0.
func (b *Bazaar) MedianPriceUnsafe(ctx context.Context, id string) float64 {
	price, err := b.MedianPrice(ctx, id)
	if err != nil {
		b.logger.Warn("Bazaar product not found", zap.String("product", id))
		return 0
	}
	return price
}

// Products returns the number of products in the current snapshot.
func (b *Bazaar) Products() int {
	return len(b.snap.Load().products)
}

// LastRefresh returns when the current snapshot was fetched. The zero time
// means no fetch has succeeded yet.
func (b *Bazaar) LastRefresh() time.Time {
	return b.snap.Load().refreshed
}
