package market

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"networth/core/feed"
	"networth/feature/item"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// maxPatterns bounds the number of memoised lookup patterns.
const maxPatterns = 256

// Auction is one active buy-now listing.
type Auction struct {
	Item  item.Item `json:"item"`
	Price float64   `json:"price"`
}

type auctionPage struct {
	Success    bool `json:"success"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Auctions   []struct {
		Bin         bool    `json:"bin"`
		ItemBytes   string  `json:"item_bytes"`
		StartingBid float64 `json:"starting_bid"`
	} `json:"auctions"`
}

type auctionSnapshot struct {
	auctions  []Auction
	refreshed time.Time
}

// AuctionHouse caches the buy-now auction listings.
type AuctionHouse struct {
	fetcher     feed.Fetcher
	cfg         feed.Config
	codec       *item.Codec
	logger      *zap.Logger
	now         func() time.Time
	maxAge      time.Duration
	concurrency int

	snap atomic.Pointer[auctionSnapshot]
	sf   singleflight.Group

	// patterns memoises compiled lookup patterns; invalid ones map to nil.
	// Literal ids are never stored and the memo stops growing at maxPatterns.
	patterns     sync.Map
	patternCount atomic.Int32

	requests  chan struct{}
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewAuctionHouse creates the cache, blocks until the first fetch completes,
// then starts the refresh worker. A failed first fetch is logged and leaves
// the cache empty. Close stops the worker.
func NewAuctionHouse(ctx context.Context, fetcher feed.Fetcher, codec *item.Codec, cfg feed.Config, logger *zap.Logger) *AuctionHouse {
	return newAuctionHouse(ctx, fetcher, codec, cfg, logger, time.Now)
}

func newAuctionHouse(ctx context.Context, fetcher feed.Fetcher, codec *item.Codec, cfg feed.Config, logger *zap.Logger, now func() time.Time) *AuctionHouse {
	maxAge := cfg.AuctionMaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	concurrency := cfg.AuctionPageConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	a := &AuctionHouse{
		fetcher:     fetcher,
		cfg:         cfg,
		codec:       codec,
		logger:      logger.With(zap.String("component", "auction_house")),
		now:         now,
		maxAge:      maxAge,
		concurrency: concurrency,
		requests:    make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	a.snap.Store(&auctionSnapshot{})

	if err := a.Refresh(ctx); err != nil {
		a.logger.Error("Initial auction fetch failed", zap.Error(err))
	}

	workerCtx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.run(workerCtx)

	return a
}

// run serves refresh requests until the worker context is cancelled.
func (a *AuctionHouse) run(ctx context.Context) {
	defer close(a.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.requests:
			if err := a.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				a.logger.Warn("Background auction refresh failed, serving previous snapshot", zap.Error(err))
			}
		}
	}
}

// RequestRefresh asks the worker for a refresh without waiting for it.
// A request is dropped when one is already queued.
func (a *AuctionHouse) RequestRefresh() {
	select {
	case a.requests <- struct{}{}:
	default:
	}
}

// Close stops the worker and waits for an in-flight refresh to abort.
func (a *AuctionHouse) Close() {
	a.closeOnce.Do(func() {
		a.cancel()
		<-a.done
	})
}

// Refresh walks every auction page and replaces the snapshot. Any page
// failure aborts the refresh and keeps the previous snapshot.
func (a *AuctionHouse) Refresh(ctx context.Context) error {
	_, err, _ := a.sf.Do("auctions", func() (interface{}, error) {
		return nil, a.refresh(ctx)
	})
	return err
}

func (a *AuctionHouse) refresh(ctx context.Context) error {
	start := a.now()

	first, err := a.fetchPage(ctx, 0)
	if err != nil {
		return err
	}

	total := max(first.TotalPages, 1)
	pages := make([][]Auction, total)
	skipped := make([]int, total)
	pages[0], skipped[0] = a.collect(first)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for p := 1; p < total; p++ {
		g.Go(func() error {
			page, err := a.fetchPage(gctx, p)
			if err != nil {
				return err
			}
			pages[p], skipped[p] = a.collect(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	count, undecodable := 0, 0
	for p := range pages {
		count += len(pages[p])
		undecodable += skipped[p]
	}
	auctions := make([]Auction, 0, count)
	for _, page := range pages {
		auctions = append(auctions, page...)
	}

	a.snap.Store(&auctionSnapshot{auctions: auctions, refreshed: a.now()})
	a.logger.Info("Auctions refreshed",
		zap.Int("pages", total),
		zap.Int("auctions", len(auctions)),
		zap.Int("undecodable", undecodable),
		zap.Duration("took", a.now().Sub(start)),
	)
	return nil
}

func (a *AuctionHouse) fetchPage(ctx context.Context, page int) (*auctionPage, error) {
	body, err := a.fetcher.Get(ctx, a.cfg.AuctionsURL(page))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch auction page %d: %w", page, err)
	}

	var resp auctionPage
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse auction page %d: %w", page, err)
	}
	if !resp.Success {
		return nil, errors.New("auction feed reported success=false")
	}
	return &resp, nil
}

// collect keeps the buy-now listings of a page whose items decode.
func (a *AuctionHouse) collect(page *auctionPage) ([]Auction, int) {
	out := make([]Auction, 0, len(page.Auctions))
	skipped := 0
	for _, entry := range page.Auctions {
		if !entry.Bin {
			continue
		}
		it, err := a.codec.Item(entry.ItemBytes)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, Auction{Item: it, Price: entry.StartingBid})
	}
	return out, skipped
}

// current returns the snapshot and, when it is too old, asks for a refresh.
func (a *AuctionHouse) current() *auctionSnapshot {
	snap := a.snap.Load()
	if a.now().Sub(snap.refreshed) > a.maxAge {
		a.RequestRefresh()
	}
	return snap
}

// compile returns the regular expression for pattern, or nil when the pattern
// is a literal id or does not compile; both cases match by equality only.
func (a *AuctionHouse) compile(pattern string) *regexp.Regexp {
	if regexp.QuoteMeta(pattern) == pattern {
		return nil
	}
	if v, ok := a.patterns.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	} else {
		re.Longest()
	}
	if a.patternCount.Add(1) <= maxPatterns {
		a.patterns.Store(pattern, re)
	}
	return re
}

// fullMatch reports whether re matches the whole of id. With leftmost-longest
// semantics any full match is the one found.
func fullMatch(re *regexp.Regexp, id string) bool {
	loc := re.FindStringIndex(id)
	return loc != nil && loc[0] == 0 && loc[1] == len(id)
}

// FindCheapest returns the lowest priced listing whose item id equals pattern
// or fully matches it as a regular expression. Ties go to the listing seen
// first.
func (a *AuctionHouse) FindCheapest(pattern string) (Auction, bool) {
	re := a.compile(pattern)

	var (
		best  Auction
		found bool
	)
	for _, auc := range a.current().auctions {
		id := auc.Item.ID
		if id != pattern && (re == nil || !fullMatch(re, id)) {
			continue
		}
		if !found || auc.Price < best.Price {
			best, found = auc, true
		}
	}
	return best, found
}

// FindClosest returns the listing whose item is most similar to it. A
// perfect score ends the scan. Listings of other items never match.
func (a *AuctionHouse) FindClosest(it item.Item) (Auction, bool) {
	var (
		best      Auction
		bestScore float64
	)
	for _, auc := range a.current().auctions {
		score := item.Similarity(it, auc.Item)
		if score == 1 {
			return auc, true
		}
		if score > bestScore {
			best, bestScore = auc, score
		}
	}
	return best, bestScore > 0
}

// Len returns the number of listings in the current snapshot.
func (a *AuctionHouse) Len() int {
	return len(a.snap.Load().auctions)
}

// LastRefresh returns when the current snapshot was fetched.
func (a *AuctionHouse) LastRefresh() time.Time {
	return a.snap.Load().refreshed
}
