package cmd

import (
	"context"
	"fmt"
	"time"

	"networth/core/config"
	"networth/core/feed"
	"networth/core/logger"
	"networth/core/refdata"
	"networth/core/storage"
	"networth/feature/item"
	"networth/feature/market"
	"networth/feature/networth"

	"go.uber.org/zap"
)

// runtime holds the wired valuation stack shared by the commands.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Client
	tables   *refdata.Tables
	bazaar   *market.Bazaar
	auctions *market.AuctionHouse
	engine   *networth.Engine
}

// newRuntime loads configuration and reference data and fills both market
// caches. Feed failures leave the caches empty without failing startup.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.Reference.IsValidSource() {
		return nil, fmt.Errorf("invalid reference source %q", cfg.Reference.Source)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	src, err := refdata.NewSource(cfg.Reference, store, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	tables, err := refdata.Load(ctx, src, logg)
	if err != nil {
		logg.Warn("Reference data is incomplete", zap.Error(err))
	}

	fetcher := feed.NewClient(cfg.Feed)
	codec := item.NewCodec(logg)
	bazaar := market.NewBazaar(ctx, fetcher, cfg.Feed, logg)
	auctions := market.NewAuctionHouse(ctx, fetcher, codec, cfg.Feed, logg)

	logg.Info("Market data loaded",
		zap.Int("products", bazaar.Products()),
		zap.Int("auctions", auctions.Len()),
	)

	return &runtime{
		cfg:      cfg,
		logger:   logg,
		store:    store,
		tables:   tables,
		bazaar:   bazaar,
		auctions: auctions,
		engine:   networth.NewEngine(bazaar, auctions, tables, codec, logg),
	}, nil
}

// Close stops the auction worker and flushes the logger.
func (r *runtime) Close() {
	r.auctions.Close()
	_ = r.logger.Sync()
}

func feedTimeout(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}
