package market

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type refresher interface {
	Refresh(ctx context.Context) error
}

type refreshRequester interface {
	RequestRefresh()
}

// Warmer refreshes the caches on a cron schedule so that lookups rarely find
// a stale snapshot.
type Warmer struct {
	cron     *cron.Cron
	bazaar   refresher
	auctions refreshRequester
	timeout  time.Duration
	logger   *zap.Logger
}

// NewWarmer creates a stopped warmer for both caches. timeout bounds a
// single bazaar refresh.
func NewWarmer(bazaar *Bazaar, auctions *AuctionHouse, timeout time.Duration, logger *zap.Logger) *Warmer {
	return newWarmer(bazaar, auctions, timeout, logger)
}

func newWarmer(bazaar refresher, auctions refreshRequester, timeout time.Duration, logger *zap.Logger) *Warmer {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Warmer{
		cron:     cron.New(),
		bazaar:   bazaar,
		auctions: auctions,
		timeout:  timeout,
		logger:   logger.With(zap.String("component", "warmer")),
	}
}

// Schedule registers a warm pass on a five-field cron expression.
func (w *Warmer) Schedule(spec string) error {
	if _, err := w.cron.AddFunc(spec, w.warm); err != nil {
		return err
	}
	w.logger.Info("Market warm pass scheduled", zap.String("schedule", spec))
	return nil
}

// Warm refreshes the bazaar and queues an auction refresh.
func (w *Warmer) Warm(ctx context.Context) error {
	w.auctions.RequestRefresh()
	return w.bazaar.Refresh(ctx)
}

func (w *Warmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.Warm(ctx); err != nil {
		w.logger.Warn("Bazaar warm refresh failed", zap.Error(err))
		return
	}
	w.logger.Debug("Market warm pass completed")
}

// Start runs the schedule in the background.
func (w *Warmer) Start() {
	w.cron.Start()
}

// Stop halts the schedule and waits for a running pass to finish.
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}
