package integrity

import (
	"context"
	"time"

	"networth/core/storage"
	"networth/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	feeds  []checks.Feed
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new integrity service. Reference tables are expected
// under prefix in bucket; feeds are the market caches whose freshness is
// reported.
func NewService(client storage.Client, bucket, prefix string, feeds []checks.Feed, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		feeds:  feeds,
		logger: logger,
		now:    time.Now,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.prefix))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckReference returns the reference tables missing from the bucket.
func (s *Service) CheckReference(ctx context.Context) ([]string, error) {
	return checks.CheckReference(ctx, s.client, s.bucket, s.prefix)
}

// CheckMarket reports how fresh the market caches are.
func (s *Service) CheckMarket() *checks.MarketReport {
	return checks.CheckMarket(s.feeds, s.now())
}
