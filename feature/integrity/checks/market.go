package checks

import (
	"time"
)

// Refresher is a market cache that records when it was last refreshed.
type Refresher interface {
	LastRefresh() time.Time
}

// Feed is a named market cache and the age after which it counts as stale.
type Feed struct {
	Name   string
	Cache  Refresher
	MaxAge time.Duration
}

// FeedStatus reports the freshness of one market cache.
type FeedStatus struct {
	Name        string    `json:"name"`
	LastRefresh time.Time `json:"last_refresh"`
	Age         string    `json:"age"`
	MaxAge      string    `json:"max_age"`
	Stale       bool      `json:"stale"`
}

// MarketReport is the result of a market freshness check.
type MarketReport struct {
	Healthy bool         `json:"healthy"`
	Feeds   []FeedStatus `json:"feeds"`
}

// CheckMarket reports the age of every feed at now. A feed that never
// refreshed is stale.
func CheckMarket(feeds []Feed, now time.Time) *MarketReport {
	report := &MarketReport{Healthy: true, Feeds: make([]FeedStatus, 0, len(feeds))}

	for _, f := range feeds {
		last := f.Cache.LastRefresh()
		status := FeedStatus{
			Name:        f.Name,
			LastRefresh: last,
			MaxAge:      f.MaxAge.String(),
			Stale:       true,
		}
		if !last.IsZero() {
			age := now.Sub(last)
			status.Age = age.Truncate(time.Second).String()
			status.Stale = age > f.MaxAge
		}
		if status.Stale {
			report.Healthy = false
		}
		report.Feeds = append(report.Feeds, status)
	}
	return report
}
