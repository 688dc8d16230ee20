package feed

import (
	"strconv"
	"time"
)

// Config holds configuration for the market feed endpoints.
type Config struct {
	// BaseURL is the root of the game API, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.hypixel.net"`
	// APIKey is sent in the API-Key header when set.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds connection setup and the wait for the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// BazaarMaxAge is how old the bazaar snapshot may get before a lookup refreshes it.
	BazaarMaxAge time.Duration `mapstructure:"bazaar_max_age" default:"15m"`
	// AuctionMaxAge is how old the auction snapshot may get before a refresh is requested.
	AuctionMaxAge time.Duration `mapstructure:"auction_max_age" default:"1h"`
	// AuctionPageConcurrency limits concurrent auction page requests.
	AuctionPageConcurrency int `mapstructure:"auction_page_concurrency" default:"8"`
	// WarmSchedule is a cron expression for proactive refreshes in serve mode.
	// Empty disables the schedule.
	WarmSchedule string `mapstructure:"warm_schedule" default:"*/10 * * * *"`
}

// BazaarURL returns the bazaar endpoint.
func (c Config) BazaarURL() string {
	return c.BaseURL + "/v2/skyblock/bazaar"
}

// AuctionsURL returns the endpoint for one auction page.
func (c Config) AuctionsURL(page int) string {
	return c.BaseURL + "/v2/skyblock/auctions?page=" + strconv.Itoa(page)
}
