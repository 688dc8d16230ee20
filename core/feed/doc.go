// Package feed fetches raw market data from the game API.
//
// The Fetcher interface is the only capability the market caches need, which
// keeps them testable with core/feed/mocks. NewClient returns the HTTP
// implementation, configured with the same strict transport timeouts as the
// storage client and the API-Key header when a key is configured.
package feed
