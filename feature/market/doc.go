// Package market keeps bounded-staleness snapshots of the two price feeds.
//
// # Bazaar
//
// The continuous market. Every lookup checks the snapshot age and, once it is
// older than the configured maximum, refreshes synchronously before
// answering. Concurrent callers share a single refresh.
//
// # AuctionHouse
//
// The buy-now auction listings. A stale lookup hands a refresh request to the
// cache's single worker goroutine and answers from the current snapshot
// without waiting. At most one refresh runs and at most one is queued.
//
// Both caches swap their snapshot with a single atomic pointer store, so a
// reader never sees a half-populated snapshot. A failed refresh keeps the
// previous snapshot.
package market
