// Package integrity provides health checks for the valuation service.
//
// # Checks Provided
//
//   - Structure: Checks that the reference folder exists in the storage bucket.
//   - Reference: Verifies the presence of every reference table (base prices, reforges, gemstone slots).
//   - Market: Reports when the bazaar and auction caches last refreshed and flags stale ones.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/reference : Runs reference check.
//   - GET /integrity/market : Runs market freshness check.
package integrity
