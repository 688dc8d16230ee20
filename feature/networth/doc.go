// Package networth prices items and aggregates a player's assets.
//
// # Engine
//
// The Engine combines the reference tables with both market caches:
//
//   - CraftCost adds the base price of an item to the market cost of every
//     modifier applied to it, then scales by the stack size.
//   - Appraise cross-checks the craft cost against the closest buy-now
//     auction. The auction-derived value is never allowed above the craft
//     cost, so an inflated listing cannot inflate a valuation.
//   - Calculate walks a profile document and fills a Networth breakdown.
//
// # HTTP Endpoints
//
//   - POST /networth/:player : Values the profile in the request body.
//   - POST /items/value : Values a single encoded item stack.
package networth
