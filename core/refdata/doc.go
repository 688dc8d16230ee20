// Package refdata loads the static reference tables used for pricing.
//
// # Tables
//
//   - base_prices.json: item id to fixed price, for items without a market.
//   - reforges.json: reforge name to the id of the stone that applies it.
//   - gemstone_slots.json: unlock costs per slot type and the slot layout of
//     each item family, keyed by an item id pattern.
//
// Tables are read once at startup from either a local directory or an
// object storage bucket and are read-only afterwards.
package refdata
