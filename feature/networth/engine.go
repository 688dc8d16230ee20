package networth

import (
	"context"

	"networth/core/refdata"
	"networth/feature/item"
	"networth/feature/market"

	"go.uber.org/zap"
)

// PriceSource is the continuous market as seen by the engine.
type PriceSource interface {
	HasProduct(ctx context.Context, id string) bool
	MedianPrice(ctx context.Context, id string) (float64, error)
	MedianPriceUnsafe(ctx context.Context, id string) float64
}

// AuctionSource is the buy-now auction market as seen by the engine.
type AuctionSource interface {
	FindCheapest(pattern string) (market.Auction, bool)
	FindClosest(it item.Item) (market.Auction, bool)
}

// ReferenceData is the static lookup tables as seen by the engine.
type ReferenceData interface {
	BasePrice(id string) (float64, bool)
	ReforgeStone(reforge string) (string, bool)
	UnlockedSlots(id string, unlocked []string) []refdata.GemstoneSlotType
}

// Engine values items and players. It holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	bazaar   PriceSource
	auctions AuctionSource
	ref      ReferenceData
	codec    *item.Codec
	logger   *zap.Logger
}

// NewEngine creates a new valuation engine. codec is shared with the auction
// cache so both decode through the same instance.
func NewEngine(bazaar PriceSource, auctions AuctionSource, ref ReferenceData, codec *item.Codec, logger *zap.Logger) *Engine {
	return &Engine{
		bazaar:   bazaar,
		auctions: auctions,
		ref:      ref,
		codec:    codec,
		logger:   logger.With(zap.String("component", "networth")),
	}
}

// Codec returns the item codec used by the engine.
func (e *Engine) Codec() *item.Codec {
	return e.codec
}
