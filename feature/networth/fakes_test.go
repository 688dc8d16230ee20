package networth_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"networth/core/refdata"
	"networth/feature/item"
	"networth/feature/market"
	"networth/feature/networth"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBazaar map[string]float64

func (f fakeBazaar) HasProduct(_ context.Context, id string) bool {
	_, ok := f[id]
	return ok
}

func (f fakeBazaar) MedianPrice(_ context.Context, id string) (float64, error) {
	p, ok := f[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", market.ErrNoSuchProduct, id)
	}
	return p, nil
}

func (f fakeBazaar) MedianPriceUnsafe(ctx context.Context, id string) float64 {
	p, _ := f.MedianPrice(ctx, id)
	return p
}

type fakeAuctions []market.Auction

func (f fakeAuctions) FindCheapest(pattern string) (market.Auction, bool) {
	re, _ := regexp.Compile("^(?:" + pattern + ")$")
	var (
		best  market.Auction
		found bool
	)
	for _, a := range f {
		if a.Item.ID != pattern && (re == nil || !re.MatchString(a.Item.ID)) {
			continue
		}
		if !found || a.Price < best.Price {
			best, found = a, true
		}
	}
	return best, found
}

func (f fakeAuctions) FindClosest(it item.Item) (market.Auction, bool) {
	var (
		best      market.Auction
		bestScore float64
	)
	for _, a := range f {
		score := item.Similarity(it, a.Item)
		if score == 1 {
			return a, true
		}
		if score > bestScore {
			best, bestScore = a, score
		}
	}
	return best, bestScore > 0
}

func newTables(t *testing.T, base map[string]float64) *refdata.Tables {
	t.Helper()
	tables, err := refdata.NewTables(base, map[string]string{
		"fabled":   "DRAGON_CLAW",
		"withered": "WITHER_BLOOD",
	}, refdata.GemstoneCatalog{
		Types: map[string]refdata.GemstoneSlotType{
			"COMBAT_T1": {CoinCost: 250000, ItemCost: map[string]int{"FINE_JASPER_GEM": 2}},
			"COMBAT_T2": {CoinCost: 100000},
		},
		Items: map[string]map[string]string{
			"HYPERION|VALKYRIE": {"COMBAT_0": "COMBAT_T1", "COMBAT_1": "COMBAT_T2"},
		},
	})
	require.NoError(t, err)
	return tables
}

func plain(id string) item.Item {
	return item.Item{
		ID:                    id,
		Count:                 1,
		Enchantments:          map[string]int{},
		Gemstones:             []item.Gemstone{},
		UnlockedGemstoneSlots: []string{},
	}
}

func newEngine(t *testing.T, bazaar fakeBazaar, auctions fakeAuctions, base map[string]float64) *networth.Engine {
	t.Helper()
	return networth.NewEngine(bazaar, auctions, newTables(t, base), item.NewCodec(zap.NewNop()), zap.NewNop())
}
