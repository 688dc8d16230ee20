package networth_test

import (
	"context"
	"testing"

	"networth/feature/item"
	"networth/feature/networth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppraise(t *testing.T) {
	ctx := context.Background()
	bazaar := fakeBazaar{"RECOMBOBULATOR_3000": 7_000_000, "HOT_POTATO_BOOK": 100_000}
	base := map[string]float64{"HYPERION": 1_000_000_000, "VALKYRIE": 500_000_000}

	t.Run("NoMatchUsesCraftCost", func(t *testing.T) {
		e := newEngine(t, bazaar, nil, base)
		a := e.Appraise(ctx, plain("HYPERION"))
		assert.Equal(t, networth.OutcomeCraftOnly, a.Outcome)
		assert.Equal(t, 1_000_000_000.0, a.Value)
		assert.Equal(t, a.CraftCost, a.Value)
		assert.Nil(t, a.Match)
	})

	t.Run("AuctionAdjustedByCraftDifference", func(t *testing.T) {
		listed := plain("HYPERION")
		listed.Recombobulated = true
		e := newEngine(t, bazaar, fakeAuctions{{Item: listed, Price: 950_000_000}}, base)

		a := e.Appraise(ctx, plain("HYPERION"))
		require.NotNil(t, a.Match)
		assert.Equal(t, networth.OutcomeAuction, a.Outcome)
		// The listing carries a 7M recombobulator the query lacks.
		assert.Equal(t, 943_000_000.0, a.Value)
	})

	t.Run("InflatedAuctionCappedAtCraftCost", func(t *testing.T) {
		e := newEngine(t, bazaar, fakeAuctions{{Item: plain("HYPERION"), Price: 5_000_000_000}}, base)

		a := e.Appraise(ctx, plain("HYPERION"))
		assert.Equal(t, networth.OutcomeCraftFloor, a.Outcome)
		assert.Equal(t, 1_000_000_000.0, a.Value)
		assert.Equal(t, 5_000_000_000.0, a.Match.Price)
	})

	t.Run("OtherItemsIgnored", func(t *testing.T) {
		e := newEngine(t, bazaar, fakeAuctions{{Item: plain("VALKYRIE"), Price: 1}}, base)
		a := e.Appraise(ctx, plain("HYPERION"))
		assert.Equal(t, networth.OutcomeCraftOnly, a.Outcome)
	})

	t.Run("ValueMatchesAppraisal", func(t *testing.T) {
		e := newEngine(t, bazaar, fakeAuctions{{Item: plain("HYPERION"), Price: 800_000_000}}, base)
		assert.Equal(t, e.Appraise(ctx, plain("HYPERION")).Value, e.Value(ctx, plain("HYPERION")))
	})
}

func TestValue_NeverExceedsCraftCostWithMatch(t *testing.T) {
	ctx := context.Background()
	bazaar := fakeBazaar{"RECOMBOBULATOR_3000": 7_000_000, "HOT_POTATO_BOOK": 100_000}
	base := map[string]float64{"HYPERION": 1_000_000_000}

	variants := []func(*item.Item){
		func(*item.Item) {},
		func(i *item.Item) { i.Recombobulated = true },
		func(i *item.Item) { i.HotPotatoBooks = 10 },
		func(i *item.Item) { i.Recombobulated = true; i.HotPotatoBooks = 4 },
	}
	prices := []float64{1, 500_000_000, 1_000_000_000, 3_000_000_000}

	for _, listedMut := range variants {
		for _, price := range prices {
			listed := plain("HYPERION")
			listedMut(&listed)
			e := newEngine(t, bazaar, fakeAuctions{{Item: listed, Price: price}}, base)

			for _, queryMut := range variants {
				query := plain("HYPERION")
				queryMut(&query)
				assert.LessOrEqual(t, e.Value(ctx, query), e.CraftCost(ctx, query))
			}
		}
	}
}

func TestNewEngine_UsesGivenCodec(t *testing.T) {
	codec := item.NewCodec(zap.NewNop())
	e := networth.NewEngine(fakeBazaar{}, nil, newTables(t, nil), codec, zap.NewNop())
	assert.Same(t, codec, e.Codec())
}

func TestExoticHooks(t *testing.T) {
	e := newEngine(t, fakeBazaar{}, nil, nil)
	it := plain("HYPERION")

	assert.False(t, e.IsExotic(it))
	assert.Zero(t, e.ExoticValue(context.Background(), it))
}

func TestExoticCleanliness(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*item.Item)
		want   float64
	}{
		{"Clean", func(*item.Item) {}, 1},
		{"Reforged", func(i *item.Item) { i.Reforge = "fabled" }, 0.95},
		{"HotPotato", func(i *item.Item) { i.HotPotatoBooks = 1; i.Reforge = "fabled" }, 0.9},
		{"Recombobulated", func(i *item.Item) { i.Recombobulated = true; i.HotPotatoBooks = 10 }, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := plain("HYPERION")
			tt.mutate(&it)
			assert.Equal(t, tt.want, networth.ExoticCleanliness(it))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "craft_floor", networth.OutcomeCraftFloor.String())
	assert.Equal(t, "outcome(42)", networth.Outcome(42).String())

	text, err := networth.OutcomeAuction.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "auction", string(text))
}
