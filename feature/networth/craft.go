package networth

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"networth/feature/item"

	"go.uber.org/zap"
)

// BitCost is the coin value of one bit, the currency enrichments are bought with.
const BitCost = 1200

const (
	productRecombobulator = "RECOMBOBULATOR_3000"
	productHotPotatoBook  = "HOT_POTATO_BOOK"
	productFumingBook     = "FUMING_POTATO_BOOK"
	productArtOfWar       = "THE_ART_OF_WAR"
	productArtOfPeace     = "THE_ART_OF_PEACE"

	enrichmentPattern = "^TALISMAN_ENRICHMENT_[A-Z_]+$"
	enrichmentBits    = 5000

	// Reforge with no purchasable stone.
	reforgeGreaterSpook = "greater_spook"

	// Upgrade levels above this one are bought with master stars.
	masterStarThreshold = 5
)

var masterStars = []string{
	"FIRST_MASTER_STAR",
	"SECOND_MASTER_STAR",
	"THIRD_MASTER_STAR",
	"FOURTH_MASTER_STAR",
	"FIFTH_MASTER_STAR",
}

// CraftCost returns what it costs to assemble it from market parts: the base
// price plus every applied modifier, multiplied by the stack size.
func (e *Engine) CraftCost(ctx context.Context, it item.Item) float64 {
	price := e.basePrice(ctx, it.ID)

	if it.Reforge != "" && it.Reforge != reforgeGreaterSpook {
		if stone, ok := e.ref.ReforgeStone(it.Reforge); ok {
			price += e.bazaar.MedianPriceUnsafe(ctx, stone)
		} else {
			e.logger.Warn("Unknown reforge", zap.String("reforge", it.Reforge), zap.String("item", it.ID))
		}
	}
	if it.UpgradeLevel > 0 {
		price += e.upgradeCost(ctx, it)
	}
	if it.Recombobulated {
		price += e.bazaar.MedianPriceUnsafe(ctx, productRecombobulator)
	}
	if it.HotPotatoBooks > 0 {
		price += e.bazaar.MedianPriceUnsafe(ctx, productHotPotatoBook) * float64(it.HotPotatoBooks)
	}
	if it.FumingPotatoBooks > 0 {
		price += e.bazaar.MedianPriceUnsafe(ctx, productFumingBook) * float64(it.FumingPotatoBooks)
	}
	if it.ArtOfWar {
		price += e.bazaar.MedianPriceUnsafe(ctx, productArtOfWar)
	}
	if it.ArtOfPeace {
		price += e.bazaar.MedianPriceUnsafe(ctx, productArtOfPeace)
	}
	if it.Enriched {
		if auc, ok := e.auctions.FindCheapest(enrichmentPattern); ok {
			price += auc.Price
		} else {
			price += enrichmentBits * BitCost
		}
	}
	if it.Dye != "" {
		if auc, ok := e.auctions.FindCheapest(it.Dye); ok {
			price += auc.Price
		}
	}

	price += e.enchantmentCost(ctx, it)
	price += e.gemstoneSlotCost(ctx, it)
	for _, gem := range it.Gemstones {
		price += e.bazaar.MedianPriceUnsafe(ctx, gem.ID())
	}

	return price * float64(it.Count)
}

// basePrice resolves the clean price of id: reference table, then bazaar,
// then the cheapest auction.
func (e *Engine) basePrice(ctx context.Context, id string) float64 {
	price, _ := e.ref.BasePrice(id)

	if price == 0 && e.bazaar.HasProduct(ctx, id) {
		price = e.bazaar.MedianPriceUnsafe(ctx, id)
	}
	if price == 0 {
		if auc, ok := e.auctions.FindCheapest(id); ok {
			price = auc.Price
		}
	}
	return price
}

// upgradeCost prices stars. Only master stars on dungeon items are priced;
// regular stars and non-dungeon upgrades contribute nothing yet.
func (e *Engine) upgradeCost(ctx context.Context, it item.Item) float64 {
	if !it.Dungeonized {
		return 0
	}

	var cost float64
	for i, star := range masterStars {
		if it.UpgradeLevel > masterStarThreshold+i {
			cost += e.bazaar.MedianPriceUnsafe(ctx, star)
		}
	}
	return cost
}

func (e *Engine) enchantmentCost(ctx context.Context, it item.Item) float64 {
	names := make([]string, 0, len(it.Enchantments))
	for name := range it.Enchantments {
		names = append(names, name)
	}
	sort.Strings(names)

	var cost float64
	for _, name := range names {
		cost += e.bazaar.MedianPriceUnsafe(ctx, EnchantmentID(name, it.Enchantments[name]))
	}
	return cost
}

func (e *Engine) gemstoneSlotCost(ctx context.Context, it item.Item) float64 {
	var cost float64
	for _, slot := range e.ref.UnlockedSlots(it.ID, it.UnlockedGemstoneSlots) {
		slotCost := float64(slot.CoinCost)

		ids := make([]string, 0, len(slot.ItemCost))
		for id := range slot.ItemCost {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			slotCost += e.bazaar.MedianPriceUnsafe(ctx, id) * float64(slot.ItemCost[id])
		}

		cost += slotCost
	}
	return cost
}

// EnchantmentID returns the bazaar product id of an enchanted book,
// e.g. ENCHANTMENT_SHARPNESS_6.
func EnchantmentID(name string, level int) string {
	return fmt.Sprintf("ENCHANTMENT_%s_%d", strings.ToUpper(name), level)
}
