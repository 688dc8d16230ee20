package networth

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"networth/feature/item"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profileDoc struct {
	Members map[string]json.RawMessage `json:"members"`
	Banking *struct {
		Balance float64 `json:"balance"`
	} `json:"banking"`
}

type inventoryBlob struct {
	Type int    `json:"type"`
	Data string `json:"data"`
}

type memberDoc struct {
	Currencies struct {
		CoinPurse float64 `json:"coin_purse"`
		Essence   map[string]struct {
			Current float64 `json:"current"`
		} `json:"essence"`
	} `json:"currencies"`
	Inventory struct {
		SacksCounts map[string]float64 `json:"sacks_counts"`
		BagContents struct {
			TalismanBag *inventoryBlob `json:"talisman_bag"`
			FishingBag  *inventoryBlob `json:"fishing_bag"`
		} `json:"bag_contents"`
		WardrobeContents *inventoryBlob `json:"wardrobe_contents"`
	} `json:"inventory"`
}

// Calculate values every asset of playerID in a profile document. Dashes in
// playerID are ignored.
//
// Active armor and equipment, inventory, storage, ender chest, vault, pets,
// museum, quiver and potion bag are not valued yet and stay at 0.
func (e *Engine) Calculate(ctx context.Context, profile []byte, playerID string) (*Networth, error) {
	var doc profileDoc
	if err := json.Unmarshal(profile, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProfile, err)
	}
	if doc.Members == nil {
		e.logger.Error("Profile has no members", zap.String("player", playerID))
		return nil, fmt.Errorf("%w: no members collection", ErrMalformedProfile)
	}

	uuid := strings.ReplaceAll(playerID, "-", "")
	raw, ok := doc.Members[uuid]
	if !ok {
		e.logger.Error("Player is not a member of the profile", zap.String("player", uuid))
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlayer, uuid)
	}

	var m memberDoc
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: member %s: %v", ErrMalformedProfile, uuid, err)
	}

	nw := &Networth{Owner: uuid}

	if doc.Banking != nil {
		nw.Bank = doc.Banking.Balance
	}
	nw.Purse = m.Currencies.CoinPurse

	nw.Sacks = e.sacks(ctx, m.Inventory.SacksCounts)
	nw.Accessories = e.itemsValue(ctx, m.Inventory.BagContents.TalismanBag, false)
	nw.FishingBag = e.fishingBag(ctx, m.Inventory.BagContents.FishingBag)

	nw.Wardrobe = e.itemsValue(ctx, m.Inventory.WardrobeContents, true)

	essence := make(map[string]float64, len(m.Currencies.Essence))
	for kind, entry := range m.Currencies.Essence {
		essence[kind] = entry.Current
	}
	nw.Essence = e.essence(ctx, essence)

	e.logger.Debug("Networth calculated", zap.String("player", uuid), zap.Float64("total", nw.Total()))
	return nw, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sacks prices sack contents at the bazaar. Products the bazaar does not list
// are skipped.
func (e *Engine) sacks(ctx context.Context, counts map[string]float64) float64 {
	var value float64
	for _, id := range sortedKeys(counts) {
		count := counts[id]
		if count <= 0 {
			continue
		}
		price, err := e.bazaar.MedianPrice(ctx, id)
		if err != nil {
			continue
		}
		value += price * count
	}
	return value
}

// itemsValue sums the value of every stack in an inventory blob. Wardrobe
// slots always hold one item.
func (e *Engine) itemsValue(ctx context.Context, blob *inventoryBlob, single bool) float64 {
	if blob == nil {
		return 0
	}

	var value float64
	for _, slot := range e.codec.Inventory(blob.Data) {
		if slot == nil || slot.Attributes == nil {
			continue
		}
		count := slot.Count
		if single {
			count = 1
		}
		it, err := item.ProjectItem(slot.Attributes, count)
		if err != nil {
			e.logger.Debug("Skipping unreadable item", zap.Error(err))
			continue
		}
		value += e.Value(ctx, it)
	}
	return value
}

// fishingBag prices bait at the bazaar. Bait the bazaar does not list is
// logged and skipped.
func (e *Engine) fishingBag(ctx context.Context, blob *inventoryBlob) float64 {
	if blob == nil {
		return 0
	}

	var value float64
	for _, slot := range e.codec.Inventory(blob.Data) {
		if slot == nil || slot.Attributes == nil {
			continue
		}
		id := slot.Attributes.String("id")
		price, err := e.bazaar.MedianPrice(ctx, id)
		if err != nil {
			e.logger.Debug("Bait is not sold on the bazaar", zap.String("product", id))
			continue
		}
		value += price * float64(slot.Count)
	}
	return value
}

// essence prices every essence kind at the bazaar. Every kind is expected to
// be listed, so a single missing product voids the whole category.
func (e *Engine) essence(ctx context.Context, amounts map[string]float64) float64 {
	var value float64
	for _, kind := range sortedKeys(amounts) {
		id := "ESSENCE_" + kind
		price, err := e.bazaar.MedianPrice(ctx, id)
		if err != nil {
			e.logger.Error("Essence is missing from the bazaar", zap.String("product", id), zap.Error(err))
			return 0
		}
		value += price * amounts[kind]
	}
	return value
}
