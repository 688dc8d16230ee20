package networth

import (
	"context"
	"fmt"

	"networth/feature/item"
	"networth/feature/market"
)

// Outcome records which rule decided an item's value.
type Outcome int

const (
	// OutcomeCraftOnly: no comparable auction, the craft cost is the value.
	OutcomeCraftOnly Outcome = iota
	// OutcomeAuction: the value is derived from the closest auction.
	OutcomeAuction
	// OutcomeCraftFloor: the auction-derived value exceeded the craft cost and
	// was capped at it.
	OutcomeCraftFloor
	// OutcomeExotic: the item was valued by the exotic rules.
	OutcomeExotic
)

var outcomeNames = map[Outcome]string{
	OutcomeCraftOnly:  "craft_only",
	OutcomeAuction:    "auction",
	OutcomeCraftFloor: "craft_floor",
	OutcomeExotic:     "exotic",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Appraisal is the valuation of one item with the evidence behind it.
type Appraisal struct {
	Value     float64         `json:"value"`
	CraftCost float64         `json:"craft_cost"`
	Outcome   Outcome         `json:"outcome"`
	Match     *market.Auction `json:"match,omitempty"`
}

// Exotic cleanliness multipliers, applied to exotic valuations by how much the
// item has been modified.
const (
	cleanlinessRecombobulated = 0.85
	cleanlinessHotPotato      = 0.9
	cleanlinessReforged       = 0.95
)

// Value returns the market value of it.
func (e *Engine) Value(ctx context.Context, it item.Item) float64 {
	return e.Appraise(ctx, it).Value
}

// Appraise values it. When a comparable auction exists its price is adjusted
// by the craft cost difference between the listed item and it, and the result
// is capped at the craft cost of it.
func (e *Engine) Appraise(ctx context.Context, it item.Item) Appraisal {
	if e.IsExotic(it) {
		return Appraisal{Value: e.ExoticValue(ctx, it), Outcome: OutcomeExotic}
	}

	craft := e.CraftCost(ctx, it)

	match, ok := e.auctions.FindClosest(it)
	if !ok {
		return Appraisal{Value: craft, CraftCost: craft, Outcome: OutcomeCraftOnly}
	}

	difference := e.CraftCost(ctx, match.Item) - craft
	derived := match.Price - difference

	a := Appraisal{CraftCost: craft, Match: &match}
	if derived <= craft {
		a.Value, a.Outcome = derived, OutcomeAuction
	} else {
		a.Value, a.Outcome = craft, OutcomeCraftFloor
	}
	return a
}

// IsExotic reports whether it needs exotic valuation. No classification rule
// exists yet, so nothing is exotic.
func (e *Engine) IsExotic(it item.Item) bool {
	return false
}

// ExoticValue is the valuation hook for exotic items. It has no rule yet and
// values everything at 0.
func (e *Engine) ExoticValue(ctx context.Context, it item.Item) float64 {
	return 0
}

// ExoticCleanliness returns the multiplier for how heavily an exotic item
// has been modified. Recombobulation dominates potato books, which dominate
// reforges.
func ExoticCleanliness(it item.Item) float64 {
	switch {
	case it.Recombobulated:
		return cleanlinessRecombobulated
	case it.HotPotatoBooks > 0:
		return cleanlinessHotPotato
	case it.Reforge != "":
		return cleanlinessReforged
	default:
		return 1
	}
}
