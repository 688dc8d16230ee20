package networth

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
)

// Version identifies the valuation rules in serialised breakdowns.
const Version = "1.0.0"

// Networth is the per-category valuation of one player. It is filled by a
// single calculation and owned by its caller. Aggregates are derived from the
// category fields on every call.
type Networth struct {
	Owner string

	// Liquid
	Purse float64
	Bank  float64

	// Bags
	Sacks       float64
	Accessories float64
	FishingBag  float64
	Quiver      float64
	PotionBag   float64

	// Armor
	ActiveArmor     float64
	ActiveEquipment float64
	Wardrobe        float64

	// Items
	Inventory  float64
	Storage    float64
	EnderChest float64
	Vault      float64

	// Other
	Pets    float64
	Essence float64
	Museum  float64
}

// Liquid is purse plus bank.
func (n *Networth) Liquid() float64 {
	return n.Purse + n.Bank
}

// Bags sums sacks, accessories, fishing bag, quiver and potion bag.
func (n *Networth) Bags() float64 {
	return n.Sacks + n.Accessories + n.FishingBag + n.Quiver + n.PotionBag
}

// Armor sums active armor, equipment and wardrobe.
func (n *Networth) Armor() float64 {
	return n.ActiveArmor + n.ActiveEquipment + n.Wardrobe
}

// Items sums inventory, storage, ender chest and vault.
func (n *Networth) Items() float64 {
	return n.Inventory + n.Storage + n.EnderChest + n.Vault
}

// Other sums pets, essence and museum.
func (n *Networth) Other() float64 {
	return n.Pets + n.Essence + n.Museum
}

// Total is the sum of every category.
func (n *Networth) Total() float64 {
	return n.Liquid() + n.Bags() + n.Armor() + n.Items() + n.Other()
}

// Breakdown returns every category keyed by name.
func (n *Networth) Breakdown() map[string]float64 {
	return map[string]float64{
		"purse":            n.Purse,
		"bank":             n.Bank,
		"sacks":            n.Sacks,
		"accessories":      n.Accessories,
		"fishing_bag":      n.FishingBag,
		"quiver":           n.Quiver,
		"potion_bag":       n.PotionBag,
		"active_armor":     n.ActiveArmor,
		"active_equipment": n.ActiveEquipment,
		"wardrobe":         n.Wardrobe,
		"inventory":        n.Inventory,
		"storage":          n.Storage,
		"ender_chest":      n.EnderChest,
		"vault":            n.Vault,
		"pets":             n.Pets,
		"essence":          n.Essence,
		"museum":           n.Museum,
	}
}

type jsonLiquid struct {
	Total float64 `json:"total"`
	Purse float64 `json:"purse"`
	Bank  float64 `json:"bank"`
}

type jsonBags struct {
	Total       float64 `json:"total"`
	Sacks       float64 `json:"sacks"`
	Accessories float64 `json:"accessories"`
	FishingBag  float64 `json:"fishing_bag"`
	Quiver      float64 `json:"quiver"`
	PotionBag   float64 `json:"potion_bag"`
}

type jsonArmor struct {
	Total           float64 `json:"total"`
	ActiveArmor     float64 `json:"active_armor"`
	ActiveEquipment float64 `json:"active_equipment"`
	Wardrobe        float64 `json:"wardrobe"`
}

type jsonItems struct {
	Total      float64 `json:"total"`
	Inventory  float64 `json:"inventory"`
	Storage    float64 `json:"storage"`
	EnderChest float64 `json:"ender_chest"`
	Vault      float64 `json:"vault"`
}

type jsonOther struct {
	Total   float64 `json:"total"`
	Pets    float64 `json:"pets"`
	Essence float64 `json:"essence"`
	Museum  float64 `json:"museum"`
}

type jsonNetworth struct {
	Calculator string     `json:"calculator"`
	Owner      string     `json:"owner"`
	Total      float64    `json:"total"`
	Liquid     jsonLiquid `json:"liquid"`
	Bags       jsonBags   `json:"bags"`
	Armor      jsonArmor  `json:"armor"`
	Items      jsonItems  `json:"items"`
	Other      jsonOther  `json:"other"`
}

// MarshalJSON encodes the breakdown grouped by aggregate.
func (n *Networth) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNetworth{
		Calculator: "networth " + Version,
		Owner:      n.Owner,
		Total:      n.Total(),
		Liquid:     jsonLiquid{Total: n.Liquid(), Purse: n.Purse, Bank: n.Bank},
		Bags: jsonBags{
			Total:       n.Bags(),
			Sacks:       n.Sacks,
			Accessories: n.Accessories,
			FishingBag:  n.FishingBag,
			Quiver:      n.Quiver,
			PotionBag:   n.PotionBag,
		},
		Armor: jsonArmor{
			Total:           n.Armor(),
			ActiveArmor:     n.ActiveArmor,
			ActiveEquipment: n.ActiveEquipment,
			Wardrobe:        n.Wardrobe,
		},
		Items: jsonItems{
			Total:      n.Items(),
			Inventory:  n.Inventory,
			Storage:    n.Storage,
			EnderChest: n.EnderChest,
			Vault:      n.Vault,
		},
		Other: jsonOther{Total: n.Other(), Pets: n.Pets, Essence: n.Essence, Museum: n.Museum},
	})
}

func (n *Networth) String() string {
	return fmt.Sprintf("%s's Networth: %s coins", n.Owner, coins(n.Total()))
}

type summaryLine struct {
	name  string
	value float64
}

// Summary renders the breakdown for terminals.
func (n *Networth) Summary() string {
	var b strings.Builder
	b.WriteString(n.String())

	section := func(name string, total float64, lines ...summaryLine) {
		fmt.Fprintf(&b, "\n\n%s: %s", name, coins(total))
		for _, l := range lines {
			fmt.Fprintf(&b, "\n - %s: %s", l.name, coins(l.value))
		}
	}

	section("Liquid", n.Liquid(),
		summaryLine{"Purse", n.Purse},
		summaryLine{"Bank", n.Bank})
	section("Bags", n.Bags(),
		summaryLine{"Sacks", n.Sacks},
		summaryLine{"Accessories", n.Accessories},
		summaryLine{"Fishing Bag", n.FishingBag},
		summaryLine{"Quiver", n.Quiver},
		summaryLine{"Potion Bag", n.PotionBag})
	section("Armor", n.Armor(),
		summaryLine{"Active Armor", n.ActiveArmor},
		summaryLine{"Active Equipment", n.ActiveEquipment},
		summaryLine{"Wardrobe", n.Wardrobe})
	section("Items", n.Items(),
		summaryLine{"Inventory", n.Inventory},
		summaryLine{"Storage", n.Storage},
		summaryLine{"Ender Chest", n.EnderChest},
		summaryLine{"Vault", n.Vault})
	section("Other", n.Other(),
		summaryLine{"Pets", n.Pets},
		summaryLine{"Essence", n.Essence},
		summaryLine{"Museum", n.Museum})

	return b.String()
}

func coins(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
