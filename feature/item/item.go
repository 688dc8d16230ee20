package item

import (
	"fmt"
	"sort"
	"strings"
)

// Item is a single priced stack. Items are built by ProjectItem and treated as
// immutable afterwards; callers must not mutate the maps or slices they hold.
type Item struct {
	ID    string `json:"id"`
	Count int    `json:"count"`

	// Reforge and Dye are empty when not applied.
	Reforge string `json:"reforge,omitempty"`
	Dye     string `json:"dye,omitempty"`

	HotPotatoBooks    int  `json:"hot_potato_books"`
	FumingPotatoBooks int  `json:"fuming_potato_books"`
	ArtOfWar          bool `json:"art_of_war"`
	ArtOfPeace        bool `json:"art_of_peace"`
	Recombobulated    bool `json:"recombobulated"`
	Enriched          bool `json:"enriched"`
	Dungeonized       bool `json:"dungeonized"`
	UpgradeLevel      int  `json:"upgrade_level"`

	Enchantments          map[string]int `json:"enchantments"`
	Gemstones             []Gemstone     `json:"gemstones"`
	UnlockedGemstoneSlots []string       `json:"unlocked_gemstone_slots"`
}

// HasEnchantment reports whether the item carries the named enchantment.
func (i Item) HasEnchantment(name string) bool {
	_, ok := i.Enchantments[name]
	return ok
}

// Enchantment returns the level of the named enchantment, or 0.
func (i Item) Enchantment(name string) int {
	return i.Enchantments[name]
}

func (i Item) String() string {
	reforge := i.Reforge
	if reforge == "" {
		reforge = "(none)"
	}
	recomb := "no"
	if i.Recombobulated {
		recomb = "yes"
	}

	gems := make([]string, 0, len(i.Gemstones))
	for _, g := range i.Gemstones {
		gems = append(gems, g.String())
	}

	names := make([]string, 0, len(i.Enchantments))
	for name := range i.Enchantments {
		names = append(names, name)
	}
	sort.Strings(names)
	enchants := make([]string, 0, len(names))
	for _, name := range names {
		enchants = append(enchants, fmt.Sprintf("%s=%d", name, i.Enchantments[name]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%dx %s:", i.Count, i.ID)
	fmt.Fprintf(&b, "\nReforge: %s", reforge)
	fmt.Fprintf(&b, "\nRecombobulated: %s", recomb)
	fmt.Fprintf(&b, "\nHPBs: %d, FPBs: %d", i.HotPotatoBooks, i.FumingPotatoBooks)
	fmt.Fprintf(&b, "\nGemstones: [%s]", strings.Join(gems, ", "))
	fmt.Fprintf(&b, "\nEnchantments: {%s}", strings.Join(enchants, ", "))
	return b.String()
}
