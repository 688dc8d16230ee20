package item

import (
	"fmt"
	"sort"
	"strings"

	"networth/core/nbt"
)

const (
	maxHotPotatoBooks    = 10
	maxFumingPotatoBooks = 5
)

// ProjectItem builds an Item from an ExtraAttributes compound.
// Attributes are read by key presence; absent keys default to zero values.
func ProjectItem(attrs nbt.Compound, count int) (Item, error) {
	id := attrs.String("id")
	if id == "" {
		return Item{}, fmt.Errorf("%w: attributes have no id", ErrDecode)
	}
	if count < 1 {
		count = 1
	}

	books := attrs.Int("hot_potato_count")

	it := Item{
		ID:                    id,
		Count:                 count,
		Reforge:               attrs.String("modifier"),
		Dye:                   attrs.String("dye_item"),
		HotPotatoBooks:        min(max(books, 0), maxHotPotatoBooks),
		FumingPotatoBooks:     min(max(books-maxHotPotatoBooks, 0), maxFumingPotatoBooks),
		ArtOfWar:              attrs.Has("art_of_war_count"),
		ArtOfPeace:            attrs.Has("artOfPeaceApplied"),
		Recombobulated:        attrs.Has("rarity_upgrades"),
		Enriched:              attrs.Has("talisman_enrichment"),
		Dungeonized:           attrs.Has("dungeon_item"),
		UpgradeLevel:          max(attrs.Int("upgrade_level"), 0),
		Enchantments:          map[string]int{},
		Gemstones:             []Gemstone{},
		UnlockedGemstoneSlots: []string{},
	}

	for name, level := range attrs.Compound("enchantments") {
		it.Enchantments[name] = nbt.Int(level)
	}

	if gems := attrs.Compound("gems"); gems != nil {
		it.UnlockedGemstoneSlots = gems.Strings("unlocked_slots")
		it.Gemstones = projectGemstones(gems)
	}

	return it, nil
}

// projectGemstones reads socketed gems. A slot key is either a simple slot named
// after its gem type (JADE_0) or a generic slot (COMBAT_0) whose type is stored
// under the sibling key COMBAT_0_gem. The quality is stored either as a bare string
// or as a compound carrying a "quality" entry.
func projectGemstones(gems nbt.Compound) []Gemstone {
	keys := make([]string, 0, len(gems))
	for key := range gems {
		if key == "unlocked_slots" || strings.HasSuffix(key, "_gem") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Gemstone, 0, len(keys))
	for _, key := range keys {
		var rawQuality string
		switch v := gems[key].(type) {
		case string:
			rawQuality = v
		case nbt.Compound:
			rawQuality = v.String("quality")
		default:
			continue
		}

		quality, ok := ParseGemstoneQuality(rawQuality)
		if !ok {
			continue
		}

		prefix, _, _ := strings.Cut(key, "_")
		gemType, ok := ParseGemstoneType(prefix)
		if !ok {
			gemType, ok = ParseGemstoneType(gems.String(key + "_gem"))
			if !ok {
				continue
			}
		}

		out = append(out, Gemstone{Type: gemType, Quality: quality})
	}
	return out
}
