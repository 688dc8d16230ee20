package refdata

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"networth/core/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Table file names, relative to the source root.
const (
	FileBasePrices    = "base_prices.json"
	FileReforges      = "reforges.json"
	FileGemstoneSlots = "gemstone_slots.json"
)

// Files lists every table Load reads.
var Files = []string{FileBasePrices, FileReforges, FileGemstoneSlots}

// GemstoneSlotType is the unlock cost of one kind of gemstone slot.
type GemstoneSlotType struct {
	Name     string
	CoinCost int
	// ItemCost maps item id to the quantity required.
	ItemCost map[string]int
}

// GemstoneCatalog is the decoded form of the gemstone slot table.
type GemstoneCatalog struct {
	// Types maps slot type name to its unlock cost.
	Types map[string]GemstoneSlotType
	// Items maps an item id pattern to the slot type of each of its slots.
	Items map[string]map[string]string
}

type slotPattern struct {
	source string
	re     *regexp.Regexp
	slots  map[string]string
}

// Tables holds the read-only reference data. The zero value has empty tables.
type Tables struct {
	basePrices    map[string]float64
	reforgeStones map[string]string
	slotTypes     map[string]GemstoneSlotType
	slotPatterns  []slotPattern
}

// NewTables builds tables from already decoded data.
// Item patterns that fail to compile are returned as an error and skipped.
func NewTables(basePrices map[string]float64, reforgeStones map[string]string, catalog GemstoneCatalog) (*Tables, error) {
	t := &Tables{
		basePrices:    basePrices,
		reforgeStones: reforgeStones,
		slotTypes:     map[string]GemstoneSlotType{},
	}
	if t.basePrices == nil {
		t.basePrices = map[string]float64{}
	}
	if t.reforgeStones == nil {
		t.reforgeStones = map[string]string{}
	}
	err := t.setCatalog(catalog)
	return t, err
}

func (t *Tables) setCatalog(catalog GemstoneCatalog) error {
	for name, st := range catalog.Types {
		st.Name = name
		if st.ItemCost == nil {
			st.ItemCost = map[string]int{}
		}
		t.slotTypes[name] = st
	}

	var bad []string
	for pattern, slots := range catalog.Items {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			bad = append(bad, pattern)
			continue
		}
		t.slotPatterns = append(t.slotPatterns, slotPattern{source: pattern, re: re, slots: slots})
	}
	sort.Slice(t.slotPatterns, func(i, j int) bool {
		return t.slotPatterns[i].source < t.slotPatterns[j].source
	})

	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("invalid gemstone slot patterns: %v", bad)
	}
	return nil
}

// Load reads every table from src concurrently. A table that fails to load is
// left empty and its error is returned alongside the partially filled tables.
func Load(ctx context.Context, src Source, logger *zap.Logger) (*Tables, error) {
	var (
		basePrices    map[string]float64
		reforgeStones map[string]string
		catalog       GemstoneCatalog
	)

	var g errgroup.Group
	g.Go(func() error { return decodeFile(ctx, src, FileBasePrices, &basePrices) })
	g.Go(func() error { return decodeFile(ctx, src, FileReforges, &reforgeStones) })
	g.Go(func() error { return decodeCatalog(ctx, src, &catalog) })
	loadErr := g.Wait()

	t, err := NewTables(basePrices, reforgeStones, catalog)
	if err != nil {
		logger.Warn("Skipped gemstone slot patterns", zap.Error(err))
	}

	logger.Info("Reference data loaded",
		zap.Int("base_prices", len(t.basePrices)),
		zap.Int("reforges", len(t.reforgeStones)),
		zap.Int("slot_types", len(t.slotTypes)),
		zap.Int("slot_patterns", len(t.slotPatterns)),
	)
	return t, loadErr
}

func decodeFile(ctx context.Context, src Source, name string, dst any) error {
	r, err := src.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer r.Close()

	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// decodeCatalog reads the gemstone slot table, where every slot type object
// mixes a "coins" entry with item id to quantity entries. Quantities may be
// written as numbers or numeric strings.
func decodeCatalog(ctx context.Context, src Source, dst *GemstoneCatalog) error {
	var raw struct {
		Types map[string]map[string]any    `json:"types"`
		Items map[string]map[string]string `json:"items"`
	}
	if err := decodeFile(ctx, src, FileGemstoneSlots, &raw); err != nil {
		return err
	}

	catalog := GemstoneCatalog{
		Types: make(map[string]GemstoneSlotType, len(raw.Types)),
		Items: raw.Items,
	}
	for name, entries := range raw.Types {
		st := GemstoneSlotType{Name: name, ItemCost: map[string]int{}}
		for key, v := range entries {
			qty := utils.ToInt(v)
			if key == "coins" {
				st.CoinCost = qty
				continue
			}
			st.ItemCost[key] = qty
		}
		catalog.Types[name] = st
	}
	*dst = catalog
	return nil
}

// BasePrice returns the fixed price for id, if one is set.
func (t *Tables) BasePrice(id string) (float64, bool) {
	p, ok := t.basePrices[id]
	return p, ok
}

// ReforgeStone returns the stone item id that applies reforge.
func (t *Tables) ReforgeStone(reforge string) (string, bool) {
	s, ok := t.reforgeStones[reforge]
	return s, ok
}

// UnlockedSlots resolves the slot types of the unlocked slots of an item.
// The first pattern, in lexical order, that fully matches id decides the slot
// layout. Slots the layout does not declare are skipped.
func (t *Tables) UnlockedSlots(id string, unlocked []string) []GemstoneSlotType {
	var layout map[string]string
	for _, p := range t.slotPatterns {
		if p.re.MatchString(id) {
			layout = p.slots
			break
		}
	}
	if layout == nil {
		return nil
	}

	out := make([]GemstoneSlotType, 0, len(unlocked))
	for _, slot := range unlocked {
		st, ok := t.slotTypes[layout[slot]]
		if !ok {
			continue
		}
		out = append(out, st)
	}
	return out
}

// Counts reports the size of each table.
func (t *Tables) Counts() map[string]int {
	return map[string]int{
		"base_prices":   len(t.basePrices),
		"reforges":      len(t.reforgeStones),
		"slot_types":    len(t.slotTypes),
		"slot_patterns": len(t.slotPatterns),
	}
}
