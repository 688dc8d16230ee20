package item

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"networth/core/nbt"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// maxInventorySize bounds the decompressed size of one blob. Real inventories
// stay well under a megabyte.
const maxInventorySize = 4 << 20

// ErrDecode marks any failure to turn a blob into slots or items.
var ErrDecode = errors.New("item decode failed")

// Slot is one decoded inventory slot. Empty slots are nil in the slice
// returned by DecodeInventory.
type Slot struct {
	ID     int
	Count  int
	Damage int
	Name   string
	Lore   []string

	// Attributes holds the game-specific ExtraAttributes compound, nil if absent.
	Attributes nbt.Compound
}

// DecodeInventory decodes a base64, gzip-compressed tag blob into its slots.
// On any failure it returns nil and an error wrapping ErrDecode; a partially
// decoded inventory is never returned.
func DecodeInventory(blob string) ([]*Slot, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecode, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrDecode, err)
	}
	defer zr.Close()

	_, root, err := nbt.Decode(io.LimitReader(zr, maxInventorySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	list, ok := root["i"].(nbt.List)
	if !ok {
		return nil, fmt.Errorf("%w: missing slot list", ErrDecode)
	}

	slots := make([]*Slot, 0, len(list))
	for idx, entry := range list {
		c, ok := entry.(nbt.Compound)
		if !ok {
			return nil, fmt.Errorf("%w: slot %d is not a compound", ErrDecode, idx)
		}
		slots = append(slots, slotFromCompound(c))
	}
	return slots, nil
}

func slotFromCompound(c nbt.Compound) *Slot {
	if len(c) == 0 {
		return nil
	}

	s := &Slot{
		ID:     c.Int("id"),
		Count:  c.Int("Count"),
		Damage: c.Int("Damage"),
	}

	tag := c.Compound("tag")
	if display := tag.Compound("display"); display != nil {
		s.Name = display.String("Name")
		s.Lore = display.Strings("Lore")
	}
	s.Attributes = tag.Compound("ExtraAttributes")
	return s
}

// Codec wraps the decoders with the fail-safe policy used for whole
// inventories: failures are logged and yield an empty inventory.
type Codec struct {
	logger *zap.Logger
}

// NewCodec creates a new codec.
func NewCodec(logger *zap.Logger) *Codec {
	return &Codec{logger: logger.With(zap.String("component", "item_codec"))}
}

// Inventory decodes blob, returning an empty slice on any failure.
func (c *Codec) Inventory(blob string) []*Slot {
	slots, err := DecodeInventory(blob)
	if err != nil {
		c.logger.Error("Failed to decode inventory data", zap.Error(err))
		return []*Slot{}
	}
	return slots
}

// Item decodes a single-stack blob such as an auction's item_bytes.
func (c *Codec) Item(blob string) (Item, error) {
	slots, err := DecodeInventory(blob)
	if err != nil {
		return Item{}, err
	}
	if len(slots) == 0 || slots[0] == nil {
		return Item{}, fmt.Errorf("%w: no item in blob", ErrDecode)
	}
	if slots[0].Attributes == nil {
		return Item{}, fmt.Errorf("%w: item has no attributes", ErrDecode)
	}
	return ProjectItem(slots[0].Attributes, slots[0].Count)
}
