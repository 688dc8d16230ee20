package item

import (
	"fmt"
	"strings"
)

// GemstoneType is the closed set of gemstone kinds.
type GemstoneType string

const (
	Amber      GemstoneType = "AMBER"
	Topaz      GemstoneType = "TOPAZ"
	Sapphire   GemstoneType = "SAPPHIRE"
	Amethyst   GemstoneType = "AMETHYST"
	Jasper     GemstoneType = "JASPER"
	Ruby       GemstoneType = "RUBY"
	Jade       GemstoneType = "JADE"
	Opal       GemstoneType = "OPAL"
	Aquamarine GemstoneType = "AQUAMARINE"
	Citrine    GemstoneType = "CITRINE"
	Onyx       GemstoneType = "ONYX"
	Peridot    GemstoneType = "PERIDOT"
)

// GemstoneQuality is the closed set of gemstone grades, lowest first.
type GemstoneQuality string

const (
	Rough    GemstoneQuality = "ROUGH"
	Flawed   GemstoneQuality = "FLAWED"
	Fine     GemstoneQuality = "FINE"
	Flawless GemstoneQuality = "FLAWLESS"
	Perfect  GemstoneQuality = "PERFECT"
)

var gemstoneTypes = map[GemstoneType]struct{}{
	Amber: {}, Topaz: {}, Sapphire: {}, Amethyst: {}, Jasper: {}, Ruby: {},
	Jade: {}, Opal: {}, Aquamarine: {}, Citrine: {}, Onyx: {}, Peridot: {},
}

var gemstoneQualities = map[GemstoneQuality]struct{}{
	Rough: {}, Flawed: {}, Fine: {}, Flawless: {}, Perfect: {},
}

// ParseGemstoneType resolves a case-insensitive type name.
func ParseGemstoneType(s string) (GemstoneType, bool) {
	t := GemstoneType(strings.ToUpper(s))
	_, ok := gemstoneTypes[t]
	return t, ok
}

// ParseGemstoneQuality resolves a case-insensitive quality name.
func ParseGemstoneQuality(s string) (GemstoneQuality, bool) {
	q := GemstoneQuality(strings.ToUpper(s))
	_, ok := gemstoneQualities[q]
	return q, ok
}

// Gemstone is a socketed gem. Two gemstones are the same gem iff their IDs match.
type Gemstone struct {
	Type    GemstoneType    `json:"type"`
	Quality GemstoneQuality `json:"quality"`
}

// ID returns the market product id, e.g. FLAWED_JASPER_GEM.
func (g Gemstone) ID() string {
	return string(g.Quality) + "_" + string(g.Type) + "_GEM"
}

// Equal compares by product id.
func (g Gemstone) Equal(other Gemstone) bool {
	return g.ID() == other.ID()
}

// String returns the display name, e.g. "Flawed Jasper Gemstone".
func (g Gemstone) String() string {
	return title(string(g.Quality)) + " " + title(string(g.Type)) + " Gemstone"
}

// ParseGemstone is the inverse of Gemstone.ID.
func ParseGemstone(id string) (Gemstone, error) {
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[2] != "GEM" {
		return Gemstone{}, fmt.Errorf("invalid gemstone id %q", id)
	}

	q, ok := ParseGemstoneQuality(parts[0])
	if !ok {
		return Gemstone{}, fmt.Errorf("invalid gemstone id %q: unknown quality %q", id, parts[0])
	}
	t, ok := ParseGemstoneType(parts[1])
	if !ok {
		return Gemstone{}, fmt.Errorf("invalid gemstone id %q: unknown type %q", id, parts[1])
	}
	return Gemstone{Type: t, Quality: q}, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}
