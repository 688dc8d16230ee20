package item

// Penalties subtracted from a perfect score of 1 for each point of divergence.
const (
	penaltyReforge         = 0.005
	penaltyHotPotatoBook   = 0.001
	penaltyFumingBook      = 0.012
	penaltyRecombobulated  = 0.03
	penaltyArtOfPeace      = 0.075
	penaltyEnriched        = 0.02
	penaltyDyedUndyed      = 0.09
	penaltyDifferentDye    = 0.075
	penaltyUpgradeLevel    = 0.035
	penaltyMissingEnchant  = 0.05
	penaltyEnchantLevelGap = 0.02
)

// Similarity scores how closely b resembles a, in [0, 1].
// Items with different ids score 0; identical items score exactly 1.
// Gemstones are not compared.
func Similarity(a, b Item) float64 {
	if a.ID != b.ID {
		return 0
	}

	score := 1.0

	if a.Reforge != b.Reforge {
		score -= penaltyReforge
	}
	if a.HotPotatoBooks != b.HotPotatoBooks {
		score -= float64(absInt(a.HotPotatoBooks-b.HotPotatoBooks)) * penaltyHotPotatoBook
	}
	if a.FumingPotatoBooks != b.FumingPotatoBooks {
		score -= float64(absInt(a.FumingPotatoBooks-b.FumingPotatoBooks)) * penaltyFumingBook
	}
	if a.Recombobulated != b.Recombobulated {
		score -= penaltyRecombobulated
	}
	if a.ArtOfPeace != b.ArtOfPeace {
		score -= penaltyArtOfPeace
	}
	if a.Enriched != b.Enriched {
		score -= penaltyEnriched
	}
	if a.Dye != b.Dye {
		if a.Dye == "" || b.Dye == "" {
			score -= penaltyDyedUndyed
		} else {
			score -= penaltyDifferentDye
		}
	}
	if a.UpgradeLevel != b.UpgradeLevel {
		score -= float64(absInt(a.UpgradeLevel-b.UpgradeLevel)) * penaltyUpgradeLevel
	}

	for name, level := range a.Enchantments {
		other, ok := b.Enchantments[name]
		if !ok {
			score -= penaltyMissingEnchant
		} else if other != level {
			score -= float64(absInt(level-other)) * penaltyEnchantLevelGap
		}
	}
	for name := range b.Enchantments {
		if !a.HasEnchantment(name) {
			score -= penaltyMissingEnchant
		}
	}

	// TODO: score gemstone divergence once per-slot gem pricing is available.

	return max(0, score)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
