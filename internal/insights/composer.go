package insights

import (
	"fmt"
	"strings"

	"github.com/pbaille/blueprint/internal/classifier"
	"github.com/pbaille/blueprint/internal/domain"
)

// Compose builds the insights for a sign and life path number.
// Unknown keys fall back to the Aries and life path 1 profiles.
func Compose(sign classifier.Sign, lifePath int) domain.Insights {
	return compose(sign, lifePath, Zodiac(sign), Numerology(lifePath))
}

func compose(sign classifier.Sign, lifePath int, zp ZodiacProfile, np NumerologyProfile) domain.Insights {
	return domain.Insights{
		LuckyStones:     clone(zp.LuckyStones),
		LuckyColors:     clone(zp.LuckyColors),
		CareerMatches:   concat(zp.CareerMatches, np.Careers),
		Strengths:       concat(zp.Strengths, np.Strengths),
		Weaknesses:      concat(zp.Weaknesses, np.Weaknesses),
		PartnerTraits:   clone(zp.PartnerTraits),
		CompatibleSigns: clone(zp.CompatibleSigns),
		StyleSuggestions: []domain.StyleSuggestion{
			{
				Category:    "Colors",
				Description: fmt.Sprintf("Wear %s to enhance your natural energy", strings.Join(zp.LuckyColors, ", ")),
				ShopLink:    colorsShopLink,
			},
			{
				Category:    "Jewelry",
				Description: fmt.Sprintf("Accessorize with %s gemstones", strings.Join(zp.LuckyStones, ", ")),
				ShopLink:    jewelryShopLink,
			},
			{
				Category:    "Style",
				Description: StyleFor(sign),
				ShopLink:    styleShopLink,
			},
		},
		LuckyCharms: []domain.LuckyCharm{
			{
				Name:        fmt.Sprintf("%s Talisman", sign),
				Description: fmt.Sprintf("A personalized %s symbol to carry your zodiac energy", sign),
			},
			{
				Name:        crystalName(zp.LuckyStones),
				Description: "Amplifies your natural strengths and brings positive energy",
			},
			{
				Name:        "Numerology Pendant",
				Description: fmt.Sprintf("A charm featuring your life path number %d", lifePath),
			},
			{
				Name:        "Protection Amulet",
				Description: "Guards against negative energies and brings good fortune",
			},
		},
	}
}

// the catalog's slices are shared, so results always get fresh backing arrays
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func crystalName(stones []string) string {
	first := "Crystal"
	if len(stones) > 0 {
		first = stones[0]
	}
	return first + " Crystal"
}
