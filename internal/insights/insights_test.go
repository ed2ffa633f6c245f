package insights

import (
	"testing"

	"github.com/pbaille/blueprint/internal/classifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lifePaths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}

func TestCatalog_HasEveryKey(t *testing.T) {
	for _, s := range classifier.Signs {
		p, ok := zodiacProfiles[s]
		require.True(t, ok, "missing zodiac profile %s", s)
		assert.NotEmpty(t, p.LuckyStones)
		assert.NotEmpty(t, p.LuckyColors)
		assert.NotEmpty(t, p.CareerMatches)
		assert.NotEmpty(t, p.Strengths)
		assert.NotEmpty(t, p.Weaknesses)
		assert.NotEmpty(t, p.PartnerTraits)
		for _, c := range p.CompatibleSigns {
			_, known := classifier.ParseSign(c)
			assert.True(t, known, "%s lists unknown compatible sign %q", s, c)
		}
	}
	assert.Len(t, zodiacProfiles, 12)

	for _, n := range lifePaths {
		_, ok := numerologyProfiles[n]
		assert.True(t, ok, "missing numerology profile %d", n)
	}
	assert.Len(t, numerologyProfiles, 12)
}

func TestCatalog_Fallbacks(t *testing.T) {
	assert.Equal(t, zodiacProfiles[classifier.Aries], Zodiac("Ophiuchus"))
	assert.Equal(t, numerologyProfiles[1], Numerology(10))
	assert.Equal(t, numerologyProfiles[1], Numerology(0))
	assert.Equal(t, numerologyProfiles[22], Numerology(22))
}

func TestCompose_TaurusThree(t *testing.T) {
	got := Compose(classifier.Taurus, 3)

	assert.Equal(t, []string{"Emerald", "Sapphire", "Rose Quartz"}, got.LuckyStones)
	assert.Equal(t, []string{"Green", "Pink", "Earth tones"}, got.LuckyColors)
	assert.Equal(t, []string{
		"Banker", "Chef", "Architect", "Fashion Designer", "Agriculturist",
		"Creative arts", "Communication", "Entertainment",
	}, got.CareerMatches)
	assert.Equal(t, []string{
		"Stubbornness", "Possessiveness", "Materialism",
		"Scattered energy", "Superficiality", "Exaggeration",
	}, got.Weaknesses)
	assert.Equal(t, []string{"Virgo", "Capricorn", "Cancer", "Pisces"}, got.CompatibleSigns)

	require.Len(t, got.StyleSuggestions, 3)
	assert.Equal(t, "Colors", got.StyleSuggestions[0].Category)
	assert.Equal(t, "Wear Green, Pink, Earth tones to enhance your natural energy", got.StyleSuggestions[0].Description)
	assert.Equal(t, "https://www.nordstrom.com", got.StyleSuggestions[0].ShopLink)
	assert.Equal(t, "Jewelry", got.StyleSuggestions[1].Category)
	assert.Equal(t, "Accessorize with Emerald, Sapphire, Rose Quartz gemstones", got.StyleSuggestions[1].Description)
	assert.Equal(t, "https://www.etsy.com/market/gemstone_jewelry", got.StyleSuggestions[1].ShopLink)
	assert.Equal(t, "Style", got.StyleSuggestions[2].Category)
	assert.Equal(t, "Classic, comfortable, and luxurious fabrics with timeless elegance", got.StyleSuggestions[2].Description)
	assert.Equal(t, "https://www.asos.com", got.StyleSuggestions[2].ShopLink)

	require.Len(t, got.LuckyCharms, 4)
	assert.Equal(t, "Taurus Talisman", got.LuckyCharms[0].Name)
	assert.Equal(t, "A personalized Taurus symbol to carry your zodiac energy", got.LuckyCharms[0].Description)
	assert.Equal(t, "Emerald Crystal", got.LuckyCharms[1].Name)
	assert.Equal(t, "Numerology Pendant", got.LuckyCharms[2].Name)
	assert.Equal(t, "A charm featuring your life path number 3", got.LuckyCharms[2].Description)
	assert.Equal(t, "Protection Amulet", got.LuckyCharms[3].Name)
}

func TestCompose_ShapeForEveryPair(t *testing.T) {
	for _, s := range classifier.Signs {
		for _, n := range lifePaths {
			got := Compose(s, n)
			zp, np := Zodiac(s), Numerology(n)

			assert.Len(t, got.CareerMatches, len(zp.CareerMatches)+len(np.Careers))
			assert.Equal(t, zp.CareerMatches, got.CareerMatches[:len(zp.CareerMatches)])
			assert.Equal(t, np.Careers, got.CareerMatches[len(zp.CareerMatches):])
			assert.Len(t, got.Strengths, len(zp.Strengths)+len(np.Strengths))
			assert.Len(t, got.Weaknesses, len(zp.Weaknesses)+len(np.Weaknesses))
			assert.Len(t, got.StyleSuggestions, 3)
			assert.Len(t, got.LuckyCharms, 4)
		}
	}
}

func TestCompose_KeepsDuplicates(t *testing.T) {
	// Pisces and 9 both list Compassion
	got := Compose(classifier.Pisces, 9)
	count := 0
	for _, s := range got.Strengths {
		if s == "Compassion" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestCompose_Idempotent(t *testing.T) {
	assert.Equal(t, Compose(classifier.Leo, 11), Compose(classifier.Leo, 11))
}

func TestCompose_DoesNotShareCatalogSlices(t *testing.T) {
	got := Compose(classifier.Aries, 1)
	got.LuckyStones[0] = "Pebble"
	got.CareerMatches[0] = "Nothing"

	assert.Equal(t, "Diamond", Zodiac(classifier.Aries).LuckyStones[0])
	assert.Equal(t, "Entrepreneur", Zodiac(classifier.Aries).CareerMatches[0])
}

func TestCompose_UnknownKeysFallBack(t *testing.T) {
	got := Compose("Ophiuchus", 10)

	assert.Equal(t, Zodiac(classifier.Aries).LuckyStones, got.LuckyStones)
	assert.Equal(t, "Styles that express your unique personality", got.StyleSuggestions[2].Description)
	assert.Equal(t, "Ophiuchus Talisman", got.LuckyCharms[0].Name)
	assert.Equal(t, "A charm featuring your life path number 10", got.LuckyCharms[2].Description)
	assert.Equal(t, "Leadership roles", got.CareerMatches[len(got.CareerMatches)-3])
}

func TestCompose_EmptyProfile(t *testing.T) {
	got := compose(classifier.Aries, 1, ZodiacProfile{}, NumerologyProfile{})

	assert.Empty(t, got.LuckyStones)
	assert.Empty(t, got.CareerMatches)
	require.Len(t, got.StyleSuggestions, 3)
	require.Len(t, got.LuckyCharms, 4)
	assert.Equal(t, "Crystal Crystal", got.LuckyCharms[1].Name)
	assert.Equal(t, "Wear  to enhance your natural energy", got.StyleSuggestions[0].Description)
}

func TestStyleFor_EverySignHasOwnText(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range classifier.Signs {
		text := StyleFor(s)
		assert.NotEqual(t, StyleFor(""), text, "sign %s uses the default style", s)
		seen[text] = true
	}
	assert.Len(t, seen, 12)
}
