package insights

import "github.com/pbaille/blueprint/internal/classifier"

const (
	colorsShopLink  = "https://www.nordstrom.com"
	jewelryShopLink = "https://www.etsy.com/market/gemstone_jewelry"
	styleShopLink   = "https://www.asos.com"
)

// StyleFor returns the fashion style sentence for a sign
func StyleFor(sign classifier.Sign) string {
	switch sign {
	case classifier.Aries:
		return "Bold, sporty, and edgy styles with strong statement pieces"
	case classifier.Taurus:
		return "Classic, comfortable, and luxurious fabrics with timeless elegance"
	case classifier.Gemini:
		return "Versatile, trendy, and playful outfits that express duality"
	case classifier.Cancer:
		return "Soft, romantic, and comfortable styles with vintage touches"
	case classifier.Leo:
		return "Glamorous, dramatic, and bold fashion with luxurious details"
	case classifier.Virgo:
		return "Clean, tailored, and sophisticated minimalist looks"
	case classifier.Libra:
		return "Elegant, balanced, and harmonious styles with aesthetic appeal"
	case classifier.Scorpio:
		return "Mysterious, intense, and powerful looks with dark sophistication"
	case classifier.Sagittarius:
		return "Casual, eclectic, and adventurous bohemian styles"
	case classifier.Capricorn:
		return "Professional, structured, and timeless conservative elegance"
	case classifier.Aquarius:
		return "Unique, futuristic, and unconventional avant-garde fashion"
	case classifier.Pisces:
		return "Dreamy, flowing, and ethereal styles with artistic flair"
	default:
		return "Styles that express your unique personality"
	}
}
