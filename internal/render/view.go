package render

import (
	"github.com/pbaille/blueprint/internal/domain"
)

// Dashboard lists are cut to this many entries
const maxListed = 6

// Section is one titled list of the reading
type Section struct {
	Title string
	Items []string
}

// View is what both renderers draw from a stored reading
type View struct {
	FullName   string
	Sign       string
	LifePath   int
	Sections   []Section
	Compatible []string
	Styles     []domain.StyleSuggestion
	Charms     []domain.LuckyCharm
}

// NewView arranges a reading in dashboard order
func NewView(r *domain.Reading) View {
	in := r.Insights
	return View{
		FullName: r.Chart.FullName,
		Sign:     r.Chart.ZodiacSign,
		LifePath: r.Chart.LifePathNumber,
		Sections: []Section{
			{Title: "Lucky Stones", Items: in.LuckyStones},
			{Title: "Lucky Colors", Items: in.LuckyColors},
			{Title: "Career Matches", Items: head(in.CareerMatches, maxListed)},
			{Title: "Your Strengths", Items: head(in.Strengths, maxListed)},
			{Title: "Areas to Improve", Items: in.Weaknesses},
			{Title: "Ideal Partner Traits", Items: in.PartnerTraits},
		},
		Compatible: in.CompatibleSigns,
		Styles:     in.StyleSuggestions,
		Charms:     in.LuckyCharms,
	}
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
