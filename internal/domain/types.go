package domain

import "time"

// BirthInput is what the birth form collects
type BirthInput struct {
	FullName   string `json:"full_name" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required"`
	BirthTime  string `json:"birth_time,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
}

// Chart is the persisted parent row: the input plus both derived values
type Chart struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	BirthDate      time.Time `json:"birth_date"`
	BirthTime      *string   `json:"birth_time,omitempty"`
	BirthPlace     *string   `json:"birth_place,omitempty"`
	ZodiacSign     string    `json:"zodiac_sign"`
	LifePathNumber int       `json:"life_path_number"`
	CreatedAt      time.Time `json:"created_at"`
}

// StyleSuggestion is one entry of the style section
type StyleSuggestion struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	ShopLink    string `json:"shop_link,omitempty"`
}

// LuckyCharm is one entry of the charms section
type LuckyCharm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Insights is the composed content for a sign and life path pair.
// ID, ChartID and CreatedAt are only set once the row is persisted.
type Insights struct {
	ID               string            `json:"id,omitempty"`
	ChartID          string            `json:"chart_id,omitempty"`
	LuckyStones      []string          `json:"lucky_stones"`
	LuckyColors      []string          `json:"lucky_colors"`
	CareerMatches    []string          `json:"career_matches"`
	Strengths        []string          `json:"strengths"`
	Weaknesses       []string          `json:"weaknesses"`
	PartnerTraits    []string          `json:"partner_traits"`
	CompatibleSigns  []string          `json:"compatible_signs"`
	StyleSuggestions []StyleSuggestion `json:"style_suggestions"`
	LuckyCharms      []LuckyCharm      `json:"lucky_charms"`
	CreatedAt        time.Time         `json:"created_at,omitempty"`
}

// Reading pairs a chart with its insights
type Reading struct {
	Chart    Chart    `json:"chart"`
	Insights Insights `json:"insights"`
}
