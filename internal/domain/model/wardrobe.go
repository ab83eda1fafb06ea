// Package model contains domain models passed between layers.
package model

// Wardrobe categories used for structural grouping. The set is open; items
// with any other category are ignored by outfit assembly.
const (
	CategoryTops        = "Tops"
	CategoryBottoms     = "Bottoms"
	CategoryDresses     = "Dresses"
	CategoryOuterwear   = "Outerwear"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
)

// ClothingItem is one wardrobe entry supplied by the caller.
type ClothingItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Subcategory string   `json:"subcategory,omitempty"`
	Colors      []string `json:"colors"`
	Seasons     []string `json:"seasons"`
	Occasions   []string `json:"occasions"`
	Image       string   `json:"image,omitempty"` // opaque passthrough
}

// Weather is an observed temperature (°F) and free-form condition.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// OutfitPreference holds one request's criteria.
type OutfitPreference struct {
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	Style    string `json:"style"`
	// Colorfulness is accepted for forward compatibility and does not affect scoring.
	Colorfulness       int      `json:"colorfulness" validate:"min=0,max=100"`
	UseWeather         bool     `json:"useWeather"`
	IncludeAccessories bool     `json:"includeAccessories"`
	Weather            *Weather `json:"weather,omitempty"`
}

// HasWeather reports whether weather data should be consulted.
func (p OutfitPreference) HasWeather() bool {
	return p.UseWeather && p.Weather != nil
}

// OutfitSuggestion is one ranked outfit candidate.
type OutfitSuggestion struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Occasion    string         `json:"occasion"`
	Style       string         `json:"style"`
	Season      string         `json:"season"`
	Items       []ClothingItem `json:"items"`
	Weather     string         `json:"weather"`
	Description string         `json:"description"`
	Score       int            `json:"score"`
}
