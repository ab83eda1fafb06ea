// Package types contains request and response shapes shared by the service
// and its adapters.
package types

import "github.com/okian/outfitter/internal/domain/model"

// SuggestRequest asks for ranked outfits from a caller-supplied wardrobe.
type SuggestRequest struct {
	Wardrobe    []model.ClothingItem   `json:"wardrobe" validate:"dive"`
	Preferences model.OutfitPreference `json:"preferences"`
	// Count defaults to the service default when nil.
	Count *int `json:"count,omitempty" validate:"omitempty,min=0"`
	// Seed makes the run reproducible when set.
	Seed *uint64 `json:"seed,omitempty"`
}

// SuggestResponse holds suggestions sorted by score, highest first.
type SuggestResponse struct {
	Suggestions []model.OutfitSuggestion `json:"suggestions"`
	// CurrentSeason is the season "current" resolved to for this run.
	CurrentSeason string `json:"currentSeason"`
}

// BatchRequest bundles independent suggestion requests.
type BatchRequest struct {
	Requests []SuggestRequest `json:"requests" validate:"required,min=1,dive"`
}

// BatchResponse holds one response per request, in request order.
type BatchResponse struct {
	Results []SuggestResponse `json:"results"`
}

// SeasonResponse reports the current season for a hemisphere.
type SeasonResponse struct {
	Season     string `json:"season"`
	Hemisphere string `json:"hemisphere"`
}
