// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

// Preferences carries a user's explicit dining preferences. A nil slice
// means "not provided": the stored value is kept. A non-nil slice replaces
// the stored value wholesale, so an empty non-nil slice clears it.
type Preferences struct {
	// DietaryPreferences lists dietary restrictions (e.g. "Vegetarian").
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`

	// CuisinesPreferred lists preferred cuisines (e.g. "Asian").
	CuisinesPreferred []string `json:"cuisines_preferred,omitempty"`

	// AvoidLocations lists venue names the user never wants recommended.
	AvoidLocations []string `json:"avoid_locations,omitempty"`
}

// UserProfile is the accumulated behavioral state for one user, built from
// transaction history and explicit preferences. Profiles are created lazily
// on first update and never deleted within the process lifetime.
type UserProfile struct {
	// UserID is the owning user.
	UserID string `json:"user_id"`

	// TransactionHistory is the append-only raw transaction record.
	TransactionHistory []Transaction `json:"transaction_history"`

	// LocationFrequency counts visits per venue name. Counts only ever
	// increase.
	LocationFrequency map[string]int `json:"location_frequency"`

	// MealTimePreference counts transactions per meal slot.
	MealTimePreference map[string]int `json:"meal_time_preference"`

	// DietaryPreferences is the last explicitly provided dietary list.
	DietaryPreferences []string `json:"dietary_preferences"`

	// CuisinesPreferred is the last explicitly provided cuisine list.
	CuisinesPreferred []string `json:"cuisines_preferred"`

	// AvoidLocations is the last explicitly provided avoid list.
	AvoidLocations []string `json:"avoid_locations"`
}

// NewUserProfile returns an empty profile for the user with all counters
// initialized.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:             userID,
		TransactionHistory: []Transaction{},
		LocationFrequency:  map[string]int{},
		MealTimePreference: map[string]int{
			MealBreakfast.String(): 0,
			MealLunch.String():     0,
			MealDinner.String():    0,
			MealLateNight.String(): 0,
		},
		DietaryPreferences: []string{},
		CuisinesPreferred:  []string{},
		AvoidLocations:     []string{},
	}
}

// Avoids reports whether the venue name is on the user's avoid list.
func (p *UserProfile) Avoids(venueName string) bool {
	for _, name := range p.AvoidLocations {
		if name == venueName {
			return true
		}
	}
	return false
}
