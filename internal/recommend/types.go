// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"time"

	"github.com/mantavya0807/Mealer/internal/models"
)

// Variant identifies which ranking path produced a response.
type Variant int

const (
	// VariantPersonalized means a stored profile drove filtering and
	// scoring.
	VariantPersonalized Variant = iota
	// VariantGeneric means no profile was available, or filtering left no
	// candidates, and profile-free scoring was used.
	VariantGeneric
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case VariantPersonalized:
		return "personalized"
	case VariantGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// MarshalText emits the variant name, so JSON output carries
// "personalized" rather than an integer.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Query bundles the optional request parameters for a recommendation.
// Zero values mean "not specified".
type Query struct {
	// MealType restricts candidates to venues serving this meal. When nil
	// and TimeOfDay is empty, both are derived from CurrentTime.
	MealType *models.MealType `json:"meal_type,omitempty"`

	// TimeOfDay is the colloquial time label (morning, afternoon, evening,
	// night). Informational; filtering keys off MealType.
	TimeOfDay string `json:"time_of_day,omitempty"`

	// DietaryFilter lists dietary restrictions every candidate must cover
	// in full. When empty, a personalized request falls back to the
	// profile's stored dietary preferences.
	DietaryFilter []string `json:"dietary_filter,omitempty"`

	// MaxWaitTime excludes venues with a longer average wait, in minutes.
	// Zero means no limit.
	MaxWaitTime int `json:"max_wait_time,omitempty"`

	// DiscountOnly restricts candidates to meal-plan-discounted venues.
	DiscountOnly bool `json:"discount_only,omitempty"`

	// CurrentTime anchors meal derivation and busy-hour checks. Zero means
	// time.Now().
	CurrentTime time.Time `json:"current_time,omitempty"`

	// Count is the maximum number of recommendations to return. Zero means
	// the configured default.
	Count int `json:"count,omitempty"`
}

// Recommendation is one surfaced venue with its score and explanation.
type Recommendation struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Area             string   `json:"area,omitempty"`
	Category         string   `json:"category,omitempty"`
	MealPlanDiscount bool     `json:"meal_plan_discount,omitempty"`
	OpeningTime      string   `json:"opening_time,omitempty"`
	ClosingTime      string   `json:"closing_time,omitempty"`
	CuisineTypes     []string `json:"cuisine_types,omitempty"`
	DietaryOptions   []string `json:"dietary_options,omitempty"`
	AvgWaitTime      int      `json:"avg_wait_time,omitempty"`
	BusyHours        []int    `json:"busy_hours,omitempty"`
	Score            float64  `json:"score"`
	Explanation      string   `json:"explanation"`
}

// Sentinel values returned when the generic path matches nothing. "No
// results" is deliberately not an error on the recommendation path.
const (
	SentinelName        = "No matching locations"
	SentinelExplanation = "No dining locations match your current filters. Try adjusting your preferences."
)

// Response is an ordered recommendation list plus request diagnostics.
type Response struct {
	// Variant identifies the ranking path that produced this response.
	Variant Variant `json:"variant"`

	// Items is the ordered recommendation list, highest score first.
	Items []Recommendation `json:"items"`

	// MealType is the meal slot the ranking filtered on, when any.
	MealType string `json:"meal_type,omitempty"`

	// TimeOfDay is the colloquial time label used for the request.
	TimeOfDay string `json:"time_of_day,omitempty"`

	// RequestID is a short unique identifier for tracing.
	RequestID string `json:"request_id"`

	// GeneratedAt is when the response was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// IsSentinel reports whether the response is the generic path's "no
// matching locations" placeholder.
func (r *Response) IsSentinel() bool {
	return len(r.Items) == 1 && r.Items[0].Name == SentinelName
}

// DailyPlan holds one recommendation list per meal slot for a given date.
type DailyPlan struct {
	Breakfast *Response `json:"breakfast"`
	Lunch     *Response `json:"lunch"`
	Dinner    *Response `json:"dinner"`
	LateNight *Response `json:"late_night"`
}

// SimilarVenue is one neighbor returned by the venue similarity index.
type SimilarVenue struct {
	// Venue is the neighboring catalog venue.
	Venue models.Venue `json:"venue"`

	// Distance is the Euclidean distance in attribute space; smaller is
	// more similar.
	Distance float64 `json:"distance"`
}
