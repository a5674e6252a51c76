// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

// Venue is a static dining location record. Venues are loaded once from the
// catalog and never mutated.
type Venue struct {
	// ID is the catalog identifier (e.g. "e1", "h2").
	ID string `json:"id"`

	// Name is the display name shown in recommendations.
	Name string `json:"name"`

	// Area is the campus area (East, West, North, South, Pollock, Central).
	Area string `json:"area"`

	// Category is the venue category (Dining Hall, Fast Food, Coffee Shop,
	// Food Court).
	Category string `json:"category"`

	// MealPlanDiscount indicates the venue attracts the flat meal plan
	// discount.
	MealPlanDiscount bool `json:"meal_plan_discount"`

	// PriceLevel is a relative price tier (1 = cheapest).
	PriceLevel int `json:"price_level"`

	// AvgWaitTime is the typical wait in minutes.
	AvgWaitTime int `json:"avg_wait_time"`

	// CuisineTypes lists the cuisines served.
	CuisineTypes []string `json:"cuisine_types"`

	// DietaryOptions lists the dietary restrictions the venue can cover.
	DietaryOptions []string `json:"dietary_options"`

	// Breakfast, Lunch, Dinner, and LateNight flag which meal slots the
	// venue serves.
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	LateNight bool `json:"late_night"`

	// OpeningTime and ClosingTime are HH:MM strings.
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`

	// BusyHours lists the hours (0-23) when the venue is typically crowded.
	BusyHours []int `json:"busy_hours"`
}

// ServesMeal reports whether the venue serves the given meal slot.
func (v Venue) ServesMeal(meal MealType) bool {
	switch meal {
	case MealBreakfast:
		return v.Breakfast
	case MealLunch:
		return v.Lunch
	case MealDinner:
		return v.Dinner
	case MealLateNight:
		return v.LateNight
	default:
		return false
	}
}

// IsBusyAt reports whether the hour falls in the venue's busy hours.
func (v Venue) IsBusyAt(hour int) bool {
	for _, h := range v.BusyHours {
		if h == hour {
			return true
		}
	}
	return false
}

// CoversDietary reports whether the venue's dietary options cover every
// requested restriction. Full coverage is required, not overlap: a single
// uncovered restriction disqualifies the venue.
func (v Venue) CoversDietary(restrictions []string) bool {
	for _, r := range restrictions {
		found := false
		for _, opt := range v.DietaryOptions {
			if opt == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CuisineOverlap returns the cuisines the venue serves that also appear in
// preferred, in the venue's catalog order.
func (v Venue) CuisineOverlap(preferred []string) []string {
	if len(preferred) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(preferred))
	for _, c := range preferred {
		want[c] = struct{}{}
	}
	var overlap []string
	for _, c := range v.CuisineTypes {
		if _, ok := want[c]; ok {
			overlap = append(overlap, c)
		}
	}
	return overlap
}
