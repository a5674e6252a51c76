// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

import (
	"reflect"
	"testing"
)

func TestVenueServesMeal(t *testing.T) {
	t.Parallel()

	v := Venue{Breakfast: true, Lunch: true, Dinner: false, LateNight: false}

	tests := []struct {
		meal MealType
		want bool
	}{
		{MealBreakfast, true},
		{MealLunch, true},
		{MealDinner, false},
		{MealLateNight, false},
	}
	for _, tt := range tests {
		if got := v.ServesMeal(tt.meal); got != tt.want {
			t.Errorf("ServesMeal(%v) = %v, want %v", tt.meal, got, tt.want)
		}
	}
}

func TestVenueIsBusyAt(t *testing.T) {
	t.Parallel()

	v := Venue{BusyHours: []int{12, 13, 18}}
	if !v.IsBusyAt(12) {
		t.Error("IsBusyAt(12) = false, want true")
	}
	if v.IsBusyAt(9) {
		t.Error("IsBusyAt(9) = true, want false")
	}
}

func TestVenueCoversDietary(t *testing.T) {
	t.Parallel()

	v := Venue{DietaryOptions: []string{"vegetarian", "vegan", "gluten-free"}}

	tests := []struct {
		name         string
		restrictions []string
		want         bool
	}{
		{"no restrictions", nil, true},
		{"single covered", []string{"vegan"}, true},
		{"all covered", []string{"vegetarian", "gluten-free"}, true},
		{"one uncovered disqualifies", []string{"vegan", "halal"}, false},
		{"overlap is not enough", []string{"halal", "kosher", "vegan"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := v.CoversDietary(tt.restrictions); got != tt.want {
				t.Errorf("CoversDietary(%v) = %v, want %v", tt.restrictions, got, tt.want)
			}
		})
	}
}

func TestVenueCuisineOverlap(t *testing.T) {
	t.Parallel()

	v := Venue{CuisineTypes: []string{"american", "italian", "asian"}}

	got := v.CuisineOverlap([]string{"asian", "american", "mexican"})
	want := []string{"american", "asian"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CuisineOverlap returned %v, want %v (venue catalog order)", got, want)
	}

	if got := v.CuisineOverlap(nil); got != nil {
		t.Errorf("CuisineOverlap(nil) = %v, want nil", got)
	}
}
