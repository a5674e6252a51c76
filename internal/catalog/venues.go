// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package catalog holds the fixed constant tables the analysis pipelines
// depend on: the campus venue catalog, meal plan tiers, semester date
// boundaries, and the venue keyword lists. Explanation text and filter
// behavior are tied to these exact values, so they are compiled in rather
// than loaded from configuration.
package catalog

import "github.com/mantavya0807/Mealer/internal/models"

// venues is the static campus dining catalog. Order matters: recommendation
// ties are broken by catalog order.
var venues = []models.Venue{
	// East area
	{
		ID: "e1", Name: "Findlay Commons", Area: "East", Category: "Dining Hall",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 10,
		CuisineTypes:   []string{"American", "Italian", "Asian"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "22:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	{
		ID: "e2", Name: "Flipps", Area: "East", Category: "Fast Food",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 15,
		CuisineTypes:   []string{"American", "Burgers"},
		DietaryOptions: []string{"Vegetarian"},
		Breakfast:      false, Lunch: true, Dinner: true, LateNight: true,
		OpeningTime: "11:00", ClosingTime: "23:00",
		BusyHours: []int{12, 13, 18, 19, 20},
	},
	// West area
	{
		ID: "w1", Name: "Waring Commons", Area: "West", Category: "Dining Hall",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 12,
		CuisineTypes:   []string{"American", "International"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "22:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	{
		ID: "w2", Name: "The Edge Coffee Bar", Area: "West", Category: "Coffee Shop",
		MealPlanDiscount: false, PriceLevel: 1, AvgWaitTime: 8,
		CuisineTypes:   []string{"Coffee", "Bakery"},
		DietaryOptions: []string{"Vegetarian", "Vegan"},
		Breakfast:      true, Lunch: false, Dinner: false, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "16:00",
		BusyHours: []int{8, 9, 10, 15},
	},
	// North area
	{
		ID: "n1", Name: "North Food District", Area: "North", Category: "Dining Hall",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 10,
		CuisineTypes:   []string{"American", "International", "Italian"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free", "Halal"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "22:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	// South area
	{
		ID: "s1", Name: "Redifer Commons", Area: "South", Category: "Dining Hall",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 15,
		CuisineTypes:   []string{"American", "Italian", "Asian", "Mexican"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "22:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	// Pollock area
	{
		ID: "p1", Name: "Pollock Commons", Area: "Pollock", Category: "Dining Hall",
		MealPlanDiscount: true, PriceLevel: 2, AvgWaitTime: 12,
		CuisineTypes:   []string{"American", "International"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "22:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	// HUB area (central)
	{
		ID: "h1", Name: "HUB Dining", Area: "Central", Category: "Food Court",
		MealPlanDiscount: false, PriceLevel: 2, AvgWaitTime: 15,
		CuisineTypes:   []string{"American", "Asian", "Mexican", "Pizza"},
		DietaryOptions: []string{"Vegetarian", "Vegan", "Gluten-Free"},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: true,
		OpeningTime: "07:00", ClosingTime: "24:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
	{
		ID: "h2", Name: "Starbucks HUB", Area: "Central", Category: "Coffee Shop",
		MealPlanDiscount: false, PriceLevel: 1, AvgWaitTime: 10,
		CuisineTypes:   []string{"Coffee", "Bakery"},
		DietaryOptions: []string{"Vegetarian", "Vegan"},
		Breakfast:      true, Lunch: false, Dinner: false, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "20:00",
		BusyHours: []int{8, 9, 10, 14, 15},
	},
	{
		ID: "h3", Name: "Chick-fil-A HUB", Area: "Central", Category: "Fast Food",
		MealPlanDiscount: false, PriceLevel: 2, AvgWaitTime: 20,
		CuisineTypes:   []string{"American", "Chicken"},
		DietaryOptions: []string{},
		Breakfast:      true, Lunch: true, Dinner: true, LateNight: false,
		OpeningTime: "07:00", ClosingTime: "21:00",
		BusyHours: []int{11, 12, 13, 17, 18, 19},
	},
}

// Venues returns the full venue catalog in its fixed order. The returned
// slice is shared; callers must not modify it.
func Venues() []models.Venue {
	return venues
}

// VenueByID returns the venue with the given catalog ID.
func VenueByID(id string) (models.Venue, bool) {
	for _, v := range venues {
		if v.ID == id {
			return v, true
		}
	}
	return models.Venue{}, false
}

// VenueByName returns the venue with the given display name.
func VenueByName(name string) (models.Venue, bool) {
	for _, v := range venues {
		if v.Name == name {
			return v, true
		}
	}
	return models.Venue{}, false
}
