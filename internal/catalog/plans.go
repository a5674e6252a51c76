// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package catalog

// MealPlanTier describes one purchasable meal plan level.
type MealPlanTier struct {
	// Name is the tier identifier (level_1, level_2, level_3).
	Name string `json:"name"`

	// Cost is the purchase price in dollars.
	Cost float64 `json:"cost"`

	// Value is the dining dollar value the tier provides.
	Value float64 `json:"value"`

	// BestFor is a short description of the intended spender.
	BestFor string `json:"best_for"`
}

// mealPlanTiers is the fixed tier table. Order matters: when a projection
// ties two tiers, the first tier reaching the minimum difference wins.
var mealPlanTiers = []MealPlanTier{
	{Name: "level_1", Cost: 2000, Value: 2200, BestFor: "light spenders"},
	{Name: "level_2", Cost: 2800, Value: 3200, BestFor: "moderate spenders"},
	{Name: "level_3", Cost: 3500, Value: 4200, BestFor: "heavy spenders"},
}

// MealPlanTiers returns the fixed tier table in selection order. The
// returned slice is shared; callers must not modify it.
func MealPlanTiers() []MealPlanTier {
	return mealPlanTiers
}
