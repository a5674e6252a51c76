// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"fmt"
	"strings"
	"time"

	"github.com/mantavya0807/Mealer/internal/models"
)

// explainContext carries everything a clause may reference. Personalized
// and generic explanations share one clause list and differ only in which
// clauses are eligible.
type explainContext struct {
	variant           Variant
	venue             models.Venue
	meal              *models.MealType
	now               time.Time
	visitFrequency    int
	preferredCuisines []string
}

// clause is one candidate sentence in an explanation. render returns the
// sentence and whether it applies. Clause order and thresholds are part of
// the output contract; the rendered text is asserted verbatim in tests.
type clause struct {
	personalized bool
	generic      bool
	render       func(explainContext) (string, bool)
}

// frequentVisitThreshold is the visit count above which the "you often
// visit" clause applies.
const frequentVisitThreshold = 3

// shortWaitMinutes is the wait-time ceiling for the "short wait" clause.
const shortWaitMinutes = 10

var explanationClauses = []clause{
	// Frequent visitor (personalized only).
	{personalized: true, render: func(ec explainContext) (string, bool) {
		if ec.visitFrequency > frequentVisitThreshold {
			return fmt.Sprintf("You often visit %s", ec.venue.Name), true
		}
		return "", false
	}},
	// Meal plan discount.
	{personalized: true, generic: true, render: func(ec explainContext) (string, bool) {
		if ec.venue.MealPlanDiscount {
			return "Offers 65% meal plan discount", true
		}
		return "", false
	}},
	// Preferred cuisine overlap (personalized only).
	{personalized: true, render: func(ec explainContext) (string, bool) {
		if overlap := ec.venue.CuisineOverlap(ec.preferredCuisines); len(overlap) > 0 {
			return fmt.Sprintf("Serves %s food you enjoy", strings.Join(overlap, ", ")), true
		}
		return "", false
	}},
	// Cuisine variety (generic only).
	{generic: true, render: func(ec explainContext) (string, bool) {
		if len(ec.venue.CuisineTypes) >= 3 {
			return "Wide variety of food options", true
		}
		return "", false
	}},
	// Dietary breadth (generic only).
	{generic: true, render: func(ec explainContext) (string, bool) {
		if len(ec.venue.DietaryOptions) >= 2 {
			return "Good for dietary restrictions", true
		}
		return "", false
	}},
	// Short wait.
	{personalized: true, generic: true, render: func(ec explainContext) (string, bool) {
		if ec.venue.AvgWaitTime <= shortWaitMinutes {
			return "Short wait times", true
		}
		return "", false
	}},
	// Current busyness. Always applies, one phrasing or the other.
	{personalized: true, generic: true, render: func(ec explainContext) (string, bool) {
		if ec.venue.IsBusyAt(ec.now.Hour()) {
			return "Currently busy", true
		}
		return "Not currently busy", true
	}},
	// Meal-specific blurb.
	{personalized: true, generic: true, render: func(ec explainContext) (string, bool) {
		if ec.meal == nil || !ec.venue.ServesMeal(*ec.meal) {
			return "", false
		}
		switch *ec.meal {
		case models.MealBreakfast:
			return "Good breakfast options", true
		case models.MealLunch:
			return "Popular lunch spot", true
		case models.MealDinner:
			return "Great dinner selection", true
		case models.MealLateNight:
			return "Open late", true
		default:
			return "", false
		}
	}},
}

// buildExplanation renders the applicable clauses in order, joined with
// ". " and terminated with ".". When no clause applies, a per-variant
// neutral fallback is used.
func buildExplanation(ec explainContext) string {
	var parts []string
	for _, c := range explanationClauses {
		if ec.variant == VariantPersonalized && !c.personalized {
			continue
		}
		if ec.variant == VariantGeneric && !c.generic {
			continue
		}
		if text, ok := c.render(ec); ok {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		if ec.variant == VariantPersonalized {
			return "Recommended based on your preferences."
		}
		return "Popular dining option on campus."
	}
	return strings.Join(parts, ". ") + "."
}
