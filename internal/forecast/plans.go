// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package forecast

import (
	"fmt"
	"strings"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/models"
)

// SpendingPattern summarizes the aggregate statistics behind a plan
// recommendation.
type SpendingPattern struct {
	WeeklyAverage     float64 `json:"weekly_average"`
	ProjectedSemester float64 `json:"projected_semester"`
	AvgTransaction    float64 `json:"avg_transaction"`
	DiscountUsage     float64 `json:"discount_usage_ratio"`
}

// PlanRecommendation names the tier whose semester value sits closest to
// the user's projected spend.
type PlanRecommendation struct {
	RecommendedPlan  string          `json:"recommended_plan"`
	CurrentPlan      string          `json:"current_plan"`
	Pattern          SpendingPattern `json:"current_spending_pattern"`
	Reason           string          `json:"reason"`
	PotentialSavings float64         `json:"potential_savings"`
}

// RecommendMealPlan projects the transaction history to a full semester
// and picks the tier with value closest to the projection. Ties keep the
// first tier reaching the minimum in catalog order, so a projection of
// exactly 3200 selects level_2.
func (f *Forecaster) RecommendMealPlan(txns []models.Transaction, currentPlan string) (*PlanRecommendation, error) {
	rows, err := f.PrepareFeatures(txns)
	if err != nil {
		return nil, err
	}

	var total float64
	maxWeek := 0
	discountVisits := 0
	for _, r := range rows {
		total += r.Transaction.AbsAmount()
		if r.WeekIndex > maxWeek {
			maxWeek = r.WeekIndex
		}
		loc := strings.ToLower(r.Transaction.Location)
		if strings.Contains(loc, "market") || strings.Contains(loc, "hub") {
			discountVisits++
		}
	}

	weekly := total / float64(maxWeek)
	projected := weekly * catalog.SemesterWeeks

	tiers := catalog.MealPlanTiers()
	best := tiers[0]
	minDiff := diff(best.Value, projected)
	for _, tier := range tiers[1:] {
		if d := diff(tier.Value, projected); d < minDiff {
			minDiff = d
			best = tier
		}
	}

	return &PlanRecommendation{
		RecommendedPlan: best.Name,
		CurrentPlan:     currentPlan,
		Pattern: SpendingPattern{
			WeeklyAverage:     weekly,
			ProjectedSemester: projected,
			AvgTransaction:    total / float64(len(rows)),
			DiscountUsage:     float64(discountVisits) / float64(len(rows)),
		},
		Reason:           fmt.Sprintf("Based on your spending patterns, you're projected to spend $%.2f per semester", projected),
		PotentialSavings: best.Value - best.Cost,
	}, nil
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
