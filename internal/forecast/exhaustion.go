// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package forecast

import (
	"time"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// ExhaustionForecast estimates when a balance runs out at the user's
// observed spending rate.
type ExhaustionForecast struct {
	PredictedEmptyDate     time.Time            `json:"predicted_empty_date"`
	DaysRemaining          float64              `json:"days_remaining"`
	RiskLevel              models.RiskLevel     `json:"risk_level"`
	DailySpendingPattern   map[string]float64   `json:"daily_spending_pattern"`
	RecommendedDailyBudget float64              `json:"recommended_daily_budget"`
	PlanType               string               `json:"plan_type"`
}

// PredictFundsExhaustion projects how long the given balance lasts. The
// average daily spend is the mean of the per-day-of-week mean absolute
// spends, not a straight mean over all days; the two averages weight
// sparse weekdays the same as busy ones. Risk is banded against a fixed
// 120-day semester, and a balance lasting the whole semester is LOW
// without ever computing the ratio.
func (f *Forecaster) PredictFundsExhaustion(balance float64, planType string) (*ExhaustionForecast, error) {
	if !f.fitted {
		return nil, ml.ErrNotFitted
	}

	pattern := make(map[string]float64, 7)
	counts := make(map[string]int, 7)
	for _, r := range f.features {
		pattern[r.DayName] += r.Transaction.AbsAmount()
		counts[r.DayName]++
	}
	var sum float64
	for day, total := range pattern {
		pattern[day] = total / float64(counts[day])
		sum += pattern[day]
	}
	avgDaily := sum / float64(len(pattern))

	daysUntilEmpty := balance / avgDaily

	risk := models.RiskLow
	if daysUntilEmpty < catalog.SemesterDays {
		ratio := daysUntilEmpty / catalog.SemesterDays
		switch {
		case ratio < 0.25:
			risk = models.RiskHigh
		case ratio < 0.5:
			risk = models.RiskMedium
		}
	}

	now := f.now()
	return &ExhaustionForecast{
		PredictedEmptyDate:     now.Add(time.Duration(daysUntilEmpty * float64(24 * time.Hour))),
		DaysRemaining:          daysUntilEmpty,
		RiskLevel:              risk,
		DailySpendingPattern:   pattern,
		RecommendedDailyBudget: balance / catalog.SemesterDays,
		PlanType:               planType,
	}, nil
}
