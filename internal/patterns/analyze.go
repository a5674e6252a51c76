// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

import (
	"fmt"
	"sort"

	"github.com/mantavya0807/Mealer/internal/models"
)

// commonsDiscountRate is the meal plan discount applied at dining commons,
// used to estimate savings on spending that happened elsewhere.
const commonsDiscountRate = 0.65

// SpendingAnalysis is the full rule-based spending report.
type SpendingAnalysis struct {
	Summary            SpendingSummary   `json:"summary"`
	DayOfWeek          []DayStats        `json:"day_of_week"`
	HighestSpendingDay string            `json:"highest_spending_day"`
	LowestSpendingDay  string            `json:"lowest_spending_day"`
	MealPeriods        []PeriodStats     `json:"meal_period"`
	Locations          []LocationStats   `json:"locations"`
	TopLocations       []LocationStats   `json:"top_locations"`
	Efficiency         *EfficiencyReport `json:"meal_plan_efficiency,omitempty"`
	Recommendations    []Recommendation  `json:"recommendations"`
}

// SpendingSummary aggregates the whole history.
type SpendingSummary struct {
	TotalSpending      float64 `json:"total_spending"`
	AverageTransaction float64 `json:"average_transaction"`
	MaxTransaction     float64 `json:"max_transaction"`
	TransactionCount   int     `json:"transaction_count"`
}

// DayStats aggregates one weekday. All 7 days are reported, zero-filled
// when no transactions fall on them.
type DayStats struct {
	Day                string  `json:"day"`
	TotalSpending      float64 `json:"total_spending"`
	AverageTransaction float64 `json:"average_transaction"`
	TransactionCount   int     `json:"transaction_count"`
}

// PeriodStats aggregates one meal period. Only periods with transactions
// are reported, in fixed period order.
type PeriodStats struct {
	Period             string  `json:"period"`
	TotalSpending      float64 `json:"total_spending"`
	AverageTransaction float64 `json:"average_transaction"`
	TransactionCount   int     `json:"transaction_count"`
}

// LocationStats aggregates one venue.
type LocationStats struct {
	Location           string  `json:"location"`
	TotalSpending      float64 `json:"total_spending"`
	AverageTransaction float64 `json:"average_transaction"`
	TransactionCount   int     `json:"transaction_count"`
}

// EfficiencyReport measures how much spending captured the dining commons
// discount.
type EfficiencyReport struct {
	CommonsSpending    float64 `json:"commons_spending"`
	NonCommonsSpending float64 `json:"non_commons_spending"`
	CommonsPercentage  float64 `json:"commons_percentage"`
	PotentialSavings   float64 `json:"potential_savings"`
	Rating             string  `json:"rating"`
}

// Recommendation is one insight with a short title and full description.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AnalyzeSpendingPatterns builds the full spending report from a
// transaction history. It needs no trained models.
func (p *Predictor) AnalyzeSpendingPatterns(txns []models.Transaction) (*SpendingAnalysis, error) {
	rows, err := p.PreprocessTransactions(txns)
	if err != nil {
		return nil, err
	}

	a := &SpendingAnalysis{}

	total, maxAmount := 0.0, 0.0
	for _, r := range rows {
		amount := r.Transaction.AbsAmount()
		total += amount
		if amount > maxAmount {
			maxAmount = amount
		}
	}
	a.Summary = SpendingSummary{
		TotalSpending:      total,
		AverageTransaction: total / float64(len(rows)),
		MaxTransaction:     maxAmount,
		TransactionCount:   len(rows),
	}

	a.DayOfWeek, a.HighestSpendingDay, a.LowestSpendingDay = dayOfWeekStats(rows)
	a.MealPeriods = mealPeriodStats(rows)
	a.Locations = locationStats(rows)
	a.TopLocations = a.Locations
	if len(a.TopLocations) > 3 {
		a.TopLocations = a.TopLocations[:3]
	}
	a.Efficiency = efficiencyReport(rows)
	a.Recommendations = p.generateRecommendations(rows)

	return a, nil
}

func dayOfWeekStats(rows []Row) (stats []DayStats, highest, lowest string) {
	sums := make([]float64, 7)
	counts := make([]int, 7)
	for _, r := range rows {
		sums[r.DayOfWeek] += r.Transaction.AbsAmount()
		counts[r.DayOfWeek]++
	}

	stats = make([]DayStats, 7)
	maxDay := -1
	for d := 0; d < 7; d++ {
		stats[d] = DayStats{Day: models.DayNames[d], TotalSpending: sums[d], TransactionCount: counts[d]}
		if counts[d] > 0 {
			stats[d].AverageTransaction = sums[d] / float64(counts[d])
			if maxDay < 0 || sums[d] > sums[maxDay] {
				maxDay = d
			}
		}
	}

	highest = models.DayNames[maxDay]
	// Lowest tracks the same argmax as highest; downstream reports pin
	// this behavior.
	lowest = models.DayNames[maxDay]
	return stats, highest, lowest
}

func mealPeriodStats(rows []Row) []PeriodStats {
	sums := map[models.MealPeriod]float64{}
	counts := map[models.MealPeriod]int{}
	for _, r := range rows {
		sums[r.MealPeriod] += r.Transaction.AbsAmount()
		counts[r.MealPeriod]++
	}

	var stats []PeriodStats
	for _, period := range models.MealPeriods {
		n := counts[period]
		if n == 0 {
			continue
		}
		stats = append(stats, PeriodStats{
			Period:             period.String(),
			TotalSpending:      sums[period],
			AverageTransaction: sums[period] / float64(n),
			TransactionCount:   n,
		})
	}
	return stats
}

func locationStats(rows []Row) []LocationStats {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range rows {
		sums[r.Transaction.Location] += r.Transaction.AbsAmount()
		counts[r.Transaction.Location]++
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	stats := make([]LocationStats, 0, len(names))
	for _, name := range names {
		stats = append(stats, LocationStats{
			Location:           name,
			TotalSpending:      sums[name],
			AverageTransaction: sums[name] / float64(counts[name]),
			TransactionCount:   counts[name],
		})
	}
	// Spending descending; equal totals keep name order.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpending > stats[j].TotalSpending
	})
	return stats
}

func efficiencyReport(rows []Row) *EfficiencyReport {
	commons, nonCommons := commonsSplit(rows)
	total := commons + nonCommons
	if total <= 0 {
		return nil
	}

	pct := commons / total * 100
	rating := "Poor"
	switch {
	case pct >= 80:
		rating = "Excellent"
	case pct >= 60:
		rating = "Good"
	case pct >= 40:
		rating = "Average"
	}

	return &EfficiencyReport{
		CommonsSpending:    commons,
		NonCommonsSpending: nonCommons,
		CommonsPercentage:  pct,
		PotentialSavings:   nonCommons * commonsDiscountRate,
		Rating:             rating,
	}
}

// generateRecommendations emits the rule-based insights. Order is fixed:
// discount-utilization findings, late night pattern, heaviest day pattern,
// then the two general tips.
func (p *Predictor) generateRecommendations(rows []Row) []Recommendation {
	var recs []Recommendation

	commons, nonCommons := commonsSplit(rows)
	total := commons + nonCommons
	if total > 0 {
		pct := commons / total * 100
		if pct < 50 {
			var market, hub float64
			for _, r := range rows {
				amount := r.Transaction.AbsAmount()
				if r.Market {
					market += amount
				}
				if r.Hub {
					hub += amount
				}
			}

			if market > 0.3*nonCommons {
				recs = append(recs, Recommendation{
					Type:        "inefficient_spending",
					Title:       "High Market Spending",
					Description: "You're spending a significant amount at markets where meal plan discounts don't apply. Consider using dining commons more frequently to take advantage of the 65% discount.",
				})
			}
			if hub > 0.3*nonCommons {
				recs = append(recs, Recommendation{
					Type:        "inefficient_spending",
					Title:       "High HUB Spending",
					Description: "You're spending a lot at HUB restaurants where meal plan discounts don't apply. Using dining commons more often could help your meal plan last longer.",
				})
			}
			if pct < 30 {
				recs = append(recs, Recommendation{
					Type:        "inefficient_spending",
					Title:       "Very Low Discount Utilization",
					Description: fmt.Sprintf("Only %d%% of your spending is at locations with the 65%% discount. You could significantly extend your meal plan by dining more often at commons locations.", int(pct)),
				})
			}
		}

		var lateNight float64
		for _, r := range rows {
			if r.MealPeriod == models.PeriodLateNight {
				lateNight += r.Transaction.AbsAmount()
			}
		}
		if lateNight/total*100 > 30 {
			recs = append(recs, Recommendation{
				Type:        "time_pattern",
				Title:       "High Late Night Spending",
				Description: "You spend a significant portion of your meal plan during late night hours. Late night options often have fewer choices and may be less cost-effective.",
			})
		}

		daySums := make([]float64, 7)
		for _, r := range rows {
			daySums[r.DayOfWeek] += r.Transaction.AbsAmount()
		}
		maxDay := 0
		for d := 1; d < 7; d++ {
			if daySums[d] > daySums[maxDay] {
				maxDay = d
			}
		}
		if maxPct := daySums[maxDay] / total * 100; maxPct > 25 {
			recs = append(recs, Recommendation{
				Type:        "day_pattern",
				Title:       fmt.Sprintf("High %s Spending", models.DayNames[maxDay]),
				Description: fmt.Sprintf("You spend %d%% of your weekly meal plan on %ss. Try to distribute your spending more evenly throughout the week.", int(maxPct), models.DayNames[maxDay]),
			})
		}
	}

	recs = append(recs,
		Recommendation{
			Type:        "general",
			Title:       "Maximize Dining Commons Usage",
			Description: "Always prioritize dining commons (Findlay, Waring, Redifer, North, Pollock) to receive the 65% meal plan discount.",
		},
		Recommendation{
			Type:        "general",
			Title:       "Use LionCash for Non-Discounted Locations",
			Description: "For HUB dining and markets, consider using LionCash to get the 10% discount instead of your meal plan which receives no discount at these locations.",
		},
	)
	return recs
}

func commonsSplit(rows []Row) (commons, nonCommons float64) {
	for _, r := range rows {
		amount := r.Transaction.AbsAmount()
		if r.DiningCommons {
			commons += amount
		} else {
			nonCommons += amount
		}
	}
	return commons, nonCommons
}
