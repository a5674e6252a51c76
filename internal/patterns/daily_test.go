// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// semesterTxns builds two weeks of history starting Monday, February 2
// 2026, with a morning and an evening purchase most days.
func semesterTxns() []models.Transaction {
	base := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	var txns []models.Transaction
	for d := 0; d < 14; d++ {
		day := base.AddDate(0, 0, d)
		txns = append(txns,
			ptxn("Findlay Commons", day.Add(8*time.Hour), 6+float64(d%3), models.AccountCampusMealPlan),
			ptxn("HUB Dining", day.Add(18*time.Hour+30*time.Minute), 9+float64(d%4), models.AccountLionCash),
		)
	}
	return txns
}

func TestFitDailySpendingModel(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	if err := p.FitDailySpendingModel(semesterTxns()); err != nil {
		t.Fatalf("FitDailySpendingModel: %v", err)
	}

	got, err := p.PredictDailySpending(time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("PredictDailySpending: %v", err)
	}

	if got.Date != "2026-02-18" {
		t.Errorf("Date = %q, want 2026-02-18", got.Date)
	}
	if got.DayOfWeek != 2 || got.DayName != "Wednesday" {
		t.Errorf("day = %d/%q, want 2/Wednesday", got.DayOfWeek, got.DayName)
	}
	if len(got.PredictedSpending) != len(models.MealPeriods) {
		t.Fatalf("periods = %d, want %d", len(got.PredictedSpending), len(models.MealPeriods))
	}

	sum := 0.0
	for period, amount := range got.PredictedSpending {
		if amount < 0 {
			t.Errorf("period %s predicted %g, want clamped at 0", period, amount)
		}
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			t.Errorf("period %s predicted %g, want finite", period, amount)
		}
		sum += amount
	}
	if math.Abs(got.TotalPredicted-sum) > 1e-9 {
		t.Errorf("TotalPredicted = %g, want sum of periods %g", got.TotalPredicted, sum)
	}
}

func TestPredictDailySpendingBeforeFit(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	if _, err := p.PredictDailySpending(testNow); !errors.Is(err, ml.ErrNotFitted) {
		t.Errorf("PredictDailySpending before fit: err = %v, want ml.ErrNotFitted", err)
	}
}

func TestFitDailySpendingModelEmpty(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	if err := p.FitDailySpendingModel(nil); !errors.Is(err, ml.ErrNoData) {
		t.Errorf("FitDailySpendingModel(nil): err = %v, want ml.ErrNoData", err)
	}
}

func TestFitDailySpendingModelMissingTimestamp(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	txns := append(semesterTxns(), models.Transaction{Location: "Findlay Commons", Amount: 5})

	var missing *ml.MissingColumnError
	if err := p.FitDailySpendingModel(txns); !errors.As(err, &missing) {
		t.Fatalf("zero timestamp: err = %v, want MissingColumnError", err)
	}
}

func TestPredictWeeklySpending(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	if err := p.FitDailySpendingModel(semesterTxns()); err != nil {
		t.Fatalf("FitDailySpendingModel: %v", err)
	}

	start := time.Date(2026, time.February, 16, 0, 0, 0, 0, time.UTC)
	week, err := p.PredictWeeklySpending(start)
	if err != nil {
		t.Fatalf("PredictWeeklySpending: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	for i, day := range week {
		want := start.AddDate(0, 0, i).Format("2006-01-02")
		if day.Date != want {
			t.Errorf("week[%d].Date = %q, want %q", i, day.Date, want)
		}
	}
	if week[0].DayName != "Monday" || week[6].DayName != "Sunday" {
		t.Errorf("week spans %q..%q, want Monday..Sunday", week[0].DayName, week[6].DayName)
	}
}
