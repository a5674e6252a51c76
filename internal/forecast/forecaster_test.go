// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package forecast

import (
	"errors"
	"io"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/mantavya0807/Mealer/internal/logging"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// monday is a fixed Monday anchor for deterministic weekday features.
var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func txn(location string, offset time.Duration, amount float64) models.Transaction {
	return models.Transaction{
		Location:  location,
		Timestamp: monday.Add(offset),
		Amount:    amount,
	}
}

// trainingTxns spans two weeks of ordinary campus meal purchases.
func trainingTxns() []models.Transaction {
	day := 24 * time.Hour
	return []models.Transaction{
		txn("Findlay Commons", 8*time.Hour, 7.50),
		txn("Findlay Commons", 12*time.Hour, 9.25),
		txn("HUB Dining", 1*day + 18*time.Hour, 6),
		txn("Findlay Commons", 2*day + 12*time.Hour, 11.75),
		txn("HUB Dining", 3*day + 17*time.Hour, 8.40),
		txn("Findlay Commons", 7*day + 8*time.Hour, 7.95),
		txn("HUB Dining", 8*day + 12*time.Hour, 10.10),
		txn("Findlay Commons", 9*day + 18*time.Hour, 6.80),
		txn("HUB Dining", 10*day + 12*time.Hour, 9.60),
		txn("Findlay Commons", 11*day + 19*time.Hour, 12.30),
	}
}

func newFittedForecaster(t *testing.T, txns []models.Transaction) *Forecaster {
	t.Helper()
	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	if _, err := f.Fit(txns); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return f
}

func TestPrepareFeatures(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	rows, err := f.PrepareFeatures([]models.Transaction{
		txn("Findlay Commons", 8*day + 13*time.Hour, -6), // out of order on purpose
		txn("Findlay Commons", 12*time.Hour, 10),
		txn("HUB Dining", 1*day + 18*time.Hour, 4),
	})
	if err != nil {
		t.Fatalf("PrepareFeatures: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	first := rows[0]
	if first.DayName != "Monday" || first.Hour != 12 || first.WeekIndex != 1 {
		t.Errorf("first row = %s/%d/week %d, want Monday/12/week 1", first.DayName, first.Hour, first.WeekIndex)
	}
	if first.CumulativeSpending != 10 {
		t.Errorf("first CumulativeSpending = %g, want 10", first.CumulativeSpending)
	}
	if got, want := first.DailyRate, 10.0/7; math.Abs(got-want) > 1e-9 {
		t.Errorf("first DailyRate = %g, want %g", got, want)
	}

	last := rows[2]
	if last.DayName != "Tuesday" || last.WeekIndex != 2 {
		t.Errorf("last row = %s/week %d, want Tuesday/week 2", last.DayName, last.WeekIndex)
	}
	if last.CumulativeSpending != 20 {
		t.Errorf("last CumulativeSpending = %g, want 20 (abs amounts)", last.CumulativeSpending)
	}
	if got, want := last.DailyRate, 20.0/14; math.Abs(got-want) > 1e-9 {
		t.Errorf("last DailyRate = %g, want %g", got, want)
	}
}

func TestPrepareFeaturesEmpty(t *testing.T) {
	t.Parallel()

	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	if _, err := f.PrepareFeatures(nil); !errors.Is(err, ml.ErrNoData) {
		t.Errorf("PrepareFeatures(nil): err = %v, want ml.ErrNoData", err)
	}
}

func TestFitAndPredict(t *testing.T) {
	t.Parallel()

	f := newFittedForecaster(t, trainingTxns())
	if !f.IsFitted() {
		t.Fatal("IsFitted() = false after successful Fit")
	}

	if r2 := f.Score(); math.IsNaN(r2) || math.IsInf(r2, 0) {
		t.Errorf("Score() = %g, want a finite value", r2)
	}

	got, err := f.PredictNextWeekSpend("Findlay Commons", "Monday", 12, 2, 8.5)
	if err != nil {
		t.Fatalf("PredictNextWeekSpend: %v", err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("PredictNextWeekSpend = %g, want a finite value", got)
	}
}

func TestFitRealisticAmounts(t *testing.T) {
	t.Parallel()

	day := 24 * time.Hour
	venues := []string{"Findlay Commons", "HUB Dining", "Redifer Commons", "Edge Coffee Bar"}
	var txns []models.Transaction
	for i := 0; i < 28; i++ {
		amount := 5.25 + 0.25*float64(i)
		txns = append(txns, txn(venues[i%len(venues)], time.Duration(i)*day+12*time.Hour, amount))
	}

	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	r2, err := f.Fit(txns)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		t.Fatalf("Fit r-squared = %g, want a finite value", r2)
	}

	got, err := f.PredictNextWeekSpend("Findlay Commons", "Monday", 12, 4, 8.75)
	if err != nil {
		t.Fatalf("PredictNextWeekSpend: %v", err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("PredictNextWeekSpend = %g, want a finite value", got)
	}
}

func TestPredictStableAfterQueries(t *testing.T) {
	t.Parallel()

	f := newFittedForecaster(t, trainingTxns())

	before, err := f.PredictNextWeekSpend("Findlay Commons", "Monday", 12, 2, 8.5)
	if err != nil {
		t.Fatalf("PredictNextWeekSpend: %v", err)
	}

	// Venues first appear in the opposite order here, so any refit of the
	// forecaster's encoders would remap the fitted codes.
	day := 24 * time.Hour
	other := []models.Transaction{
		txn("HUB Dining", 12*time.Hour, 6.50),
		txn("Findlay Commons", 1*day + 18*time.Hour, 9.25),
	}
	if _, err := f.SuggestBestTimes(other); err != nil {
		t.Fatalf("SuggestBestTimes: %v", err)
	}
	if _, err := f.RecommendMealPlan(other, "level_1"); err != nil {
		t.Fatalf("RecommendMealPlan: %v", err)
	}

	after, err := f.PredictNextWeekSpend("Findlay Commons", "Monday", 12, 2, 8.5)
	if err != nil {
		t.Fatalf("PredictNextWeekSpend after queries: %v", err)
	}
	if before != after {
		t.Errorf("prediction changed after aggregate queries: %g then %g", before, after)
	}
}

func TestPrepareFeaturesIdempotent(t *testing.T) {
	t.Parallel()

	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	txns := trainingTxns()

	first, err := f.PrepareFeatures(txns)
	if err != nil {
		t.Fatalf("PrepareFeatures: %v", err)
	}
	second, err := f.PrepareFeatures(txns)
	if err != nil {
		t.Fatalf("PrepareFeatures (second call): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("PrepareFeatures is not stable across repeated calls")
	}
}

func TestFitEmpty(t *testing.T) {
	t.Parallel()

	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	if _, err := f.Fit(nil); !errors.Is(err, ml.ErrNoData) {
		t.Errorf("Fit(nil): err = %v, want ml.ErrNoData", err)
	}
	if f.IsFitted() {
		t.Error("IsFitted() = true after failed Fit")
	}
}

func TestPredictBeforeFit(t *testing.T) {
	t.Parallel()

	f := NewForecaster(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	if _, err := f.PredictNextWeekSpend("Findlay Commons", "Monday", 12, 1, 1); !errors.Is(err, ml.ErrNotFitted) {
		t.Errorf("PredictNextWeekSpend before Fit: err = %v, want ml.ErrNotFitted", err)
	}
	if _, err := f.PredictFundsExhaustion(500, "level_2"); !errors.Is(err, ml.ErrNotFitted) {
		t.Errorf("PredictFundsExhaustion before Fit: err = %v, want ml.ErrNotFitted", err)
	}
}

func TestPredictUnseenCategory(t *testing.T) {
	t.Parallel()

	f := newFittedForecaster(t, trainingTxns())

	_, err := f.PredictNextWeekSpend("Redifer Commons", "Monday", 1, 2, 0.3)
	var unknown *ml.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("unseen location: err = %v, want UnknownCategoryError", err)
	}
	if unknown.Column != "location" || unknown.Value != "Redifer Commons" {
		t.Errorf("UnknownCategoryError = %+v", unknown)
	}

	_, err = f.PredictNextWeekSpend("Findlay Commons", "Sunday", 1, 2, 0.3)
	if !errors.As(err, &unknown) {
		t.Fatalf("unseen day: err = %v, want UnknownCategoryError", err)
	}
	if unknown.Column != "day_of_week" {
		t.Errorf("UnknownCategoryError = %+v", unknown)
	}
}
