// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

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

// testNow pins the predictor clock inside the spring 2026 semester, so
// semester-relative features anchor on January 15.
var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestPredictor(t *testing.T) *Predictor {
	t.Helper()
	p := NewPredictor(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	p.now = func() time.Time { return testNow }
	return p
}

func ptxn(location string, ts time.Time, amount float64, account models.AccountType) models.Transaction {
	return models.Transaction{
		Location:    location,
		Timestamp:   ts,
		Amount:      amount,
		AccountType: account,
	}
}

func TestPreprocessTransactionsIdempotent(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	txns := []models.Transaction{
		ptxn("Findlay Commons", time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC), 7.50, models.AccountCampusMealPlan),
		ptxn("HUB Dining", time.Date(2026, time.February, 2, 18, 30, 0, 0, time.UTC), 9.25, models.AccountLionCash),
		ptxn("East Market", time.Date(2026, time.February, 4, 12, 0, 0, 0, time.UTC), 6.40, models.AccountLionCash),
	}

	first, err := p.PreprocessTransactions(txns)
	if err != nil {
		t.Fatalf("PreprocessTransactions: %v", err)
	}
	second, err := p.PreprocessTransactions(txns)
	if err != nil {
		t.Fatalf("PreprocessTransactions (second call): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("PreprocessTransactions is not stable across repeated calls")
	}
}

func TestPreprocessTransactions(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	rows, err := p.PreprocessTransactions([]models.Transaction{
		// Out of order on purpose; preprocessing sorts by timestamp.
		ptxn("HUB Dining", time.Date(2026, time.January, 17, 22, 30, 0, 0, time.UTC), 8, models.AccountLionCash),
		ptxn("Findlay Commons", time.Date(2026, time.January, 16, 9, 0, 0, 0, time.UTC), -10, models.AccountCampusMealPlan),
		ptxn("East Market", time.Date(2026, time.January, 17, 12, 0, 0, 0, time.UTC), 6, models.AccountLionCash),
		ptxn("The Edge Coffee Bar", time.Date(2026, time.January, 18, 16, 0, 0, 0, time.UTC), 4, models.AccountOther),
	})
	if err != nil {
		t.Fatalf("PreprocessTransactions: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	friday := rows[0]
	if friday.DayOfWeek != 4 || friday.Weekend {
		t.Errorf("Friday row = day %d weekend %v, want 4/false", friday.DayOfWeek, friday.Weekend)
	}
	if friday.MealPeriod != models.PeriodBreakfast {
		t.Errorf("09:00 period = %v, want breakfast", friday.MealPeriod)
	}
	if friday.DaysSinceSemesterStart != 1 {
		t.Errorf("Jan 16 DaysSinceSemesterStart = %d, want 1", friday.DaysSinceSemesterStart)
	}
	if friday.DaysSinceLast != 0 {
		t.Errorf("first row DaysSinceLast = %g, want 0", friday.DaysSinceLast)
	}
	if friday.Rolling3Day != 10 || friday.Rolling7Day != 10 {
		t.Errorf("unfilled windows = %g/%g, want the row's own amount", friday.Rolling3Day, friday.Rolling7Day)
	}
	if friday.CumulativeSpending != 10 {
		t.Errorf("CumulativeSpending = %g, want 10 (abs of -10)", friday.CumulativeSpending)
	}
	if !friday.DiningCommons || friday.Hub || friday.Market {
		t.Errorf("Findlay flags = %v/%v/%v, want commons only", friday.DiningCommons, friday.Hub, friday.Market)
	}
	if !friday.MealPlan || friday.LionCash {
		t.Errorf("Findlay accounts = %v/%v, want meal plan only", friday.MealPlan, friday.LionCash)
	}

	market := rows[1]
	if market.DayOfWeek != 5 || !market.Weekend {
		t.Errorf("Saturday row = day %d weekend %v, want 5/true", market.DayOfWeek, market.Weekend)
	}
	if market.MealPeriod != models.PeriodLunch {
		t.Errorf("12:00 period = %v, want lunch", market.MealPeriod)
	}
	if !market.Market || market.DiningCommons {
		t.Errorf("East Market flags = market %v commons %v", market.Market, market.DiningCommons)
	}
	if want := 27.0 / 24; math.Abs(market.DaysSinceLast-want) > 1e-9 {
		t.Errorf("DaysSinceLast = %g, want %g", market.DaysSinceLast, want)
	}

	hub := rows[2]
	if hub.MealPeriod != models.PeriodLateNight {
		t.Errorf("22:30 period = %v, want latenight", hub.MealPeriod)
	}
	if !hub.Hub || !hub.LionCash {
		t.Errorf("HUB flags = hub %v lioncash %v, want both", hub.Hub, hub.LionCash)
	}
	if want := (10.0 + 6 + 8) / 3; math.Abs(hub.Rolling3Day-want) > 1e-9 {
		t.Errorf("filled Rolling3Day = %g, want %g", hub.Rolling3Day, want)
	}

	edge := rows[3]
	if edge.MealPeriod != models.PeriodAfternoon {
		t.Errorf("16:00 period = %v, want afternoon", edge.MealPeriod)
	}
	if want := (6.0 + 8 + 4) / 3; math.Abs(edge.Rolling3Day-want) > 1e-9 {
		t.Errorf("Rolling3Day = %g, want %g", edge.Rolling3Day, want)
	}
	if edge.Rolling7Day != 4 {
		t.Errorf("unfilled Rolling7Day = %g, want the row's own amount", edge.Rolling7Day)
	}
	if edge.CumulativeSpending != 28 {
		t.Errorf("CumulativeSpending = %g, want 28", edge.CumulativeSpending)
	}
}

func TestPreprocessTransactionsEmpty(t *testing.T) {
	t.Parallel()

	p := newTestPredictor(t)
	if _, err := p.PreprocessTransactions(nil); !errors.Is(err, ml.ErrNoData) {
		t.Errorf("PreprocessTransactions(nil): err = %v, want ml.ErrNoData", err)
	}
}

func TestValidateColumns(t *testing.T) {
	t.Parallel()

	valid := ptxn("Findlay Commons", testNow, 10, models.AccountCampusMealPlan)
	noTime := models.Transaction{Location: "Findlay Commons", Amount: 10}
	noLocation := models.Transaction{Timestamp: testNow, Amount: 10}

	var missing *ml.MissingColumnError
	if err := validateColumns([]models.Transaction{valid, noTime}, false); !errors.As(err, &missing) || missing.Column != "timestamp" {
		t.Errorf("zero timestamp: err = %v, want MissingColumnError{timestamp}", err)
	}
	if err := validateColumns([]models.Transaction{valid, noLocation}, true); !errors.As(err, &missing) || missing.Column != "location" {
		t.Errorf("empty location: err = %v, want MissingColumnError{location}", err)
	}
	if err := validateColumns([]models.Transaction{valid, noLocation}, false); err != nil {
		t.Errorf("location not required: err = %v, want nil", err)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		ts   time.Time
		want int
	}{
		{time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, time.January, 15, 23, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, time.January, 16, 1, 0, 0, 0, time.UTC), 1},
		// The evening before floors to -1, not 0.
		{time.Date(2026, time.January, 14, 20, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		if got := daysBetween(start, tt.ts); got != tt.want {
			t.Errorf("daysBetween(start, %v) = %d, want %d", tt.ts, got, tt.want)
		}
	}
}
