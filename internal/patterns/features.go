// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

import (
	"math"
	"time"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// Row is one transaction with the pattern predictor's engineered features.
type Row struct {
	Transaction models.Transaction

	// DayOfWeek is Monday-based (Monday=0 .. Sunday=6).
	DayOfWeek int
	Hour      int
	Month     int
	Day       int
	Weekend   bool

	MealPeriod models.MealPeriod

	// DaysSinceSemesterStart is relative to the semester containing the
	// predictor's current wall-clock date, not the transaction's own date.
	// Historical rows therefore shift when the pipeline crosses a semester
	// boundary; callers that need stable features fix the predictor clock.
	DaysSinceSemesterStart int

	// DaysSinceLast is the fractional days since the previous transaction
	// in timestamp order, 0 for the first row.
	DaysSinceLast float64

	// Rolling3Day and Rolling7Day are trailing row-window means of the
	// absolute amount. Until the window fills they hold the row's own
	// amount.
	Rolling3Day float64
	Rolling7Day float64

	CumulativeSpending float64

	DiningCommons bool
	Hub           bool
	Market        bool

	MealPlan bool
	LionCash bool
}

// PreprocessTransactions engineers the shared feature rows. Rows come back
// in timestamp order (stable for ties). The routine is deterministic for a
// fixed predictor clock: repeated calls on the same input yield identical
// rows.
func (p *Predictor) PreprocessTransactions(txns []models.Transaction) ([]Row, error) {
	if len(txns) == 0 {
		return nil, ml.ErrNoData
	}

	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	models.SortTransactionsByTimestamp(sorted)

	semesterStart := catalog.SemesterStart(p.now())

	rows := make([]Row, len(sorted))
	cumulative := 0.0
	for i, txn := range sorted {
		ts := txn.Timestamp
		amount := txn.AbsAmount()
		cumulative += amount

		r := Row{
			Transaction:            txn,
			DayOfWeek:              models.MondayWeekday(ts.Weekday()),
			Hour:                   ts.Hour(),
			Month:                  int(ts.Month()),
			Day:                    ts.Day(),
			MealPeriod:             models.PeriodForHour(ts.Hour()),
			DaysSinceSemesterStart: daysBetween(semesterStart, ts),
			CumulativeSpending:     cumulative,
			DiningCommons:          catalog.IsDiningCommons(txn.Location),
			Hub:                    catalog.IsHub(txn.Location),
			Market:                 catalog.IsMarket(txn.Location),
			MealPlan:               txn.AccountType == models.AccountCampusMealPlan,
			LionCash:               txn.AccountType == models.AccountLionCash,
		}
		r.Weekend = r.DayOfWeek >= 5

		if i > 0 {
			r.DaysSinceLast = ts.Sub(sorted[i-1].Timestamp).Seconds() / (24 * 3600)
		}
		r.Rolling3Day = trailingMean(sorted, i, 3)
		r.Rolling7Day = trailingMean(sorted, i, 7)

		rows[i] = r
	}

	return rows, nil
}

// trailingMean averages absolute amounts over the window ending at index i.
// Before the window fills it returns the row's own amount.
func trailingMean(txns []models.Transaction, i, window int) float64 {
	if i+1 < window {
		return txns[i].AbsAmount()
	}
	sum := 0.0
	for j := i - window + 1; j <= i; j++ {
		sum += txns[j].AbsAmount()
	}
	return sum / float64(window)
}

// daysBetween returns whole days from a to b, flooring toward negative
// infinity so a timestamp the evening before the reference counts as -1.
func daysBetween(a, b time.Time) int {
	return int(math.Floor(b.Sub(a).Hours() / 24))
}

// validateColumns maps the tabular required-column contract onto the
// transaction struct: a zero timestamp or an empty location stands in for
// the column being absent from the source data.
func validateColumns(txns []models.Transaction, needLocation bool) error {
	for _, txn := range txns {
		if txn.Timestamp.IsZero() {
			return &ml.MissingColumnError{Column: "timestamp"}
		}
		if needLocation && txn.Location == "" {
			return &ml.MissingColumnError{Column: "location"}
		}
	}
	return nil
}

// flag converts a boolean feature to its numeric encoding.
func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
