// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package forecast implements the spending forecaster: a single regression
// over engineered temporal features, plus the aggregate-statistics queries
// derived from the same feature rows (funds exhaustion, meal plan tier
// recommendation, best visiting times).
package forecast

import (
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// FeatureRow is one transaction with its engineered features.
type FeatureRow struct {
	// Transaction is the source record.
	Transaction models.Transaction `json:"transaction"`

	// DayName is the weekday name (Monday..Sunday).
	DayName string `json:"day_name"`

	// Hour is the transaction hour (0-23).
	Hour int `json:"hour"`

	// WeekIndex is the 1-based week number relative to the earliest
	// transaction in the set.
	WeekIndex int `json:"week_index"`

	// LocationCode and DayCode are the label-encoded categoricals.
	LocationCode float64 `json:"location_code"`
	DayCode      float64 `json:"day_code"`

	// CumulativeSpending is the running total of absolute amounts in
	// timestamp order.
	CumulativeSpending float64 `json:"cumulative_spending"`

	// DailyRate is CumulativeSpending divided by WeekIndex*7, a running
	// daily spending rate.
	DailyRate float64 `json:"daily_rate"`
}

// PrepareFeatures engineers the forecaster's feature rows from raw
// transactions. Rows come back in timestamp order (stable for ties).
// Encoding uses encoders local to the call, so preparing features never
// disturbs the encoder state a fitted forecaster predicts with; the same
// input always yields the same codes.
func (f *Forecaster) PrepareFeatures(txns []models.Transaction) ([]FeatureRow, error) {
	rows, _, _, err := prepareFeatures(txns)
	return rows, err
}

// prepareFeatures builds the feature rows along with the encoders fitted
// on them. Fit adopts the returned encoders; everything else discards
// them.
func prepareFeatures(txns []models.Transaction) ([]FeatureRow, *ml.LabelEncoder, *ml.LabelEncoder, error) {
	if len(txns) == 0 {
		return nil, nil, nil, ml.ErrNoData
	}

	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	models.SortTransactionsByTimestamp(sorted)

	earliest := sorted[0].Timestamp

	rows := make([]FeatureRow, len(sorted))
	locations := make([]string, len(sorted))
	dayNames := make([]string, len(sorted))
	for i, txn := range sorted {
		days := int(txn.Timestamp.Sub(earliest).Hours() / 24)
		rows[i] = FeatureRow{
			Transaction: txn,
			DayName:     models.DayNames[models.MondayWeekday(txn.Timestamp.Weekday())],
			Hour:        txn.Timestamp.Hour(),
			WeekIndex:   days/7 + 1,
		}
		locations[i] = txn.Location
		dayNames[i] = rows[i].DayName
	}

	locationEnc := ml.NewLabelEncoder("location")
	dayEnc := ml.NewLabelEncoder("day_of_week")
	locationCodes := locationEnc.FitTransform(locations)
	dayCodes := dayEnc.FitTransform(dayNames)

	cumulative := 0.0
	for i := range rows {
		cumulative += rows[i].Transaction.AbsAmount()
		rows[i].LocationCode = locationCodes[i]
		rows[i].DayCode = dayCodes[i]
		rows[i].CumulativeSpending = cumulative
		rows[i].DailyRate = cumulative / (float64(rows[i].WeekIndex) * 7)
	}

	return rows, locationEnc, dayEnc, nil
}

// featureVector flattens a feature row into the regression input.
func featureVector(r FeatureRow) []float64 {
	return []float64{
		r.LocationCode,
		r.DayCode,
		float64(r.Hour),
		float64(r.WeekIndex),
		r.DailyRate,
	}
}
