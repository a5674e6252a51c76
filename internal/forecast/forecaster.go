// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package forecast

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mantavya0807/Mealer/internal/metrics"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// Forecaster predicts next-period spending from a user's transaction
// history. The regression model, feature scaler, and label encoders are
// all fitted together in Fit and then frozen: query methods never touch
// them. Not safe for concurrent use.
type Forecaster struct {
	params ml.RegressionParams

	model       *ml.LinearRegression
	scaler      *ml.StandardScaler
	locationEnc *ml.LabelEncoder
	dayEnc      *ml.LabelEncoder

	features []FeatureRow
	fitted   bool
	score    float64

	now    func() time.Time
	logger zerolog.Logger
}

// NewForecaster creates an untrained forecaster. The zero value of params
// selects the default hyperparameters.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewForecaster(params ml.RegressionParams, logger zerolog.Logger) *Forecaster {
	return &Forecaster{
		params: params,
		now:    time.Now,
		logger: logger.With().Str("component", "forecast").Logger(),
	}
}

// Fit engineers features and trains the spending regression. The target
// for each transaction row is the total absolute spend of the following
// week (zero when no such week exists). Returns the held-out R-squared
// from a deterministic 80/20 split; the score is informational only and
// never gates training.
func (f *Forecaster) Fit(txns []models.Transaction) (float64, error) {
	defer metrics.ObserveTraining("spending_forecast", time.Now())

	rows, locationEnc, dayEnc, err := prepareFeatures(txns)
	if err != nil {
		return 0, err
	}

	// Total absolute spend per week index, for the next-week target.
	weekTotals := map[int]float64{}
	for _, r := range rows {
		weekTotals[r.WeekIndex] += r.Transaction.AbsAmount()
	}

	raw := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		raw[i] = featureVector(r)
		y[i] = weekTotals[r.WeekIndex+1]
	}

	scaler := ml.NewStandardScaler()
	x, err := scaler.FitTransform(raw)
	if err != nil {
		return 0, err
	}

	model := f.params.New()

	xTrain, xTest, yTrain, yTest := ml.TrainTestSplit(x, y, 0.2, ml.DefaultSeed)
	if len(xTrain) == 0 {
		// Too few rows for a held-out set; train on everything.
		xTrain, yTrain = x, y
		xTest, yTest = nil, nil
	}

	if err := model.Fit(xTrain, yTrain); err != nil {
		return 0, fmt.Errorf("training spending model: %w", err)
	}

	f.score = 0
	if len(xTest) > 0 {
		preds, err := model.PredictBatch(xTest)
		if err != nil {
			return 0, err
		}
		f.score = ml.RSquared(yTest, preds)
	}

	f.model = model
	f.scaler = scaler
	f.locationEnc = locationEnc
	f.dayEnc = dayEnc
	f.features = rows
	f.fitted = true

	f.logger.Info().
		Int("transactions", len(rows)).
		Float64("r_squared", f.score).
		Msg("spending model trained")

	return f.score, nil
}

// IsFitted reports whether Fit has completed successfully.
func (f *Forecaster) IsFitted() bool {
	return f.fitted
}

// Score returns the held-out R-squared from the last Fit.
func (f *Forecaster) Score() float64 {
	return f.score
}

// PredictNextWeekSpend scores a single constructed feature row. The
// location and day name must have been seen during Fit; an unseen category
// is an error, never silently encoded.
func (f *Forecaster) PredictNextWeekSpend(location, dayName string, hour, weekIndex int, dailyRate float64) (float64, error) {
	if !f.fitted {
		return 0, ml.ErrNotFitted
	}

	locationCode, err := f.locationEnc.Transform(location)
	if err != nil {
		return 0, err
	}
	dayCode, err := f.dayEnc.Transform(dayName)
	if err != nil {
		return 0, err
	}

	row, err := f.scaler.Transform([]float64{
		locationCode,
		dayCode,
		float64(hour),
		float64(weekIndex),
		dailyRate,
	})
	if err != nil {
		return 0, err
	}

	return f.model.Predict(row)
}
