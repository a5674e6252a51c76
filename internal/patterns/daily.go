// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

import (
	"math"
	"time"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/metrics"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// dailyModel predicts per-transaction spending from temporal features:
// scaled {day_of_week, month, hour, weekend, days_since_semester_start}
// plus a one-hot meal period.
type dailyModel struct {
	scaler  *ml.StandardScaler
	periods *ml.OneHotEncoder
	model   *ml.LinearRegression
}

// DailyPrediction is the predicted spending for one day, broken out by
// meal period.
type DailyPrediction struct {
	Date              string             `json:"date"`
	DayOfWeek         int                `json:"day_of_week"`
	DayName           string             `json:"day_name"`
	PredictedSpending map[string]float64 `json:"predicted_spending"`
	TotalPredicted    float64            `json:"total_predicted"`
}

// FitDailySpendingModel trains the daily spending regression.
func (p *Predictor) FitDailySpendingModel(txns []models.Transaction) error {
	defer metrics.ObserveTraining("daily_spending", time.Now())

	rows, err := p.PreprocessTransactions(txns)
	if err != nil {
		return err
	}
	if err := validateColumns(txns, false); err != nil {
		return err
	}

	m := &dailyModel{
		scaler:  ml.NewStandardScaler(),
		periods: ml.NewOneHotEncoder("meal_period"),
		model:   p.params.New(),
	}

	numeric := make([][]float64, len(rows))
	periodNames := make([]string, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		numeric[i] = dailyNumericFeatures(r.DayOfWeek, r.Month, r.Hour, r.Weekend, r.DaysSinceSemesterStart)
		periodNames[i] = r.MealPeriod.String()
		y[i] = r.Transaction.AbsAmount()
	}

	scaled, err := m.scaler.FitTransform(numeric)
	if err != nil {
		return err
	}
	m.periods.Fit(periodNames)

	x := make([][]float64, len(rows))
	for i := range rows {
		oneHot, err := m.periods.Transform(periodNames[i])
		if err != nil {
			return err
		}
		x[i] = append(scaled[i], oneHot...)
	}

	xTrain, _, yTrain, _ := ml.TrainTestSplit(x, y, 0.2, ml.DefaultSeed)
	if len(xTrain) == 0 {
		xTrain, yTrain = x, y
	}
	if err := m.model.Fit(xTrain, yTrain); err != nil {
		return err
	}

	p.daily = m
	p.logger.Info().Int("transactions", len(rows)).Msg("daily spending model trained")
	return nil
}

// PredictDailySpending predicts spending for the given date: one score per
// meal period at its representative hour, clamped at zero, summed into a
// daily total. The semester anchor comes from the queried date itself.
func (p *Predictor) PredictDailySpending(date time.Time) (*DailyPrediction, error) {
	if p.daily == nil {
		return nil, ml.ErrNotFitted
	}

	dayOfWeek := models.MondayWeekday(date.Weekday())
	daysSinceStart := daysBetween(catalog.SemesterStart(date), date)

	predictions := make(map[string]float64, len(models.MealPeriods))
	total := 0.0
	for _, period := range models.MealPeriods {
		amount, err := p.daily.predict(
			dayOfWeek, int(date.Month()), period.RepresentativeHour(),
			dayOfWeek >= 5, daysSinceStart, period,
		)
		if err != nil {
			return nil, err
		}
		predictions[period.String()] = amount
		total += amount
	}

	return &DailyPrediction{
		Date:              date.Format("2006-01-02"),
		DayOfWeek:         dayOfWeek,
		DayName:           models.DayNames[dayOfWeek],
		PredictedSpending: predictions,
		TotalPredicted:    total,
	}, nil
}

// PredictWeeklySpending unrolls PredictDailySpending across the 7 days
// starting at the given date.
func (p *Predictor) PredictWeeklySpending(start time.Time) ([]*DailyPrediction, error) {
	week := make([]*DailyPrediction, 0, 7)
	for i := 0; i < 7; i++ {
		day, err := p.PredictDailySpending(start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week = append(week, day)
	}
	return week, nil
}

// predict scores one feature row and clamps negative outputs to zero.
func (m *dailyModel) predict(dayOfWeek, month, hour int, weekend bool, daysSinceStart int, period models.MealPeriod) (float64, error) {
	scaled, err := m.scaler.Transform(dailyNumericFeatures(dayOfWeek, month, hour, weekend, daysSinceStart))
	if err != nil {
		return 0, err
	}
	oneHot, err := m.periods.Transform(period.String())
	if err != nil {
		return 0, err
	}
	pred, err := m.model.Predict(append(scaled, oneHot...))
	if err != nil {
		return 0, err
	}
	return math.Max(0, pred), nil
}

func dailyNumericFeatures(dayOfWeek, month, hour int, weekend bool, daysSinceStart int) []float64 {
	return []float64{
		float64(dayOfWeek),
		float64(month),
		float64(hour),
		flag(weekend),
		float64(daysSinceStart),
	}
}
