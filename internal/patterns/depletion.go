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

const (
	// depletionMinDays is the minimum number of calendar days of history
	// required to train the depletion regression.
	depletionMinDays = 10

	// depletionCapDays caps the learned days-until-empty target.
	depletionCapDays = 150

	// fallbackDailySpend is the flat daily rate assumed when no depletion
	// model is available.
	fallbackDailySpend = 20.00
)

// depletionModel learns days-until-empty from a reconstructed daily
// balance timeline: scaled {day_of_week, month, day, remaining_balance,
// daily_amount}.
type depletionModel struct {
	scaler *ml.StandardScaler
	model  *ml.LinearRegression
}

// DepletionForecast estimates when a balance runs out.
type DepletionForecast struct {
	CurrentBalance    float64          `json:"current_balance"`
	DaysToDepletion   float64          `json:"days_to_depletion"`
	DepletionDate     string           `json:"depletion_date"`
	RiskLevel         models.RiskLevel `json:"risk_level"`
	DailyBudget       float64          `json:"daily_budget"`
	AvgDailySpending  float64          `json:"avg_daily_spending"`
	SemesterEndDate   string           `json:"semester_end_date"`
	DaysToSemesterEnd int              `json:"days_to_semester_end"`

	// IsEstimate flags the flat-rate heuristic fallback rather than a
	// model prediction.
	IsEstimate bool `json:"is_estimate,omitempty"`
}

// dailyTotal is one calendar day of the reconstructed spending timeline.
type dailyTotal struct {
	date    time.Time
	amount  float64
	balance float64
}

// FitFundsDepletionModel reconstructs a contiguous daily spending series
// from the history, derives a days-until-empty target per day, and fits
// the regression. With 10 or fewer calendar days of history the model is
// left untrained and queries use the heuristic fallback; that is not an
// error.
func (p *Predictor) FitFundsDepletionModel(txns []models.Transaction, startingBalance float64) error {
	defer metrics.ObserveTraining("funds_depletion", time.Now())

	rows, err := p.PreprocessTransactions(txns)
	if err != nil {
		return err
	}

	days := dailyTimeline(rows, startingBalance)
	if len(days) <= depletionMinDays {
		p.logger.Warn().
			Int("days", len(days)).
			Msg("not enough history for depletion model, queries will use heuristic")
		return nil
	}

	overallMean := 0.0
	for _, d := range days {
		overallMean += d.amount
	}
	overallMean /= float64(len(days))

	x := make([][]float64, len(days))
	y := make([]float64, len(days))
	for i, d := range days {
		x[i] = depletionFeatures(d.date, d.balance, d.amount)
		y[i] = depletionTarget(days, i, overallMean)
	}

	m := &depletionModel{
		scaler: ml.NewStandardScaler(),
		model:  p.params.New(),
	}
	scaled, err := m.scaler.FitTransform(x)
	if err != nil {
		return err
	}
	xTrain, _, yTrain, _ := ml.TrainTestSplit(scaled, y, 0.2, ml.DefaultSeed)
	if len(xTrain) == 0 {
		xTrain, yTrain = scaled, y
	}
	if err := m.model.Fit(xTrain, yTrain); err != nil {
		return err
	}

	p.depletion = m
	p.logger.Info().Int("days", len(days)).Msg("funds depletion model trained")
	return nil
}

// PredictFundsDepletion estimates when the balance runs out. With a
// trained model it scores the current date and balance; otherwise, or when
// the model path fails, it falls back to a flat-rate estimate flagged with
// IsEstimate. It never returns an error.
func (p *Predictor) PredictFundsDepletion(balance float64, date time.Time) *DepletionForecast {
	if p.depletion == nil {
		return p.simpleDepletion(balance, date)
	}

	forecast, err := p.modelDepletion(balance, date)
	if err != nil {
		p.logger.Warn().Err(err).Msg("depletion model prediction failed, using heuristic")
		metrics.PredictionErrors.WithLabelValues("funds_depletion").Inc()
		return p.simpleDepletion(balance, date)
	}
	return forecast
}

func (p *Predictor) modelDepletion(balance float64, date time.Time) (*DepletionForecast, error) {
	scaled, err := p.depletion.scaler.Transform(depletionFeatures(date, balance, 0))
	if err != nil {
		return nil, err
	}
	pred, err := p.depletion.model.Predict(scaled)
	if err != nil {
		return nil, err
	}
	daysToDepletion := math.Max(0, pred)

	// The spending rate shown alongside the forecast comes from the daily
	// model's week-ahead projection.
	week, err := p.PredictWeeklySpending(date)
	if err != nil {
		return nil, err
	}
	avgDaily := 0.0
	for _, day := range week {
		avgDaily += day.TotalPredicted
	}
	avgDaily /= 7

	f := depletionFrame(balance, daysToDepletion, date)
	f.AvgDailySpending = avgDaily
	return f, nil
}

// simpleDepletion assumes a flat daily rate when no model is available.
func (p *Predictor) simpleDepletion(balance float64, date time.Time) *DepletionForecast {
	daysToDepletion := balance / fallbackDailySpend
	f := depletionFrame(balance, daysToDepletion, date)
	f.AvgDailySpending = fallbackDailySpend
	f.IsEstimate = true
	return f
}

// depletionFrame fills the fields shared by the model and heuristic paths:
// depletion date, risk band against semester end, and daily budget.
func depletionFrame(balance, daysToDepletion float64, date time.Time) *DepletionForecast {
	semesterEnd := catalog.SemesterEnd(date)
	daysToSemesterEnd := daysBetween(date, semesterEnd)

	risk := models.RiskLow
	switch {
	case daysToDepletion < float64(daysToSemesterEnd):
		risk = models.RiskHigh
	case daysToDepletion < float64(daysToSemesterEnd)*1.1:
		risk = models.RiskMedium
	}

	dailyBudget := 0.0
	if daysToSemesterEnd > 0 {
		dailyBudget = balance / float64(daysToSemesterEnd)
	}

	return &DepletionForecast{
		CurrentBalance:    balance,
		DaysToDepletion:   daysToDepletion,
		DepletionDate:     date.Add(time.Duration(daysToDepletion * float64(24 * time.Hour))).Format("2006-01-02"),
		RiskLevel:         risk,
		DailyBudget:       dailyBudget,
		SemesterEndDate:   semesterEnd.Format("2006-01-02"),
		DaysToSemesterEnd: daysToSemesterEnd,
	}
}

// dailyTimeline collapses feature rows into a contiguous per-calendar-day
// series from the first to the last transaction date, zero-filling days
// with no spending, and tracks the running balance.
func dailyTimeline(rows []Row, startingBalance float64) []dailyTotal {
	totals := map[time.Time]float64{}
	for _, r := range rows {
		totals[dateOnly(r.Transaction.Timestamp)] += r.Transaction.AbsAmount()
	}

	first := dateOnly(rows[0].Transaction.Timestamp)
	last := dateOnly(rows[len(rows)-1].Transaction.Timestamp)

	var days []dailyTotal
	balance := startingBalance
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		amount := totals[d]
		balance -= amount
		days = append(days, dailyTotal{date: d, amount: amount, balance: balance})
	}
	return days
}

// depletionTarget derives days-until-empty for day i: zero once the
// balance is gone, otherwise balance divided by the trailing 14-day mean
// spend (falling back to the overall mean, then a flat default), capped.
func depletionTarget(days []dailyTotal, i int, overallMean float64) float64 {
	if days[i].balance <= 0 {
		return 0
	}

	start := i - 14
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for j := start; j <= i; j++ {
		sum += days[j].amount
	}
	rate := sum / float64(i-start+1)

	if rate == 0 {
		rate = overallMean
		if rate == 0 {
			rate = 10
		}
	}
	return math.Min(days[i].balance/rate, depletionCapDays)
}

func depletionFeatures(date time.Time, balance, amount float64) []float64 {
	return []float64{
		float64(models.MondayWeekday(date.Weekday())),
		float64(int(date.Month())),
		float64(date.Day()),
		balance,
		amount,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
