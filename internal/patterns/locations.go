// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package patterns

import (
	"sort"
	"time"

	"github.com/mantavya0807/Mealer/internal/metrics"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// locationMinPositives is the minimum number of visits a venue needs to
// get its own preference model.
const locationMinPositives = 5

// locationModels holds one binary-visit regressor per venue, sharing a
// scaler and meal-period encoder. The map is built once after training
// completes; venues keeps first-seen training order for deterministic
// tie-breaking.
type locationModels struct {
	scaler  *ml.StandardScaler
	periods *ml.OneHotEncoder
	models  map[string]*ml.LinearRegression
	venues  []string
}

// LocationPreference scores how likely the user is to visit a venue at a
// given time and day.
type LocationPreference struct {
	Location   string  `json:"location"`
	Likelihood float64 `json:"likelihood"`
	TimeOfDay  string  `json:"time_of_day"`
	DayOfWeek  int     `json:"day_of_week"`
}

// preferenceHours maps a time-of-day label to the representative hour used
// to build the query feature row. Unknown labels default to noon.
var preferenceHours = map[string]int{
	"breakfast": 8,
	"lunch":     12,
	"afternoon": 15,
	"dinner":    18,
	"latenight": 22,
}

// FitLocationPreferenceModels trains one visit regressor per distinct
// venue in the history. Venues with fewer than 5 visits are skipped; their
// absence from query results is expected, not an error.
func (p *Predictor) FitLocationPreferenceModels(txns []models.Transaction) error {
	defer metrics.ObserveTraining("location_preference", time.Now())

	rows, err := p.PreprocessTransactions(txns)
	if err != nil {
		return err
	}
	if err := validateColumns(txns, true); err != nil {
		return err
	}

	var venues []string
	visits := map[string]int{}
	for _, r := range rows {
		if _, seen := visits[r.Transaction.Location]; !seen {
			venues = append(venues, r.Transaction.Location)
		}
		visits[r.Transaction.Location]++
	}

	scaler := ml.NewStandardScaler()
	periods := ml.NewOneHotEncoder("meal_period")

	numeric := make([][]float64, len(rows))
	periodNames := make([]string, len(rows))
	for i, r := range rows {
		numeric[i] = locationNumericFeatures(r.DayOfWeek, r.Hour, r.Weekend)
		periodNames[i] = r.MealPeriod.String()
	}
	scaled, err := scaler.FitTransform(numeric)
	if err != nil {
		return err
	}
	periods.Fit(periodNames)

	x := make([][]float64, len(rows))
	for i := range rows {
		oneHot, err := periods.Transform(periodNames[i])
		if err != nil {
			return err
		}
		x[i] = append(scaled[i], oneHot...)
	}

	trained := map[string]*ml.LinearRegression{}
	var trainedVenues []string
	for _, venue := range venues {
		if visits[venue] < locationMinPositives {
			continue
		}

		y := make([]float64, len(rows))
		for i, r := range rows {
			y[i] = flag(r.Transaction.Location == venue)
		}

		xTrain, _, yTrain, _ := ml.TrainTestSplit(x, y, 0.2, ml.DefaultSeed)
		if len(xTrain) == 0 {
			xTrain, yTrain = x, y
		}

		model := p.params.New()
		if err := model.Fit(xTrain, yTrain); err != nil {
			return err
		}
		trained[venue] = model
		trainedVenues = append(trainedVenues, venue)
	}

	p.locations = &locationModels{
		scaler:  scaler,
		periods: periods,
		models:  trained,
		venues:  trainedVenues,
	}
	p.logger.Info().
		Int("venues", len(trainedVenues)).
		Int("skipped", len(venues)-len(trainedVenues)).
		Msg("location preference models trained")
	return nil
}

// PredictLocationPreferences ranks venues by predicted visit likelihood
// for a time-of-day label and Monday-based day of week. A venue whose
// model fails to score is logged and omitted rather than failing the
// batch. Results sort by likelihood descending; ties keep training order.
func (p *Predictor) PredictLocationPreferences(timeOfDay string, dayOfWeek int) ([]LocationPreference, error) {
	if p.locations == nil || len(p.locations.models) == 0 {
		return nil, ml.ErrNotFitted
	}

	hour, ok := preferenceHours[timeOfDay]
	if !ok {
		hour = 12
	}

	scaled, err := p.locations.scaler.Transform(locationNumericFeatures(dayOfWeek, hour, dayOfWeek >= 5))
	if err != nil {
		return nil, err
	}
	oneHot, err := p.locations.periods.Transform(timeOfDay)
	if err != nil {
		return nil, err
	}
	features := append(scaled, oneHot...)

	prefs := make([]LocationPreference, 0, len(p.locations.venues))
	for _, venue := range p.locations.venues {
		likelihood, err := p.locations.models[venue].Predict(features)
		if err != nil {
			p.logger.Warn().Err(err).Str("venue", venue).Msg("location preference prediction failed")
			metrics.PredictionErrors.WithLabelValues("location_preference").Inc()
			continue
		}
		prefs = append(prefs, LocationPreference{
			Location:   venue,
			Likelihood: likelihood,
			TimeOfDay:  timeOfDay,
			DayOfWeek:  dayOfWeek,
		})
	}

	sort.SliceStable(prefs, func(i, j int) bool {
		return prefs[i].Likelihood > prefs[j].Likelihood
	})
	return prefs, nil
}

func locationNumericFeatures(dayOfWeek, hour int, weekend bool) []float64 {
	return []float64{
		float64(dayOfWeek),
		float64(hour),
		flag(weekend),
	}
}
