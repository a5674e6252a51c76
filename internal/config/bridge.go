// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package config

import (
	"github.com/mantavya0807/Mealer/internal/logging"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/recommend"
	"github.com/mantavya0807/Mealer/internal/report"
)

// EngineConfig converts the recommender section into an engine
// configuration. Zero weights fall back to the engine defaults so a
// partial override file does not silence a scoring signal by accident.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	if c.DefaultCount > 0 {
		cfg.DefaultCount = c.DefaultCount
	}
	if c.SimilarNeighbors > 0 {
		cfg.SimilarNeighbors = c.SimilarNeighbors
	}
	if c.VisitFrequencyWeight > 0 {
		cfg.Weights.VisitFrequency = c.VisitFrequencyWeight
	}
	if c.DiscountWeight > 0 {
		cfg.Weights.Discount = c.DiscountWeight
	}
	if c.CuisineMatchWeight > 0 {
		cfg.Weights.CuisineMatch = c.CuisineMatchWeight
	}
	if c.DiningHallWeight > 0 {
		cfg.Weights.DiningHall = c.DiningHallWeight
	}
	if c.BusyPenaltyWeight > 0 {
		cfg.Weights.BusyPenalty = c.BusyPenaltyWeight
	}
	return cfg
}

// RegressionParams converts the model section into the hyperparameters
// consumed by forecast.NewForecaster and patterns.NewPredictor.
func (m ModelConfig) RegressionParams() ml.RegressionParams {
	return ml.RegressionParams{
		LearningRate: m.LearningRate,
		Epochs:       m.Epochs,
	}
}

// Options converts the report section into rendering options.
func (r ReportConfig) Options() report.Options {
	return report.Options{
		PageTitle:   r.PageTitle,
		ChartWidth:  r.ChartWidth,
		ChartHeight: r.ChartHeight,
	}
}

// LoggerConfig converts the logging section into the logging package's
// initialization config.
func (l LoggingConfig) LoggerConfig() logging.Config {
	return logging.Config{
		Level:     l.Level,
		Format:    l.Format,
		Timestamp: true,
	}
}
