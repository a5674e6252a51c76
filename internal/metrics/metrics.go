// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package metrics provides Prometheus instrumentation for the analysis
// pipelines:
//   - recommendation request volume and latency, by result variant
//   - model training duration, by model
//   - prediction error counts, by model
//
// Collectors register on the default registry; exposition is left to the
// embedding application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts recommendation requests by the result
	// variant served ("personalized" or "generic").
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealer_recommendation_requests_total",
			Help: "Total number of recommendation requests by result variant",
		},
		[]string{"variant"},
	)

	// RecommendationLatency observes end-to-end recommendation latency.
	RecommendationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mealer_recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ModelTrainingDuration observes model fit duration by model name
	// ("spending_forecast", "daily_spending", "funds_depletion",
	// "location_preference").
	ModelTrainingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mealer_model_training_duration_seconds",
			Help:    "Duration of model training runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	// PredictionErrors counts prediction failures by model name. Per-venue
	// failures in the location-preference batch are counted here even
	// though they are swallowed (the venue is omitted, not the batch).
	PredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mealer_prediction_errors_total",
			Help: "Total number of prediction errors by model",
		},
		[]string{"model"},
	)
)

// ObserveTraining records a training run's duration for the named model.
// Meant to be deferred at the top of a fit method:
//
//	defer metrics.ObserveTraining("daily_spending", time.Now())
func ObserveTraining(model string, start time.Time) {
	ModelTrainingDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
}
