// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import "fmt"

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the scoring weights for both ranking variants.
	Weights ScoringWeights `json:"weights"`

	// DefaultCount is the number of recommendations returned when the
	// request does not specify one.
	DefaultCount int `json:"default_count"`

	// SimilarNeighbors is the default number of venues returned by
	// similar-venue lookups.
	SimilarNeighbors int `json:"similar_neighbors"`
}

// ScoringWeights defines the contribution of each scoring signal.
//
// The personalized score is
//
//	VisitFrequency*visits + Discount*[discounted] +
//	CuisineMatch*|overlap| - BusyPenalty*[busy now]
//
// and the generic score is
//
//	Discount*[discounted] + DiningHall*[primary dining hall] -
//	BusyPenalty*[busy now]
type ScoringWeights struct {
	// VisitFrequency multiplies the user's visit count for the venue.
	VisitFrequency float64 `json:"visit_frequency"`

	// Discount is the boost for meal-plan-discounted venues.
	Discount float64 `json:"discount"`

	// CuisineMatch multiplies the number of overlapping preferred cuisines.
	CuisineMatch float64 `json:"cuisine_match"`

	// DiningHall is the generic-path boost for primary dining halls.
	DiningHall float64 `json:"dining_hall"`

	// BusyPenalty is subtracted when the current hour is a busy hour.
	BusyPenalty float64 `json:"busy_penalty"`
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoringWeights{
			VisitFrequency: 0.5,
			Discount:       2,
			CuisineMatch:   1.5,
			DiningHall:     1,
			BusyPenalty:    1,
		},
		DefaultCount:     3,
		SimilarNeighbors: 5,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.DefaultCount < 1 {
		return fmt.Errorf("default_count must be at least 1, got %d", c.DefaultCount)
	}
	if c.SimilarNeighbors < 1 {
		return fmt.Errorf("similar_neighbors must be at least 1, got %d", c.SimilarNeighbors)
	}
	w := c.Weights
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"visit_frequency", w.VisitFrequency},
		{"discount", w.Discount},
		{"cuisine_match", w.CuisineMatch},
		{"dining_hall", w.DiningHall},
		{"busy_penalty", w.BusyPenalty},
	} {
		if check.value < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %g", check.name, check.value)
		}
	}
	return nil
}
