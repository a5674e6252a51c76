// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package patterns implements the spending pattern predictor: three
// independently trained model groups sharing one feature-engineering
// routine, plus a rule-based analysis report.
//
// The daily spending model regresses transaction amounts on temporal
// features. The funds depletion model learns days-until-empty from a
// reconstructed daily balance timeline, with a flat-rate heuristic
// fallback when too little history exists. The location preference group
// trains one binary-visit regressor per venue with enough positive
// examples.
//
// A Predictor is not safe for concurrent use; fit and query from a single
// goroutine or synchronize externally.
package patterns

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mantavya0807/Mealer/internal/ml"
)

// Predictor owns the three model groups and their preprocessing state.
type Predictor struct {
	params ml.RegressionParams

	daily     *dailyModel
	depletion *depletionModel
	locations *locationModels

	// now anchors semester-relative features; swapped in tests.
	now    func() time.Time
	logger zerolog.Logger
}

// NewPredictor creates a predictor with no trained models. The zero value
// of params selects the default hyperparameters, applied to every model
// group.
func NewPredictor(params ml.RegressionParams, logger zerolog.Logger) *Predictor {
	return &Predictor{
		params: params,
		now:    time.Now,
		logger: logger.With().Str("component", "patterns").Logger(),
	}
}
