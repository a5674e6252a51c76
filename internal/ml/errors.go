// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package ml implements the small machine-learning primitives shared by the
// spending forecaster and the pattern predictor: a gradient-descent linear
// regression, label and one-hot encoders, a standard scaler, a deterministic
// train/test split, and the R-squared score.
//
// All primitives are deterministic: fixed seeds, first-seen category order,
// zero-initialized weights. Fitting the same data twice produces identical
// models.
//
// None of the types are safe for concurrent use. Callers own serialization,
// typically by giving each request its own predictor instance.
package ml

import (
	"errors"
	"fmt"
)

// ErrNotFitted is returned when a prediction method is called before the
// model (or encoder/scaler) has been fitted.
var ErrNotFitted = errors.New("model has not been trained yet")

// ErrNoData is returned when a fit method receives no rows.
var ErrNoData = errors.New("no transaction data provided for training")

// MissingColumnError reports a required feature column absent from the
// training data.
type MissingColumnError struct {
	// Column is the missing column name.
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in transaction data", e.Column)
}

// UnknownCategoryError reports a prediction-time categorical value that was
// never seen during encoder fitting.
type UnknownCategoryError struct {
	// Column is the encoded column name.
	Column string

	// Value is the unseen category.
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown %s category %q: not present in training data", e.Column, e.Value)
}
