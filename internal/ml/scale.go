// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package ml

import (
	"fmt"
	"math"
)

// StandardScaler standardizes each feature column to zero mean and unit
// variance. Columns with zero variance are centered but not scaled, so a
// constant column transforms to zeros.
type StandardScaler struct {
	means  []float64
	stds   []float64
	fitted bool
}

// NewStandardScaler creates an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-column means and standard deviations.
func (s *StandardScaler) Fit(x [][]float64) error {
	if len(x) == 0 {
		return ErrNoData
	}
	nCols := len(x[0])
	s.means = make([]float64, nCols)
	s.stds = make([]float64, nCols)

	n := float64(len(x))
	for _, row := range x {
		if len(row) != nCols {
			return fmt.Errorf("inconsistent row width %d, want %d", len(row), nCols)
		}
		for j, v := range row {
			s.means[j] += v
		}
	}
	for j := range s.means {
		s.means[j] /= n
	}

	for _, row := range x {
		for j, v := range row {
			d := v - s.means[j]
			s.stds[j] += d * d
		}
	}
	for j := range s.stds {
		s.stds[j] = math.Sqrt(s.stds[j] / n)
		if s.stds[j] == 0 {
			// Constant column: leave values centered but unscaled.
			s.stds[j] = 1
		}
	}

	s.fitted = true
	return nil
}

// Transform standardizes a single row using the fitted statistics.
func (s *StandardScaler) Transform(row []float64) ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	if len(row) != len(s.means) {
		return nil, fmt.Errorf("row has %d columns, scaler expects %d", len(row), len(s.means))
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.means[j]) / s.stds[j]
	}
	return out, nil
}

// FitTransform fits the scaler and returns the standardized matrix.
func (s *StandardScaler) FitTransform(x [][]float64) ([][]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	out := make([][]float64, len(x))
	for i, row := range x {
		scaled, err := s.Transform(row)
		if err != nil {
			return nil, err
		}
		out[i] = scaled
	}
	return out, nil
}
