// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package ml

import "fmt"

// RegressionParams holds the gradient-descent hyperparameters shared by
// every regression in the system. The zero value selects the defaults.
type RegressionParams struct {
	LearningRate float64
	Epochs       int
}

// New builds an untrained regression from the params, falling back to the
// defaults for unset fields.
func (p RegressionParams) New() *LinearRegression {
	return NewLinearRegression(p.LearningRate, p.Epochs)
}

// LinearRegression is a least-squares regression fitted by full-batch
// gradient descent. Weights are zero-initialized so fitting is fully
// deterministic.
type LinearRegression struct {
	weights []float64
	bias    float64

	learningRate float64
	epochs       int
	trained      bool
}

// NewLinearRegression creates an untrained regression with the given
// gradient-descent parameters. Zero values fall back to defaults
// (learning rate 0.01, 1000 epochs).
func NewLinearRegression(learningRate float64, epochs int) *LinearRegression {
	if learningRate == 0 {
		learningRate = 0.01
	}
	if epochs == 0 {
		epochs = 1000
	}
	return &LinearRegression{
		learningRate: learningRate,
		epochs:       epochs,
	}
}

// Fit trains the model on the feature matrix X and targets y.
func (m *LinearRegression) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return ErrNoData
	}
	if len(x) != len(y) {
		return fmt.Errorf("feature rows (%d) and targets (%d) differ in length", len(x), len(y))
	}

	nFeatures := len(x[0])
	for i, row := range x {
		if len(row) != nFeatures {
			return fmt.Errorf("feature row %d has %d columns, want %d", i, len(row), nFeatures)
		}
	}

	m.weights = make([]float64, nFeatures)
	m.bias = 0

	n := float64(len(x))
	gradW := make([]float64, nFeatures)

	for epoch := 0; epoch < m.epochs; epoch++ {
		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0

		for i, row := range x {
			pred := m.bias
			for j, v := range row {
				pred += m.weights[j] * v
			}
			// d(MSE)/d(pred), scaled by 2/n.
			d := 2 * (pred - y[i]) / n
			for j, v := range row {
				gradW[j] += d * v
			}
			gradB += d
		}

		for j := range m.weights {
			m.weights[j] -= m.learningRate * gradW[j]
		}
		m.bias -= m.learningRate * gradB
	}

	m.trained = true
	return nil
}

// Predict returns the model output for a single feature row.
func (m *LinearRegression) Predict(row []float64) (float64, error) {
	if !m.trained {
		return 0, ErrNotFitted
	}
	if len(row) != len(m.weights) {
		return 0, fmt.Errorf("feature row has %d columns, model expects %d", len(row), len(m.weights))
	}
	pred := m.bias
	for j, v := range row {
		pred += m.weights[j] * v
	}
	return pred, nil
}

// PredictBatch returns model outputs for each row in X.
func (m *LinearRegression) PredictBatch(x [][]float64) ([]float64, error) {
	if !m.trained {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(x))
	for i, row := range x {
		pred, err := m.Predict(row)
		if err != nil {
			return nil, err
		}
		out[i] = pred
	}
	return out, nil
}

// IsTrained reports whether Fit has completed successfully.
func (m *LinearRegression) IsTrained() bool {
	return m.trained
}
