// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package ml

import "math/rand"

// DefaultSeed is the fixed seed for train/test splits. A fixed seed keeps
// the split, and therefore the informational held-out score, reproducible
// across runs.
const DefaultSeed int64 = 42

// TrainTestSplit shuffles rows deterministically with the given seed and
// splits them into train and test sets. testRatio is the test fraction
// (e.g. 0.2 for an 80/20 split).
func TrainTestSplit(x [][]float64, y []float64, testRatio float64, seed int64) (xTrain, xTest [][]float64, yTrain, yTest []float64) {
	n := len(x)
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic split, not security-sensitive
	indices := rng.Perm(n)

	nTest := int(float64(n) * testRatio)
	for i, idx := range indices {
		if i < nTest {
			xTest = append(xTest, x[idx])
			yTest = append(yTest, y[idx])
		} else {
			xTrain = append(xTrain, x[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return xTrain, xTest, yTrain, yTest
}

// RSquared returns the coefficient of determination for predictions against
// observed targets. Returns 0 when targets have no variance or no rows.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 || len(observed) != len(predicted) {
		return 0
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	var ssRes, ssTot float64
	for i, v := range observed {
		r := v - predicted[i]
		ssRes += r * r
		d := v - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
