// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
)

// VenueIndex is a nearest-neighbor index over venue attributes: one-hot
// area and category, the boolean availability flags, and standardized price
// level and wait time. Distances are Euclidean.
type VenueIndex struct {
	venues  []models.Venue
	byID    map[string]int
	vectors [][]float64
	fitted  bool
}

// NewVenueIndex creates an unfitted index over the given venues.
func NewVenueIndex(venues []models.Venue) *VenueIndex {
	byID := make(map[string]int, len(venues))
	for i, v := range venues {
		byID[v.ID] = i
	}
	return &VenueIndex{venues: venues, byID: byID}
}

// Fit builds the attribute vectors. Must be called before Similar.
func (ix *VenueIndex) Fit() error {
	if len(ix.venues) == 0 {
		return ml.ErrNoData
	}

	areas := make([]string, len(ix.venues))
	categories := make([]string, len(ix.venues))
	numeric := make([][]float64, len(ix.venues))
	for i, v := range ix.venues {
		areas[i] = v.Area
		categories[i] = v.Category
		numeric[i] = []float64{float64(v.PriceLevel), float64(v.AvgWaitTime)}
	}

	areaEnc := ml.NewOneHotEncoder("area")
	areaEnc.Fit(areas)
	catEnc := ml.NewOneHotEncoder("category")
	catEnc.Fit(categories)

	scaler := ml.NewStandardScaler()
	scaledNumeric, err := scaler.FitTransform(numeric)
	if err != nil {
		return fmt.Errorf("scaling venue attributes: %w", err)
	}

	ix.vectors = make([][]float64, len(ix.venues))
	for i, v := range ix.venues {
		areaVec, err := areaEnc.Transform(v.Area)
		if err != nil {
			return err
		}
		catVec, err := catEnc.Transform(v.Category)
		if err != nil {
			return err
		}

		vec := make([]float64, 0, len(areaVec)+len(catVec)+5+2)
		vec = append(vec, areaVec...)
		vec = append(vec, catVec...)
		vec = append(vec,
			boolFeature(v.MealPlanDiscount),
			boolFeature(v.Breakfast),
			boolFeature(v.Lunch),
			boolFeature(v.Dinner),
			boolFeature(v.LateNight),
		)
		vec = append(vec, scaledNumeric[i]...)
		ix.vectors[i] = vec
	}

	ix.fitted = true
	return nil
}

// Similar returns the k venues nearest to the given venue, excluding the
// venue itself, ordered by ascending distance with catalog-order ties.
func (ix *VenueIndex) Similar(venueID string, k int) ([]SimilarVenue, error) {
	if !ix.fitted {
		return nil, ml.ErrNotFitted
	}
	idx, ok := ix.byID[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %q not in catalog", venueID)
	}

	neighbors := make([]SimilarVenue, 0, len(ix.venues)-1)
	for i, v := range ix.venues {
		if i == idx {
			continue
		}
		neighbors = append(neighbors, SimilarVenue{
			Venue:    v,
			Distance: euclidean(ix.vectors[idx], ix.vectors[i]),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k], nil
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
