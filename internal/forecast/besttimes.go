// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package forecast

import (
	"sort"

	"github.com/mantavya0807/Mealer/internal/models"
)

// VenueTimes holds the observed traffic profile for one venue.
type VenueTimes struct {
	// PeakHours are the 3 hours with the most transactions, busiest first.
	PeakHours []int `json:"peak_hours"`

	// QuietHours are the 3 hours with the fewest transactions, quietest first.
	QuietHours []int `json:"quiet_hours"`

	// BestDays are the 3 weekdays with the fewest visits, a proxy for low
	// crowding. Quietest first.
	BestDays []string `json:"best_days"`

	// HourlyBusyness maps hour of day to the venue's share of visits in
	// that hour.
	HourlyBusyness map[int]float64 `json:"hourly_busyness"`
}

// SuggestBestTimes profiles each venue's transaction traffic by hour and
// weekday. Ties are broken deterministically: equal counts order by hour
// ascending, equal day counts by Monday-based weekday order.
func (f *Forecaster) SuggestBestTimes(txns []models.Transaction) (map[string]VenueTimes, error) {
	rows, err := f.PrepareFeatures(txns)
	if err != nil {
		return nil, err
	}

	byVenue := map[string][]FeatureRow{}
	var venues []string
	for _, r := range rows {
		if _, seen := byVenue[r.Transaction.Location]; !seen {
			venues = append(venues, r.Transaction.Location)
		}
		byVenue[r.Transaction.Location] = append(byVenue[r.Transaction.Location], r)
	}

	out := make(map[string]VenueTimes, len(venues))
	for _, venue := range venues {
		venueRows := byVenue[venue]

		hourCounts := map[int]int{}
		dayCounts := map[string]int{}
		for _, r := range venueRows {
			hourCounts[r.Hour]++
			dayCounts[r.DayName]++
		}

		busyness := make(map[int]float64, len(hourCounts))
		for hour, n := range hourCounts {
			busyness[hour] = float64(n) / float64(len(venueRows))
		}

		out[venue] = VenueTimes{
			PeakHours:      topHours(hourCounts, 3, false),
			QuietHours:     topHours(hourCounts, 3, true),
			BestDays:       quietestDays(dayCounts, 3),
			HourlyBusyness: busyness,
		}
	}
	return out, nil
}

// topHours returns up to k hours ordered by count, descending unless
// ascending is set. Equal counts order by hour ascending.
func topHours(counts map[int]int, k int, ascending bool) []int {
	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		a, b := hours[i], hours[j]
		if counts[a] != counts[b] {
			if ascending {
				return counts[a] < counts[b]
			}
			return counts[a] > counts[b]
		}
		return a < b
	})
	if len(hours) > k {
		hours = hours[:k]
	}
	return hours
}

// quietestDays returns up to k day names with the fewest visits, ties in
// Monday-based weekday order.
func quietestDays(counts map[string]int, k int) []string {
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	order := map[string]int{}
	for i, name := range models.DayNames {
		order[name] = i
	}
	sort.Slice(days, func(i, j int) bool {
		a, b := days[i], days[j]
		if counts[a] != counts[b] {
			return counts[a] < counts[b]
		}
		return order[a] < order[b]
	})
	if len(days) > k {
		days = days[:k]
	}
	return days
}
