// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package catalog

import "time"

const (
	// SemesterDays is the flat semester length assumption used by the
	// spending forecaster's risk banding.
	SemesterDays = 120

	// SemesterWeeks is the number of weeks a semester projection spans.
	SemesterWeeks = 15
)

// SemesterStart returns the start date of the semester containing the given
// reference date: January 15 for spring (month < June), September 1 for fall.
func SemesterStart(ref time.Time) time.Time {
	year := ref.Year()
	if ref.Month() < time.June {
		return time.Date(year, time.January, 15, 0, 0, 0, 0, ref.Location())
	}
	return time.Date(year, time.September, 1, 0, 0, 0, 0, ref.Location())
}

// SemesterEnd returns the end date of the semester containing the given
// reference date: May 15 for spring (January-May), December 20 for fall
// (August-December), July 31 for the summer gap.
func SemesterEnd(ref time.Time) time.Time {
	year := ref.Year()
	switch m := ref.Month(); {
	case m >= time.January && m <= time.May:
		return time.Date(year, time.May, 15, 0, 0, 0, 0, ref.Location())
	case m >= time.August && m <= time.December:
		return time.Date(year, time.December, 20, 0, 0, 0, 0, ref.Location())
	default:
		return time.Date(year, time.July, 31, 0, 0, 0, 0, ref.Location())
	}
}
