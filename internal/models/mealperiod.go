// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

import "time"

// MealType is one of the four meal slots the recommender filters on.
type MealType int

const (
	// MealBreakfast covers the morning service window.
	MealBreakfast MealType = iota
	// MealLunch covers the midday service window.
	MealLunch
	// MealDinner covers the evening service window.
	MealDinner
	// MealLateNight covers everything outside the three main windows.
	MealLateNight
)

// String returns the wire-format name for the meal type.
func (m MealType) String() string {
	switch m {
	case MealBreakfast:
		return "breakfast"
	case MealLunch:
		return "lunch"
	case MealDinner:
		return "dinner"
	case MealLateNight:
		return "late_night"
	default:
		return "unknown"
	}
}

// TimeOfDay returns the colloquial time-of-day label paired with the meal.
func (m MealType) TimeOfDay() string {
	switch m {
	case MealBreakfast:
		return "morning"
	case MealLunch:
		return "afternoon"
	case MealDinner:
		return "evening"
	default:
		return "night"
	}
}

// MealForHour classifies an hour (0-23) into a meal slot using the
// recommender's bands: [5,11) breakfast, [11,15) lunch, [15,21) dinner,
// everything else late night.
func MealForHour(hour int) MealType {
	switch {
	case hour >= 5 && hour < 11:
		return MealBreakfast
	case hour >= 11 && hour < 15:
		return MealLunch
	case hour >= 15 && hour < 21:
		return MealDinner
	default:
		return MealLateNight
	}
}

// MealPeriod is the five-bucket categorical used by the pattern predictor's
// feature engineering. Its bands differ from the recommender's MealForHour.
type MealPeriod int

const (
	// PeriodBreakfast is [6,10).
	PeriodBreakfast MealPeriod = iota
	// PeriodLunch is [10,14).
	PeriodLunch
	// PeriodAfternoon is [14,17).
	PeriodAfternoon
	// PeriodDinner is [17,21).
	PeriodDinner
	// PeriodLateNight is [21,24) and [0,6).
	PeriodLateNight
)

// MealPeriods lists all periods in their fixed reporting order.
var MealPeriods = []MealPeriod{
	PeriodBreakfast, PeriodLunch, PeriodAfternoon, PeriodDinner, PeriodLateNight,
}

// String returns the wire-format name for the meal period.
func (p MealPeriod) String() string {
	switch p {
	case PeriodBreakfast:
		return "breakfast"
	case PeriodLunch:
		return "lunch"
	case PeriodAfternoon:
		return "afternoon"
	case PeriodDinner:
		return "dinner"
	case PeriodLateNight:
		return "latenight"
	default:
		return "unknown"
	}
}

// PeriodForHour classifies an hour (0-23) into a five-bucket meal period.
func PeriodForHour(hour int) MealPeriod {
	switch {
	case hour >= 6 && hour < 10:
		return PeriodBreakfast
	case hour >= 10 && hour < 14:
		return PeriodLunch
	case hour >= 14 && hour < 17:
		return PeriodAfternoon
	case hour >= 17 && hour < 21:
		return PeriodDinner
	default:
		return PeriodLateNight
	}
}

// RepresentativeHour returns the hour used to stand in for a period when
// building prediction feature rows.
func (p MealPeriod) RepresentativeHour() int {
	switch p {
	case PeriodBreakfast:
		return 8
	case PeriodLunch:
		return 12
	case PeriodAfternoon:
		return 15
	case PeriodDinner:
		return 18
	default:
		return 22
	}
}

// RiskLevel bands a funds-depletion forecast.
type RiskLevel int

const (
	// RiskLow means funds are projected to outlast the semester.
	RiskLow RiskLevel = iota
	// RiskMedium means funds are projected to run close to the line.
	RiskMedium
	// RiskHigh means funds are projected to run out well before semester end.
	RiskHigh
)

// String returns the wire-format name for the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// MarshalText emits the wire-format name, so JSON output carries "HIGH"
// rather than an integer.
func (r RiskLevel) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// DayNames maps a Monday-based day-of-week index (0=Monday) to its name.
// The Monday-based convention follows the transaction feature pipeline.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MondayWeekday converts a time.Weekday (Sunday=0) to the Monday-based
// index (Monday=0) used throughout the feature pipelines.
func MondayWeekday(d time.Weekday) int {
	// Shift Sunday (0) to 6, Monday (1) to 0, and so on.
	return (int(d) + 6) % 7
}
