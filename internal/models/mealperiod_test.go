// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

import (
	"testing"
	"time"
)

func TestMealForHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want MealType
	}{
		{4, MealLateNight},
		{5, MealBreakfast},
		{10, MealBreakfast},
		{11, MealLunch},
		{14, MealLunch},
		{15, MealDinner},
		{20, MealDinner},
		{21, MealLateNight},
		{0, MealLateNight},
		{23, MealLateNight},
	}

	for _, tt := range tests {
		if got := MealForHour(tt.hour); got != tt.want {
			t.Errorf("MealForHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestPeriodForHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hour int
		want MealPeriod
	}{
		{5, PeriodLateNight},
		{6, PeriodBreakfast},
		{9, PeriodBreakfast},
		{10, PeriodLunch},
		{13, PeriodLunch},
		{14, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodDinner},
		{20, PeriodDinner},
		{21, PeriodLateNight},
		{0, PeriodLateNight},
	}

	for _, tt := range tests {
		if got := PeriodForHour(tt.hour); got != tt.want {
			t.Errorf("PeriodForHour(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestRepresentativeHour(t *testing.T) {
	t.Parallel()

	want := map[MealPeriod]int{
		PeriodBreakfast: 8,
		PeriodLunch:     12,
		PeriodAfternoon: 15,
		PeriodDinner:    18,
		PeriodLateNight: 22,
	}
	for _, period := range MealPeriods {
		if got := period.RepresentativeHour(); got != want[period] {
			t.Errorf("%v.RepresentativeHour() = %d, want %d", period, got, want[period])
		}
	}
}

func TestMondayWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day  time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		if got := MondayWeekday(tt.day); got != tt.want {
			t.Errorf("MondayWeekday(%v) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestRiskLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level RiskLevel
		want  string
	}{
		{RiskHigh, "HIGH"},
		{RiskMedium, "MEDIUM"},
		{RiskLow, "LOW"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
