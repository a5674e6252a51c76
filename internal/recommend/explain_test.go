// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/models"
)

func mustVenue(t *testing.T, id string) models.Venue {
	t.Helper()
	v, ok := catalog.VenueByID(id)
	if !ok {
		t.Fatalf("venue %s not in catalog", id)
	}
	return v
}

func TestBuildExplanationPersonalized(t *testing.T) {
	t.Parallel()

	lunch := models.MealLunch
	quiet := time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC)
	busy := time.Date(2026, time.February, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ec   explainContext
		want string
	}{
		{
			name: "all personalized clauses",
			ec: explainContext{
				variant:           VariantPersonalized,
				venue:             mustVenue(t, "e1"),
				meal:              &lunch,
				now:               busy,
				visitFrequency:    5,
				preferredCuisines: []string{"Asian", "Italian"},
			},
			want: "You often visit Findlay Commons. Offers 65% meal plan discount. " +
				"Serves Italian, Asian food you enjoy. Short wait times. Currently busy. Popular lunch spot.",
		},
		{
			name: "threshold visit count excluded",
			ec: explainContext{
				variant:        VariantPersonalized,
				venue:          mustVenue(t, "e1"),
				meal:           &lunch,
				now:            quiet,
				visitFrequency: 3,
			},
			want: "Offers 65% meal plan discount. Short wait times. Not currently busy. Popular lunch spot.",
		},
		{
			name: "no discount no overlap",
			ec: explainContext{
				variant: VariantPersonalized,
				venue:   mustVenue(t, "h3"),
				meal:    &lunch,
				now:     quiet,
			},
			want: "Not currently busy. Popular lunch spot.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := buildExplanation(tt.ec); got != tt.want {
				t.Errorf("explanation =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestBuildExplanationGeneric(t *testing.T) {
	t.Parallel()

	dinner := models.MealDinner
	quiet := time.Date(2026, time.February, 3, 15, 0, 0, 0, time.UTC)

	ec := explainContext{
		variant: VariantGeneric,
		venue:   mustVenue(t, "s1"), // Redifer: 4 cuisines, 3 dietary options, wait 15
		meal:    &dinner,
		now:     quiet,
	}

	want := "Offers 65% meal plan discount. Wide variety of food options. " +
		"Good for dietary restrictions. Not currently busy. Great dinner selection."
	if got := buildExplanation(ec); got != want {
		t.Errorf("explanation =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildExplanationGenericSkipsPersonalClauses(t *testing.T) {
	t.Parallel()

	lunch := models.MealLunch
	ec := explainContext{
		variant:           VariantGeneric,
		venue:             mustVenue(t, "e1"),
		meal:              &lunch,
		now:               time.Date(2026, time.February, 3, 12, 0, 0, 0, time.UTC),
		visitFrequency:    99,
		preferredCuisines: []string{"Asian"},
	}

	want := "Offers 65% meal plan discount. Wide variety of food options. " +
		"Good for dietary restrictions. Short wait times. Currently busy. Popular lunch spot."
	if got := buildExplanation(ec); got != want {
		t.Errorf("generic explanation leaked personalization:\n%q", got)
	}
}

func TestBuildExplanationMealBlurbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meal models.MealType
		id   string
		want string
	}{
		{models.MealBreakfast, "e1", "Good breakfast options"},
		{models.MealLunch, "e1", "Popular lunch spot"},
		{models.MealDinner, "e1", "Great dinner selection"},
		{models.MealLateNight, "e2", "Open late"},
	}

	for _, tt := range tests {
		meal := tt.meal
		ec := explainContext{
			variant: VariantPersonalized,
			venue:   mustVenue(t, tt.id),
			meal:    &meal,
			now:     time.Date(2026, time.February, 3, 4, 0, 0, 0, time.UTC),
		}
		got := buildExplanation(ec)
		if !strings.HasSuffix(got, tt.want+".") {
			t.Errorf("meal %v: explanation %q does not end with blurb %q", tt.meal, got, tt.want)
		}
	}
}
