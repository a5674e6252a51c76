// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mantavya0807/Mealer/internal/catalog"
	"github.com/mantavya0807/Mealer/internal/logging"
	"github.com/mantavya0807/Mealer/internal/metrics"
	"github.com/mantavya0807/Mealer/internal/models"
	"github.com/mantavya0807/Mealer/internal/profile"
)

// Engine ranks the venue catalog for users. It holds no mutable state after
// Fit and is safe for concurrent reads.
type Engine struct {
	config   *Config
	venues   []models.Venue
	profiles profile.Store
	index    *VenueIndex
	logger   zerolog.Logger
}

// NewEngine creates a recommendation engine over the static venue catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, profiles profile.Store, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	venues := catalog.Venues()
	return &Engine{
		config:   cfg,
		venues:   venues,
		profiles: profiles,
		index:    NewVenueIndex(venues),
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Fit builds the venue similarity index. The rule-based ranking needs no
// fit step; only SimilarVenues depends on this.
func (e *Engine) Fit() error {
	return e.index.Fit()
}

// SimilarVenues returns the k catalog venues closest to the given venue in
// attribute space. Zero k means the configured default.
func (e *Engine) SimilarVenues(venueID string, k int) ([]SimilarVenue, error) {
	if k <= 0 {
		k = e.config.SimilarNeighbors
	}
	return e.index.Similar(venueID, k)
}

// GetRecommendations ranks venues for the user and query. The result is
// always non-empty: when no profile exists or filtering leaves nothing, the
// generic variant is served, and when even the generic filters match
// nothing a single sentinel entry is returned. "No results" is never an
// error on this path.
func (e *Engine) GetRecommendations(ctx context.Context, userID string, q Query) *Response {
	start := time.Now()
	requestID := uuid.New().String()[:8]

	now := q.CurrentTime
	if now.IsZero() {
		now = time.Now()
	}

	meal := q.MealType
	timeOfDay := q.TimeOfDay
	if meal == nil && timeOfDay == "" {
		derived := models.MealForHour(now.Hour())
		meal = &derived
		timeOfDay = derived.TimeOfDay()
	}

	prof, hasProfile := e.profiles.Get(userID)

	var resp *Response
	if hasProfile {
		resp = e.personalized(prof, q, meal, timeOfDay, now)
	}
	if resp == nil {
		resp = e.generic(q, meal, timeOfDay, now)
	}

	resp.RequestID = requestID
	resp.GeneratedAt = now

	metrics.RecommendationRequests.WithLabelValues(resp.Variant.String()).Inc()
	metrics.RecommendationLatency.Observe(time.Since(start).Seconds())

	e.logger.Info().
		Str("request_id", requestID).
		Str("correlation_id", correlationID(ctx)).
		Str("user_id", userID).
		Str("variant", resp.Variant.String()).
		Str("meal_type", resp.MealType).
		Int("results", len(resp.Items)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations generated")

	return resp
}

// personalized runs the profile-driven ranking. Returns nil when filtering
// leaves no candidates, signalling the caller to fall back to the generic
// variant.
func (e *Engine) personalized(prof *models.UserProfile, q Query, meal *models.MealType, timeOfDay string, now time.Time) *Response {
	restrictions := q.DietaryFilter
	if len(restrictions) == 0 {
		restrictions = prof.DietaryPreferences
	}

	var candidates []models.Venue
	for _, v := range e.venues {
		if meal != nil && !v.ServesMeal(*meal) {
			continue
		}
		if len(restrictions) > 0 && !v.CoversDietary(restrictions) {
			continue
		}
		if q.MaxWaitTime > 0 && v.AvgWaitTime > q.MaxWaitTime {
			continue
		}
		if q.DiscountOnly && !v.MealPlanDiscount {
			continue
		}
		if prof.Avoids(v.Name) {
			continue
		}
		candidates = append(candidates, v)
	}

	if len(candidates) == 0 {
		return nil
	}

	w := e.config.Weights
	scored := make([]scoredVenue, len(candidates))
	for i, v := range candidates {
		score := w.VisitFrequency * float64(prof.LocationFrequency[v.Name])
		if v.MealPlanDiscount {
			score += w.Discount
		}
		if overlap := v.CuisineOverlap(prof.CuisinesPreferred); len(overlap) > 0 {
			score += w.CuisineMatch * float64(len(overlap))
		}
		if v.IsBusyAt(now.Hour()) {
			score -= w.BusyPenalty
		}
		scored[i] = scoredVenue{venue: v, score: score}
	}

	top := topByScore(scored, e.count(q))

	items := make([]Recommendation, len(top))
	for i, sv := range top {
		items[i] = e.annotate(sv, explainContext{
			variant:           VariantPersonalized,
			meal:              meal,
			now:               now,
			visitFrequency:    prof.LocationFrequency[sv.venue.Name],
			preferredCuisines: prof.CuisinesPreferred,
		})
	}

	return &Response{
		Variant:   VariantPersonalized,
		Items:     items,
		MealType:  mealName(meal),
		TimeOfDay: timeOfDay,
	}
}

// generic runs the profile-free ranking and falls back to the sentinel
// entry when nothing matches.
func (e *Engine) generic(q Query, meal *models.MealType, timeOfDay string, now time.Time) *Response {
	var candidates []models.Venue
	for _, v := range e.venues {
		if meal != nil && !v.ServesMeal(*meal) {
			continue
		}
		if len(q.DietaryFilter) > 0 && !v.CoversDietary(q.DietaryFilter) {
			continue
		}
		if q.MaxWaitTime > 0 && v.AvgWaitTime > q.MaxWaitTime {
			continue
		}
		if q.DiscountOnly && !v.MealPlanDiscount {
			continue
		}
		candidates = append(candidates, v)
	}

	if len(candidates) == 0 {
		return &Response{
			Variant: VariantGeneric,
			Items: []Recommendation{{
				Name:        SentinelName,
				Explanation: SentinelExplanation,
			}},
			MealType:  mealName(meal),
			TimeOfDay: timeOfDay,
		}
	}

	w := e.config.Weights
	scored := make([]scoredVenue, len(candidates))
	for i, v := range candidates {
		score := 0.0
		if v.MealPlanDiscount {
			score += w.Discount
		}
		if v.Category == catalog.PrimaryDiningCategory {
			score += w.DiningHall
		}
		if v.IsBusyAt(now.Hour()) {
			score -= w.BusyPenalty
		}
		scored[i] = scoredVenue{venue: v, score: score}
	}

	top := topByScore(scored, e.count(q))

	items := make([]Recommendation, len(top))
	for i, sv := range top {
		items[i] = e.annotate(sv, explainContext{
			variant: VariantGeneric,
			meal:    meal,
			now:     now,
		})
	}

	return &Response{
		Variant:   VariantGeneric,
		Items:     items,
		MealType:  mealName(meal),
		TimeOfDay: timeOfDay,
	}
}

// DailyPlan runs the recommendation procedure at the four fixed
// representative times for the given date: 08:00 breakfast, 12:00 lunch,
// 18:00 dinner, 22:00 late night. The main meals return two entries each,
// late night one.
func (e *Engine) DailyPlan(ctx context.Context, userID string, date time.Time, dietaryFilter []string, discountOnly bool) *DailyPlan {
	if date.IsZero() {
		date = time.Now()
	}

	at := func(hour int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	}
	slot := func(meal models.MealType, hour, count int) *Response {
		return e.GetRecommendations(ctx, userID, Query{
			MealType:      &meal,
			TimeOfDay:     meal.TimeOfDay(),
			DietaryFilter: dietaryFilter,
			DiscountOnly:  discountOnly,
			CurrentTime:   at(hour),
			Count:         count,
		})
	}

	return &DailyPlan{
		Breakfast: slot(models.MealBreakfast, 8, 2),
		Lunch:     slot(models.MealLunch, 12, 2),
		Dinner:    slot(models.MealDinner, 18, 2),
		LateNight: slot(models.MealLateNight, 22, 1),
	}
}

// annotate converts a scored venue into the response shape with its
// rendered explanation.
func (e *Engine) annotate(sv scoredVenue, ec explainContext) Recommendation {
	ec.venue = sv.venue
	return Recommendation{
		ID:               sv.venue.ID,
		Name:             sv.venue.Name,
		Area:             sv.venue.Area,
		Category:         sv.venue.Category,
		MealPlanDiscount: sv.venue.MealPlanDiscount,
		OpeningTime:      sv.venue.OpeningTime,
		ClosingTime:      sv.venue.ClosingTime,
		CuisineTypes:     sv.venue.CuisineTypes,
		DietaryOptions:   sv.venue.DietaryOptions,
		AvgWaitTime:      sv.venue.AvgWaitTime,
		BusyHours:        sv.venue.BusyHours,
		Score:            sv.score,
		Explanation:      buildExplanation(ec),
	}
}

func (e *Engine) count(q Query) int {
	if q.Count > 0 {
		return q.Count
	}
	return e.config.DefaultCount
}

// scoredVenue pairs a candidate with its heuristic score.
type scoredVenue struct {
	venue models.Venue
	score float64
}

// topByScore sorts descending by score and returns the first n entries.
// The sort is stable so score ties keep catalog order.
func topByScore(scored []scoredVenue, n int) []scoredVenue {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

func mealName(meal *models.MealType) string {
	if meal == nil {
		return ""
	}
	return meal.String()
}

func correlationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return logging.CorrelationIDFromContext(ctx)
}
