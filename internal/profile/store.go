// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package profile maintains per-user behavioral profiles built from
// transaction history and explicit preferences. The store is an explicit
// interface so a bounded or persistent implementation can replace the
// in-memory map without touching callers.
package profile

import (
	"sync"

	"github.com/mantavya0807/Mealer/internal/models"
)

// Store is the profile storage boundary. Profiles are created lazily on
// first Upsert and never deleted within the process lifetime.
type Store interface {
	// Get returns the stored profile for the user, or false if the user has
	// never been upserted.
	Get(userID string) (*models.UserProfile, bool)

	// Upsert applies transactions and preference updates to the user's
	// profile, creating it if absent, and returns the updated profile.
	Upsert(userID string, txns []models.Transaction, prefs *models.Preferences) *models.UserProfile
}

// MemoryStore is the in-memory Store implementation: a process-wide map
// keyed by user ID with no eviction. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.UserProfile
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: map[string]*models.UserProfile{},
	}
}

// Get returns the stored profile for the user.
func (s *MemoryStore) Get(userID string) (*models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok
}

// Upsert applies transactions and preference updates to the user's profile.
//
// Transactions append to the history, bump the per-venue visit count, and
// bump the meal-time preference bucket for the transaction hour. Visit
// counts are monotone: they only ever increase. Preference lists are
// last-write-wins: a non-nil slice replaces the stored value wholesale.
func (s *MemoryStore) Upsert(userID string, txns []models.Transaction, prefs *models.Preferences) *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		p = models.NewUserProfile(userID)
		s.profiles[userID] = p
	}

	for _, txn := range txns {
		p.TransactionHistory = append(p.TransactionHistory, txn)
		if txn.Location != "" {
			p.LocationFrequency[txn.Location]++
		}
		if meal, ok := mealSlotForHour(txn.Timestamp.Hour()); ok && !txn.Timestamp.IsZero() {
			p.MealTimePreference[meal.String()]++
		}
	}

	if prefs != nil {
		if prefs.DietaryPreferences != nil {
			p.DietaryPreferences = prefs.DietaryPreferences
		}
		if prefs.CuisinesPreferred != nil {
			p.CuisinesPreferred = prefs.CuisinesPreferred
		}
		if prefs.AvoidLocations != nil {
			p.AvoidLocations = prefs.AvoidLocations
		}
	}

	return p
}

// Len returns the number of stored profiles.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// mealSlotForHour buckets a transaction hour into a meal-time preference
// slot. The bands intentionally leave a 15:00-17:00 gap that counts toward
// no slot, matching the profile counters' historical behavior (these bands
// differ from the recommender's MealForHour bands).
func mealSlotForHour(hour int) (models.MealType, bool) {
	switch {
	case hour >= 6 && hour < 11:
		return models.MealBreakfast, true
	case hour >= 11 && hour < 15:
		return models.MealLunch, true
	case hour >= 17 && hour < 21:
		return models.MealDinner, true
	case hour >= 21 || hour < 6:
		return models.MealLateNight, true
	default:
		return 0, false
	}
}
