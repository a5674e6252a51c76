// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

/*
Package models defines the shared domain types for Mealer.

It holds the transaction record that every analytics pipeline consumes,
the meal period and meal type classifications derived from the hour of
day, venue metadata, and user preference types. The types here carry no
behavior beyond classification and ordering helpers; the pipelines in
internal/recommend, internal/forecast, and internal/patterns build on
them.

Days of week are handled Monday-first throughout, matching how campus
dining weeks are reported.
*/
package models
