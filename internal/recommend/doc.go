// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package recommend implements the dining venue recommender.
//
// # Architecture
//
// The engine ranks the static venue catalog for a user and context:
//
//   - Hard filters: meal availability, dietary coverage, wait time,
//     discount, avoid list
//   - Heuristic scoring: visit frequency, discount, cuisine overlap,
//     busy-hour penalty
//   - Explanations: an ordered clause list rendered per surfaced venue
//
// Every response is explicitly one of two variants. The personalized
// variant requires a stored profile and a non-empty filtered set; anything
// else falls back to the generic variant, which never references profile
// state. The generic variant with no matching venues returns a single
// sentinel entry rather than an empty list — "no results" is not an error
// on this path.
//
// A nearest-neighbor index over venue attributes backs "similar venue"
// lookups; it is fitted separately from the rule-based ranking.
//
// # Determinism
//
// Scoring ties keep catalog order (stable sort), so identical inputs
// always produce identical output order.
//
// # Thread Safety
//
// The engine itself holds no mutable state after Fit and is safe for
// concurrent reads; the profile store serializes its own access.
package recommend
