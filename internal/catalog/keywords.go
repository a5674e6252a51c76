// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package catalog

import "strings"

// DiningCommonsKeywords are the substrings identifying discount-eligible
// dining commons venues. Matching is case-insensitive.
var DiningCommonsKeywords = []string{"findlay", "waring", "redifer", "pollock", "north"}

// IsDiningCommons reports whether the venue name identifies a dining
// commons (discount-eligible) location.
func IsDiningCommons(venueName string) bool {
	lower := strings.ToLower(venueName)
	for _, kw := range DiningCommonsKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsHub reports whether the venue name identifies a HUB location.
func IsHub(venueName string) bool {
	return strings.Contains(strings.ToLower(venueName), "hub")
}

// IsMarket reports whether the venue name identifies a market location.
func IsMarket(venueName string) bool {
	return strings.Contains(strings.ToLower(venueName), "market")
}

// PrimaryDiningCategory is the venue category that gets the generic-path
// scoring boost.
const PrimaryDiningCategory = "Dining Hall"
