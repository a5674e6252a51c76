// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package models

import (
	"math"
	"sort"
	"time"
)

// AccountType identifies the campus account a transaction was charged to.
type AccountType int

const (
	// AccountOther covers cash, card, and any unrecognized account label.
	AccountOther AccountType = iota
	// AccountCampusMealPlan is the prepaid campus meal plan account.
	AccountCampusMealPlan
	// AccountLionCash is the campus declining-balance cash account.
	AccountLionCash
)

// String returns the wire-format name for the account type.
func (a AccountType) String() string {
	switch a {
	case AccountCampusMealPlan:
		return "CampusMealPlan"
	case AccountLionCash:
		return "LionCash"
	default:
		return "other"
	}
}

// ParseAccountType converts a wire-format account label to an AccountType.
// Unrecognized labels map to AccountOther.
func ParseAccountType(s string) AccountType {
	switch s {
	case "CampusMealPlan":
		return AccountCampusMealPlan
	case "LionCash":
		return AccountLionCash
	default:
		return AccountOther
	}
}

// Transaction is a single dining purchase. Transactions are immutable once
// recorded. Amounts may arrive signed (debits negative); use AbsAmount for
// aggregation.
type Transaction struct {
	// Location is the venue name as printed on the transaction record.
	Location string `json:"location"`

	// Timestamp is when the purchase occurred.
	Timestamp time.Time `json:"timestamp"`

	// Amount is the transaction amount. May be negative for debits.
	Amount float64 `json:"amount"`

	// AccountType is the account charged, when known.
	AccountType AccountType `json:"account_type,omitempty"`
}

// AbsAmount returns the non-negative magnitude of the transaction amount.
func (t Transaction) AbsAmount() float64 {
	return math.Abs(t.Amount)
}

// SortTransactionsByTimestamp orders transactions by timestamp ascending.
// The sort is stable: ties keep input order, which downstream rolling and
// cumulative features depend on.
func SortTransactionsByTimestamp(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Timestamp.Before(txns[j].Timestamp)
	})
}
