// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package recommend

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestVariantString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant Variant
		want    string
	}{
		{VariantPersonalized, "personalized"},
		{VariantGeneric, "generic"},
		{Variant(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.variant.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.variant, got, tt.want)
		}
	}
}

func TestVariantMarshalsAsText(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Response{Variant: VariantGeneric, RequestID: "r1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"variant":"generic"`) {
		t.Errorf("marshaled response = %s, want variant as text", data)
	}
}

func TestResponseIsSentinel(t *testing.T) {
	t.Parallel()

	sentinel := &Response{Items: []Recommendation{{
		Name:        SentinelName,
		Explanation: SentinelExplanation,
	}}}
	if !sentinel.IsSentinel() {
		t.Error("IsSentinel() = false for sentinel response")
	}

	regular := &Response{Items: []Recommendation{{Name: "Findlay Commons"}}}
	if regular.IsSentinel() {
		t.Error("IsSentinel() = true for a regular response")
	}

	empty := &Response{}
	if empty.IsSentinel() {
		t.Error("IsSentinel() = true for an empty response")
	}
}
