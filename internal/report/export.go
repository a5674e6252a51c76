// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/mantavya0807/Mealer/internal/patterns"
)

// WriteAnalysisJSON writes a spending analysis as indented JSON, for
// callers that want the raw numbers behind the HTML report.
func WriteAnalysisJSON(w io.Writer, analysis *patterns.SpendingAnalysis) error {
	if analysis == nil {
		return fmt.Errorf("nil analysis")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	return nil
}
