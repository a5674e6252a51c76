// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

package report

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mantavya0807/Mealer/internal/logging"
	"github.com/mantavya0807/Mealer/internal/ml"
	"github.com/mantavya0807/Mealer/internal/models"
	"github.com/mantavya0807/Mealer/internal/patterns"
)

func TestSpendingTrends(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, time.February, 2, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Location: "Findlay Commons", Timestamp: base, Amount: 10},
		{Location: "Findlay Commons", Timestamp: base.AddDate(0, 0, 1), Amount: 8},
		{Location: "HUB Dining", Timestamp: base.AddDate(0, 0, 2).Add(7 * time.Hour), Amount: 12},
	}

	p := patterns.NewPredictor(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	analysis, err := p.AnalyzeSpendingPatterns(txns)
	if err != nil {
		t.Fatalf("AnalyzeSpendingPatterns: %v", err)
	}

	var buf bytes.Buffer
	if err := SpendingTrends(&buf, txns, analysis, Options{}); err != nil {
		t.Fatalf("SpendingTrends: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Spending Trends",
		"Daily Spending",
		"Spending by Meal Period",
		"Spending by Day of Week",
		"2026-02-02",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}

	buf.Reset()
	custom := Options{PageTitle: "Dining Report", ChartWidth: "700px", ChartHeight: "300px"}
	if err := SpendingTrends(&buf, txns, analysis, custom); err != nil {
		t.Fatalf("SpendingTrends with options: %v", err)
	}
	for _, want := range []string{"Dining Report", "700px", "300px"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("custom report missing %q", want)
		}
	}
}

func TestWriteAnalysisJSON(t *testing.T) {
	t.Parallel()

	txns := []models.Transaction{
		{Location: "Findlay Commons", Timestamp: time.Date(2026, time.February, 2, 12, 0, 0, 0, time.UTC), Amount: 10},
	}

	p := patterns.NewPredictor(ml.RegressionParams{}, logging.NewTestLogger(io.Discard))
	analysis, err := p.AnalyzeSpendingPatterns(txns)
	if err != nil {
		t.Fatalf("AnalyzeSpendingPatterns: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteAnalysisJSON(&buf, analysis); err != nil {
		t.Fatalf("WriteAnalysisJSON: %v", err)
	}
	for _, want := range []string{`"total_spending"`, `"highest_spending_day"`, `"recommendations"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("JSON export missing %s", want)
		}
	}

	if err := WriteAnalysisJSON(io.Discard, nil); err == nil {
		t.Fatal("expected error for nil analysis")
	}
}
