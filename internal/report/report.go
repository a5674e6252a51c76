// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package report renders spending analytics as a self-contained HTML page.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mantavya0807/Mealer/internal/models"
	"github.com/mantavya0807/Mealer/internal/patterns"
)

// Options controls page title and chart sizing. The zero value renders
// with the package defaults.
type Options struct {
	PageTitle   string
	ChartWidth  string
	ChartHeight string
}

func (o Options) withDefaults() Options {
	if o.PageTitle == "" {
		o.PageTitle = "Spending Trends"
	}
	if o.ChartWidth == "" {
		o.ChartWidth = "900px"
	}
	if o.ChartHeight == "" {
		o.ChartHeight = "400px"
	}
	return o
}

// SpendingTrends renders a three-chart HTML report: daily spending over
// time, spending by meal period, and spending by day of week. The
// analysis argument comes from patterns.AnalyzeSpendingPatterns over the
// same transactions.
func SpendingTrends(w io.Writer, txns []models.Transaction, analysis *patterns.SpendingAnalysis, o Options) error {
	o = o.withDefaults()

	page := components.NewPage()
	page.SetPageTitle(o.PageTitle)
	page.AddCharts(
		dailyLine(txns, o),
		mealPeriodBar(analysis, o),
		dayOfWeekBar(analysis, o),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering spending report: %w", err)
	}
	return nil
}

// dailyLine plots total absolute spend per calendar day.
func dailyLine(txns []models.Transaction, o Options) *charts.Line {
	sorted := make([]models.Transaction, len(txns))
	copy(sorted, txns)
	models.SortTransactionsByTimestamp(sorted)

	var dates []string
	totals := map[string]float64{}
	for _, txn := range sorted {
		day := txn.Timestamp.Format("2006-01-02")
		if _, seen := totals[day]; !seen {
			dates = append(dates, day)
		}
		totals[day] += txn.AbsAmount()
	}

	points := make([]opts.LineData, len(dates))
	for i, day := range dates {
		points[i] = opts.LineData{Value: totals[day]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.PageTitle,
			Width:     o.ChartWidth,
			Height:    o.ChartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Spending",
			Subtitle: fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02")),
		}),
	)
	line.SetXAxis(dates).AddSeries("Spending ($)", points)
	return line
}

// mealPeriodBar plots total spend per meal period, in fixed period order.
func mealPeriodBar(analysis *patterns.SpendingAnalysis, o Options) *charts.Bar {
	var labels []string
	var values []opts.BarData
	for _, period := range analysis.MealPeriods {
		labels = append(labels, period.Period)
		values = append(values, opts.BarData{Value: period.TotalSpending})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  o.ChartWidth,
			Height: o.ChartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Spending by Meal Period"}),
	)
	bar.SetXAxis(labels).AddSeries("Spending ($)", values)
	return bar
}

// dayOfWeekBar plots total spend per weekday, Monday first.
func dayOfWeekBar(analysis *patterns.SpendingAnalysis, o Options) *charts.Bar {
	var labels []string
	var values []opts.BarData
	for _, day := range analysis.DayOfWeek {
		labels = append(labels, day.Day)
		values = append(values, opts.BarData{Value: day.TotalSpending})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  o.ChartWidth,
			Height: o.ChartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: "Spending by Day of Week"}),
	)
	bar.SetXAxis(labels).AddSeries("Spending ($)", values)
	return bar
}
