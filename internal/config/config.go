// Mealer - Campus Dining Recommendations and Meal Plan Analytics
// Copyright 2026 Mantavya (mantavya0807)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mantavya0807/Mealer

// Package config loads application configuration with koanf.
//
// Loading order:
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or MEALER_CONFIG_PATH)
//  3. MEALER_-prefixed environment variables (highest priority)
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in priority
// order. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mealer/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "MEALER_CONFIG_PATH"

// envPrefix namespaces all environment overrides.
const envPrefix = "MEALER_"

// Config holds all application settings.
type Config struct {
	Recommend RecommendConfig `koanf:"recommend"`
	Model     ModelConfig     `koanf:"model"`
	Report    ReportConfig    `koanf:"report"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// RecommendConfig tunes the venue recommender.
type RecommendConfig struct {
	// DefaultCount is how many venues a recommendation request returns
	// when the caller does not specify one.
	DefaultCount int `koanf:"default_count"`

	// SimilarNeighbors is how many venues a similarity query returns.
	SimilarNeighbors int `koanf:"similar_neighbors"`

	// Scoring weight overrides. Zero values fall back to the engine
	// defaults; weights must not be negative.
	VisitFrequencyWeight float64 `koanf:"visit_frequency_weight"`
	DiscountWeight       float64 `koanf:"discount_weight"`
	CuisineMatchWeight   float64 `koanf:"cuisine_match_weight"`
	DiningHallWeight     float64 `koanf:"dining_hall_weight"`
	BusyPenaltyWeight    float64 `koanf:"busy_penalty_weight"`
}

// ModelConfig tunes the regression training loop shared by the forecaster
// and pattern predictor.
type ModelConfig struct {
	LearningRate float64 `koanf:"learning_rate"`
	Epochs       int     `koanf:"epochs"`
}

// ReportConfig tunes HTML report rendering.
type ReportConfig struct {
	PageTitle   string `koanf:"page_title"`
	ChartWidth  string `koanf:"chart_width"`
	ChartHeight string `koanf:"chart_height"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment overrides.
func defaultConfig() *Config {
	return &Config{
		Recommend: RecommendConfig{
			DefaultCount:         3,
			SimilarNeighbors:     5,
			VisitFrequencyWeight: 0.5,
			DiscountWeight:       2,
			CuisineMatchWeight:   1.5,
			DiningHallWeight:     1,
			BusyPenaltyWeight:    1,
		},
		Model: ModelConfig{
			LearningRate: 0.01,
			Epochs:       1000,
		},
		Report: ReportConfig{
			PageTitle:   "Spending Trends",
			ChartWidth:  "900px",
			ChartHeight: "400px",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// MEALER_ environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded configuration for values the rest of the
// application cannot work with.
func (c *Config) Validate() error {
	if c.Recommend.DefaultCount < 1 {
		return fmt.Errorf("recommend.default_count must be at least 1, got %d", c.Recommend.DefaultCount)
	}
	if c.Recommend.SimilarNeighbors < 1 {
		return fmt.Errorf("recommend.similar_neighbors must be at least 1, got %d", c.Recommend.SimilarNeighbors)
	}
	for name, w := range map[string]float64{
		"recommend.visit_frequency_weight": c.Recommend.VisitFrequencyWeight,
		"recommend.discount_weight":        c.Recommend.DiscountWeight,
		"recommend.cuisine_match_weight":   c.Recommend.CuisineMatchWeight,
		"recommend.dining_hall_weight":     c.Recommend.DiningHallWeight,
		"recommend.busy_penalty_weight":    c.Recommend.BusyPenaltyWeight,
	} {
		if w < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, w)
		}
	}
	if c.Model.LearningRate <= 0 {
		return fmt.Errorf("model.learning_rate must be positive, got %v", c.Model.LearningRate)
	}
	if c.Model.Epochs < 1 {
		return fmt.Errorf("model.epochs must be at least 1, got %d", c.Model.Epochs)
	}
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logging.level %q is not a valid zerolog level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// findConfigFile returns the first readable config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps MEALER_ environment variables to koanf paths:
// MEALER_LOG_LEVEL -> logging.level. Unmapped keys are dropped so stray
// environment variables cannot pollute the config.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	envMappings := map[string]string{
		"recommend_default_count":     "recommend.default_count",
		"recommend_similar_neighbors": "recommend.similar_neighbors",
		"recommend_visit_weight":      "recommend.visit_frequency_weight",
		"recommend_discount_weight":   "recommend.discount_weight",
		"recommend_cuisine_weight":    "recommend.cuisine_match_weight",
		"recommend_hall_weight":       "recommend.dining_hall_weight",
		"recommend_busy_weight":       "recommend.busy_penalty_weight",

		"model_learning_rate": "model.learning_rate",
		"model_epochs":        "model.epochs",

		"report_page_title":   "report.page_title",
		"report_chart_width":  "report.chart_width",
		"report_chart_height": "report.chart_height",

		"log_level":  "logging.level",
		"log_format": "logging.format",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
