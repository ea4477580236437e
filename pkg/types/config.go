// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the PubMed search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of PMIDs to return (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MinYear is the earliest publication year included (default 2005).
	MinYear int `json:"min_year" yaml:"min_year"`

	// Email is the contact address NCBI requires with E-utilities requests.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// AnalysisConfig holds settings for the completion-endpoint analysis stage.
type AnalysisConfig struct {
	// Model is the default model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// AllowedModels lists the model identifiers the CLI accepts.
	AllowedModels []string `json:"allowed_models" yaml:"allowed_models"`

	// APIKey is the authentication key for the completion endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the completion endpoint base
	// (default "https://api.openai.com/v1").
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Temperature is the sampling temperature; kept low to favor
	// determinism over creativity (default 0.4).
	Temperature float32 `json:"temperature" yaml:"temperature"`

	// MaxTokens bounds the completion length (default 2048).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Timeout bounds each network attempt (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
}
