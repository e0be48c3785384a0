// Package config provides configuration loading and defaults for trackwatch.
package config

import "github.com/blackwell-systems/trackwatch/internal/analyzer"

// DefaultAPIBaseURL is the default inventory service endpoint.
const DefaultAPIBaseURL = "http://localhost:3000"

// DefaultTimeoutSeconds bounds a single product fetch.
const DefaultTimeoutSeconds = 10

// DefaultConfigDir is the default location for trackwatch configuration.
const DefaultConfigDir = "~/.config/trackwatch"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScoring holds the canonical scoring thresholds.
var DefaultScoring = analyzer.DefaultThresholds

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 60,
}
