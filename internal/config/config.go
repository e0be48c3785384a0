package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
)

// Config is the top-level trackwatch configuration.
type Config struct {
	APIBaseURL     string              `mapstructure:"api_base_url"`
	TimeoutSeconds int                 `mapstructure:"timeout_seconds"`
	Scoring        analyzer.Thresholds `mapstructure:"scoring"`
	Output         Output              `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("scoring.age_expired_months", DefaultScoring.AgeExpiredMonths)
	v.SetDefault("scoring.age_expired_delta", DefaultScoring.AgeExpiredDelta)
	v.SetDefault("scoring.age_late_months", DefaultScoring.AgeLateMonths)
	v.SetDefault("scoring.age_late_delta", DefaultScoring.AgeLateDelta)
	v.SetDefault("scoring.age_mid_months", DefaultScoring.AgeMidMonths)
	v.SetDefault("scoring.age_mid_delta", DefaultScoring.AgeMidDelta)
	v.SetDefault("scoring.inspection_overdue_days", DefaultScoring.InspectionOverdueDays)
	v.SetDefault("scoring.inspection_overdue_delta", DefaultScoring.InspectionOverdueDelta)
	v.SetDefault("scoring.inspection_due_days", DefaultScoring.InspectionDueDays)
	v.SetDefault("scoring.inspection_due_delta", DefaultScoring.InspectionDueDelta)
	v.SetDefault("scoring.status_delta", DefaultScoring.StatusDelta)
	v.SetDefault("scoring.warning_score", DefaultScoring.WarningScore)
	v.SetDefault("scoring.critical_score", DefaultScoring.CriticalScore)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
