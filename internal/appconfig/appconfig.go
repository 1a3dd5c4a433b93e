// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"

	"github.com/mwiater/sortbench/internal/dataset"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRepeats is the trial count per measurement when the config omits it.
	defaultRepeats = 3
	// defaultReportsDir receives the CSV and README output.
	defaultReportsDir = "reports"
	// defaultLogFile receives the run log alongside stdout.
	defaultLogFile = "sortbench.log"
)

// defaultSmallSizes are measured by every algorithm, quadratic included.
var defaultSmallSizes = []int{1000, 2000, 5000}

// defaultLargeSizes are measured only by the non-quadratic algorithms.
var defaultLargeSizes = []int{10000, 20000, 50000}

// Config represents the top-level application configuration.
type Config struct {
	SmallSizes []int    `json:"smallSizes" mapstructure:"smallSizes"`
	LargeSizes []int    `json:"largeSizes" mapstructure:"largeSizes"`
	Patterns   []string `json:"patterns" mapstructure:"patterns"`
	Repeats    int      `json:"repeats" mapstructure:"repeats"`
	ReportsDir string   `json:"reportsDir,omitempty" mapstructure:"reportsDir"`
	NoReadme   bool     `json:"noReadme" mapstructure:"noReadme"`
	Debug      bool     `json:"debug" mapstructure:"debug"`
	LogFile    string   `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath string   `json:"-" mapstructure:"-"`
}

// SmallSizeList returns the configured small sizes, falling back to the defaults.
func (c Config) SmallSizeList() []int {
	if len(c.SmallSizes) == 0 {
		return defaultSmallSizes
	}
	return c.SmallSizes
}

// LargeSizeList returns the configured large sizes, falling back to the defaults.
func (c Config) LargeSizeList() []int {
	if len(c.LargeSizes) == 0 {
		return defaultLargeSizes
	}
	return c.LargeSizes
}

// RepeatCount returns the configured trial count, falling back to the default.
func (c Config) RepeatCount() int {
	if c.Repeats <= 0 {
		return defaultRepeats
	}
	return c.Repeats
}

// ReportsPath returns the output directory for reports, applying the default if not set.
func (c Config) ReportsPath() string {
	if c.ReportsDir == "" {
		return defaultReportsDir
	}
	return c.ReportsDir
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if c.LogFile == "" {
		return defaultLogFile
	}
	return c.LogFile
}

// PatternList parses the configured pattern names, falling back to all
// supported patterns in canonical order when none are configured.
func (c Config) PatternList() ([]dataset.Pattern, error) {
	if len(c.Patterns) == 0 {
		return dataset.AllPatterns(), nil
	}
	out := make([]dataset.Pattern, 0, len(c.Patterns))
	for _, name := range c.Patterns {
		p, err := dataset.ParsePattern(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Validate rejects configurations that cannot produce a meaningful benchmark
// run. It runs before any dataset is generated so a bad size or pattern never
// aborts a half-finished run.
func (c Config) Validate() error {
	if c.Repeats < 0 {
		return fmt.Errorf("repeats must not be negative, got %d", c.Repeats)
	}
	for _, n := range c.SmallSizes {
		if n <= 0 {
			return fmt.Errorf("small size must be positive, got %d", n)
		}
	}
	for _, n := range c.LargeSizes {
		if n <= 0 {
			return fmt.Errorf("large size must be positive, got %d", n)
		}
	}
	if _, err := c.PatternList(); err != nil {
		return err
	}
	return nil
}
