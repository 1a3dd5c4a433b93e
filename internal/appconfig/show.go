// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := Config{}
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Small Sizes: %v\n", effective.SmallSizeList())
	fmt.Fprintf(out, "  Large Sizes: %v\n", effective.LargeSizeList())
	patterns, err := effective.PatternList()
	if err != nil {
		fmt.Fprintf(out, "  Patterns:    (invalid: %v)\n", err)
	} else {
		fmt.Fprintf(out, "  Patterns:    %v\n", patterns)
	}
	fmt.Fprintf(out, "  Repeats:     %d\n", effective.RepeatCount())
	fmt.Fprintf(out, "  Reports Dir: %s\n", effective.ReportsPath())
	fmt.Fprintf(out, "  No README:   %v\n", effective.NoReadme)
	fmt.Fprintf(out, "  Debug:       %v\n", effective.Debug)
	fmt.Fprintf(out, "  Log File:    %s\n", effective.LogFilePath())
}
