// internal/cli/show_config.go
package sortbench

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/sortbench/internal/appconfig"
)

// configCmd prints the effective merged configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfgFile, cfg)
		if DebugEnabled() && cfg != nil {
			pp.Println(cfg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
