package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  voyago config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
			fmt.Println("Configuration:")
			fmt.Printf("city.fallback: %s\n", cfg.City.Fallback)
			fmt.Printf("city.corrections: %d\n", len(cfg.City.Corrections))
			keys := make([]string, 0, len(cfg.City.Corrections))
			for key := range cfg.City.Corrections {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Printf("city.corrections.%s: %s\n", key, cfg.City.Corrections[key])
			}
			fmt.Printf("import.auto_stats_after_import: %t\n", cfg.Import.AutoStatsAfterImport)
			fmt.Printf("import.merge_by_default: %t\n", cfg.Import.MergeByDefault)
			fmt.Printf("web.listen_addr: %s\n", cfg.Web.ListenAddr)
		}

	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
