package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage voyago configuration file values.",
	Long: `Create, edit, and display the voyago configuration file.

The configuration stores application-wide values:
- city.fallback / city.corrections
- import.auto_stats_after_import / import.merge_by_default
- web.listen_addr`,
	Example: `
  # Create default config in $HOME/.voyago.yaml
  voyago config create

  # Show active config and source file
  voyago config show

  # Open active config in editor (creates example if missing)
  voyago config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
