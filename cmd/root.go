package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voyago",
	Short: "Import, browse, and track day-by-day travel itineraries from spreadsheet files.",
	Long: `
**********************************************
*                 VOYAGO                     *
**********************************************

This CLI imports travel-roadmap workbooks (activities, shops, record stores),
normalizes them into per-city documents stored in a local SQLite database,
tracks activity status and shop visits, and exports JSON or Excel.

Supported input formats:
- Excel: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  voyago config create

  # Import an itinerary workbook (city taken from the filename)
  voyago import -i roadmap_newyork.xlsx

  # Merge a second workbook into the same city
  voyago import -i roadmap_newyork_shops.xlsx --merge

  # Show summary counters
  voyago stats

  # Mark an activity as done and a record store as visited
  voyago status activity-1a2b3c done
  voyago mark vinyl-4d5e6f --visited

  # Export the current document
  voyago export --output ./travel-roadmap.json
  voyago export --output ./roadmap.xlsx

  # Serve the local JSON API for the browser UI
  voyago serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.voyago.yaml, then ./.voyago.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Name() == "import" || cmd.Name() == "serve"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".voyago" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".voyago")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: voyago config create")
	}
}
