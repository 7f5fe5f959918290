package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/stats"
	"voyago/storage"
)

var (
	statsDBPath string
	statsCity   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary counters for a city's travel document",
	Long: `Print per-collection counters: activity totals by status, shop and
record-store totals with visited/favorite counts, and the wishlist item sum.`,
	Example: `
  # Stats for the active city
  voyago stats

  # Stats for an explicit city
  voyago stats --city "Lisbon" --db ./voyago.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(statsDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, statsCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}

		printSummary(city, stats.Summarize(doc))
		return nil
	},
}

func printSummary(city string, summary stats.Summary) {
	fmt.Printf("Stats for %s\n", city)
	fmt.Printf("  Activities: %d total, %d done, %d in progress, %d to do\n",
		summary.Roadmap.Total,
		summary.Roadmap.Completed,
		summary.Roadmap.InProgress,
		summary.Roadmap.Pending,
	)
	fmt.Printf("  Shops: %d total, %d visited, %d favorites\n",
		summary.Shops.Total,
		summary.Shops.Visited,
		summary.Shops.Favorites,
	)
	fmt.Printf("  Vinyl: %d total, %d visited, %d favorites, %d wishlist items\n",
		summary.Vinyl.Total,
		summary.Vinyl.Visited,
		summary.Vinyl.Favorites,
		summary.Vinyl.WishlistItems,
	)
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsCity, "city", "", "City to summarize (default: active city)")
	statsCmd.Flags().StringVar(&statsDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
