package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/storage"
)

var (
	markDBPath   string
	markCity     string
	markVisited  bool
	markFavorite bool
)

var markCmd = &cobra.Command{
	Use:   "mark <shop-id>",
	Short: "Toggle visited/favorite flags on a shop or record store",
	Example: `
  # Toggle visited
  voyago mark shop-1a2b3c --visited

  # Toggle both flags at once
  voyago mark vinyl-4d5e6f --visited --favorite
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !markVisited && !markFavorite {
			return fmt.Errorf("nothing to toggle: pass --visited and/or --favorite")
		}

		store, err := storage.OpenSQLite(markDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, markCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}

		id := args[0]
		if markVisited {
			value, found := doc.ToggleVisited(id)
			if !found {
				return fmt.Errorf("no shop with id %s in %s", id, city)
			}
			fmt.Printf("Shop %s visited: %t\n", id, value)
		}
		if markFavorite {
			value, found := doc.ToggleFavorite(id)
			if !found {
				return fmt.Errorf("no shop with id %s in %s", id, city)
			}
			fmt.Printf("Shop %s favorite: %t\n", id, value)
		}

		return store.SaveDocument(city, doc)
	},
}

func init() {
	rootCmd.AddCommand(markCmd)

	markCmd.Flags().BoolVar(&markVisited, "visited", false, "Toggle the visited flag")
	markCmd.Flags().BoolVar(&markFavorite, "favorite", false, "Toggle the favorite flag")
	markCmd.Flags().StringVar(&markCity, "city", "", "City holding the shop (default: active city)")
	markCmd.Flags().StringVar(&markDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
