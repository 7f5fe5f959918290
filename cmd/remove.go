package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/storage"
)

var (
	removeDBPath string
	removeCity   string
	removeAll    bool
)

var removeCmd = &cobra.Command{
	Use:   "remove [record-id]",
	Short: "Remove one record by id, or a city's whole document",
	Long: `Delete a single activity, shop, or record store by its id, or wipe the
entire stored document for a city with --all.`,
	Example: `
  # Remove one record
  voyago remove activity-1a2b3c

  # Clear everything stored for the active city
  voyago remove --all
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if removeAll == (len(args) == 1) {
			return fmt.Errorf("pass either a record id or --all")
		}

		store, err := storage.OpenSQLite(removeDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, removeCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		if removeAll {
			if err := store.DeleteDocument(city); err != nil {
				return err
			}
			fmt.Printf("Removed all records for %s\n", city)
			return nil
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}
		if !doc.Remove(args[0]) {
			return fmt.Errorf("no record with id %s in %s", args[0], city)
		}
		if err := store.SaveDocument(city, doc); err != nil {
			return err
		}

		fmt.Printf("Removed %s from %s\n", args[0], city)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVar(&removeAll, "all", false, "Remove the city's entire document")
	removeCmd.Flags().StringVar(&removeCity, "city", "", "City holding the record (default: active city)")
	removeCmd.Flags().StringVar(&removeDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
