package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"voyago/storage"
)

var citiesDBPath string

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List stored cities and their record counts",
	Example: `
  voyago cities --db ./voyago.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(citiesDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cities, err := store.ListCities()
		if err != nil {
			return err
		}
		if len(cities) == 0 {
			fmt.Println("No cities stored yet. Import a workbook first.")
			return nil
		}

		active, err := store.ActiveCity()
		if err != nil {
			return err
		}

		for _, city := range cities {
			doc, _, loadErr := store.LoadDocument(city)
			if loadErr != nil {
				return loadErr
			}
			marker := " "
			if storage.CityKey(active) == city {
				marker = "*"
			}
			fmt.Printf("%s %s: %d activities, %d shops, %d vinyl\n",
				marker,
				city,
				len(doc.Roadmap),
				len(doc.Shops),
				len(doc.Vinyl),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)

	citiesCmd.Flags().StringVar(&citiesDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
