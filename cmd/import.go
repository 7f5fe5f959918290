package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"voyago/config"
	"voyago/importer"
	"voyago/stats"
	"voyago/storage"
)

var (
	importInputs []string
	importDBPath string
	importCity   string
	importMerge  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import travel-roadmap workbooks into the local SQLite document store",
	Long: `Read workbook files, classify each sheet by name (activities, shops, vinyl),
normalize every data row into typed records, and persist the result as one
document per city.

The city context is extracted from the first input filename (tokens like
"roadmap" or "planning" are ignored, known city tokens are corrected) and
remembered as the active city for later commands. Pass --city to override.

By default an import replaces the stored document for the city; --merge
appends instead, skipping records that are already present.`,
	Example: `
  # Import a workbook, city derived from the filename
  voyago import -i roadmap_newyork.xlsx

  # Import several workbooks into one explicit city
  voyago import -i activities.xlsx -i shops.xlsx --city "Lisbon"

  # Merge new sheets into the existing document
  voyago import -i extra_vinyl_shops.xlsx --city "Lisbon" --merge

  # Import with custom config file and database path
  voyago --configFile ./custom-voyago.yaml import -i ./roadmap_tokyo.xlsx --db ./voyago.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		result, err := importer.Run(importInputs, importer.RunOptions{
			City:         importCity,
			FallbackCity: cfg.City.Fallback,
			Corrections:  cfg.City.Corrections,
		})
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		doc := result.Document
		added := len(doc.Roadmap) + len(doc.Shops) + len(doc.Vinyl)
		skippedDuplicates := 0
		if importMerge || cfg.Import.MergeByDefault {
			existing, loadErr := store.LoadOrInit(result.City)
			if loadErr != nil {
				return loadErr
			}
			added, skippedDuplicates = existing.Merge(doc)
			doc = existing
		}

		if err := store.SaveDocument(result.City, doc); err != nil {
			return err
		}
		if err := store.SetActiveCity(result.City); err != nil {
			return err
		}

		fmt.Printf("Import completed. City: %s, Files: %d, Rows read: %d, Rows parsed: %d, Rows skipped: %d, Records persisted: %d, Duplicates skipped: %d\n",
			result.City,
			result.FilesProcessed,
			result.RowsRead,
			result.RowsParsed,
			result.RowsSkipped,
			added,
			skippedDuplicates,
		)

		if cfg.Import.AutoStatsAfterImport {
			printSummary(result.City, stats.Summarize(doc))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input workbook path (repeatable)")
	importCmd.Flags().StringVar(&importCity, "city", "", "Explicit city context (overrides filename extraction)")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge into the existing document instead of replacing it")
	importCmd.Flags().StringVar(&importDBPath, "db", "./voyago.db", "Path to local SQLite database")

	_ = importCmd.MarkFlagRequired("input")
}
