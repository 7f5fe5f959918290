package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/output"
	"voyago/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
	exportCity   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a city's travel document to JSON or Excel",
	Long: `Export the stored document.

Formats:
- json: the full document as indented JSON, re-importable by the app
- excel: a workbook with Activities, Shops, and Vinyl Shops sheets that
  round-trips through "voyago import" (vinyl maps links become cell hyperlinks)

Output format can be selected explicitly via --format or inferred from the
--output extension. Without --output a date-stamped JSON filename is used.`,
	Example: `
  # Export active city's document to a date-stamped JSON file
  voyago export

  # Export to Excel
  voyago export --output ./roadmap_newyork.xlsx

  # Force JSON format independent of extension
  voyago export --format json --output ./roadmap.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := strings.TrimSpace(exportOutput)
		if outputPath == "" {
			outputPath = output.DefaultJSONFilename(time.Now())
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = output.DetectFormat(outputPath)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, exportCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(outputPath, doc); err != nil {
			return err
		}

		fmt.Printf("Export completed. City: %s, Records: %d, Format: %s, File: %s\n",
			city,
			len(doc.Roadmap)+len(doc.Shops)+len(doc.Vinyl),
			format,
			outputPath,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: json|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: travel-roadmap-<date>.json)")
	exportCmd.Flags().StringVar(&exportCity, "city", "", "City to export (default: active city)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
