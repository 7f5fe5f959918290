package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/importer"
	"voyago/roadmap"
	"voyago/storage"
)

var (
	addDBPath string
	addCity   string
	addDate   string
	addTime   string
	addPlace  string
	addNotes  string
	addPass   string
	addStatus string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add one activity to a city's roadmap by hand",
	Long: `Create an activity record without an import, using the same rules as the
spreadsheet path: a fresh unique id, the maps link derived from the place,
the date rendered in display form, and the status normalized.`,
	Example: `
  # Add an activity with a place and date
  voyago add "🗼 Visite" --date 01/01/2025 --time 09:00 --place "Tour Eiffel"

  # Add an already-completed activity
  voyago add "Musée d'Orsay" --date 02/01/2025 --status terminé
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := strings.TrimSpace(args[0])
		if label == "" {
			return fmt.Errorf("activity description must not be empty")
		}

		store, err := storage.OpenSQLite(addDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, addCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}

		activity := roadmap.Activity{
			ID:      roadmap.NewRecordID("activity"),
			Date:    importer.FormatCellDate(addDate),
			Time:    addTime,
			Label:   label,
			Place:   addPlace,
			Address: addPlace,
			Pass:    addPass,
			Status:  roadmap.ParseStatus(addStatus),
			Notes:   addNotes,
			MapsURL: roadmap.MapsSearchURL(addPlace),
		}
		doc.Roadmap = append(doc.Roadmap, activity)

		if err := store.SaveDocument(city, doc); err != nil {
			return err
		}

		fmt.Printf("Added activity %s to %s (%s)\n", activity.ID, city, activity.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "Activity date (display form or workbook serial)")
	addCmd.Flags().StringVar(&addTime, "time", "", "Time of day, free text (14:30, Matin, Soir)")
	addCmd.Flags().StringVar(&addPlace, "place", "", "Place; also used to derive the maps link")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-text notes")
	addCmd.Flags().StringVar(&addPass, "pass", "", "Ticket/inclusion marker")
	addCmd.Flags().StringVar(&addStatus, "status", "", "Initial status (default: À faire)")
	addCmd.Flags().StringVar(&addCity, "city", "", "City to add to (default: active city)")
	addCmd.Flags().StringVar(&addDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
