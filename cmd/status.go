package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voyago/config"
	"voyago/roadmap"
	"voyago/storage"
)

var (
	statusDBPath string
	statusCity   string
)

var statusCmd = &cobra.Command{
	Use:   "status <activity-id> <status>",
	Short: "Set the status of one activity",
	Long: `Update an activity's lifecycle status. The value is normalized the same way
imported cells are, so emoji markers and partial words work:
"terminé"/"✅" -> Terminé, "cours"/"🔄" -> En cours, "annulé"/"❌" -> Annulé,
anything else -> À faire.`,
	Example: `
  voyago status activity-1a2b3c terminé
  voyago status activity-1a2b3c "en cours"
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(statusDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		city, err := resolveCityContext(store, statusCity, viper.GetString(config.KeyCityFallback))
		if err != nil {
			return err
		}

		doc, err := store.LoadOrInit(city)
		if err != nil {
			return err
		}

		status := roadmap.ParseStatus(args[1])
		if !doc.SetActivityStatus(args[0], status) {
			return fmt.Errorf("no activity with id %s in %s", args[0], city)
		}

		if err := store.SaveDocument(city, doc); err != nil {
			return err
		}

		fmt.Printf("Activity %s is now %s\n", args[0], status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusCity, "city", "", "City holding the activity (default: active city)")
	statusCmd.Flags().StringVar(&statusDBPath, "db", "./voyago.db", "Path to local SQLite database")
}
