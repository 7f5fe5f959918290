package cmd

import (
	"fmt"
	"strings"

	"voyago/storage"
)

// resolveCityContext picks the city commands operate on: the explicit flag
// wins, then the stored active city, then the configured fallback.
func resolveCityContext(store *storage.SQLiteStore, flagCity, fallback string) (string, error) {
	if city := strings.TrimSpace(flagCity); city != "" {
		return city, nil
	}

	active, err := store.ActiveCity()
	if err != nil {
		return "", err
	}
	if active != "" {
		return active, nil
	}

	if strings.TrimSpace(fallback) == "" {
		return "", fmt.Errorf("no city context: import a workbook first or pass --city")
	}
	return fallback, nil
}
