package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"voyago/roadmap"
)

type JSONWriter struct{}

type jsonExport struct {
	roadmap.Document
	LastUpdated string `json:"lastUpdated"`
}

// Write exports the document as indented JSON in the same layout the app
// persists, so an export can be re-imported as-is.
func (w *JSONWriter) Write(path string, doc roadmap.Document) error {
	payload, err := json.MarshalIndent(jsonExport{
		Document:    doc,
		LastUpdated: time.Now().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write json export %s: %w", path, err)
	}
	return nil
}
