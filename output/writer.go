package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"voyago/roadmap"
)

type Writer interface {
	Write(path string, doc roadmap.Document) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "json":
		return &JSONWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from the file extension, defaulting
// to JSON.
func DetectFormat(path string) string {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".") {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "json"
	}
}

// DefaultJSONFilename is the date-stamped export name used when no output
// path is given.
func DefaultJSONFilename(now time.Time) string {
	return "travel-roadmap-" + now.Format("2006-01-02") + ".json"
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
