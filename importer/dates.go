package importer

import (
	"strconv"
	"strings"
	"time"
)

// displayDateLayout is the fr-FR short date form used everywhere a date is
// shown or stored. Dates are display strings in the document, not timestamps.
const displayDateLayout = "02/01/2006"

var cellDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// FormatCellDate renders a raw date cell for display. Numeric cells are
// treated as workbook day serials, parseable strings are reformatted, and
// anything else passes through unchanged; the function never fails.
func FormatCellDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return serialToDate(serial).Format(displayDateLayout)
	}

	for _, layout := range cellDateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed.Format(displayDateLayout)
		}
	}

	return value
}

// serialToDate converts a workbook day serial to a calendar date. The epoch
// is 1899-12-30, i.e. serial 25569 is the Unix epoch. The alternate 1904
// epoch some classic Mac workbooks use is not detected.
func serialToDate(serial float64) time.Time {
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.Add(time.Duration(serial * float64(24*time.Hour)))
}
