package importer

import (
	"path/filepath"

	"voyago/internal/cityname"
	"voyago/roadmap"
)

type Result struct {
	FilesProcessed int
	SheetsRead     int
	RowsRead       int
	RowsParsed     int
	RowsSkipped    int
	City           string
	Document       roadmap.Document
}

type RunOptions struct {
	// City overrides the filename-derived city when set.
	City string
	// FallbackCity is used when no filename token survives the heuristic.
	FallbackCity string
	// Corrections extends the built-in city-name correction table.
	Corrections map[string]string
}

// Run ingests one or more workbook files into a single document. Sheets are
// classified by name and every data row runs through the matching row parser;
// rows the parser rejects are counted as skipped, never surfaced as errors.
// Collections concatenate across sheets and files in source order. The city
// context is taken from the first file's name unless overridden.
func Run(paths []string, options RunOptions) (*Result, error) {
	result := &Result{City: options.City}

	for _, path := range paths {
		reader, err := ReaderForPath(path)
		if err != nil {
			return nil, err
		}

		sheets, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		if result.City == "" {
			result.City = cityname.FromFilename(filepath.Base(path), options.FallbackCity, options.Corrections)
		}

		result.FilesProcessed++
		for _, sheet := range sheets {
			ingestSheet(sheet, result)
		}
	}

	return result, nil
}

func ingestSheet(sheet Sheet, result *Result) {
	// Header-only or empty sheets contribute nothing.
	if len(sheet.Rows) < 2 {
		return
	}
	result.SheetsRead++

	kind := ClassifySheet(sheet.Name)
	for rowIndex, row := range sheet.Rows {
		result.RowsRead++
		switch kind {
		case KindActivities:
			if activity, ok := parseActivityRow(row); ok {
				result.Document.Roadmap = append(result.Document.Roadmap, activity)
				result.RowsParsed++
				continue
			}
		case KindShops:
			if shop, ok := parseShopRow(row); ok {
				result.Document.Shops = append(result.Document.Shops, shop)
				result.RowsParsed++
				continue
			}
		case KindVinyl:
			if shop, ok := parseVinylRow(row, sheet, rowIndex); ok {
				result.Document.Vinyl = append(result.Document.Vinyl, shop)
				result.RowsParsed++
				continue
			}
		}
		result.RowsSkipped++
	}
}
