package importer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"voyago/roadmap"
)

// writeWorkbook builds a real .xlsx fixture. Each sheet is a name plus a
// grid of rows; links attaches hyperlinks keyed by sheet name and cell.
func writeWorkbook(t *testing.T, path string, sheets map[string][][]string, links map[string]map[string]string) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	first := true
	for name, rows := range sheets {
		if first {
			if err := file.SetSheetName(file.GetSheetName(0), name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else if _, err := file.NewSheet(name); err != nil {
			t.Fatalf("create sheet %s: %v", name, err)
		}

		for rowIdx, row := range rows {
			for colIdx, value := range row {
				if value == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := file.SetCellValue(name, cell, value); err != nil {
					t.Fatalf("set cell %s: %v", cell, err)
				}
			}
		}

		for cell, target := range links[name] {
			if err := file.SetCellHyperLink(name, cell, target, "External"); err != nil {
				t.Fatalf("set hyperlink %s: %v", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestRun_EndToEndActivities(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roadmap_newyork.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Activities": {
			{"Jour", "Heure", "", "Activité", "Lieu", "Note", "Pass", "Statut"},
			{"01/01/2025", "09:00", "🗼", "Visite", "Tour Eiffel", "", "✅", "✅ terminé"},
		},
	}, nil)

	result, err := Run([]string{path}, RunOptions{})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}

	if len(result.Document.Roadmap) != 1 {
		t.Fatalf("expected exactly one activity, got %d", len(result.Document.Roadmap))
	}
	activity := result.Document.Roadmap[0]
	if activity.Label != "🗼 Visite" {
		t.Fatalf("unexpected label: %q", activity.Label)
	}
	if activity.Status != roadmap.StatusDone {
		t.Fatalf("unexpected status: %q", activity.Status)
	}
	if activity.Price != "Inclus" {
		t.Fatalf("unexpected price: %q", activity.Price)
	}
	if result.City != "New York" {
		t.Fatalf("expected city from filename, got %q", result.City)
	}
	if result.RowsRead != 2 || result.RowsParsed != 1 || result.RowsSkipped != 1 {
		t.Fatalf("unexpected counters: read=%d parsed=%d skipped=%d",
			result.RowsRead, result.RowsParsed, result.RowsSkipped)
	}
}

func TestRun_EndToEndVinylHyperlink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roadmap_lisbonne.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Vinyl Shops": {
			{"🏪 Boutique", "Lien Maps", "Notes"},
			{"Disc Shop", "", "Great selection"},
		},
	}, map[string]map[string]string{
		"Vinyl Shops": {"B2": "https://maps.example/x"},
	})

	result, err := Run([]string{path}, RunOptions{})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}

	if len(result.Document.Vinyl) != 1 {
		t.Fatalf("expected exactly one record store, got %d", len(result.Document.Vinyl))
	}
	shop := result.Document.Vinyl[0]
	if shop.MapsURL != "https://maps.example/x" {
		t.Fatalf("expected hyperlink-sourced link, got %q", shop.MapsURL)
	}
	if shop.Address != "" {
		t.Fatalf("expected empty address, got %q", shop.Address)
	}
}

func TestRun_SkipsHeaderOnlySheets(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roadmap_porto.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Activities": {
			{"Jour", "Heure", "", "Activité"},
		},
		"Shops": {
			{"Name", "Address"},
			{"Chez Paul", "12 Rue Cler"},
		},
	}, nil)

	result, err := Run([]string{path}, RunOptions{})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}

	if result.Document.Empty() {
		// The shops sheet has a data row; only the header-only sheet is skipped.
		t.Fatalf("expected shop records")
	}
	if len(result.Document.Roadmap) != 0 {
		t.Fatalf("header-only sheet must contribute nothing, got %d activities", len(result.Document.Roadmap))
	}
	if len(result.Document.Shops) != 1 {
		t.Fatalf("expected one shop, got %d", len(result.Document.Shops))
	}
	if result.SheetsRead != 1 {
		t.Fatalf("expected one ingested sheet, got %d", result.SheetsRead)
	}
}

func TestRun_MultipleSheetsOfSameKindConcatenate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roadmap_tokyo.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Shops centre": {
			{"Name", "Address"},
			{"Shop A", "1 Rue A"},
		},
		"Shops nord": {
			{"Name", "Address"},
			{"Shop B", "2 Rue B"},
		},
	}, nil)

	result, err := Run([]string{path}, RunOptions{})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}

	if len(result.Document.Shops) != 2 {
		t.Fatalf("expected shops from both sheets, got %d", len(result.Document.Shops))
	}
}

func TestRun_UnsupportedExtensionFailsBeforeDecode(t *testing.T) {
	t.Parallel()

	_, err := Run([]string{"roadmap.txt"}, RunOptions{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRun_CityOverrideAndFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "plan.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Activities": {
			{"Jour", "Heure", "", "Activité"},
			{"01/01/2025", "", "", "Balade"},
		},
	}, nil)

	result, err := Run([]string{path}, RunOptions{})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}
	// No filename token survives the stoplist/length filter.
	if result.City != "New York" {
		t.Fatalf("expected fallback city, got %q", result.City)
	}

	overridden, err := Run([]string{path}, RunOptions{City: "Lisbon"})
	if err != nil {
		t.Fatalf("run import: %v", err)
	}
	if overridden.City != "Lisbon" {
		t.Fatalf("expected explicit city, got %q", overridden.City)
	}
}
