package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"voyago/roadmap"
)

type ExcelWriter struct{}

// Sheet names and headers match what the importer classifies and filters, so
// a written workbook round-trips through an import.
var (
	activityHeaders = []string{"Jour", "Heure", "", "Activité", "Lieu", "Note", "Pass", "Statut"}
	shopHeaders     = []string{"Name", "Address"}
	vinylHeaders    = []string{"🏪 Boutique", "Lien Maps", "Notes"}
)

func (w *ExcelWriter) Write(path string, doc roadmap.Document) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), "Activities"); err != nil {
		return fmt.Errorf("rename activities sheet: %w", err)
	}
	if err := w.writeActivities(file, doc.Roadmap); err != nil {
		return err
	}

	if _, err := file.NewSheet("Shops"); err != nil {
		return fmt.Errorf("create shops sheet: %w", err)
	}
	if err := w.writeShops(file, doc.Shops); err != nil {
		return err
	}

	if _, err := file.NewSheet("Vinyl Shops"); err != nil {
		return fmt.Errorf("create vinyl sheet: %w", err)
	}
	if err := w.writeVinyl(file, doc.Vinyl); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	return nil
}

func (w *ExcelWriter) writeActivities(file *excelize.File, activities []roadmap.Activity) error {
	if err := writeRow(file, "Activities", 1, activityHeaders); err != nil {
		return err
	}

	for i, activity := range activities {
		// The emoji column stays empty: the marker already lives inside the
		// label and survives a re-import unchanged.
		values := []string{
			activity.Date,
			activity.Time,
			"",
			activity.Label,
			activity.Place,
			activity.Notes,
			activity.Pass,
			string(activity.Status),
		}
		if err := writeRow(file, "Activities", i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writeShops(file *excelize.File, shops []roadmap.Shop) error {
	if err := writeRow(file, "Shops", 1, shopHeaders); err != nil {
		return err
	}

	for i, shop := range shops {
		if err := writeRow(file, "Shops", i+2, []string{shop.Name, shop.Address}); err != nil {
			return err
		}
	}
	return nil
}

func (w *ExcelWriter) writeVinyl(file *excelize.File, shops []roadmap.Shop) error {
	if err := writeRow(file, "Vinyl Shops", 1, vinylHeaders); err != nil {
		return err
	}

	for i, shop := range shops {
		row := i + 2
		if err := writeRow(file, "Vinyl Shops", row, []string{shop.Name, "", shop.Notes}); err != nil {
			return err
		}
		if shop.MapsURL == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return fmt.Errorf("resolve vinyl link cell: %w", err)
		}
		if err := file.SetCellValue("Vinyl Shops", cell, "Maps"); err != nil {
			return fmt.Errorf("set vinyl link text %s: %w", cell, err)
		}
		if err := file.SetCellHyperLink("Vinyl Shops", cell, shop.MapsURL, "External"); err != nil {
			return fmt.Errorf("set vinyl link %s: %w", cell, err)
		}
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("resolve cell %d/%d: %w", col+1, row, err)
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set excel value %s: %w", cell, err)
		}
	}
	return nil
}
