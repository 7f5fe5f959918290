package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// hyperlinkScanWidth is the minimum number of columns probed for hyperlinks
// per row. GetRows trims trailing empty cells, and a hyperlink can sit on a
// cell with no display text (record-store maps links in column B do exactly
// that), so the probe cannot rely on the row width alone. Columns A-H cover
// every mapped field.
const hyperlinkScanWidth = 8

type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]Sheet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrRead, path, err)
	}
	defer file.Close()

	sheetNames := file.GetSheetList()
	sheets := make([]Sheet, 0, len(sheetNames))
	for _, name := range sheetNames {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %s of %s: %v", ErrRead, name, path, err)
		}

		sheet := Sheet{
			Name:       name,
			Rows:       rows,
			hyperlinks: make(map[cellIndex]string),
		}
		for rowIdx, row := range rows {
			width := len(row)
			if width < hyperlinkScanWidth {
				width = hyperlinkScanWidth
			}
			for col := 0; col < width; col++ {
				cellName, cellErr := excelize.CoordinatesToCellName(col+1, rowIdx+1)
				if cellErr != nil {
					continue
				}
				hasLink, target, linkErr := file.GetCellHyperLink(name, cellName)
				if linkErr == nil && hasLink && target != "" {
					sheet.hyperlinks[cellIndex{row: rowIdx, col: col}] = target
				}
			}
		}

		sheets = append(sheets, sheet)
	}

	return sheets, nil
}
