package importer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat marks a file whose extension is not a recognized
// workbook container. Ingestion does not start for such files.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrRead marks bytes that could not be decoded as the claimed container
// format.
var ErrRead = errors.New("read workbook")

// Sheet is one named 2-D grid of cell values read row-major, with empty cells
// as "" and per-cell hyperlink targets kept alongside the values.
type Sheet struct {
	Name string
	Rows [][]string

	hyperlinks map[cellIndex]string
}

type cellIndex struct {
	row int
	col int
}

// Hyperlink returns the link target attached to the cell at the 0-indexed
// row/column, or "" when the cell carries no hyperlink.
func (s Sheet) Hyperlink(row, col int) string {
	return s.hyperlinks[cellIndex{row: row, col: col}]
}

type Reader interface {
	Read(path string) ([]Sheet, error)
}

// ReaderForPath selects a reader from the file extension. CSV is recognized
// but rejected explicitly; itineraries are distributed as workbooks only.
func ReaderForPath(path string) (Reader, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	case "csv":
		return nil, fmt.Errorf("%w: csv import is not supported", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
