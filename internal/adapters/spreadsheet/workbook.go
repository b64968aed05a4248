package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fr0stylo/enms/internal/app/ports"
)

// Workbook reads inventory sheets from an xlsx file.
type Workbook struct {
	file *excelize.File
}

// Open opens the workbook at path.
func Open(path string) (ports.Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: file}, nil
}

// Records returns every non-blank row after the header row, keyed by the
// header cell of its column. Cells beyond the end of a row are omitted.
func (w *Workbook) Records(sheet string) ([]map[string]any, error) {
	index, err := w.file.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("lookup sheet %s: %w", sheet, err)
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ports.ErrSheetNotFound, sheet)
	}

	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cell)
	}

	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		record := make(map[string]any, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(row) {
				continue
			}
			record[header] = row[i]
		}
		records = append(records, record)
	}
	return records, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

var _ ports.WorkbookOpener = Open
