package ports

import "errors"

// ErrSheetNotFound is returned when a workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// Workbook reads header-keyed rows from a spreadsheet.
type Workbook interface {
	// Records zips every non-blank row after the first with the first row's
	// property names.
	Records(sheet string) ([]map[string]any, error)
	Close() error
}

// WorkbookOpener opens the workbook stored at path.
type WorkbookOpener func(path string) (Workbook, error)
