package models

import "time"

// Result summarizes a generated workbook.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheet is the name of the written sheet.
	Sheet string `json:"sheet"`
	// Rows is the number of data rows, excluding the header.
	Rows int `json:"rows"`
	// Range is the used cell range including the header (e.g. "A1:B6").
	Range string `json:"range"`
	// Elapsed is the wall-clock generation time.
	Elapsed time.Duration `json:"elapsed"`
}
