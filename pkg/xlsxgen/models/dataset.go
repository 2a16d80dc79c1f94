// Package models defines data structures for synthetic workbook generation.
package models

import "github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/random"

// ValueFunc produces the cell value of a column for the data row with the given id.
type ValueFunc func(src *random.Source, id int) interface{}

// Column describes one column of a generated sheet.
type Column struct {
	// Header is the label written in the header row.
	Header string
	// Width is the column width in characters (0 keeps the default).
	Width float64
	// Value generates the cell value for each data row.
	Value ValueFunc
}

// Dataset describes a generated sheet.
type Dataset struct {
	// Name is the sheet name and the label used in progress output.
	Name string
	// Columns lists the sheet columns in order.
	Columns []Column
}

// Headers returns the header labels of the dataset in column order.
func (d Dataset) Headers() []string {
	headers := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		headers[i] = col.Header
	}
	return headers
}
