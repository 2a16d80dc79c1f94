// Package xlsxgen generates synthetic spreadsheet workbooks for load testing.
package xlsxgen

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultRows is the number of data rows written per workbook.
	DefaultRows = 1_000_000
	// DefaultProgressEvery is the number of rows between progress lines.
	DefaultProgressEvery = 100_000
	// MaxRows is the largest row count that fits below the header.
	MaxRows = excelize.TotalRows - 1
)

// Options configures generation behavior.
type Options struct {
	// Rows is the number of data rows, excluding the header.
	Rows int
	// ProgressEvery is the interval between progress lines.
	// Zero uses DefaultProgressEvery; a negative value disables them.
	ProgressEvery int
	// Seed seeds the value generator. Zero selects a time-based seed.
	Seed uint64
	// Progress receives progress and completion lines. Nil discards them.
	Progress io.Writer
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Rows:          DefaultRows,
		ProgressEvery: DefaultProgressEvery,
	}
}

// Validate reports whether the options can be used for generation.
func (o Options) Validate() error {
	if o.Rows < 0 {
		return ErrInvalidRowCount
	}
	if o.Rows > MaxRows {
		return ErrTooManyRows
	}
	return nil
}

// ProgressInterval returns the effective progress interval, or 0 when disabled.
func (o Options) ProgressInterval() int {
	switch {
	case o.ProgressEvery == 0:
		return DefaultProgressEvery
	case o.ProgressEvery < 0:
		return 0
	}
	return o.ProgressEvery
}

// EffectiveSeed returns Seed, or a seed derived from the clock when Seed is zero.
func (o Options) EffectiveSeed() uint64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return uint64(time.Now().UnixNano())
}
