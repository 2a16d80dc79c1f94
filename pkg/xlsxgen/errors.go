package xlsxgen

import (
	"errors"
	"fmt"
)

// ErrInvalidRowCount indicates a negative row count.
var ErrInvalidRowCount = errors.New("row count must not be negative")

// ErrTooManyRows indicates a row count that does not fit in one worksheet.
var ErrTooManyRows = errors.New("row count exceeds worksheet capacity")

// ErrEmptySchema indicates a dataset without columns.
var ErrEmptySchema = errors.New("dataset has no columns")

// Generation stages reported by GenerationError.
const (
	StageSheet  = "sheet"
	StageHeader = "header"
	StageRow    = "row"
	StageFlush  = "flush"
	StageSave   = "save"
	StageCancel = "cancel"
)

// GenerationError represents an error while writing a dataset.
type GenerationError struct {
	Dataset string
	Stage   string
	// Row is the data row being written, 0 outside of the row stage.
	Row int
	Err error
}

func (e *GenerationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("generation error in dataset %q (%s, row %d): %v", e.Dataset, e.Stage, e.Row, e.Err)
	}
	return fmt.Sprintf("generation error in dataset %q (%s): %v", e.Dataset, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(dataset, stage string, row int, err error) *GenerationError {
	return &GenerationError{
		Dataset: dataset,
		Stage:   stage,
		Row:     row,
		Err:     err,
	}
}
