package xlsxgen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ukaji3/xlsxgen-go/internal/log"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/random"
	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// GenerateBalance writes the Balance dataset to path.
func GenerateBalance(ctx context.Context, path string, opts Options) (*models.Result, error) {
	return Generate(ctx, path, BalanceDataset(), opts)
}

// GenerateUserInfo writes the UserInfo dataset to path.
func GenerateUserInfo(ctx context.Context, path string, opts Options) (*models.Result, error) {
	return Generate(ctx, path, UserInfoDataset(), opts)
}

// Generate writes a workbook at path containing one sheet for ds with a
// header row followed by opts.Rows data rows. An existing file is overwritten.
// The workbook is only saved once every row has been written.
func Generate(ctx context.Context, path string, ds models.Dataset, opts Options) (res *models.Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Columns) == 0 {
		return nil, ErrEmptySchema
	}

	ctx = log.With(log.Into(ctx, "generate"), zap.String("dataset", ds.Name), zap.String("path", path))
	seed := opts.EffectiveSeed()
	log.Debug(ctx, "generation started", zap.Int("rows", opts.Rows), zap.Uint64("seed", seed))

	start := time.Now()
	src := random.New(seed)
	prog := newProgress(opts.Progress, ds.Name, opts.ProgressInterval())

	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			log.Error(ctx, "generation failed", zap.Error(err))
			res = nil
		}
	}()

	if err := f.SetSheetName(defaultSheet, ds.Name); err != nil {
		return nil, NewGenerationError(ds.Name, StageSheet, 0, err)
	}
	sw, err := f.NewStreamWriter(ds.Name)
	if err != nil {
		return nil, NewGenerationError(ds.Name, StageSheet, 0, err)
	}
	for i, col := range ds.Columns {
		if col.Width <= 0 {
			continue
		}
		if err := sw.SetColWidth(i+1, i+1, col.Width); err != nil {
			return nil, NewGenerationError(ds.Name, StageSheet, 0, err)
		}
	}

	// Header
	header := make([]interface{}, len(ds.Columns))
	for i, h := range ds.Headers() {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, NewGenerationError(ds.Name, StageHeader, 0, err)
	}

	// Data rows; row id N lives on spreadsheet row N+1
	values := make([]interface{}, len(ds.Columns))
	for id := 1; id <= opts.Rows; id++ {
		select {
		case <-ctx.Done():
			return nil, NewGenerationError(ds.Name, StageCancel, id, ctx.Err())
		default:
		}

		for i, col := range ds.Columns {
			values[i] = col.Value(src, id)
		}
		cell, err := excelize.CoordinatesToCellName(1, id+1)
		if err != nil {
			return nil, NewGenerationError(ds.Name, StageRow, id, err)
		}
		if err := sw.SetRow(cell, values); err != nil {
			return nil, NewGenerationError(ds.Name, StageRow, id, err)
		}
		prog.Row(id)
	}

	if err := sw.Flush(); err != nil {
		return nil, NewGenerationError(ds.Name, StageFlush, 0, err)
	}
	if err := f.SaveAs(path); err != nil {
		return nil, NewGenerationError(ds.Name, StageSave, 0, err)
	}

	elapsed := time.Since(start)
	prog.Done(elapsed)
	if err := prog.Err(); err != nil {
		log.Warn(ctx, "failed to write progress output", zap.Error(err))
	}

	res = &models.Result{
		BookName: filepath.Base(path),
		Sheet:    ds.Name,
		Rows:     opts.Rows,
		Range:    usedRange(len(ds.Columns), opts.Rows),
		Elapsed:  elapsed,
	}
	log.Info(ctx, "generation finished",
		zap.Int("rows", res.Rows),
		zap.String("range", res.Range),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// usedRange returns the cell range covering the header and rows data rows.
func usedRange(cols, rows int) string {
	startCell, _ := excelize.CoordinatesToCellName(1, 1)
	endCell, _ := excelize.CoordinatesToCellName(cols, rows+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}
