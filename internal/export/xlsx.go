package export

import (
	"fmt"
	"io"
	"os"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(w io.Writer, records []bbs.Record, opts Options) error {
	var (
		f        *excelize.File
		firstRow int
		err      error
	)

	if opts.Template != "" {
		f, firstRow, err = openTemplate(opts)
	} else {
		f, firstRow, err = newWorkbook(opts.Sheet)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, firstRow+i)
		if err != nil {
			return err
		}
		values := rec.Values()
		if err := f.SetSheetRow(opts.Sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", firstRow+i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return err
	}
	return nil
}

// openTemplate opens the template, keeps its header region and removes the
// stale rows below it
func openTemplate(opts Options) (*excelize.File, int, error) {
	if _, err := os.Stat(opts.Template); err != nil {
		return nil, 0, &ExportError{Op: "template", Path: opts.Template, Err: err}
	}

	f, err := excelize.OpenFile(opts.Template)
	if err != nil {
		return nil, 0, &ExportError{Op: "template", Path: opts.Template, Err: err}
	}

	idx, err := f.GetSheetIndex(opts.Sheet)
	if err != nil || idx < 0 {
		f.Close()
		return nil, 0, &ExportError{Op: "template", Path: opts.Template, Err: fmt.Errorf("sheet %q not found", opts.Sheet)}
	}

	rows, err := f.GetRows(opts.Sheet)
	if err != nil {
		f.Close()
		return nil, 0, &ExportError{Op: "template", Path: opts.Template, Err: err}
	}
	for row := len(rows); row > opts.HeaderRows; row-- {
		if err := f.RemoveRow(opts.Sheet, row); err != nil {
			f.Close()
			return nil, 0, &ExportError{Op: "template", Path: opts.Template, Err: err}
		}
	}

	return f, opts.HeaderRows + 1, nil
}

// newWorkbook creates a workbook with a bold header row
func newWorkbook(sheet string) (*excelize.File, int, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, 0, err
	}

	header := make([]any, len(bbs.Columns))
	for i, c := range bbs.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, 0, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		f.Close()
		return nil, 0, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(bbs.Columns))
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, 2, nil
}
