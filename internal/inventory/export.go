package inventory

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes resp as an .xlsx workbook with a single worksheet
// named WorksheetName. The layout mirrors the source sheet: header on the
// first row, an empty second row, items from the third row on.
func WriteWorkbook(w io.Writer, resp Response) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(WorksheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	header := make([]any, len(resp.Headers))
	for i, h := range resp.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(WorksheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(WorksheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, item := range resp.Data {
		row := make([]any, len(resp.Headers))
		for c, h := range resp.Headers {
			row[c] = item.Get(h)
		}
		cellRef, err := excelize.CoordinatesToCellName(1, FirstDataRow+i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(WorksheetName, cellRef, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if len(resp.Headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(resp.Headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(WorksheetName, "A", last, 18); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	return f.Write(w)
}
