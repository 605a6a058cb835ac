package sheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/andreasstove999/stock-tracker/internal/config"
	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

// Workbook serves spreadsheets from .xlsx files in Dir. A spreadsheet named
// "Inventory tracker" is read from "<Dir>/Inventory tracker.xlsx".
type Workbook struct {
	Dir string
}

// Open satisfies inventory.OpenFunc. Credentials are not used.
func (w Workbook) Open(ctx context.Context, _ config.Google) (inventory.Source, error) {
	info, err := os.Stat(w.Dir)
	if err != nil {
		return nil, fmt.Errorf("workbook dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workbook dir %s is not a directory", w.Dir)
	}
	return w, nil
}

func (w Workbook) FindSpreadsheets(ctx context.Context, name string) ([]inventory.Spreadsheet, error) {
	path := filepath.Join(w.Dir, name+".xlsx")
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []inventory.Spreadsheet{{
		ID:           path,
		Name:         name,
		ModifiedTime: info.ModTime().UTC().Format(time.RFC3339Nano),
	}}, nil
}

// GetRange only supports whole-sheet references such as "'Stock Summary'".
func (w Workbook) GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	if strings.Contains(a1Range, "!") {
		return nil, fmt.Errorf("range %q: only whole sheet references are supported", a1Range)
	}
	sheet := strings.TrimSuffix(strings.TrimPrefix(a1Range, "'"), "'")

	f, err := excelize.OpenFile(spreadsheetID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return f.GetRows(sheet)
}
