package inventory

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/andreasstove999/stock-tracker/internal/config"
)

// Source is the narrow view of the spreadsheet service used by the Reader.
// It allows us to swap the Google client for a local workbook or a fake in tests.
type Source interface {
	// FindSpreadsheets lists spreadsheets whose name equals name exactly.
	FindSpreadsheets(ctx context.Context, name string) ([]Spreadsheet, error)
	// GetRange returns the values of an A1 range, row by row.
	GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error)
}

// OpenFunc authenticates with creds and returns a ready Source.
type OpenFunc func(ctx context.Context, creds config.Google) (Source, error)

type Reader struct {
	creds     config.Google
	open      OpenFunc
	logger    *zap.Logger
	checkCred bool
}

type Option func(*Reader)

// WithoutCredentialCheck disables the service account precondition. Only
// sources that never talk to Google should use it.
func WithoutCredentialCheck() Option {
	return func(r *Reader) { r.checkCred = false }
}

func NewReader(creds config.Google, open OpenFunc, logger *zap.Logger, opts ...Option) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reader{
		creds:     creds,
		open:      open,
		logger:    logger,
		checkCred: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fetch reads the stock worksheet and shapes it. Every call authenticates
// and queries the source again; nothing is cached between calls.
func (r *Reader) Fetch(ctx context.Context) (Response, error) {
	if r.checkCred && !r.creds.Configured() {
		return Response{}, ErrCredentialsNotConfigured
	}

	src, err := r.open(ctx, r.creds)
	if err != nil {
		return Response{}, &FetchError{Err: fmt.Errorf("authenticate: %w", err)}
	}

	files, err := src.FindSpreadsheets(ctx, SpreadsheetTitle)
	if err != nil {
		return Response{}, &FetchError{Err: fmt.Errorf("find spreadsheet: %w", err)}
	}
	if len(files) == 0 {
		return Response{}, &NotFoundError{Title: SpreadsheetTitle}
	}

	sheet := pickSpreadsheet(files)
	if len(files) > 1 {
		r.logger.Warn("multiple spreadsheets share the inventory title, using the most recently modified",
			zap.String("title", SpreadsheetTitle),
			zap.Int("candidates", len(files)),
			zap.String("spreadsheet_id", sheet.ID),
		)
	}

	rows, err := src.GetRange(ctx, sheet.ID, WorksheetRange())
	if err != nil {
		return Response{}, &FetchError{Err: fmt.Errorf("read worksheet %q: %w", WorksheetName, err)}
	}

	resp := Shape(rows)
	r.logger.Debug("inventory fetched",
		zap.String("spreadsheet_id", sheet.ID),
		zap.Int("rows", len(rows)),
		zap.Int("items", len(resp.Data)),
		zap.Strings("headers", resp.Headers),
	)
	return resp, nil
}

// WorksheetRange is the A1 reference for the whole stock worksheet.
func WorksheetRange() string {
	return "'" + WorksheetName + "'"
}

// pickSpreadsheet chooses the most recently modified file, falling back to
// the lowest id, so the result does not depend on the order of the listing.
func pickSpreadsheet(files []Spreadsheet) Spreadsheet {
	sorted := make([]Spreadsheet, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ModifiedTime != sorted[j].ModifiedTime {
			return sorted[i].ModifiedTime > sorted[j].ModifiedTime
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted[0]
}
