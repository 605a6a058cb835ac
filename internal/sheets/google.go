// Package sheets provides the inventory.Source implementations: the Google
// Drive and Sheets APIs, and local .xlsx workbooks for development.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/andreasstove999/stock-tracker/internal/config"
	"github.com/andreasstove999/stock-tracker/internal/inventory"
)

const SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// Scopes requested for the service account: read spreadsheet values and list files.
var Scopes = []string{sheetsapi.SpreadsheetsReadonlyScope, drive.DriveReadonlyScope}

type Google struct {
	drive  *drive.Service
	sheets *sheetsapi.Service
}

// OpenGoogle signs in with the service account and returns a Source. It is
// an inventory.OpenFunc. Tokens are fetched lazily on the first request.
func OpenGoogle(ctx context.Context, creds config.Google) (inventory.Source, error) {
	raw, err := creds.ServiceAccountJSON()
	if err != nil {
		return nil, fmt.Errorf("encode service account: %w", err)
	}
	jwt, err := google.JWTConfigFromJSON(raw, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}
	g, err := NewGoogle(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	if err != nil {
		return nil, err
	}
	return g, nil
}

// NewGoogle builds the Drive and Sheets clients from opts.
func NewGoogle(ctx context.Context, opts ...option.ClientOption) (*Google, error) {
	d, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	s, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &Google{drive: d, sheets: s}, nil
}

func (g *Google) FindSpreadsheets(ctx context.Context, name string) ([]inventory.Spreadsheet, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), SpreadsheetMimeType)

	list, err := g.drive.Files.List().
		Q(q).
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	out := make([]inventory.Spreadsheet, 0, len(list.Files))
	for _, f := range list.Files {
		out = append(out, inventory.Spreadsheet{ID: f.Id, Name: f.Name, ModifiedTime: f.ModifiedTime})
	}
	return out, nil
}

func (g *Google) GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	vr, err := g.sheets.Spreadsheets.Values.Get(spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if s, ok := v.(string); ok {
				cells[j] = s
				continue
			}
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// escapeQuery quotes a value for a Drive search string literal.
func escapeQuery(v string) string {
	return queryEscaper.Replace(v)
}
