package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/google-marketing-solutions/madpmax-sub000/core/utils"
)

// Client defines the spreadsheet operations the upload flows depend on.
type Client interface {
	// ReadRows returns the data region of a sheet (all rows below the
	// configured header), in sheet order.
	ReadRows(ctx context.Context, sheetName string) ([]Row, error)
	// UpdateCell writes a single cell, addressed by 0-based data-region row
	// and column indices.
	UpdateCell(ctx context.Context, sheetName string, row, col int, value string) error
	// AppendRow appends a row of values after the last row of a sheet.
	AppendRow(ctx context.Context, sheetName string, values []string) error
}

type googleClient struct {
	svc *sheetsapi.Service
	cfg Config
}

// NewClient creates a Google Sheets backed client authenticated by the
// token source.
func NewClient(ctx context.Context, cfg Config, ts oauth2.TokenSource) (Client, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &googleClient{svc: svc, cfg: cfg}, nil
}

func (c *googleClient) ReadRows(ctx context.Context, sheetName string) ([]Row, error) {
	// The data region starts right below the header rows; the open-ended
	// range lets the API return however many columns the sheet carries.
	readRange := fmt.Sprintf("%s!A%d:ZZ", sheetName, c.cfg.HeaderRows+1)

	resp, err := c.svc.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make(Row, 0, len(raw))
		for _, cell := range raw {
			if s, ok := cell.(string); ok {
				row = append(row, s)
			} else {
				row = append(row, fmt.Sprint(cell))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *googleClient) UpdateCell(ctx context.Context, sheetName string, row, col int, value string) error {
	cell := fmt.Sprintf("%s!%s%d", sheetName, utils.ColumnLetter(col), c.cfg.HeaderRows+1+row)

	_, err := c.svc.Spreadsheets.Values.
		Update(c.cfg.SpreadsheetID, cell, &sheetsapi.ValueRange{Values: [][]any{{value}}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", cell, err)
	}
	return nil
}

func (c *googleClient) AppendRow(ctx context.Context, sheetName string, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.cfg.SpreadsheetID, sheetName+"!A1", &sheetsapi.ValueRange{Values: [][]any{cells}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to sheet %s: %w", sheetName, err)
	}
	return nil
}

// WriteStatus persists a row's status and message cells in one call site.
func WriteStatus(ctx context.Context, c Client, sheetName string, row, statusCol int, status string, messageCol int, message string) error {
	if err := c.UpdateCell(ctx, sheetName, row, statusCol, status); err != nil {
		return err
	}
	return c.UpdateCell(ctx, sheetName, row, messageCol, message)
}
