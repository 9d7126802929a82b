package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client talks to the Google Sheets API directly using a service
// account. It is the preferred persistence path when a spreadsheet id
// is configured; deployments without one fall back to the Apps Script
// web app (see ScriptClient).
type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
}

func New(ctx context.Context, serviceAccountJSONPath, spreadsheetID string) (*Client, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

// AppendRow appends one row to the bottom of the given tab.
func (c *Client) AppendRow(ctx context.Context, tab string, values []interface{}) error {
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{values}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, tab+"!A:Z", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
