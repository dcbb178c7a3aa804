package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// SheetsReadonlyScope grants read access to spreadsheet values.
const SheetsReadonlyScope = sheetsapi.SpreadsheetsReadonlyScope

// NewSheetsService creates a Google Sheets API service using the provided TokenSource.
// Extra options (endpoint, HTTP client) are appended after the token source.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*sheetsapi.Service, error) {
	all := append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	return sheetsapi.NewService(ctx, all...)
}
