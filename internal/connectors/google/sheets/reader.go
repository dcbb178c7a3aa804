package sheets

import (
	"context"
	"errors"
	"fmt"

	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/custodia-labs/portalcheck/internal/connectors/google"
	"github.com/custodia-labs/portalcheck/internal/connectors/ratelimit"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// ErrNoSpreadsheet indicates the spreadsheet ID was left empty.
var ErrNoSpreadsheet = errors.New("sheets: spreadsheet ID not configured")

// Config locates one range.
type Config struct {
	// SpreadsheetID is the document ID from the spreadsheet URL.
	SpreadsheetID string
	// Range is an A1 range, e.g. "A1:A" or "Sheet1".
	Range string
}

// SpreadsheetURL returns the browser URL for a spreadsheet ID.
func SpreadsheetURL(id string) string {
	return "https://docs.google.com/spreadsheets/d/" + id + "/edit"
}

// Reader fetches the cell values of one range.
type Reader struct {
	svc     *sheetsapi.Service
	cfg     Config
	limiter *ratelimit.Limiter
}

// NewReader creates a Reader. A nil limiter uses the Sheets defaults.
func NewReader(svc *sheetsapi.Service, cfg Config, limiter *ratelimit.Limiter) *Reader {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.ServiceSheets)
	}
	return &Reader{svc: svc, cfg: cfg, limiter: limiter}
}

// Rows returns the range values as strings, row by row.
// Trailing empty rows and cells are omitted by the API.
func (r *Reader) Rows(ctx context.Context) ([][]string, error) {
	if r.cfg.SpreadsheetID == "" {
		return nil, ErrNoSpreadsheet
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("sheets: reading %q from %s", r.cfg.Range, SpreadsheetURL(r.cfg.SpreadsheetID))

	resp, err := r.svc.Spreadsheets.Values.Get(r.cfg.SpreadsheetID, r.cfg.Range).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("values.get %s: %w", r.cfg.Range, google.WrapError(err))
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cellString(cell))
		}
		rows = append(rows, cells)
	}

	logger.Debug("sheets: %d rows in %q", len(rows), r.cfg.Range)
	return rows, nil
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
