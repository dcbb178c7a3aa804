// Package workbook reads reconciliation inputs from local Excel workbooks.
//
// Spreadsheets are often exported to .xlsx and kept alongside the job.
// MissingMerchants takes column A of a worksheet; PortalMapping takes
// columns A and B, in the same layout as the Google Sheets mapping.
package workbook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/portalcheck/internal/connectors/filesystem"
	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Ensure the workbook sources implement the interfaces.
var (
	_ driven.MissingMerchantSource = (*MissingMerchants)(nil)
	_ driven.PortalMappingSource   = (*PortalMapping)(nil)
)

// Config locates one worksheet.
type Config struct {
	// Path is the .xlsx file. May be a file:// URI.
	Path string
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
}

// readRows opens the workbook and returns the rows of the configured sheet.
func readRows(ctx context.Context, source string, cfg Config) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Unavailable(source, err)
	}
	path := filesystem.ResolvePath(cfg.Path)
	if path == "" {
		return nil, domain.Unavailable(source, fmt.Errorf("path not configured"))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, domain.Unavailable(source, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("workbook: close %s: %v", path, cerr)
		}
	}()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, domain.Malformed(source, fmt.Errorf("%s has no worksheets", path))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.Malformed(source, fmt.Errorf("read sheet %q: %w", sheet, err))
	}

	logger.Debug("workbook: %d rows in %s[%s]", len(rows), path, sheet)
	return rows, nil
}

// MissingMerchants reads candidate names from column A.
type MissingMerchants struct {
	cfg Config
}

// NewMissingMerchants creates a missing-merchant source for a worksheet.
func NewMissingMerchants(cfg Config) *MissingMerchants {
	return &MissingMerchants{cfg: cfg}
}

// ReadAll returns the non-blank cells of column A, top to bottom.
func (s *MissingMerchants) ReadAll(ctx context.Context) ([]string, error) {
	rows, err := readRows(ctx, domain.SourceMissingMerchants, s.cfg)
	if err != nil {
		return nil, err
	}
	column := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			column = append(column, row[:1])
		}
	}
	return domain.FlattenRows(column), nil
}

// PortalMapping reads name/URL rows from columns A and B.
type PortalMapping struct {
	cfg Config
}

// NewPortalMapping creates a portal mapping source for a worksheet.
func NewPortalMapping(cfg Config) *PortalMapping {
	return &PortalMapping{cfg: cfg}
}

// ReadAll returns one pair per row that has a name.
func (s *PortalMapping) ReadAll(ctx context.Context) ([]domain.PortalPair, error) {
	rows, err := readRows(ctx, domain.SourcePortalMapping, s.cfg)
	if err != nil {
		return nil, err
	}
	return domain.PairsFromRows(rows), nil
}
