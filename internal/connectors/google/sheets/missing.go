package sheets

import (
	"context"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
)

// Ensure MissingMerchants implements the interface.
var _ driven.MissingMerchantSource = (*MissingMerchants)(nil)

// MissingMerchants reads candidate names from a Sheets range.
type MissingMerchants struct {
	reader *Reader
}

// NewMissingMerchants creates a missing-merchant source over reader.
func NewMissingMerchants(reader *Reader) *MissingMerchants {
	return &MissingMerchants{reader: reader}
}

// ReadAll returns every non-blank cell of the range.
func (s *MissingMerchants) ReadAll(ctx context.Context) ([]string, error) {
	rows, err := s.reader.Rows(ctx)
	if err != nil {
		return nil, domain.Unavailable(domain.SourceMissingMerchants, err)
	}
	return domain.FlattenRows(rows), nil
}
