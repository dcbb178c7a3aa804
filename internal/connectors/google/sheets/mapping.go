package sheets

import (
	"context"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
)

// Ensure PortalMapping implements the interface.
var _ driven.PortalMappingSource = (*PortalMapping)(nil)

// PortalMapping reads name/URL rows from a Sheets range.
type PortalMapping struct {
	reader *Reader
}

// NewPortalMapping creates a portal mapping source over reader.
func NewPortalMapping(reader *Reader) *PortalMapping {
	return &PortalMapping{reader: reader}
}

// ReadAll returns one pair per row that has a name in its first cell.
func (s *PortalMapping) ReadAll(ctx context.Context) ([]domain.PortalPair, error) {
	rows, err := s.reader.Rows(ctx)
	if err != nil {
		return nil, domain.Unavailable(domain.SourcePortalMapping, err)
	}
	return domain.PairsFromRows(rows), nil
}
