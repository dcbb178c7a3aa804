package driven

import (
	"context"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

// MissingMerchantSource reads the candidate merchant names.
type MissingMerchantSource interface {
	// ReadAll returns every candidate in source order.
	// Errors are domain.SourceError values (ErrSourceUnavailable or ErrParse).
	ReadAll(ctx context.Context) ([]string, error)
}

// PortalMappingSource reads the canonical name to portal URL rows.
type PortalMappingSource interface {
	// ReadAll returns the rows in source order. Duplicates are kept;
	// domain.NewPortalMapping decides how they collapse.
	ReadAll(ctx context.Context) ([]domain.PortalPair, error)
}

// CompanyDirectory lists the companies already onboarded.
type CompanyDirectory interface {
	// ListNames returns every company name, reading all pages.
	ListNames(ctx context.Context) ([]string, error)
}
