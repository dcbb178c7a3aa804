package driving

import (
	"context"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

// ReconcileService runs one reconciliation of missing merchants against
// the portal mapping and the company directory.
type ReconcileService interface {
	// Run loads all sources, reconciles them and returns the report.
	// Source failures are reported in the Report, not as an error.
	Run(ctx context.Context) (*domain.Report, error)
}
