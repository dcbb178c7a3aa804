package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driving"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Ensure ReconcileService implements the interface.
var _ driving.ReconcileService = (*ReconcileService)(nil)

// ReconcileService runs the filter, match, resolve and reconcile steps
// over the three sources.
type ReconcileService struct {
	missing   driven.MissingMerchantSource
	mapping   driven.PortalMappingSource
	directory driven.CompanyDirectory
	match     domain.MatchSettings
	report    domain.ReportSettings
	now       func() time.Time
}

// NewReconcileService creates a new reconcile service.
func NewReconcileService(
	missing driven.MissingMerchantSource,
	mapping driven.PortalMappingSource,
	directory driven.CompanyDirectory,
	match domain.MatchSettings,
	report domain.ReportSettings,
) *ReconcileService {
	if !match.Policy.IsValid() {
		match.Policy = domain.MatchPolicyFirst
	}
	return &ReconcileService{
		missing:   missing,
		mapping:   mapping,
		directory: directory,
		match:     match,
		report:    report,
		now:       time.Now,
	}
}

// Run loads every source and reconciles them. A source that fails is
// logged, recorded in the report and treated as empty; Run itself only
// fails when ctx is already done.
func (s *ReconcileService) Run(ctx context.Context) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		RunID:      uuid.NewString(),
		StartedAt:  s.now(),
		ExcludeTag: s.match.ExcludeTag,
	}
	logger.Info("run %s started", report.RunID)

	logger.Section("Load")
	candidates := s.loadCandidates(ctx, report)
	mapping := s.loadMapping(ctx, report)

	logger.Section("Match")
	filtered := FilterCandidates(candidates, s.match.ExcludeTag)
	report.Candidates = len(candidates)
	report.Excluded = len(candidates) - len(filtered)
	logger.Debug("filter: kept %d of %d (tag %q)", len(filtered), len(candidates), s.match.ExcludeTag)

	report.Matched = MatchCandidates(filtered, mapping, s.match.Policy)
	report.Rewritten = countRewritten(filtered, report.Matched)
	logger.Debug("match: %d rewritten to canonical names (policy %s)", report.Rewritten, s.match.Policy)

	report.Portal = ResolvePortal(report.Matched, mapping)
	if s.report.ResolveAll {
		report.Portals = ResolveAll(report.Matched, mapping)
	}

	logger.Section("Reconcile")
	companies := s.loadCompanies(ctx, report)
	report.Existing = ReconcileCompanies(report.Matched, companies)
	logger.Info("run %s: %d of %d matched names already onboarded",
		report.RunID, len(report.Existing), len(report.Matched))

	return report, nil
}

func (s *ReconcileService) loadCandidates(ctx context.Context, report *domain.Report) []string {
	if s.missing == nil {
		s.fail(report, domain.SourceMissingMerchants, domain.ErrSourceUnavailable)
		return nil
	}
	names, err := s.missing.ReadAll(ctx)
	if err != nil {
		s.fail(report, domain.SourceMissingMerchants, err)
		return nil
	}
	logger.Debug("loaded %d candidates", len(names))
	return names
}

func (s *ReconcileService) loadMapping(ctx context.Context, report *domain.Report) *domain.PortalMapping {
	if s.mapping == nil {
		s.fail(report, domain.SourcePortalMapping, domain.ErrSourceUnavailable)
		return domain.NewPortalMapping(nil)
	}
	pairs, err := s.mapping.ReadAll(ctx)
	if err != nil {
		s.fail(report, domain.SourcePortalMapping, err)
		return domain.NewPortalMapping(nil)
	}
	mapping := domain.NewPortalMapping(pairs)
	named := 0
	for _, p := range pairs {
		if p.Name != "" {
			named++
		}
	}
	if dupes := named - mapping.Len(); dupes > 0 {
		logger.Warn("portal mapping: %d duplicate names, later rows win", dupes)
	}
	logger.Debug("loaded %d canonical names", mapping.Len())
	return mapping
}

func (s *ReconcileService) loadCompanies(ctx context.Context, report *domain.Report) domain.CompanySet {
	if s.directory == nil {
		s.fail(report, domain.SourceCompanyDirectory, domain.ErrSourceUnavailable)
		return domain.NewCompanySet(nil)
	}
	names, err := s.directory.ListNames(ctx)
	if err != nil {
		s.fail(report, domain.SourceCompanyDirectory, err)
		return domain.NewCompanySet(nil)
	}
	logger.Debug("loaded %d company names", len(names))
	return domain.NewCompanySet(names)
}

func (s *ReconcileService) fail(report *domain.Report, source string, err error) {
	logger.Error(err, "%s unavailable, continuing without it", source)
	report.Failures = append(report.Failures, domain.SourceFailure{Source: source, Err: err})
}
