package domain

import "time"

// PortalLookup is the result of resolving one matched name against the
// portal mapping.
type PortalLookup struct {
	Name  string
	URL   string
	Found bool
}

// SourceFailure records a source that could not be loaded during a run.
type SourceFailure struct {
	Source string
	Err    error
}

// Report is the outcome of a single reconciliation run.
// It is built fresh for each run and never persisted.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Candidates is the number of missing-merchant names loaded.
	Candidates int

	// ExcludeTag is the tag the filter applied. Empty when filtering was off.
	ExcludeTag string

	// Excluded is the number of candidates dropped by the exclusion tag.
	Excluded int

	// Rewritten is the number of candidates replaced by a canonical name.
	Rewritten int

	// Matched is the candidate list after filtering and matching.
	Matched []string

	// Portal is the lookup for the first matched name.
	Portal PortalLookup

	// Portals holds a lookup per matched name when resolve-all is enabled.
	Portals []PortalLookup

	// Existing lists matched names already present in the system of record.
	Existing []string

	// Failures lists sources that were unavailable or malformed.
	Failures []SourceFailure
}

// HasFailures returns true if any source failed to load.
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
