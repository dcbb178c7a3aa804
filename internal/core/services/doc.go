// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (connectors and adapters).
//
// The reconciliation steps (FilterCandidates, MatchCandidates,
// ResolvePortal, ReconcileCompanies) are pure functions over in-memory
// slices. ReconcileService wires them to the sources for one run.
package services
