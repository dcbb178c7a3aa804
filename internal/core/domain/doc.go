// Package domain defines the core business entities for portalcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PortalMapping: Insertion-ordered canonical name to portal URL table
//   - CompanySet: Company names already present in the system of record
//   - Report: The outcome of one reconciliation run
//   - Settings: Where each source lives and how matching behaves
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
