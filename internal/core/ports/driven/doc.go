// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and connectors and adapters
// implement them.
//
// # Required Interfaces
//
//   - MissingMerchantSource: Candidate merchant names (JSON file, Sheets, xlsx)
//   - PortalMappingSource: Canonical name to portal URL rows (Sheets, xlsx, JSON)
//   - CompanyDirectory: Company names in the system of record (DynamoDB)
//   - ConfigStore: Application configuration
//
// A source that fails is not fatal: the service logs the failure and treats
// that input as empty for the rest of the run.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
