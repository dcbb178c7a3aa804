// Package google provides shared infrastructure for Google API connectors.
//
// This package contains common utilities used by the sheets connector:
//   - TokenSource construction from a service account key file
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//
// # Usage
//
//	ts, err := google.NewTokenSource(ctx, "credentials.json", google.SheetsReadonlyScope)
//	svc, err := google.NewSheetsService(ctx, ts)
//
// # OAuth2 Scopes
//
// Only https://www.googleapis.com/auth/spreadsheets.readonly is requested.
// The service account must be shared on both spreadsheets.
package google
