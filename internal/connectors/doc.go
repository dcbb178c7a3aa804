// Package connectors builds the three reconciliation sources from settings.
//
// Each source kind lives in its own subpackage (filesystem, workbook,
// google/sheets, dynamo). Factory picks the implementation for the configured
// kind. A source that cannot be constructed is replaced by one that reports
// the construction error on every read, so a bad credentials file or missing
// spreadsheet ID only degrades its own input.
package connectors
