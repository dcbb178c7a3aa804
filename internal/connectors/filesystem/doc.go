// Package filesystem reads reconciliation inputs from local JSON files.
//
// The missing-merchant list is a JSON array of strings, e.g. an export
// saved as missing.json. The portal mapping may also be kept locally as a
// JSON array of [name, url] rows, in the same shape as the spreadsheet.
package filesystem
