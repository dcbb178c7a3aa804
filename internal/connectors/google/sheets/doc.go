// Package sheets reads the missing-merchant list and the portal mapping
// from Google Sheets ranges.
//
// A Reader fetches one range with spreadsheets.values.get. MissingMerchants
// flattens the range into names (the usual range is a single column such as
// "A1:A"); PortalMapping reads the first two cells of each row as a
// canonical name and its portal URL (the usual range is a whole sheet).
package sheets
